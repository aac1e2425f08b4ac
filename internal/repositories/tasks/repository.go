// Package tasks provides access to the tasks table.
//
// Every read and mutation filters on both the task id and the owning user id.
// That double predicate is the only access control: a task owned by someone
// else is indistinguishable from a missing one. Update and Delete report the
// number of affected rows and treat zero as success.
package tasks

import (
	"context"
	"time"

	"github.com/dmitrijs2005/taskman/internal/models"
)

type Repository interface {
	// Create inserts t without a status column, so the store default
	// (PENDING) applies.
	Create(ctx context.Context, t *models.Task) error

	// ListByStatus returns all tasks of userID with exactly this status,
	// newest created_at first; ties go to the later insert.
	ListByStatus(ctx context.Context, userID string, status models.Status) ([]models.Task, error)

	// GetByID returns the task if it exists and belongs to userID.
	GetByID(ctx context.Context, taskID, userID string) (*models.Task, error)

	// Update writes the non-nil fields of upd and sets updated_at.
	Update(ctx context.Context, taskID, userID string, upd models.TaskUpdate, updatedAt time.Time) (int64, error)

	// Delete removes the task.
	Delete(ctx context.Context, taskID, userID string) (int64, error)
}
