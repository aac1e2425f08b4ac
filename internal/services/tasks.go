package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskman/internal/common"
	"github.com/dmitrijs2005/taskman/internal/logging"
	"github.com/dmitrijs2005/taskman/internal/models"
	"github.com/dmitrijs2005/taskman/internal/repositories/tasks"
	"github.com/google/uuid"
)

// TaskService is per-user CRUD over tasks. userID always comes from the
// signed-in identity held by the caller.
type TaskService interface {
	Create(ctx context.Context, userID, title, description string) (*models.Task, error)
	List(ctx context.Context, userID string, status models.Status) ([]models.Task, error)
	Get(ctx context.Context, taskID, userID string) (*models.Task, error)
	Update(ctx context.Context, taskID, userID string, upd models.TaskUpdate) error
	Delete(ctx context.Context, taskID, userID string) error
}

type taskService struct {
	tasks  tasks.Repository
	logger logging.Logger
	now    func() time.Time
	newID  func() string
}

// NewTaskService constructs a TaskService over the tasks repository.
func NewTaskService(repo tasks.Repository, logger logging.Logger) TaskService {
	return &taskService{
		tasks:  repo,
		logger: logger.With("component", "tasks"),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// clock returns the current time at the precision the store keeps.
func (s *taskService) clock() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// Create stores a PENDING task. created_at and updated_at share one instant,
// and the returned record is built from the inputs without a re-read.
func (s *taskService) Create(ctx context.Context, userID, title, description string) (*models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrValidation)
	}

	now := s.clock()
	task := &models.Task{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		Status:      models.StatusPending,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		s.logger.Error(ctx, "create task failed", "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Info(ctx, "task created", "task_id", task.ID, "user_id", userID)
	return task, nil
}

// List returns every task of userID in status, newest first.
func (s *taskService) List(ctx context.Context, userID string, status models.Status) ([]models.Task, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", common.ErrValidation, status)
	}

	list, err := s.tasks.ListByStatus(ctx, userID, status)
	if err != nil {
		s.logger.Error(ctx, "list tasks failed", "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Debug(ctx, "tasks listed", "user_id", userID, "status", status, "count", len(list))
	return list, nil
}

// Get returns one task, or common.ErrNotFound if it is missing or not owned
// by userID.
func (s *taskService) Get(ctx context.Context, taskID, userID string) (*models.Task, error) {
	return s.tasks.GetByID(ctx, taskID, userID)
}

// Update applies a non-empty partial record and refreshes updated_at in the
// same statement. An empty record is rejected with common.ErrEmptyUpdate.
func (s *taskService) Update(ctx context.Context, taskID, userID string, upd models.TaskUpdate) error {
	if upd.IsEmpty() {
		return common.ErrEmptyUpdate
	}
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", common.ErrValidation)
	}
	if upd.Status != nil && !upd.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", common.ErrValidation, *upd.Status)
	}

	n, err := s.tasks.Update(ctx, taskID, userID, upd, s.clock())
	if err != nil {
		s.logger.Error(ctx, "update task failed", "task_id", taskID, "user_id", userID, "error", err)
		return err
	}
	if n == 0 {
		s.logger.Debug(ctx, "update matched no task", "task_id", taskID, "user_id", userID)
		return nil
	}

	s.logger.Info(ctx, "task updated", "task_id", taskID, "user_id", userID)
	return nil
}

// Delete removes the task if it belongs to userID.
func (s *taskService) Delete(ctx context.Context, taskID, userID string) error {
	n, err := s.tasks.Delete(ctx, taskID, userID)
	if err != nil {
		s.logger.Error(ctx, "delete task failed", "task_id", taskID, "user_id", userID, "error", err)
		return err
	}
	if n == 0 {
		s.logger.Debug(ctx, "delete matched no task", "task_id", taskID, "user_id", userID)
		return nil
	}

	s.logger.Info(ctx, "task deleted", "task_id", taskID, "user_id", userID)
	return nil
}
