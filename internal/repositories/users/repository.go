// Package users provides access to the users table.
//
// Create reports a second registration of the same email as
// common.ErrDuplicateEmail, detected from the SQLite UNIQUE constraint code.
// GetByEmail reports a missing row as common.ErrNotFound. Any other failure
// wraps common.ErrStore.
package users

import (
	"context"

	"github.com/dmitrijs2005/taskman/internal/models"
)

type Repository interface {
	// Create inserts u. u.ID and u.PasswordHash must be set; created_at is
	// filled by the column default.
	Create(ctx context.Context, u *models.User) error

	// GetByEmail returns the single user with exactly this email (no case
	// folding), including the password hash.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
