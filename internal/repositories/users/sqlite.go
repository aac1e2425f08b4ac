package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskman/internal/common"
	"github.com/dmitrijs2005/taskman/internal/dbx"
	"github.com/dmitrijs2005/taskman/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, u *models.User) error {
	query := `INSERT INTO users (id, email, name, password) VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, u.ID, u.Email, u.Name, u.PasswordHash)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrDuplicateEmail
		}
		return fmt.Errorf("%w: failed to insert user: %w", common.ErrStore, err)
	}
	return nil
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, email, name, password, created_at FROM users WHERE email = ?`

	var (
		u         models.User
		name      sql.NullString
		createdAt sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Email, &name, &u.PasswordHash, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to select user: %w", common.ErrStore, err)
	}

	u.Name = name.String
	if createdAt.Valid {
		ts, err := models.ParseTimestamp(createdAt.String)
		if err != nil {
			return nil, fmt.Errorf("%w: user %s: %w", common.ErrStore, u.ID, err)
		}
		u.CreatedAt = ts
	}
	return &u, nil
}
