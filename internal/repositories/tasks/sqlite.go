package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskman/internal/common"
	"github.com/dmitrijs2005/taskman/internal/dbx"
	"github.com/dmitrijs2005/taskman/internal/models"
)

const taskColumns = `id, title, description, status, user_id, created_at, updated_at`

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, t *models.Task) error {
	query := `INSERT INTO tasks (id, title, description, user_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.Title, t.Description, t.UserID,
		models.FormatTimestamp(t.CreatedAt), models.FormatTimestamp(t.UpdatedAt))
	if err != nil {
		return fmt.Errorf("%w: failed to insert task: %w", common.ErrStore, err)
	}
	return nil
}

func (r *SQLiteRepository) ListByStatus(ctx context.Context, userID string, status models.Status) ([]models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE user_id = ? AND status = ?
		ORDER BY created_at DESC, rowid DESC`

	rows, err := r.db.QueryContext(ctx, query, userID, string(status))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to select tasks: %w", common.ErrStore, err)
	}
	defer rows.Close()

	result := make([]models.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate tasks: %w", common.ErrStore, err)
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, taskID, userID string) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ? AND user_id = ?`

	t, err := scanTask(r.db.QueryRowContext(ctx, query, taskID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, taskID, userID string, upd models.TaskUpdate, updatedAt time.Time) (int64, error) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 6)

	if upd.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *upd.Title)
	}
	if upd.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *upd.Description)
	}
	if upd.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*upd.Status))
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, models.FormatTimestamp(updatedAt), taskID, userID)

	query := `UPDATE tasks SET ` + strings.Join(sets, ", ") + ` WHERE id = ? AND user_id = ?`

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to update task: %w", common.ErrStore, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: failed to get rows affected: %w", common.ErrStore, err)
	}
	return ra, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, taskID, userID string) (int64, error) {
	query := `DELETE FROM tasks WHERE id = ? AND user_id = ?`

	res, err := r.db.ExecContext(ctx, query, taskID, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to delete task: %w", common.ErrStore, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: failed to get rows affected: %w", common.ErrStore, err)
	}
	return ra, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (*models.Task, error) {
	var (
		t           models.Task
		description sql.NullString
		status      sql.NullString
		createdAt   sql.NullString
		updatedAt   sql.NullString
	)
	if err := s.Scan(&t.ID, &t.Title, &description, &status, &t.UserID, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: failed to scan task: %w", common.ErrStore, err)
	}

	t.Description = description.String
	t.Status = models.Status(status.String)

	var err error
	if t.CreatedAt, err = parseNullTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("%w: task %s: %w", common.ErrStore, t.ID, err)
	}
	if t.UpdatedAt, err = parseNullTimestamp(updatedAt); err != nil {
		return nil, fmt.Errorf("%w: task %s: %w", common.ErrStore, t.ID, err)
	}
	return &t, nil
}

func parseNullTimestamp(s sql.NullString) (time.Time, error) {
	if !s.Valid {
		return time.Time{}, nil
	}
	return models.ParseTimestamp(s.String)
}
