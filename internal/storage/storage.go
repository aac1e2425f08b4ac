// Package storage is the persistence store of taskman: an embedded SQLite
// database holding the users and tasks tables.
//
// Open returns an explicitly constructed Storage; there is no package-level
// handle. The schema is bootstrapped on Open with goose from the embedded
// migrations, whose statements use CREATE TABLE IF NOT EXISTS, so opening an
// existing database file is a no-op for initialization.
//
// The pool is pinned to a single connection. SQLite allows one writer at a
// time, and every connection to ":memory:" would otherwise see its own empty
// database.
//
// Typical usage:
//
//	st, err := storage.Open(ctx, "tasks.db", logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer st.Close()
//	auth := services.NewAuthService(st.Users, hasher, logger)
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/taskman/internal/common"
	"github.com/dmitrijs2005/taskman/internal/logging"
	"github.com/dmitrijs2005/taskman/internal/repositories/tasks"
	"github.com/dmitrijs2005/taskman/internal/repositories/users"

	_ "modernc.org/sqlite"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// Storage owns the database handle and the repositories bound to it.
type Storage struct {
	db    *sql.DB
	Users users.Repository
	Tasks tasks.Repository
}

// Open opens (or creates) the SQLite database at dsn and makes sure both
// tables exist. Every failure is wrapped in common.ErrStore.
func Open(ctx context.Context, dsn string, logger logging.Logger) (*Storage, error) {
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %w", common.ErrStore, err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: failed to connect to database: %w", common.ErrStore, err)
	}

	if err := RunMigrations(ctx, db, logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: failed to apply schema: %w", common.ErrStore, err)
	}

	logger.Info(ctx, "database ready", "dsn", dsn)

	return New(db), nil
}

// New binds repositories to an already initialized database.
func New(db *sql.DB) *Storage {
	return &Storage{
		db:    db,
		Users: users.NewSQLiteRepository(db),
		Tasks: tasks.NewSQLiteRepository(db),
	}
}

// DB returns the underlying handle.
func (s *Storage) DB() *sql.DB {
	return s.db
}

// Close releases the database. For ":memory:" this discards all data.
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
