package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/taskman/internal/logging"
	"github.com/dmitrijs2005/taskman/internal/storage/migrations"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies the embedded schema. It is idempotent.
func RunMigrations(ctx context.Context, db *sql.DB, logger logging.Logger) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(&gooseLogger{ctx: ctx, l: logger.With("component", "goose")})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// gooseLogger routes goose's printf-style output into Logger.
type gooseLogger struct {
	ctx context.Context
	l   logging.Logger
}

func (g *gooseLogger) Printf(format string, v ...any) {
	g.l.Debug(g.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g *gooseLogger) Fatalf(format string, v ...any) {
	g.l.Error(g.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)))
	os.Exit(1)
}
