package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/taskman/internal/config"
	"github.com/dmitrijs2005/taskman/internal/cryptox"
	"github.com/dmitrijs2005/taskman/internal/logging"
	"github.com/dmitrijs2005/taskman/internal/models"
	"github.com/dmitrijs2005/taskman/internal/services"
	"github.com/dmitrijs2005/taskman/internal/storage"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	store       *storage.Storage
	authService services.AuthService
	taskService services.TaskService
	user        *models.User
	filter      models.Status
	reader      *bufio.Reader
	out         io.Writer
}

// NewApp opens the store named by c.DatabaseDSN, applying migrations, and
// builds the services on top of it. Logs go to stderr.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogBackend, c.LogLevel, c.LogFormat, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	store, err := storage.Open(ctx, c.DatabaseDSN, logger)
	if err != nil {
		return nil, err
	}

	hasher := cryptox.NewPasswordHasher(c.BcryptCost)
	if hasher.Cost() != c.BcryptCost {
		logger.Warn(ctx, "bcrypt cost out of range, using default", "configured", c.BcryptCost, "cost", hasher.Cost())
	}

	return &App{
		config:      c,
		logger:      logger,
		store:       store,
		authService: services.NewAuthService(store.Users, hasher, logger),
		taskService: services.NewTaskService(store.Tasks, logger),
		filter:      models.StatusPending,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

// Run starts the REPL and closes the store when it returns.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn("Welcome to taskman (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close releases the store. Safe to call more than once.
func (a *App) Close() {
	if a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil && a.logger != nil {
		a.logger.Error(context.Background(), "close store", "error", err)
	}
	a.store = nil
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s) [%s]", a.user.Email, a.currentFilter().Label())
}

func (a *App) currentFilter() models.Status {
	if a.filter == "" {
		return models.StatusPending
	}
	return a.filter
}

func (a *App) output() io.Writer {
	if a.out == nil {
		return io.Discard
	}
	return a.out
}
