package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskman/internal/cryptox"
	"github.com/dmitrijs2005/taskman/internal/logging"
	"github.com/dmitrijs2005/taskman/internal/models"
	"github.com/dmitrijs2005/taskman/internal/storage"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

var errDriver = errors.New("driver down")

func openStorage(t *testing.T) *storage.Storage {
	t.Helper()
	st, err := storage.Open(context.Background(), ":memory:", logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func newTestAuthService(t *testing.T, st *storage.Storage) *authService {
	t.Helper()
	return NewAuthService(st.Users, cryptox.NewPasswordHasher(bcrypt.MinCost), logging.Discard()).(*authService)
}

// stepClock returns a clock that starts at start and advances by step on
// every call.
func stepClock(start time.Time, step time.Duration) func() time.Time {
	cur := start.Add(-step)
	return func() time.Time {
		cur = cur.Add(step)
		return cur
	}
}

func newTestTaskService(t *testing.T, st *storage.Storage, now func() time.Time) *taskService {
	t.Helper()
	s := NewTaskService(st.Tasks, logging.Discard()).(*taskService)
	if now != nil {
		s.now = now
	}
	return s
}

// --- fakes ---

type fakeUsersRepo struct {
	createErr error
	created   *models.User

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *u
	f.created = &cp
	return nil
}

func (f *fakeUsersRepo) GetByEmail(_ context.Context, _ string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeTasksRepo struct {
	createErr error
	created   *models.Task

	listOut []models.Task
	listErr error

	getOut *models.Task
	getErr error

	updateN    int64
	updateErr  error
	updateCall *updateCall

	deleteN   int64
	deleteErr error
	deleted   bool
}

type updateCall struct {
	taskID, userID string
	upd            models.TaskUpdate
	at             time.Time
}

func (f *fakeTasksRepo) Create(_ context.Context, t *models.Task) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *t
	f.created = &cp
	return nil
}

func (f *fakeTasksRepo) ListByStatus(context.Context, string, models.Status) ([]models.Task, error) {
	return f.listOut, f.listErr
}

func (f *fakeTasksRepo) GetByID(context.Context, string, string) (*models.Task, error) {
	return f.getOut, f.getErr
}

func (f *fakeTasksRepo) Update(_ context.Context, taskID, userID string, upd models.TaskUpdate, at time.Time) (int64, error) {
	f.updateCall = &updateCall{taskID: taskID, userID: userID, upd: upd, at: at}
	return f.updateN, f.updateErr
}

func (f *fakeTasksRepo) Delete(context.Context, string, string) (int64, error) {
	f.deleted = true
	return f.deleteN, f.deleteErr
}
