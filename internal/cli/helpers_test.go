package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskman/internal/common"
	"github.com/dmitrijs2005/taskman/internal/models"
)

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

// captureOutput redirects printlnFn and printFn into the returned slice.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var out []string
	origLn, origP := printlnFn, printFn
	printlnFn = func(a ...any) (int, error) {
		s := strings.TrimSuffix(fmt.Sprintln(a...), "\n")
		out = append(out, s)
		return len(s), nil
	}
	printFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn, printFn = origLn, origP })
	return &out
}

// notATerminal makes GetPassword read from the line reader.
func notATerminal(t *testing.T) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })
}

func newTestApp(auth *fakeAuth, tasks *fakeTasks, r *bufio.Reader) *App {
	return &App{
		authService: auth,
		taskService: tasks,
		filter:      models.StatusPending,
		reader:      r,
		out:         io.Discard,
	}
}

func signedIn(a *App) *App {
	a.user = &models.User{ID: "u1", Email: "a@x.com", Name: "A"}
	return a
}

type fakeAuth struct {
	signUpEmail, signUpName string
	signUpPass              []byte
	signUpOut               *models.User
	signUpErr               error

	signInEmail string
	signInPass  []byte
	signInOut   *models.User
	signInErr   error
}

func (f *fakeAuth) SignUp(_ context.Context, email string, password []byte, name string) (*models.User, error) {
	f.signUpEmail, f.signUpName = email, name
	f.signUpPass = append([]byte(nil), password...)
	return f.signUpOut, f.signUpErr
}

func (f *fakeAuth) SignIn(_ context.Context, email string, password []byte) (*models.User, error) {
	f.signInEmail = email
	f.signInPass = append([]byte(nil), password...)
	return f.signInOut, f.signInErr
}

type fakeTasks struct {
	createUser, createTitle, createDesc string
	createErr                           error

	listUser   string
	listStatus models.Status
	listOut    []models.Task
	listErr    error

	getOut *models.Task
	getErr error

	updateID   string
	updateUser string
	updateRec  *models.TaskUpdate
	updateErr  error

	deleteID  string
	deleteErr error
}

func (f *fakeTasks) Create(_ context.Context, userID, title, description string) (*models.Task, error) {
	f.createUser, f.createTitle, f.createDesc = userID, title, description
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Task{ID: "t-new", Title: title, Description: description, Status: models.StatusPending, UserID: userID}, nil
}

func (f *fakeTasks) List(_ context.Context, userID string, status models.Status) ([]models.Task, error) {
	f.listUser, f.listStatus = userID, status
	return f.listOut, f.listErr
}

func (f *fakeTasks) Get(_ context.Context, taskID, userID string) (*models.Task, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.getOut == nil {
		return nil, common.ErrNotFound
	}
	return f.getOut, nil
}

func (f *fakeTasks) Update(_ context.Context, taskID, userID string, upd models.TaskUpdate) error {
	f.updateID, f.updateUser = taskID, userID
	f.updateRec = &upd
	if f.updateErr != nil {
		return f.updateErr
	}
	if upd.IsEmpty() {
		return common.ErrEmptyUpdate
	}
	return nil
}

func (f *fakeTasks) Delete(_ context.Context, taskID, _ string) error {
	f.deleteID = taskID
	return f.deleteErr
}

func sampleTask() *models.Task {
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return &models.Task{
		ID:          "t1",
		Title:       "Buy milk",
		Description: "2 liters",
		Status:      models.StatusPending,
		UserID:      "u1",
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}
