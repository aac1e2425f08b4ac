package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskman/internal/common"
)

// Status is the closed set of task states. The store enforces it with a
// CHECK constraint; any value may follow any other.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// Statuses lists every valid Status in display order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted}

// Valid reports whether s is one of the three known states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Label is the human form of s, e.g. "IN PROGRESS".
func (s Status) Label() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

// ParseStatus accepts a status in any case, with '_', '-' or ' ' as the word
// separator ("in progress", "In-Progress", "IN_PROGRESS").
func ParseStatus(s string) (Status, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	st := Status(norm)
	if !st.Valid() {
		return "", fmt.Errorf("%w: unknown status %q", common.ErrValidation, s)
	}
	return st, nil
}

// Task is a to-do item owned by exactly one user.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      Status
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskUpdate is a partial record: nil fields are left untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *Status
}

// IsEmpty reports whether u carries no field to change.
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil
}

// WithTitle, WithDescription and WithStatus return a copy of u with the
// field set; they keep call sites free of temporaries.
func (u TaskUpdate) WithTitle(title string) TaskUpdate {
	u.Title = &title
	return u
}

func (u TaskUpdate) WithDescription(description string) TaskUpdate {
	u.Description = &description
	return u
}

func (u TaskUpdate) WithStatus(status Status) TaskUpdate {
	u.Status = &status
	return u
}
