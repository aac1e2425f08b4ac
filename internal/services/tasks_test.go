package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskman/internal/common"
	"github.com/dmitrijs2005/taskman/internal/logging"
	"github.com/dmitrijs2005/taskman/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newFakeTaskService(repo *fakeTasksRepo) *taskService {
	s := NewTaskService(repo, logging.Discard()).(*taskService)
	s.now = func() time.Time { return t0.Add(123456 * time.Nanosecond) }
	s.newID = func() string { return "t1" }
	return s
}

func TestCreate_BuildsPendingTaskWithSharedTimestamps(t *testing.T) {
	repo := &fakeTasksRepo{}
	s := newFakeTaskService(repo)

	got, err := s.Create(context.Background(), "u1", "Buy milk", "2 liters")
	require.NoError(t, err)

	want := &models.Task{
		ID:          "t1",
		Title:       "Buy milk",
		Description: "2 liters",
		Status:      models.StatusPending,
		UserID:      "u1",
		CreatedAt:   t0,
		UpdatedAt:   t0,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("task mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, repo.created); diff != "" {
		t.Fatalf("stored task mismatch (-want +got):\n%s", diff)
	}
}

func TestCreate_Validation(t *testing.T) {
	repo := &fakeTasksRepo{}
	s := newFakeTaskService(repo)

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := s.Create(context.Background(), "u1", title, "d")
		assert.ErrorIs(t, err, common.ErrValidation, "title %q", title)
	}
	assert.Nil(t, repo.created)
}

func TestCreate_StoreError(t *testing.T) {
	repo := &fakeTasksRepo{createErr: fmt.Errorf("%w: %w", common.ErrStore, errDriver)}
	s := newFakeTaskService(repo)

	task, err := s.Create(context.Background(), "u1", "x", "")
	require.ErrorIs(t, err, common.ErrStore)
	assert.Nil(t, task)
}

func TestList_RejectsUnknownStatus(t *testing.T) {
	s := newFakeTaskService(&fakeTasksRepo{})

	_, err := s.List(context.Background(), "u1", models.Status("ARCHIVED"))
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestList_PassesThroughRepository(t *testing.T) {
	out := []models.Task{{ID: "a"}, {ID: "b"}}
	s := newFakeTaskService(&fakeTasksRepo{listOut: out})

	got, err := s.List(context.Background(), "u1", models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, out, got)

	s = newFakeTaskService(&fakeTasksRepo{listErr: fmt.Errorf("%w: %w", common.ErrStore, errDriver)})
	_, err = s.List(context.Background(), "u1", models.StatusPending)
	assert.ErrorIs(t, err, common.ErrStore)
}

func TestUpdate_Validation(t *testing.T) {
	bad := models.Status("DONE")
	tests := []struct {
		name    string
		upd     models.TaskUpdate
		wantErr error
	}{
		{name: "empty record", upd: models.TaskUpdate{}, wantErr: common.ErrEmptyUpdate},
		{name: "blank title", upd: models.TaskUpdate{}.WithTitle("  "), wantErr: common.ErrValidation},
		{name: "unknown status", upd: models.TaskUpdate{Status: &bad}, wantErr: common.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeTasksRepo{}
			s := newFakeTaskService(repo)

			err := s.Update(context.Background(), "t1", "u1", tt.upd)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, repo.updateCall, "repository must not be called")
		})
	}
}

func TestUpdate_EmptyRecordIsValidationError(t *testing.T) {
	assert.ErrorIs(t, common.ErrEmptyUpdate, common.ErrValidation)
}

func TestUpdate_PassesRecordAndTimestamp(t *testing.T) {
	repo := &fakeTasksRepo{updateN: 1}
	s := newFakeTaskService(repo)

	upd := models.TaskUpdate{}.WithStatus(models.StatusCompleted)
	require.NoError(t, s.Update(context.Background(), "t1", "u1", upd))

	require.NotNil(t, repo.updateCall)
	assert.Equal(t, "t1", repo.updateCall.taskID)
	assert.Equal(t, "u1", repo.updateCall.userID)
	assert.Equal(t, upd, repo.updateCall.upd)
	assert.Equal(t, t0, repo.updateCall.at)
}

func TestUpdate_NoMatchIsSuccess(t *testing.T) {
	s := newFakeTaskService(&fakeTasksRepo{updateN: 0})
	assert.NoError(t, s.Update(context.Background(), "missing", "u1", models.TaskUpdate{}.WithTitle("x")))
}

func TestUpdate_StoreError(t *testing.T) {
	s := newFakeTaskService(&fakeTasksRepo{updateErr: fmt.Errorf("%w: %w", common.ErrStore, errDriver)})
	err := s.Update(context.Background(), "t1", "u1", models.TaskUpdate{}.WithTitle("x"))
	assert.ErrorIs(t, err, common.ErrStore)
}

func TestDelete_Fakes(t *testing.T) {
	repo := &fakeTasksRepo{deleteN: 0}
	s := newFakeTaskService(repo)
	require.NoError(t, s.Delete(context.Background(), "missing", "u1"))
	assert.True(t, repo.deleted)

	s = newFakeTaskService(&fakeTasksRepo{deleteErr: fmt.Errorf("%w: %w", common.ErrStore, errDriver)})
	assert.ErrorIs(t, s.Delete(context.Background(), "t1", "u1"), common.ErrStore)
}

func TestTasks_WithStorage(t *testing.T) {
	st := openStorage(t)
	auth := newTestAuthService(t, st)
	s := newTestTaskService(t, st, stepClock(t0, time.Second))
	ctx := context.Background()

	alice, err := auth.SignUp(ctx, "alice@x.com", []byte("pw"), "Alice")
	require.NoError(t, err)
	bob, err := auth.SignUp(ctx, "bob@x.com", []byte("pw"), "Bob")
	require.NoError(t, err)

	first, err := s.Create(ctx, alice.ID, "first", "")
	require.NoError(t, err)
	second, err := s.Create(ctx, alice.ID, "second", "")
	require.NoError(t, err)
	third, err := s.Create(ctx, alice.ID, "third", "")
	require.NoError(t, err)

	t.Run("list is newest first", func(t *testing.T) {
		list, err := s.List(ctx, alice.ID, models.StatusPending)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, []string{third.ID, second.ID, first.ID}, []string{list[0].ID, list[1].ID, list[2].ID})
	})

	t.Run("status filter partitions tasks", func(t *testing.T) {
		require.NoError(t, s.Update(ctx, second.ID, alice.ID, models.TaskUpdate{}.WithStatus(models.StatusInProgress)))

		pending, err := s.List(ctx, alice.ID, models.StatusPending)
		require.NoError(t, err)
		assert.Len(t, pending, 2)

		inProgress, err := s.List(ctx, alice.ID, models.StatusInProgress)
		require.NoError(t, err)
		require.Len(t, inProgress, 1)
		assert.Equal(t, second.ID, inProgress[0].ID)

		completed, err := s.List(ctx, alice.ID, models.StatusCompleted)
		require.NoError(t, err)
		assert.NotNil(t, completed)
		assert.Empty(t, completed)
	})

	t.Run("partial update leaves other fields and moves updated_at", func(t *testing.T) {
		require.NoError(t, s.Update(ctx, first.ID, alice.ID, models.TaskUpdate{}.WithDescription("notes")))

		got, err := s.Get(ctx, first.ID, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "first", got.Title)
		assert.Equal(t, "notes", got.Description)
		assert.Equal(t, models.StatusPending, got.Status)
		assert.True(t, got.CreatedAt.Equal(first.CreatedAt))
		assert.True(t, got.UpdatedAt.After(first.UpdatedAt))
	})

	t.Run("other users cannot see or touch tasks", func(t *testing.T) {
		list, err := s.List(ctx, bob.ID, models.StatusPending)
		require.NoError(t, err)
		assert.Empty(t, list)

		_, err = s.Get(ctx, third.ID, bob.ID)
		assert.ErrorIs(t, err, common.ErrNotFound)

		require.NoError(t, s.Update(ctx, third.ID, bob.ID, models.TaskUpdate{}.WithTitle("hijacked")))
		require.NoError(t, s.Delete(ctx, third.ID, bob.ID))

		got, err := s.Get(ctx, third.ID, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "third", got.Title)
	})

	t.Run("delete removes the task", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, third.ID, alice.ID))

		_, err := s.Get(ctx, third.ID, alice.ID)
		assert.ErrorIs(t, err, common.ErrNotFound)

		require.NoError(t, s.Delete(ctx, third.ID, alice.ID), "second delete is a no-op")
	})
}
