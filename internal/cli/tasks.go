package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskman/internal/models"
)

const timeLayout = "2006-01-02 15:04"

// clearMarker entered as a description in edit clears it.
const clearMarker = "-"

// Add prompts for a title and a multi-line description and creates a
// PENDING task.
func (a *App) Add(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", a.output())
	if err != nil {
		return err
	}
	description, err := getMultiline(a.reader, "Enter description", a.output())
	if err != nil {
		return err
	}

	task, err := a.taskService.Create(ctx, a.user.ID, title, description)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Task %s created.", task.ID))
	return nil
}

// List prints the user's tasks in one status, newest first. With no
// argument the last used filter applies (PENDING at start); an argument
// becomes the new filter.
func (a *App) List(ctx context.Context, args []string) error {
	status := a.currentFilter()
	if len(args) > 0 {
		st, err := models.ParseStatus(strings.Join(args, " "))
		if err != nil {
			return err
		}
		status = st
	}

	list, err := a.taskService.List(ctx, a.user.ID, status)
	if err != nil {
		return err
	}
	a.filter = status

	if len(list) == 0 {
		printlnFn(fmt.Sprintf("No %s tasks.", strings.ToLower(status.Label())))
		return nil
	}
	for _, t := range list {
		printlnFn(formatRow(t))
	}
	return nil
}

// Show prints one task in full.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := taskID("show", args)
	if err != nil {
		return err
	}

	t, err := a.taskService.Get(ctx, id, a.user.ID)
	if err != nil {
		return err
	}

	printlnFn(formatTask(*t))
	return nil
}

// Edit shows the task and prompts for a new title and description. An empty
// answer keeps the current value; "-" as the description clears it.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := taskID("edit", args)
	if err != nil {
		return err
	}

	t, err := a.taskService.Get(ctx, id, a.user.ID)
	if err != nil {
		return err
	}
	printlnFn(formatTask(*t))

	title, err := getSimpleText(a.reader, "New title (empty keeps current)", a.output())
	if err != nil {
		return err
	}
	description, err := getMultiline(a.reader, "New description (empty keeps current, '-' clears)", a.output())
	if err != nil {
		return err
	}

	var upd models.TaskUpdate
	if title != "" && title != t.Title {
		upd = upd.WithTitle(title)
	}
	switch {
	case description == clearMarker:
		if t.Description != "" {
			upd = upd.WithDescription("")
		}
	case description != "" && description != t.Description:
		upd = upd.WithDescription(description)
	}

	if err := a.taskService.Update(ctx, id, a.user.ID, upd); err != nil {
		return err
	}

	printlnFn("Task updated.")
	return nil
}

// Start moves a task to IN_PROGRESS.
func (a *App) Start(ctx context.Context, args []string) error {
	id, err := taskID("start", args)
	if err != nil {
		return err
	}
	return a.moveTo(ctx, id, models.StatusInProgress)
}

// Done moves a task to COMPLETED.
func (a *App) Done(ctx context.Context, args []string) error {
	id, err := taskID("done", args)
	if err != nil {
		return err
	}
	return a.moveTo(ctx, id, models.StatusCompleted)
}

// SetStatus handles "status <id> <status>".
func (a *App) SetStatus(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usageError("usage: status <id> <pending|in_progress|completed>")
	}
	st, err := models.ParseStatus(strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	return a.moveTo(ctx, args[0], st)
}

// Delete removes a task.
func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := taskID("delete", args)
	if err != nil {
		return err
	}

	if err := a.taskService.Delete(ctx, id, a.user.ID); err != nil {
		return err
	}

	printlnFn("Task deleted.")
	return nil
}

func (a *App) moveTo(ctx context.Context, id string, st models.Status) error {
	if err := a.taskService.Update(ctx, id, a.user.ID, models.TaskUpdate{}.WithStatus(st)); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Task %s marked %s.", id, st.Label()))
	return nil
}

func taskID(cmd string, args []string) (string, error) {
	if len(args) == 0 {
		return "", usageError(fmt.Sprintf("usage: %s <id>", cmd))
	}
	return args[0], nil
}

func formatRow(t models.Task) string {
	return fmt.Sprintf("%s  %-11s  %s  %s", t.ID, t.Status.Label(), t.CreatedAt.Local().Format(timeLayout), t.Title)
}

func formatTask(t models.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID:          %s\n", t.ID)
	fmt.Fprintf(&b, "Title:       %s\n", t.Title)
	fmt.Fprintf(&b, "Status:      %s\n", t.Status.Label())
	fmt.Fprintf(&b, "Created:     %s\n", t.CreatedAt.Local().Format(timeLayout))
	fmt.Fprintf(&b, "Updated:     %s", t.UpdatedAt.Local().Format(timeLayout))
	if t.Description != "" {
		b.WriteString("\n\n")
		b.WriteString(t.Description)
	}
	return b.String()
}
