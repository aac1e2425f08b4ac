package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/taskman/internal/common"
)

// Test seams for user-facing output.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

// execIface is the command surface the REPL drives. *App implements it.
type execIface interface {
	isLoggedIn() bool
	SignUp(ctx context.Context) error
	SignIn(ctx context.Context) error
	SignOut(ctx context.Context) error
	Add(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Start(ctx context.Context, args []string) error
	Done(ctx context.Context, args []string) error
	SetStatus(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
}

const (
	helpSignedOut = "Available commands: signup, signin, help, exit"
	helpSignedIn  = "Available commands: add, list [pending|in_progress|completed], show <id>, edit <id>, " +
		"start <id>, done <id>, status <id> <status>, delete <id>, signout, help, exit"
)

// runREPL reads commands from reader until EOF, "exit" or "quit" and
// dispatches them to a. Task commands require a signed-in user; signup and
// signin require a signed-out one. Handler errors are reported through
// describeErr and never stop the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printFn(fmt.Sprintf("taskman%s> ", prefixSpace(statusFn())))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			printlnFn()
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		if cmdErr := dispatch(ctx, a, cmd, args); cmdErr != nil {
			printlnFn(describeErr(cmdErr))
		}

		if err != nil {
			return
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpSignedIn)
		} else {
			printlnFn(helpSignedOut)
		}
		return nil
	case "signup", "signin":
		if a.isLoggedIn() {
			return usageError("already signed in; use signout first")
		}
		if cmd == "signup" {
			return a.SignUp(ctx)
		}
		return a.SignIn(ctx)
	}

	handlers := map[string]func(context.Context, []string) error{
		"add":     func(ctx context.Context, _ []string) error { return a.Add(ctx) },
		"list":    a.List,
		"l":       a.List,
		"show":    a.Show,
		"edit":    a.Edit,
		"start":   a.Start,
		"done":    a.Done,
		"status":  a.SetStatus,
		"delete":  a.Delete,
		"signout": func(ctx context.Context, _ []string) error { return a.SignOut(ctx) },
	}

	h, ok := handlers[cmd]
	if !ok {
		printlnFn("Unknown command:", cmd)
		return nil
	}
	if !a.isLoggedIn() {
		return usageError("please sign in first (signin or signup)")
	}
	return h(ctx, args)
}

// usageError is a message shown to the user as is.
type usageError string

func (e usageError) Error() string { return string(e) }

// describeErr turns a handler error into the line shown to the user.
func describeErr(err error) string {
	var ue usageError
	switch {
	case errors.As(err, &ue):
		return string(ue)
	case errors.Is(err, common.ErrDuplicateEmail):
		return "An account with this email already exists."
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, common.ErrEmptyUpdate):
		return "Nothing to update."
	case errors.Is(err, common.ErrValidation):
		return "Invalid input: " + err.Error()
	case errors.Is(err, common.ErrNotFound):
		return "Task not found."
	case errors.Is(err, common.ErrStore):
		return "Storage error, please try again."
	default:
		return "Error: " + err.Error()
	}
}

func prefixSpace(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
