package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskman/internal/common"
)

// Indirections over the input helpers, swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// SignUp prompts for email, name and password, creates the account and
// signs the new user in.
func (a *App) SignUp(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.output())
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter name", a.output())
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.output())
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.SignUp(ctx, email, password, name)
	if err != nil {
		return err
	}

	a.user = user
	printlnFn(fmt.Sprintf("Welcome, %s!", displayName(user.Name, user.Email)))
	return nil
}

// SignIn prompts for email and password and keeps the returned identity.
func (a *App) SignIn(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.output())
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.output())
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.SignIn(ctx, email, password)
	if err != nil {
		return err
	}

	a.user = user
	printlnFn(fmt.Sprintf("Signed in as %s.", displayName(user.Name, user.Email)))
	return nil
}

// SignOut forgets the signed-in identity. Nothing is written to the store.
func (a *App) SignOut(context.Context) error {
	a.user = nil
	printlnFn("Signed out.")
	return nil
}

func displayName(name, email string) string {
	if name != "" {
		return name
	}
	return email
}
