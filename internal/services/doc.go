// Package services is the access layer between the presentation layer and
// the store.
//
// AuthService handles sign-up and sign-in; TaskService handles per-user task
// CRUD. Both are stateless apart from their dependencies, hold no session and
// never retry. Errors carry a kind from internal/common:
//
//   - SignUp: common.ErrDuplicateEmail, common.ErrValidation, common.ErrStore
//   - SignIn: common.ErrInvalidCredentials (unknown email and wrong password
//     alike), common.ErrStore
//   - tasks:  common.ErrValidation (incl. common.ErrEmptyUpdate),
//     common.ErrNotFound (Get only), common.ErrStore
//
// Update and Delete succeed silently when the task does not exist or belongs
// to another user.
package services
