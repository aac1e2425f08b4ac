// Package cli provides the interactive taskman command line.
//
// It wires configuration, the SQLite store and the auth and task services
// into a read-eval-print loop. The signed-in identity lives only in the App
// and is lost on signout or exit.
//
// Signed out, the REPL accepts signup, signin, help and exit. Signed in,
// it accepts add, list [status], show, edit, start, done, status, delete,
// signout, help and exit. Task commands take the task id as an argument.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends.
package cli
