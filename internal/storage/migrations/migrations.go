// Package migrations embeds the SQL schema applied by storage.Open.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
