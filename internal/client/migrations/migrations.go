// Package migrations embeds the goose migrations for the local profile
// database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
