// Package migrations embeds the SQL schema of the game journal.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
