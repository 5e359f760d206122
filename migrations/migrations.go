// Package migrations embeds the SQL schema migrations so the server can
// create its tables at startup without external tooling.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
