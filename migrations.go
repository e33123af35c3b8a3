// Package foodgram holds assets shared by the binaries of the recipe service.
package foodgram

import (
	"embed"
	"io/fs"
)

// Migrations contains the goose SQL migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsFS returns the migrations with the directory prefix stripped, as
// goose providers expect.
func MigrationsFS() fs.FS {
	sub, err := fs.Sub(Migrations, "migrations")
	if err != nil {
		panic(err)
	}

	return sub
}
