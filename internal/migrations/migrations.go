// Package migrations embeds the versioned schema for each supported driver
// and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql mysql/*.sql
var files embed.FS

var dialects = map[string]goose.Dialect{
	"sqlite": goose.DialectSQLite3,
	"mysql":  goose.DialectMySQL,
}

// Up applies every pending migration for driver. Running it again is a no-op.
func Up(ctx context.Context, db *sql.DB, driver string) error {
	dialect, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("no migrations for driver %q", driver)
	}

	dir, err := fs.Sub(files, driver)
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(dialect, db, dir)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	_, err = provider.Up(ctx)
	return err
}
