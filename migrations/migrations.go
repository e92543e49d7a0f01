// Package migrations embeds the SQL schema of the service.
package migrations

import (
	"context"
	"embed"

	"github.com/jmoiron/sqlx"
)

//go:embed *.sql
var FS embed.FS

// Up applies the initial schema. Every statement is idempotent.
func Up(ctx context.Context, db *sqlx.DB) error {
	script, err := FS.ReadFile("0001_init.up.sql")
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, string(script))
	return err
}
