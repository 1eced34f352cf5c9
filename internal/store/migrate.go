package store

import (
	"database/sql"

	"github.com/pressly/goose/v3"

	"eventscore/migrations"
)

// Migrate applies the embedded SQL migrations.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}
