// Package migrations embeds the schema migrations for every SQL backend and
// applies them with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/MKhiriev/notes-and-tags/internal/logger"
	"github.com/pressly/goose/v3"
)

// Dialects understood by Migrate. The values are goose dialect names and
// also the directories holding the migration files.
const (
	Postgres = "postgres"
	SQLite   = "sqlite3"
)

//go:embed postgres/*.sql sqlite3/*.sql
var embedMigrations embed.FS

var errNilDB = errors.New("migration error: db is nil")

// gooseLogger routes goose progress messages into zerolog.
type gooseLogger struct {
	log *logger.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Fatal().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Migrate applies all pending migrations of dialect to db, logging progress
// through log.
func Migrate(db *sql.DB, dialect string, log *logger.Logger) error {
	if db == nil {
		return errNilDB
	}
	goose.SetLogger(gooseLogger{log: log})

	dir, err := fs.Sub(embedMigrations, dialect)
	if err != nil {
		return fmt.Errorf("migration error: unknown dialect %q: %w", dialect, err)
	}
	goose.SetBaseFS(dir)
	defer goose.SetBaseFS(nil)

	if err = goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err = goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
