package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/notes-and-tags/internal/config"
	"github.com/MKhiriev/notes-and-tags/internal/logger"
)

// Backend names returned by [ParseDSN].
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Storages groups the repositories used by the service layer.
type Storages struct {
	UserRepository UserRepository
	NoteRepository NoteRepository

	db *DB
}

// NewStorages opens the backend selected by cfg.DSN, applies migrations
// for SQL backends and returns the repositories built on it.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	backend, target, err := ParseDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	log.Info().Str("backend", backend).Msg("creating storages")

	var db *DB
	switch backend {
	case BackendMemory:
		return NewMemoryStorages(), nil
	case BackendPostgres:
		db, err = NewConnectPostgres(ctx, target, log)
	case BackendSQLite:
		db, err = NewConnectSQLite(ctx, target, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return newSQLStorages(db, log), nil
}

func newSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		NoteRepository: NewNoteRepository(db, log),
		db:             db,
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ParseDSN selects a backend from dsn:
//
//	""  or "memory"                      → memory
//	"postgres://..." "postgresql://..."  → postgres (dsn passed through)
//	"sqlite://<path>"                    → sqlite at <path>
//	"<path>.db"                          → sqlite at <path>.db
func ParseDSN(dsn string) (backend, target string, err error) {
	dsn = strings.TrimSpace(dsn)

	switch {
	case dsn == "" || dsn == BackendMemory:
		return BackendMemory, "", nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return BackendPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		path := strings.TrimPrefix(dsn, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("%w: empty sqlite path", ErrUnsupportedDSN)
		}
		return BackendSQLite, path, nil
	case strings.HasSuffix(dsn, ".db"):
		return BackendSQLite, dsn, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(dsn))
	}
}

// redactDSN drops everything after the scheme so credentials never reach
// logs or error messages.
func redactDSN(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i+3] + "..."
	}
	if len(dsn) > 8 {
		return dsn[:8] + "..."
	}
	return dsn
}
