package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/notes-and-tags/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func newMockPostgresDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := newPostgresDB(conn, logger.Nop())
	db.retryDelays = []time.Duration{time.Millisecond}

	return db, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
