package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells DB.withRetry whether a failed statement may be
// attempted again.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier reads the SQLSTATE of *pgconn.PgError values.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify treats lost connections, rolled back transactions and a server
// that is still starting up as transient. Anything else, including errors
// that did not come from PostgreSQL, is final.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	switch postgresError(err) {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow:
		return Retryable
	default:
		return NonRetryable
	}
}

// Domain translates constraint violations into repository errors.
func (c *PostgresErrorClassifier) Domain(err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return ErrUsernameTaken
	case pgerrcode.ForeignKeyViolation:
		return ErrOwnerNotFound
	default:
		return nil
	}
}

// postgresError returns the SQLSTATE code of err, or "" when err does not
// wrap a *pgconn.PgError.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
