package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/notes-and-tags/internal/logger"
	"github.com/MKhiriev/notes-and-tags/migrations"
)

// ErrorClassificator maps a driver error to a retry decision and to the
// store sentinel it represents, if any.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	Domain(err error) error
}

// DB is a SQL connection shared by the SQL repositories. The dialect
// decides placeholder style, migration set and error mapping.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	retryDelays []time.Duration
}

var defaultRetryDelays = []time.Duration{50 * time.Millisecond, 200 * time.Millisecond, 500 * time.Millisecond}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect, db.logger)
}

// builder returns a squirrel statement builder with the dialect's
// placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// domainError translates constraint violations into store sentinels and
// otherwise wraps err with kind.
func (db *DB) domainError(kind, err error) error {
	if db.errorClassificator != nil {
		if domainErr := db.errorClassificator.Domain(err); domainErr != nil {
			return domainErr
		}
	}
	return fmt.Errorf("%w: %w", kind, err)
}

// withRetry runs op and repeats it while the error is classified as
// [Retryable], waiting between attempts.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	err := op()
	if err == nil || db.errorClassificator == nil {
		return err
	}

	for _, delay := range db.retryDelays {
		if db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).Dur("delay", delay).Msg("retrying database operation")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		if err = op(); err == nil {
			return nil
		}
	}

	return err
}

// queryRows runs a multi-row SELECT, retrying transient failures of the
// initial query. Errors raised while iterating are not retried.
func (db *DB) queryRows(ctx context.Context, query string, args []any) (*sql.Rows, error) {
	var rows *sql.Rows
	err := db.withRetry(ctx, func() error {
		var queryErr error
		rows, queryErr = db.QueryContext(ctx, query, args...)
		return queryErr
	})
	return rows, err
}

// timeNow is replaced in tests.
var timeNow = time.Now

// execAffectingOne executes a keyed UPDATE or DELETE and reports
// [ErrRecordNotFound] when no row matched.
func (db *DB) execAffectingOne(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	var result sql.Result
	err := db.withRetry(ctx, func() error {
		var execErr error
		result, execErr = db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return db.domainError(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}
