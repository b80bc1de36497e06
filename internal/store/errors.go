package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when no record has the requested
	// identifier or lookup key.
	ErrRecordNotFound = errors.New("record not found")

	// ErrUsernameTaken is returned when a user cannot be stored because the
	// username is already registered.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrOwnerNotFound is returned when a note references a user that does
	// not exist.
	ErrOwnerNotFound = errors.New("note owner does not exist")

	// ErrUnsupportedDSN is returned by [NewStorages] when the DSN does not
	// select any known backend.
	ErrUnsupportedDSN = errors.New("unsupported storage DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
