package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/notes-and-tags/internal/logger"
	"github.com/MKhiriev/notes-and-tags/models"
)

// userRepository is the SQL implementation of [UserRepository] for both
// PostgreSQL and SQLite.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.FirstName,
		&user.LastName,
		&user.Username,
		&user.Password,
		&user.PasswordSalt,
		&user.Role,
		&user.CreatedAt,
	)
	return user, err
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	return r.selectOne(ctx, "userRepository.GetByID", sq.Eq{"user_id": id})
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.selectOne(ctx, "userRepository.GetUserByUsername", sq.Eq{"username": username})
}

func (r *userRepository) FindByCredentials(ctx context.Context, username, passwordHash string) (models.User, error) {
	return r.selectOne(ctx, "userRepository.FindByCredentials", sq.Eq{"username": username, "password_hash": passwordHash})
}

func (r *userRepository) selectOne(ctx context.Context, funcName string, where sq.Sqlizer) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUsersQuery(r.db.builder(), where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		user, scanErr = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to select user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// Add inserts user and sets its UserID. A duplicate username is reported
// as [ErrUsernameTaken].
func (r *userRepository) Add(ctx context.Context, user *models.User) error {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = timeNow().UTC()
	}

	query, args, err := buildInsertUserQuery(r.db.builder(), *user)
	if err != nil {
		log.Err(err).Str("func", "userRepository.Add").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	})
	if err != nil {
		log.Err(err).Str("func", "userRepository.Add").Str("username", user.Username).Msg("failed to insert user")
		return r.db.domainError(ErrExecutingStatement, err)
	}

	user.UserID = id
	return nil
}

func (r *userRepository) Update(ctx context.Context, user models.User) error {
	query, args, err := buildUpdateUserQuery(r.db.builder(), user)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.db.execAffectingOne(ctx, "userRepository.Update", query, args)
}

func (r *userRepository) Delete(ctx context.Context, user models.User) error {
	query, args, err := buildDeleteQuery(r.db.builder(), usersTable, "user_id", user.UserID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.db.execAffectingOne(ctx, "userRepository.Delete", query, args)
}

func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUsersQuery(r.db.builder(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.queryRows(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "userRepository.GetAll").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "userRepository.GetAll").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}
