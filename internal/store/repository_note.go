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

// noteRepository is the SQL implementation of [NoteRepository].
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note
	err := row.Scan(
		&note.NoteID,
		&note.Text,
		&note.Priority,
		&note.Tag,
		&note.UserID,
	)
	return note, err
}

func (r *noteRepository) GetByID(ctx context.Context, id int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNotesQuery(r.db.builder(), sq.Eq{"note_id": id})
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		note, scanErr = scanNote(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "noteRepository.GetByID").Int64("note_id", id).Msg("failed to select note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

func (r *noteRepository) Add(ctx context.Context, note *models.Note) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteQuery(r.db.builder(), *note)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	})
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Add").Int64("user_id", note.UserID).Msg("failed to insert note")
		return r.db.domainError(ErrExecutingStatement, err)
	}

	note.NoteID = id
	return nil
}

func (r *noteRepository) Update(ctx context.Context, note models.Note) error {
	query, args, err := buildUpdateNoteQuery(r.db.builder(), note)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.db.execAffectingOne(ctx, "noteRepository.Update", query, args)
}

func (r *noteRepository) Delete(ctx context.Context, note models.Note) error {
	query, args, err := buildDeleteQuery(r.db.builder(), notesTable, "note_id", note.NoteID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.db.execAffectingOne(ctx, "noteRepository.Delete", query, args)
}

func (r *noteRepository) GetAll(ctx context.Context) ([]models.Note, error) {
	return r.selectMany(ctx, "noteRepository.GetAll", nil)
}

func (r *noteRepository) GetAllByUserID(ctx context.Context, userID int64) ([]models.Note, error) {
	return r.selectMany(ctx, "noteRepository.GetAllByUserID", sq.Eq{"user_id": userID})
}

// selectMany returns an empty, non-nil slice when nothing matches.
func (r *noteRepository) selectMany(ctx context.Context, funcName string, where sq.Sqlizer) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNotesQuery(r.db.builder(), where)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.queryRows(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}
