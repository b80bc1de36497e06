package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/notes-and-tags/internal/logger"
	"github.com/MKhiriev/notes-and-tags/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNoteRepo(t *testing.T) (NoteRepository, sqlmock.Sqlmock) {
	db, mock := newMockPostgresDB(t)
	return NewNoteRepository(db, logger.Nop()), mock
}

func noteRows(notes ...models.Note) *sqlmock.Rows {
	rows := sqlmock.NewRows(noteColumns)
	for _, n := range notes {
		rows.AddRow(n.NoteID, n.Text, int64(n.Priority), string(n.Tag), n.UserID)
	}
	return rows
}

func TestNoteRepository_Add(t *testing.T) {
	repo, mock := newTestNoteRepo(t)
	note := &models.Note{Text: "buy milk", Priority: models.PriorityLow, Tag: "home", UserID: 1}

	mock.ExpectQuery("INSERT INTO notes").
		WithArgs("buy milk", 1, "home", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"note_id"}).AddRow(int64(10)))

	require.NoError(t, repo.Add(context.Background(), note))
	assert.Equal(t, int64(10), note.NoteID)
}

func TestNoteRepository_Add_ForeignKeyViolation(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery("INSERT INTO notes").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	err := repo.Add(context.Background(), &models.Note{Text: "x", Priority: models.PriorityLow, Tag: "t", UserID: 7})
	assert.ErrorIs(t, err, ErrOwnerNotFound)
}

func TestNoteRepository_GetByID(t *testing.T) {
	repo, mock := newTestNoteRepo(t)
	want := models.Note{NoteID: 3, Text: "buy milk", Priority: models.PriorityHigh, Tag: "home", UserID: 1}

	mock.ExpectQuery(`SELECT (.+) FROM notes WHERE note_id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(noteRows(want))

	got, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	mock.ExpectQuery(`SELECT (.+) FROM notes WHERE note_id = \$1`).
		WithArgs(int64(4)).
		WillReturnRows(noteRows())

	_, err = repo.GetByID(context.Background(), 4)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestNoteRepository_UpdateDelete(t *testing.T) {
	repo, mock := newTestNoteRepo(t)
	ctx := context.Background()
	note := models.Note{NoteID: 3, Text: "t", Priority: models.PriorityMedium, Tag: "x", UserID: 1}

	mock.ExpectExec(`UPDATE notes SET`).
		WithArgs("t", 2, "x", int64(1), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Update(ctx, note))

	mock.ExpectExec(`UPDATE notes SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Update(ctx, note), ErrRecordNotFound)

	mock.ExpectExec(`DELETE FROM notes`).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(ctx, note))

	mock.ExpectExec(`DELETE FROM notes`).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(ctx, note), ErrRecordNotFound)

	mock.ExpectExec(`DELETE FROM notes`).WillReturnError(errors.New("boom"))
	assert.ErrorIs(t, repo.Delete(ctx, note), ErrExecutingStatement)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_GetAllByUserID(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM notes WHERE user_id = \$1 ORDER BY note_id`).
		WithArgs(int64(1)).
		WillReturnRows(noteRows(
			models.Note{NoteID: 1, Text: "a", Priority: models.PriorityLow, Tag: "t", UserID: 1},
			models.Note{NoteID: 2, Text: "b", Priority: models.PriorityHigh, Tag: "t", UserID: 1},
		))

	notes, err := repo.GetAllByUserID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, models.PriorityHigh, notes[1].Priority)

	mock.ExpectQuery(`SELECT (.+) FROM notes WHERE user_id = \$1`).WithArgs(int64(2)).WillReturnRows(noteRows())
	empty, err := repo.GetAllByUserID(context.Background(), 2)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestNoteRepository_GetAll_RetriesTransientFailure(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM notes ORDER BY note_id`).WillReturnError(pgError(pgerrcode.DeadlockDetected))
	mock.ExpectQuery(`SELECT (.+) FROM notes ORDER BY note_id`).
		WillReturnRows(noteRows(models.Note{NoteID: 1, Text: "a", Priority: models.PriorityLow, Tag: "t", UserID: 1}))

	notes, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, notes, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_GetAllByUserID_NonRetryableFailure(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM notes WHERE user_id = \$1`).WithArgs(int64(1)).WillReturnError(pgError(pgerrcode.SyntaxError))

	_, err := repo.GetAllByUserID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_GetAll_RowError(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	rows := noteRows(models.Note{NoteID: 1, Text: "a", Priority: models.PriorityLow, Tag: "t", UserID: 1}).
		RowError(0, errors.New("broken row"))
	mock.ExpectQuery(`SELECT (.+) FROM notes ORDER BY note_id`).WillReturnRows(rows)

	_, err := repo.GetAll(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}
