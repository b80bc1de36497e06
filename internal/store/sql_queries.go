// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/notes-and-tags/models"
)

var (
	usersTable = models.User{}.TableName()
	notesTable = models.Note{}.TableName()

	userColumns = []string{
		"user_id",
		"first_name",
		"last_name",
		"username",
		"password_hash",
		"password_salt",
		"role",
		"created_at",
	}

	noteColumns = []string{
		"note_id",
		"text",
		"priority",
		"tag",
		"user_id",
	}
)

// buildSelectUsersQuery selects users matching where, or all users when
// where is nil, ordered by identifier.
func buildSelectUsersQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	query := b.Select(userColumns...).From(usersTable)
	if where != nil {
		query = query.Where(where)
	}
	return query.OrderBy("user_id").ToSql()
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("first_name", "last_name", "username", "password_hash", "password_salt", "role", "created_at").
		Values(user.FirstName, user.LastName, user.Username, user.Password, user.PasswordSalt, user.Role, user.CreatedAt).
		Suffix("RETURNING user_id").
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Update(usersTable).
		Set("first_name", user.FirstName).
		Set("last_name", user.LastName).
		Set("username", user.Username).
		Set("password_hash", user.Password).
		Set("password_salt", user.PasswordSalt).
		Set("role", user.Role).
		Where(sq.Eq{"user_id": user.UserID}).
		ToSql()
}

// buildSelectNotesQuery selects notes matching where, or all notes when
// where is nil, ordered by identifier.
func buildSelectNotesQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	query := b.Select(noteColumns...).From(notesTable)
	if where != nil {
		query = query.Where(where)
	}
	return query.OrderBy("note_id").ToSql()
}

func buildInsertNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	return b.Insert(notesTable).
		Columns("text", "priority", "tag", "user_id").
		Values(note.Text, int(note.Priority), string(note.Tag), note.UserID).
		Suffix("RETURNING note_id").
		ToSql()
}

func buildUpdateNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	return b.Update(notesTable).
		Set("text", note.Text).
		Set("priority", int(note.Priority)).
		Set("tag", string(note.Tag)).
		Set("user_id", note.UserID).
		Where(sq.Eq{"note_id": note.NoteID}).
		ToSql()
}

func buildDeleteQuery(b sq.StatementBuilderType, table, idColumn string, id int64) (string, []any, error) {
	return b.Delete(table).Where(sq.Eq{idColumn: id}).ToSql()
}
