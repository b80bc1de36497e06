// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the notes-and-tags HTTP API.
//
// [NotesAPI] decouples the command-line client from the transport. Error
// responses are mapped by mapHTTPError to the sentinel values in errors.go so
// that callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401) without inspecting status codes.
package adapter

import (
	"context"

	"github.com/MKhiriev/notes-and-tags/models"
)

// NotesAPI is a typed client of the notes-and-tags HTTP API.
type NotesAPI interface {
	// SetToken stores the bearer token attached to every authenticated
	// request.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Register creates an account and returns the stored user.
	Register(ctx context.Context, user models.RegisterUser) (models.User, error)

	// Login exchanges credentials for a bearer token. On success the token
	// is also stored via SetToken.
	Login(ctx context.Context, login models.Login) (string, error)

	// ListNotes returns every note.
	ListNotes(ctx context.Context) ([]models.NoteDTO, error)

	// GetNote returns the note with the given id.
	GetNote(ctx context.Context, id int64) (models.NoteDTO, error)

	// UserNotes returns the notes owned by userID.
	UserNotes(ctx context.Context, userID int64) ([]models.NoteDTO, error)

	// AddNote creates a note and returns it with its assigned id.
	AddNote(ctx context.Context, note models.AddNote) (models.NoteDTO, error)

	// UpdateNote replaces the mutable fields of an existing note.
	UpdateNote(ctx context.Context, note models.UpdateNote) error

	// DeleteNote removes the note with the given id.
	DeleteNote(ctx context.Context, id int64) error

	// Version returns the build information of the server.
	Version(ctx context.Context) (models.AppBuildInfo, error)
}
