package store

import (
	"context"

	"github.com/MKhiriev/notes-and-tags/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repository_mock.go -package=mock

// Repository is the generic persistence contract shared by every entity.
//
// GetByID, Update and Delete return [ErrRecordNotFound] when no record has
// the given identifier. Add assigns the identifier to *item.
type Repository[T any] interface {
	GetByID(ctx context.Context, id int64) (T, error)
	Add(ctx context.Context, item *T) error
	Update(ctx context.Context, item T) error
	Delete(ctx context.Context, item T) error
	GetAll(ctx context.Context) ([]T, error)
}

// UserRepository adds username lookups to [Repository]. Add fails with
// [ErrUsernameTaken] when the username is already registered.
type UserRepository interface {
	Repository[models.User]

	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	FindByCredentials(ctx context.Context, username, passwordHash string) (models.User, error)
}

// NoteRepository adds owner filtering to [Repository]. Add and Update fail
// with [ErrOwnerNotFound] when the note references a missing user.
type NoteRepository interface {
	Repository[models.Note]

	GetAllByUserID(ctx context.Context, userID int64) ([]models.Note, error)
}
