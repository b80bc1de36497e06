package service

import (
	"context"

	"github.com/MKhiriev/notes-and-tags/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NoteService validates and mutates notes and binds them to their owner.
type NoteService interface {
	AddNote(ctx context.Context, note models.AddNote) (models.NoteDTO, error)
	GetByID(ctx context.Context, id int64) (models.NoteDTO, error)
	GetAllNotes(ctx context.Context) ([]models.NoteDTO, error)
	GetAllUserNotes(ctx context.Context, userID int64) ([]models.NoteDTO, error)
	UpdateNote(ctx context.Context, note models.UpdateNote) error
	DeleteNote(ctx context.Context, id int64) error
}

// AuthService registers users and issues and verifies their bearer tokens.
type AuthService interface {
	Register(ctx context.Context, user models.RegisterUser) (models.User, error)
	Login(ctx context.Context, login models.Login) (string, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
