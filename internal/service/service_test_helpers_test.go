package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/notes-and-tags/internal/config"
	"github.com/MKhiriev/notes-and-tags/internal/crypto"
	"github.com/MKhiriev/notes-and-tags/internal/logger"
	"github.com/MKhiriev/notes-and-tags/internal/store"
	"github.com/MKhiriev/notes-and-tags/models"
	"github.com/stretchr/testify/require"
)

const testSignKey = "0123456789abcdef0123456789abcdef"

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  testSignKey,
		TokenIssuer:   "notes-and-tags-test",
		TokenDuration: 15 * time.Minute,
		PasswordHashing: config.PasswordHashing{
			Time:    1,
			Memory:  1024,
			Threads: 1,
			KeyLen:  32,
			SaltLen: 16,
		},
		Version: "test",
	}
}

type testEnv struct {
	storages *store.Storages
	auth     *authService
	notes    NoteService
}

// newTestEnv wires both services to a fresh in-memory store.
func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	cfg := testAppConfig()
	storages := store.NewMemoryStorages()
	auth := NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(cfg.PasswordHashing), cfg, logger.Nop()).(*authService)

	return testEnv{
		storages: storages,
		auth:     auth,
		notes:    NewNoteService(storages.NoteRepository, storages.UserRepository, logger.Nop()),
	}
}

func (e testEnv) register(t *testing.T, username string) models.User {
	t.Helper()

	user, err := e.auth.Register(context.Background(), models.RegisterUser{
		FirstName:       "Test",
		LastName:        "User",
		Username:        username,
		Password:        "pw1",
		ConfirmPassword: "pw1",
		Role:            "User",
	})
	require.NoError(t, err)
	return user
}
