// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/notes-and-tags/internal/config"
	"github.com/MKhiriev/notes-and-tags/internal/logger"
	"github.com/MKhiriev/notes-and-tags/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

// newTestAPI creates an httpNotesAPI pointed at the test server.
func newTestAPI(t *testing.T, serverURL string) *httpNotesAPI {
	t.Helper()

	a, err := NewHTTPNotesAPI(config.ClientConfig{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpNotesAPI)
}

func newLoggedInAPI(t *testing.T, serverURL string) *httpNotesAPI {
	a := newTestAPI(t, serverURL)
	a.SetToken(testToken)
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func requireBearer(t *testing.T, r *http.Request) {
	t.Helper()
	assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
}

func TestNewHTTPNotesAPI_EmptyAddress(t *testing.T) {
	_, err := NewHTTPNotesAPI(config.ClientConfig{HTTPAddress: "  "}, logger.Nop())
	assert.Error(t, err)
}

func TestToken_IsTrimmed(t *testing.T) {
	a := newTestAPI(t, "localhost:1")
	assert.Empty(t, a.Token())

	a.SetToken("  abc \n")
	assert.Equal(t, "abc", a.Token())
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users/register", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var body models.RegisterUser
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body.Username)
		assert.Equal(t, "pw1", body.ConfirmPassword)

		writeJSON(t, w, http.StatusCreated, models.User{UserID: 1, Username: "alice", Role: "User"})
	}))
	defer srv.Close()

	a := newTestAPI(t, srv.URL)
	got, err := a.Register(context.Background(), models.RegisterUser{
		Username: "alice", Password: "pw1", ConfirmPassword: "pw1", Role: "User",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.UserID)
	assert.Equal(t, "alice", got.Username)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, map[string]string{"error": "username is already taken"})
	}))
	defer srv.Close()

	_, err := newTestAPI(t, srv.URL).Register(context.Background(), models.RegisterUser{Username: "alice"})

	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "username is already taken")
}

func TestRegister_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]string{"error": "validation error: passwords do not match"})
	}))
	defer srv.Close()

	_, err := newTestAPI(t, srv.URL).Register(context.Background(), models.RegisterUser{Username: "alice"})

	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/login", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.TokenResponse{Token: "jwt"})
	}))
	defer srv.Close()

	a := newTestAPI(t, srv.URL)
	token, err := a.Login(context.Background(), models.Login{Username: "alice", Password: "pw1"})

	require.NoError(t, err)
	assert.Equal(t, "jwt", token)
	assert.Equal(t, "jwt", a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"error": "invalid username or password"})
	}))
	defer srv.Close()

	a := newTestAPI(t, srv.URL)
	_, err := a.Login(context.Background(), models.Login{Username: "alice", Password: "bad"})

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestLogin_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.TokenResponse{})
	}))
	defer srv.Close()

	_, err := newTestAPI(t, srv.URL).Login(context.Background(), models.Login{Username: "a", Password: "b"})
	assert.Error(t, err)
}

// ── Notes ────────────────────────────────────────────────────────────────────

func TestNotes_RequireToken(t *testing.T) {
	a := newTestAPI(t, "localhost:1")
	ctx := context.Background()

	_, err := a.ListNotes(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = a.GetNote(ctx, 1)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = a.UserNotes(ctx, 1)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = a.AddNote(ctx, models.AddNote{})
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.ErrorIs(t, a.UpdateNote(ctx, models.UpdateNote{}), ErrNotLoggedIn)
	assert.ErrorIs(t, a.DeleteNote(ctx, 1), ErrNotLoggedIn)
}

func TestListNotes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireBearer(t, r)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/notes", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []models.NoteDTO{
			{ID: 1, Text: "buy milk", Priority: models.PriorityLow, Tag: "home", UserID: 1},
		})
	}))
	defer srv.Close()

	notes, err := newLoggedInAPI(t, srv.URL).ListNotes(context.Background())

	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "buy milk", notes[0].Text)
	assert.Equal(t, models.PriorityLow, notes[0].Priority)
}

func TestUserNotes_EmptyIsNotNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notes/user/7", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []models.NoteDTO{})
	}))
	defer srv.Close()

	notes, err := newLoggedInAPI(t, srv.URL).UserNotes(context.Background(), 7)

	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestGetNote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireBearer(t, r)
		switch r.URL.Path {
		case "/api/notes/3":
			writeJSON(t, w, http.StatusOK, models.NoteDTO{ID: 3, Text: "x", Priority: models.PriorityHigh, Tag: "work", UserID: 1})
		default:
			writeJSON(t, w, http.StatusNotFound, map[string]string{"error": "not found: note with id 4"})
		}
	}))
	defer srv.Close()

	a := newLoggedInAPI(t, srv.URL)

	note, err := a.GetNote(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), note.ID)

	_, err = a.GetNote(context.Background(), 4)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "note with id 4")
}

func TestAddNote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireBearer(t, r)
		assert.Equal(t, http.MethodPost, r.Method)

		var body models.AddNote
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.PriorityMedium, body.Priority)

		writeJSON(t, w, http.StatusCreated, models.NoteDTO{ID: 10, Text: body.Text, Priority: body.Priority, Tag: body.Tag, UserID: 1})
	}))
	defer srv.Close()

	created, err := newLoggedInAPI(t, srv.URL).AddNote(context.Background(), models.AddNote{
		Text: "call mom", Priority: models.PriorityMedium, Tag: "family",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
	assert.Equal(t, models.Tag("family"), created.Tag)
}

func TestUpdateNote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireBearer(t, r)
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/notes", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newLoggedInAPI(t, srv.URL).UpdateNote(context.Background(), models.UpdateNote{ID: 1, Text: "x"})
	assert.NoError(t, err)
}

func TestDeleteNote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireBearer(t, r)
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/notes/5", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	assert.NoError(t, newLoggedInAPI(t, srv.URL).DeleteNote(context.Background(), 5))
}

func TestDeleteNote_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
	}))
	defer srv.Close()

	err := newLoggedInAPI(t, srv.URL).DeleteNote(context.Background(), 5)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── Version ──────────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.NewAppBuildInfo("1.2.3", "", ""))
	}))
	defer srv.Close()

	info, err := newTestAPI(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "N/A", info.Date)
}

// ── mapHTTPError ─────────────────────────────────────────────────────────────

func TestMapHTTPError_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAPI(t, srv.URL).Version(context.Background())

	require.Error(t, err)
	assert.Equal(t, "http 418: I'm a teapot", err.Error())
}

func TestMapHTTPError_PlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("404 page not found\n"))
	}))
	defer srv.Close()

	_, err := newTestAPI(t, srv.URL).Version(context.Background())

	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "not found: 404 page not found", err.Error())
}
