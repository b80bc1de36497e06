package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/notes-and-tags/internal/app"
	"github.com/MKhiriev/notes-and-tags/internal/config"
	"github.com/MKhiriev/notes-and-tags/internal/logger"
	"github.com/MKhiriev/notes-and-tags/internal/mock"
	"github.com/MKhiriev/notes-and-tags/internal/service"
	"github.com/MKhiriev/notes-and-tags/internal/store"
	"github.com/MKhiriev/notes-and-tags/internal/utils"
	"github.com/MKhiriev/notes-and-tags/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- Helpers ----

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "0123456789abcdef0123456789abcdef",
			TokenIssuer:   "notes-and-tags-test",
			TokenDuration: 15 * time.Minute,
			PasswordHashing: config.PasswordHashing{
				Time: 1, Memory: 1024, Threads: 1, KeyLen: 32, SaltLen: 16,
			},
			Version: "1.0.0-test",
		},
	}
}

// newTestRouter wires the full router to services over an in-memory store.
func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	services, err := service.NewServices(store.NewMemoryStorages(), testConfig(), models.NewAppBuildInfo("", "2026-10-01", "abc123"), logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, logger.Nop()).Init()
}

func doRequest(router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func registerAndLogin(t *testing.T, router http.Handler, username string) (models.User, string) {
	t.Helper()

	rr := doRequest(router, http.MethodPost, "/api/users/register", "", models.RegisterUser{
		FirstName: "Test", Username: username, Password: "pw1", ConfirmPassword: "pw1", Role: "User",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var user models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))

	rr = doRequest(router, http.MethodPost, "/api/users/login", "", models.Login{Username: username, Password: "pw1"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var token models.TokenResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &token))
	require.NotEmpty(t, token.Token)

	return user, token.Token
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return resp.Error
}

// ---- Users ----

func TestAPI_Register(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, http.MethodPost, "/api/users/register", "", models.RegisterUser{
		Username: "alice", Password: "pw1", ConfirmPassword: "pw1", Role: "User",
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.NotContains(t, rr.Body.String(), "pw1")

	rr = doRequest(router, http.MethodPost, "/api/users/register", "", models.RegisterUser{
		Username: "alice", Password: "pw2", ConfirmPassword: "pw2",
	})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, decodeError(t, rr), "username is already taken")

	rr = doRequest(router, http.MethodPost, "/api/users/register", "", models.RegisterUser{
		Username: "bob", Password: "p", ConfirmPassword: "q",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeError(t, rr), "passwords must match")
}

func TestAPI_Register_InvalidJSON(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/users/register", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAPI_Login_Failures(t *testing.T) {
	router := newTestRouter(t)
	registerAndLogin(t, router, "alice")

	for _, login := range []models.Login{
		{Username: "alice", Password: "wrong"},
		{Username: "nobody", Password: "pw1"},
		{Username: "alice"},
	} {
		rr := doRequest(router, http.MethodPost, "/api/users/login", "", login)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%+v", login)
	}
}

// ---- Notes ----

func TestAPI_NotesLifecycle(t *testing.T) {
	router := newTestRouter(t)
	alice, token := registerAndLogin(t, router, "alice")

	rr := doRequest(router, http.MethodPost, "/api/notes", token, map[string]any{
		"text": "buy milk", "priority": "Low", "tag": "home",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created models.NoteDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "buy milk", created.Text)
	assert.Equal(t, alice.UserID, created.UserID, "owner defaults to the caller")
	assert.Equal(t, models.PriorityLow, created.Priority)

	rr = doRequest(router, http.MethodGet, fmt.Sprintf("/api/notes/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"id":%d,"text":"buy milk","priority":"Low","tag":"home","userId":%d}`, created.ID, alice.UserID), rr.Body.String())

	rr = doRequest(router, http.MethodPut, "/api/notes", token, models.UpdateNote{
		ID: created.ID, Text: "buy oat milk", Priority: models.PriorityHigh, Tag: "home", UserID: alice.UserID,
	})
	require.Equal(t, http.StatusNoContent, rr.Code, rr.Body.String())

	rr = doRequest(router, http.MethodGet, fmt.Sprintf("/api/notes/user/%d", alice.UserID), token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var userNotes []models.NoteDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &userNotes))
	require.Len(t, userNotes, 1)
	assert.Equal(t, "buy oat milk", userNotes[0].Text)

	rr = doRequest(router, http.MethodGet, "/api/notes", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(router, http.MethodDelete, fmt.Sprintf("/api/notes/%d", created.ID), token, nil)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doRequest(router, http.MethodGet, fmt.Sprintf("/api/notes/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doRequest(router, http.MethodDelete, fmt.Sprintf("/api/notes/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAPI_Notes_EmptyListIsArray(t *testing.T) {
	router := newTestRouter(t)
	alice, token := registerAndLogin(t, router, "alice")

	rr := doRequest(router, http.MethodGet, fmt.Sprintf("/api/notes/user/%d", alice.UserID), token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestAPI_Notes_Errors(t *testing.T) {
	router := newTestRouter(t)
	_, token := registerAndLogin(t, router, "alice")

	tests := []struct {
		name       string
		method     string
		path       string
		body       any
		wantStatus int
		wantError  string
	}{
		{
			name: "empty text", method: http.MethodPost, path: "/api/notes",
			body:       models.AddNote{Text: "", Priority: models.PriorityLow, Tag: "t"},
			wantStatus: http.StatusBadRequest, wantError: "text cannot be empty string",
		},
		{
			name: "unknown owner", method: http.MethodPost, path: "/api/notes",
			body:       models.AddNote{Text: "x", Priority: models.PriorityLow, Tag: "t", UserID: 404},
			wantStatus: http.StatusBadRequest, wantError: "user with id 404 does not exist",
		},
		{
			name: "unknown priority name", method: http.MethodPost, path: "/api/notes",
			body:       map[string]any{"text": "x", "priority": "urgent", "tag": "t"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "update unknown note", method: http.MethodPut, path: "/api/notes",
			body:       models.UpdateNote{ID: 999, Text: "x", Priority: models.PriorityLow, Tag: "t"},
			wantStatus: http.StatusNotFound, wantError: "note with id 999",
		},
		{
			name: "non-numeric id", method: http.MethodGet, path: "/api/notes/abc",
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "negative user id", method: http.MethodGet, path: "/api/notes/user/-1",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(router, tt.method, tt.path, token, tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantError != "" {
				assert.Contains(t, decodeError(t, rr), tt.wantError)
			}
		})
	}
}

func TestAPI_Notes_RequireToken(t *testing.T) {
	router := newTestRouter(t)

	for _, tc := range []struct{ method, path, token string }{
		{http.MethodGet, "/api/notes", ""},
		{http.MethodGet, "/api/notes/1", "garbage"},
		{http.MethodDelete, "/api/notes/1", ""},
		{http.MethodPost, "/api/notes", "a.b.c"},
	} {
		rr := doRequest(router, tc.method, tc.path, tc.token, nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", tc.method, tc.path)
	}
}

func TestAPI_UnsupportedMethodIsNotFound(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, http.MethodPatch, "/api/notes/1", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doRequest(router, http.MethodGet, "/api/users/login", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, app.MsgRouteNotFound, decodeError(t, rr))

	rr = doRequest(router, http.MethodGet, "/api/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, app.MsgRouteNotFound, decodeError(t, rr))
}

func TestAPI_RequestBodyTooLarge(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, http.MethodPost, "/api/users/register", "", models.RegisterUser{
		Username: "alice", Password: strings.Repeat("p", maxRequestBodySize), ConfirmPassword: "p",
	})

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Contains(t, decodeError(t, rr), app.MsgRequestBodyTooLarge)
}

func TestAPI_Version(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, http.MethodGet, "/api/version", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"1.0.0-test","buildDate":"2026-10-01","buildCommit":"abc123"}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

// ---- Internal failures ----

func TestAPI_InternalErrorIsHidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	authService := mock.NewMockAuthService(ctrl)
	noteService := mock.NewMockNoteService(ctrl)

	authService.EXPECT().ParseToken(gomock.Any(), "any").Return(models.Token{UserID: 1}, nil)
	noteService.EXPECT().GetAllNotes(gomock.Any()).Return(nil, errors.New("pq: connection refused to 10.0.0.5"))

	h := NewHandler(&service.Services{AuthService: authService, NoteService: noteService}, logger.Nop())

	rr := doRequest(h.Init(), http.MethodGet, "/api/notes", "any", nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, app.MsgInternalServerError, decodeError(t, rr))
}

func TestAPI_AddNoteDefaultsOwnerToCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	authService := mock.NewMockAuthService(ctrl)
	noteService := mock.NewMockNoteService(ctrl)

	authService.EXPECT().ParseToken(gomock.Any(), "tok").Return(models.Token{UserID: 9}, nil)
	noteService.EXPECT().
		AddNote(gomock.Any(), models.AddNote{Text: "x", Priority: models.PriorityLow, Tag: "t", UserID: 9}).
		Return(models.NoteDTO{ID: 1, Text: "x", Priority: models.PriorityLow, Tag: "t", UserID: 9}, nil)

	h := NewHandler(&service.Services{AuthService: authService, NoteService: noteService}, logger.Nop())

	rr := doRequest(h.Init(), http.MethodPost, "/api/notes", "tok", models.AddNote{Text: "x", Priority: models.PriorityLow, Tag: "t"})

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: fmt.Errorf("%w: x", service.ErrValidation), want: http.StatusBadRequest},
		{err: fmt.Errorf("%w: %w", service.ErrValidation, service.ErrUsernameTaken), want: http.StatusConflict},
		{err: fmt.Errorf("%w: note", service.ErrNotFound), want: http.StatusNotFound},
		{err: fmt.Errorf("%w: %w", service.ErrAuth, service.ErrInvalidCredentials), want: http.StatusUnauthorized},
		{err: fmt.Errorf("%w: eof", ErrInvalidJSON), want: http.StatusBadRequest},
		{err: store.ErrExecutingQuery, want: http.StatusInternalServerError},
		{err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
