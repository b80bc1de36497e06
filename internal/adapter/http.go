package adapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/notes-and-tags/internal/config"
	"github.com/MKhiriev/notes-and-tags/internal/logger"
	"github.com/MKhiriev/notes-and-tags/internal/utils"
	"github.com/MKhiriev/notes-and-tags/models"
	"github.com/go-resty/resty/v2"
)

type httpNotesAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPNotesAPI constructs the resty-backed [NotesAPI] for the address and
// timeout in cfg.
func NewHTTPNotesAPI(cfg config.ClientConfig, logger *logger.Logger) (NotesAPI, error) {
	if strings.TrimSpace(cfg.HTTPAddress) == "" {
		return nil, errors.New("invalid adapter http address: empty address")
	}

	client := utils.NewHTTPClient(cfg.HTTPAddress, cfg.RequestTimeout)

	return &httpNotesAPI{client: client, logger: logger}, nil
}

func (h *httpNotesAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpNotesAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [NotesAPI]. POST /api/users/register.
func (h *httpNotesAPI) Register(ctx context.Context, user models.RegisterUser) (models.User, error) {
	var created models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(user).
		SetResult(&created).
		Post("/api/users/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	h.logger.Debug().Int64("user_id", created.UserID).Msg("user registered")
	return created, nil
}

// Login implements [NotesAPI]. POST /api/users/login.
func (h *httpNotesAPI) Login(ctx context.Context, login models.Login) (string, error) {
	var tokenResp models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(login).
		SetResult(&tokenResp).
		Post("/api/users/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if tokenResp.Token == "" {
		return "", errors.New("login response carries no token")
	}

	h.SetToken(tokenResp.Token)
	return tokenResp.Token, nil
}

func (h *httpNotesAPI) ListNotes(ctx context.Context) ([]models.NoteDTO, error) {
	return h.getNotes(ctx, "/api/notes")
}

func (h *httpNotesAPI) UserNotes(ctx context.Context, userID int64) ([]models.NoteDTO, error) {
	return h.getNotes(ctx, "/api/notes/user/"+strconv.FormatInt(userID, 10))
}

func (h *httpNotesAPI) GetNote(ctx context.Context, id int64) (models.NoteDTO, error) {
	var note models.NoteDTO

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.NoteDTO{}, err
	}

	resp, err := req.SetResult(&note).Get("/api/notes/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.NoteDTO{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NoteDTO{}, err
	}

	return note, nil
}

func (h *httpNotesAPI) AddNote(ctx context.Context, note models.AddNote) (models.NoteDTO, error) {
	var created models.NoteDTO

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.NoteDTO{}, err
	}

	resp, err := req.SetBody(note).SetResult(&created).Post("/api/notes")
	if err != nil {
		return models.NoteDTO{}, fmt.Errorf("add note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NoteDTO{}, err
	}

	return created, nil
}

func (h *httpNotesAPI) UpdateNote(ctx context.Context, note models.UpdateNote) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.SetBody(note).Put("/api/notes")
	if err != nil {
		return fmt.Errorf("update note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpNotesAPI) DeleteNote(ctx context.Context, id int64) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete("/api/notes/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version implements [NotesAPI]. GET /api/version needs no token.
func (h *httpNotesAPI) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/version")
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	return info, nil
}

func (h *httpNotesAPI) getNotes(ctx context.Context, path string) ([]models.NoteDTO, error) {
	var notes []models.NoteDTO

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.SetResult(&notes).Get(path)
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []models.NoteDTO{}
	}

	return notes, nil
}

// authedRequest fails fast with [ErrNotLoggedIn] when no token is stored.
func (h *httpNotesAPI) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNotLoggedIn
	}
	return h.client.R().SetContext(ctx).SetAuthToken(token), nil
}
