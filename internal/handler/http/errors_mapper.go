package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/notes-and-tags/internal/app"
	"github.com/MKhiriev/notes-and-tags/internal/logger"
	"github.com/MKhiriev/notes-and-tags/internal/service"
	"github.com/MKhiriev/notes-and-tags/internal/utils"
)

// reasonStatusMap is consulted before errorStatusMap so that a specific
// reason can override the status of its error kind.
var reasonStatusMap = map[error]int{
	service.ErrUsernameTaken: http.StatusConflict,
}

var errorStatusMap = map[error]int{
	service.ErrValidation: http.StatusBadRequest,
	service.ErrNotFound:   http.StatusNotFound,
	service.ErrAuth:       http.StatusUnauthorized,

	ErrInvalidJSON:         http.StatusBadRequest,
	ErrInvalidID:           http.StatusBadRequest,
	ErrRequestBodyTooLarge: http.StatusRequestEntityTooLarge,
	ErrNoUserID:            http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range reasonStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError reports err to the client. Internal failures are logged and
// hidden behind the generic status text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
		utils.WriteError(w, app.MsgInternalServerError, status)
		return
	}

	logger.FromRequest(r).Debug().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteError(w, err.Error(), status)
}
