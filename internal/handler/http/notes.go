package http

import (
	"net/http"

	"github.com/MKhiriev/notes-and-tags/internal/logger"
	"github.com/MKhiriev/notes-and-tags/internal/utils"
	"github.com/MKhiriev/notes-and-tags/models"
)

func (h *Handler) getAllNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.services.NoteService.GetAllNotes(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	note, err := h.services.NoteService.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) getUserNotes(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "userId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	notes, err := h.services.NoteService.GetAllUserNotes(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

// addNote creates a note. Without an explicit userId the note is owned by
// the caller.
func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var note models.AddNote
	if err := decodeJSON(w, r, &note); err != nil {
		writeError(w, r, err)
		return
	}

	if note.UserID == 0 {
		userID, err := callerID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		note.UserID = userID
	}

	created, err := h.services.NoteService.AddNote(ctx, note)
	if err != nil {
		writeError(w, r, err)
		return
	}

	claims, _ := utils.GetClaimsFromContext(ctx)
	logger.FromRequest(r).Debug().
		Int64("note_id", created.ID).
		Int64("user_id", created.UserID).
		Str("created_by", claims.Username).
		Msg("note created")

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var note models.UpdateNote
	if err := decodeJSON(w, r, &note); err != nil {
		writeError(w, r, err)
		return
	}

	if note.UserID == 0 {
		userID, err := callerID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		note.UserID = userID
	}

	if err := h.services.NoteService.UpdateNote(ctx, note); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.NoteService.DeleteNote(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
