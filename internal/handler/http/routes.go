package http

import (
	"compress/gzip"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGunzip)
	router.Use(middleware.Compress(gzip.DefaultCompression, "application/json"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users/register", h.register)
		r.Post("/api/users/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/notes", h.getAllNotes)
		r.Get("/api/notes/{id}", h.getNote)
		r.Get("/api/notes/user/{userId}", h.getUserNotes)
		r.Post("/api/notes", h.addNote)
		r.Put("/api/notes", h.updateNote)
		r.Delete("/api/notes/{id}", h.deleteNote)
	})

	router.NotFound(writeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
