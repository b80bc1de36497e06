// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/notes-and-tags/internal/app"
	"github.com/MKhiriev/notes-and-tags/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi responds with 405 Method Not Allowed whenever a path matches a route
// whose handlers do not include the request method. This handler answers
// 404 Not Found instead, so that callers probing with an unsupported method
// cannot tell which paths exist.
//
// Matching goes through [chi.Mux.Match], so parameterised patterns such as
// "/api/notes/{id}" are resolved the same way the router resolves them.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			writeNotFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}

// writeNotFound answers with the JSON error body used by the rest of the API.
func writeNotFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgRouteNotFound, http.StatusNotFound)
}
