// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/notes-and-tags/internal/app"
)

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header does not have the "Bearer <token>" form.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Request decoding errors, reported with 400 Bad Request.
var (
	ErrInvalidJSON = errors.New("invalid JSON was passed")
	ErrInvalidID   = errors.New("identifier must be a positive integer")

	ErrRequestBodyTooLarge = errors.New(app.MsgRequestBodyTooLarge)
)

// ErrNoUserID is reported when an authenticated route finds no user in the
// request context.
var ErrNoUserID = errors.New(app.MsgNoUserIDProvided)
