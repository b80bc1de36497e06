// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the fixed response messages shared by the HTTP
// handlers and middleware of the notes API.
//
// Errors of the validation, not-found and authentication kinds are reported
// with their own text. The messages below are used where the cause must not
// reach the client or no service error exists.
package app

const (
	// MsgInternalServerError replaces the text of any error that has no
	// mapped status.
	MsgInternalServerError = "Internal Server Error"

	// MsgRouteNotFound is written for unknown paths and for methods a known
	// path does not support.
	MsgRouteNotFound = "Not Found"

	// MsgRequestBodyTooLarge is written when a request body exceeds the
	// handler limit.
	MsgRequestBodyTooLarge = "request body too large"

	// MsgNoUserIDProvided is written when an authenticated route runs
	// without a user in the request context.
	MsgNoUserIDProvided = "no user ID provided"
)
