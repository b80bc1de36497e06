// Package utils holds small helpers shared by the server and the client:
// authenticated-user context values, JSON response writing, the resty
// client constructor and JWT issuing and parsing.
package utils

import (
	"context"

	"github.com/MKhiriev/notes-and-tags/models"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey holds the authenticated caller's user ID as int64.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext reports the caller's user ID stored by the auth
// middleware.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// ClaimsCtxKey is the key under which the auth middleware stores the
// decoded token claims of the caller.
var ClaimsCtxKey = contextKey("claims")

// WithAuthenticatedUser returns a copy of ctx carrying the caller's user ID
// and token claims.
func WithAuthenticatedUser(ctx context.Context, token models.Token) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, token.UserID)
	return context.WithValue(ctx, ClaimsCtxKey, token.Claims)
}

// GetClaimsFromContext retrieves the caller's token claims stored by
// WithAuthenticatedUser.
func GetClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	return claims, ok
}
