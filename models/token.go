package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the JWT claims of a session token. The subject carries the user
// ID so authenticated handlers can attribute writes without a user lookup.
type Claims struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Token is an issued or verified session token. None of its fields are
// serialized; the API hands out SignedString only.
type Token struct {
	*jwt.Token   `json:"-"`
	Claims       Claims `json:"-"`
	SignedString string `json:"-"`
	UserID       int64  `json:"-"`
}

// GetUserID parses the subject claim as a decimal user ID.
func (t *Token) GetUserID() (int64, error) {
	sub, err := t.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("token has no subject: %w", err)
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token subject %q is not a user id: %w", sub, err)
	}

	return id, nil
}

func (t *Token) String() string {
	return t.SignedString
}
