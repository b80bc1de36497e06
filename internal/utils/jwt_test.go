package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/notes-and-tags/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testKey    = strings.Repeat("s", 32)
	testIssuer = "test-issuer"
	testNow    = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	testUser   = models.User{UserID: 123, FirstName: "Alice", LastName: "Smith", Username: "alice", Role: "User"}
)

func fixedNow() time.Time { return testNow }

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testUser, testIssuer, time.Hour, testKey, testNow)

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	require.NotNil(t, token.Token)
	assert.Equal(t, int64(123), token.UserID)

	assert.Equal(t, testIssuer, token.Claims.Issuer)
	assert.Equal(t, "123", token.Claims.Subject)
	assert.Equal(t, "alice", token.Claims.Username)
	assert.Equal(t, "Alice Smith", token.Claims.FullName)
	assert.Equal(t, "User", token.Claims.Role)
	assert.Equal(t, testNow.Unix(), token.Claims.IssuedAt.Unix())
	assert.Equal(t, testNow.Add(time.Hour).Unix(), token.Claims.ExpiresAt.Unix())
	assert.Equal(t, jwt.SigningMethodHS256, token.Method)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"negative duration", "iss", -time.Minute, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(testUser, tt.issuer, tt.duration, tt.key, testNow)
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	gen, err := GenerateJWTToken(testUser, testIssuer, 5*time.Minute, testKey, testNow)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(gen.SignedString, testKey, testIssuer, fixedNow)

	require.NoError(t, err)
	assert.Equal(t, int64(123), parsed.UserID)
	assert.Equal(t, "alice", parsed.Claims.Username)
	assert.Equal(t, "Alice Smith", parsed.Claims.FullName)
	assert.Equal(t, gen.SignedString, parsed.String())
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	valid, err := GenerateJWTToken(testUser, testIssuer, 5*time.Minute, testKey, testNow)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer: testIssuer, Subject: "123", ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer: testIssuer, Subject: "abc", ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
	}).SignedString([]byte(testKey))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer: testIssuer, Subject: "123",
	}).SignedString([]byte(testKey))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
		now    func() time.Time
		target error
	}{
		{name: "wrong key", token: valid.SignedString, key: strings.Repeat("x", 32), issuer: testIssuer, now: fixedNow, target: jwt.ErrTokenSignatureInvalid},
		{name: "wrong issuer", token: valid.SignedString, key: testKey, issuer: "other", now: fixedNow, target: jwt.ErrTokenInvalidIssuer},
		{name: "expired", token: valid.SignedString, key: testKey, issuer: testIssuer, now: func() time.Time { return testNow.Add(time.Hour) }, target: jwt.ErrTokenExpired},
		{name: "alg none", token: noneToken, key: testKey, issuer: testIssuer, now: fixedNow, target: jwt.ErrTokenSignatureInvalid},
		{name: "garbage", token: "not.a.token", key: testKey, issuer: testIssuer, now: fixedNow, target: jwt.ErrTokenMalformed},
		{name: "missing expiry", token: noExpiry, key: testKey, issuer: testIssuer, now: fixedNow, target: jwt.ErrTokenRequiredClaimMissing},
		{name: "non-numeric subject", token: badSubject, key: testKey, issuer: testIssuer, now: fixedNow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer, tt.now)
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestParseUserIDFromJWT(t *testing.T) {
	gen, err := GenerateJWTToken(testUser, testIssuer, time.Minute, testKey, testNow)
	require.NoError(t, err)

	id, err := ParseUserIDFromJWT(gen.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(123), id)

	_, err = ParseUserIDFromJWT("garbage")
	assert.Error(t, err)
}
