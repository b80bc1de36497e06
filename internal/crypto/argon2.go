// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/notes-and-tags/internal/config"
	"golang.org/x/crypto/argon2"
)

// ErrInvalidSalt is returned by Hash when the salt is not valid base64 or
// is empty.
var ErrInvalidSalt = errors.New("invalid password salt")

// argon2Hasher is the private implementation of [PasswordHasher].
type argon2Hasher struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
	saltLen uint32

	random io.Reader
}

// NewPasswordHasher constructs an Argon2id [PasswordHasher] from the
// configured cost parameters.
func NewPasswordHasher(cfg config.PasswordHashing) PasswordHasher {
	return &argon2Hasher{
		time:    cfg.Time,
		memory:  cfg.Memory,
		threads: cfg.Threads,
		keyLen:  cfg.KeyLen,
		saltLen: cfg.SaltLen,
		random:  rand.Reader,
	}
}

// GenerateSalt implements [PasswordHasher]. It reads saltLen bytes from the
// OS CSPRNG.
func (h *argon2Hasher) GenerateSalt() (string, error) {
	salt := make([]byte, h.saltLen)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}
	return base64.StdEncoding.EncodeToString(salt), nil
}

// Hash implements [PasswordHasher].
func (h *argon2Hasher) Hash(password, salt string) (string, error) {
	rawSalt, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSalt, err)
	}
	if len(rawSalt) == 0 {
		return "", ErrInvalidSalt
	}

	key := argon2.IDKey(
		[]byte(password),
		rawSalt,
		h.time,
		h.memory,
		h.threads,
		h.keyLen,
	)

	return base64.StdEncoding.EncodeToString(key), nil
}
