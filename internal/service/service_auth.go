package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/notes-and-tags/internal/config"
	"github.com/MKhiriev/notes-and-tags/internal/crypto"
	"github.com/MKhiriev/notes-and-tags/internal/logger"
	"github.com/MKhiriev/notes-and-tags/internal/store"
	"github.com/MKhiriev/notes-and-tags/internal/utils"
	"github.com/MKhiriev/notes-and-tags/internal/validators"
	"github.com/MKhiriev/notes-and-tags/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and Argon2id for
// password hashing.
// unknownUserSalt is hashed against when a login names no registered user.
const unknownUserSalt = "AAAAAAAAAAAAAAAAAAAAAA=="

type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher derives the stored form of passwords. Login re-derives it with
	// the salt stored at registration time.
	hasher crypto.PasswordHasher

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewUserValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// All field rules and the password confirmation are checked before the
// repository is touched. The username is then looked up; a taken username
// is reported as [ErrValidation] both from that lookup and from the
// repository's [store.ErrUsernameTaken] when a concurrent registration wins
// the race between the lookup and the insert.
//
// The stored user carries the Argon2id hash of the password and its salt,
// never the password itself.
func (a *authService) Register(ctx context.Context, user models.RegisterUser) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Str("username", user.Username).Msg("invalid registration data")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	_, err := a.userRepository.GetUserByUsername(ctx, user.Username)
	switch {
	case err == nil:
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, ErrUsernameTaken)
	case !errors.Is(err, store.ErrRecordNotFound):
		log.Err(err).Str("func", "authService.Register").Msg("username lookup failed")
		return models.User{}, fmt.Errorf("username lookup failed: %w", err)
	}

	salt, err := a.hasher.GenerateSalt()
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("salt generation failed")
		return models.User{}, err
	}

	hash, err := a.hasher.Hash(user.Password, salt)
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("password hashing failed")
		return models.User{}, err
	}

	newUser := models.User{
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Username:     user.Username,
		Password:     hash,
		PasswordSalt: salt,
		Role:         user.Role,
	}

	err = a.userRepository.Add(ctx, &newUser)
	if errors.Is(err, store.ErrUsernameTaken) {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, ErrUsernameTaken)
	}
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", newUser.UserID).Str("username", newUser.Username).Msg("user registered")
	return newUser, nil
}

// Login authenticates the credentials and issues a signed token.
//
// Unknown usernames and wrong passwords produce the same [ErrAuth] error so
// that callers cannot probe which usernames exist.
func (a *authService) Login(ctx context.Context, login models.Login) (string, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, login); err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuth, err)
	}

	stored, err := a.userRepository.GetUserByUsername(ctx, login.Username)
	if errors.Is(err, store.ErrRecordNotFound) {
		log.Debug().Str("username", login.Username).Msg("login for unknown username")
		// same hashing cost as a wrong password
		_, _ = a.hasher.Hash(login.Password, unknownUserSalt)
		return "", fmt.Errorf("%w: %w", ErrAuth, ErrInvalidCredentials)
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("user search by username failed")
		return "", fmt.Errorf("user search by username failed: %w", err)
	}

	hash, err := a.hasher.Hash(login.Password, stored.PasswordSalt)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Int64("user_id", stored.UserID).Msg("password hashing failed")
		return "", err
	}

	user, err := a.userRepository.FindByCredentials(ctx, login.Username, hash)
	if errors.Is(err, store.ErrRecordNotFound) {
		log.Debug().Str("username", login.Username).Msg("wrong password")
		return "", fmt.Errorf("%w: %w", ErrAuth, ErrInvalidCredentials)
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("credentials lookup failed")
		return "", fmt.Errorf("credentials lookup failed: %w", err)
	}

	token, err := utils.GenerateJWTToken(user, a.tokenIssuer, a.tokenDuration, a.tokenSignKey, a.now())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token.String(), nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, bad signature, malformed)
// is normalised to [ErrAuth] wrapping [ErrInvalidToken].
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrAuth, ErrInvalidToken)
	}

	return token, nil
}
