package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher derives the at-rest form of user passwords.
//
// Registration flow:
//
//	salt := GenerateSalt()          (random, stored next to the hash)
//	hash := Hash(password, salt)    (stored instead of the password)
//
// Login repeats Hash with the stored salt and looks the user up by the
// resulting hash; the plaintext password is never persisted.
type PasswordHasher interface {
	// GenerateSalt returns a fresh random salt encoded as standard base64.
	GenerateSalt() (string, error)

	// Hash derives the Argon2id key of password with the base64 salt and
	// returns it encoded as standard base64. Identical inputs always yield
	// identical output.
	Hash(password, salt string) (string, error)
}
