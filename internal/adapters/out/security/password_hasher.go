// Package security implements the password hashing and token issuing ports.
package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// BcryptPasswordHasher implements ports.PasswordHasher using bcrypt.
type BcryptPasswordHasher struct {
	cost int
}

// NewBcryptPasswordHasher creates a hasher with the given cost. A cost
// outside bcrypt's accepted range falls back to the library default.
func NewBcryptPasswordHasher(cost int) BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return BcryptPasswordHasher{cost: cost}
}

// Hash derives a storable bcrypt hash from a plaintext password.
func (h BcryptPasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare reports whether the plaintext password matches the hash.
// A mismatch is a false return, not an error.
func (h BcryptPasswordHasher) Compare(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
