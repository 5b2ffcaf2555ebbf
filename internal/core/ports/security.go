package ports

import (
	"time"

	"transportes/internal/core/domain/model/usuario"
)

// PasswordHasher hashes and verifies passwords. The domain only ever sees
// the opaque hash; the implementation decides the algorithm and cost.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare reports whether the plaintext password matches the hash.
	// A mismatch is a false return, not an error.
	Compare(hash, password string) (bool, error)
}

// TokenIssuer issues access tokens for authenticated users.
type TokenIssuer interface {
	// Issue creates a signed token for the user, valid for the configured
	// lifetime from now.
	Issue(usuario *usuario.Usuario, now time.Time) (string, error)
}
