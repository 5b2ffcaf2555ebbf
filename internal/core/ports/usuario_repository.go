package ports

import (
	"context"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/core/domain/model/usuario"
)

// UsuarioRepository defines the persistence contract for user accounts.
type UsuarioRepository interface {
	// Add persists a new user aggregate to storage.
	// The user must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *usuario.Usuario) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *usuario.Usuario) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*usuario.Usuario, error)

	// GetByUsername retrieves a user by login name, used for authentication
	// and the duplicate check on registration.
	GetByUsername(ctx context.Context, username string) (*usuario.Usuario, error)

	// GetByEmail retrieves a user by email address, used for the duplicate
	// check on registration.
	GetByEmail(ctx context.Context, email string) (*usuario.Usuario, error)
}
