package usuario

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/pkg/errs"
	"transportes/internal/pkg/guard"
)

// Domain errors for user operations.
var (
	// ErrUsuarioIsNotConstructed is returned when using an improperly initialized Usuario.
	ErrUsuarioIsNotConstructed = errors.New("Usuario must be created via NewUsuario constructor")
	// ErrUsernameIsRequired is returned when attempting to create a user without a username.
	ErrUsernameIsRequired = errs.NewValueIsRequiredError("username")
	// ErrPasswordHashIsRequired is returned when the stored password hash is blank.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
	// ErrRolesAreRequired is returned when attempting to create a user without roles.
	ErrRolesAreRequired = errs.NewValueIsRequiredError("roles")
	// ErrUsuarioInactivo is returned when authenticating a deactivated user.
	ErrUsuarioInactivo = errors.New("usuario is inactive")
)

// Usuario represents a system user account. It lives apart from the fleet
// aggregates: the core only stores an opaque password hash, hashing and
// verification happen behind the PasswordHasher port.
type Usuario struct {
	// id uniquely identifies the user
	id kernel.UUID
	// username is the unique login name
	username string
	// passwordHash is the hashed credential, opaque to the domain
	passwordHash string
	// email is the contact address
	email string
	// roles are the access roles, at least one
	roles []Rol
	// activo marks whether the account can log in
	activo bool
	// fechaCreacion is when the account was registered, UTC
	fechaCreacion time.Time
	// ultimoAcceso is the last successful login, nil before the first one
	ultimoAcceso *time.Time
	// guard ensures the user was properly constructed
	guard guard.ConstructorGuard
}

// NewUsuario creates a new active Usuario that has never logged in.
func NewUsuario(
	id kernel.UUID,
	username string,
	passwordHash string,
	email string,
	roles []Rol,
) (*Usuario, error) {
	usuario := &Usuario{
		activo:        true,
		fechaCreacion: time.Now().UTC(),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		usuario.setID(id),
		usuario.setUsername(username),
		usuario.setPasswordHash(passwordHash),
		usuario.setEmail(email),
		usuario.setRoles(roles),
	); err != nil {
		return nil, err
	}

	return usuario, nil
}

// RestoreUsuario reconstructs a Usuario aggregate from persistent storage.
func RestoreUsuario(
	id kernel.UUID,
	username string,
	passwordHash string,
	email string,
	roles []Rol,
	activo bool,
	fechaCreacion time.Time,
	ultimoAcceso *time.Time,
) (*Usuario, error) {
	usuario := &Usuario{
		activo:        activo,
		fechaCreacion: fechaCreacion,
		guard:         guard.NewConstructorGuard(),
	}

	if ultimoAcceso != nil {
		acceso := *ultimoAcceso
		usuario.ultimoAcceso = &acceso
	}

	if err := errors.Join(
		usuario.setID(id),
		usuario.setUsername(username),
		usuario.setPasswordHash(passwordHash),
		usuario.setEmail(email),
		usuario.setRoles(roles),
	); err != nil {
		return nil, err
	}

	return usuario, nil
}

// IsEqual compares two users by their unique identifiers.
func (u *Usuario) IsEqual(other *Usuario) bool {
	if other == nil {
		return false
	}
	return u.id.IsEqual(other.id)
}

// Validate checks that the Usuario was properly constructed.
// The zero value and nil are invalid.
func (u *Usuario) Validate() error {
	if u == nil {
		return ErrUsuarioIsNotConstructed
	}
	return u.guard.Validate(ErrUsuarioIsNotConstructed)
}

// ID returns the unique identifier of the user.
func (u *Usuario) ID() kernel.UUID {
	return u.id
}

// Username returns the login name.
func (u *Usuario) Username() string {
	return u.username
}

// PasswordHash returns the stored hashed credential.
func (u *Usuario) PasswordHash() string {
	return u.passwordHash
}

// Email returns the contact address.
func (u *Usuario) Email() string {
	return u.email
}

// Roles returns the access roles.
// The returned slice is a copy to prevent external modification.
func (u *Usuario) Roles() []Rol {
	out := make([]Rol, len(u.roles))
	copy(out, u.roles)
	return out
}

// TieneRol reports whether the user carries the given rol.
func (u *Usuario) TieneRol(rol Rol) bool {
	for _, r := range u.roles {
		if r == rol {
			return true
		}
	}
	return false
}

// EstaActivo reports whether the account can log in.
func (u *Usuario) EstaActivo() bool {
	return u.activo
}

// FechaCreacion returns when the account was registered.
func (u *Usuario) FechaCreacion() time.Time {
	return u.fechaCreacion
}

// UltimoAcceso returns the last successful login, or nil before the first
// one. The returned pointer is a copy.
func (u *Usuario) UltimoAcceso() *time.Time {
	if u.ultimoAcceso == nil {
		return nil
	}
	acceso := *u.ultimoAcceso
	return &acceso
}

// CambiarPasswordHash replaces the stored credential hash.
func (u *Usuario) CambiarPasswordHash(passwordHash string) error {
	return u.setPasswordHash(passwordHash)
}

// RegistrarAcceso records a successful login at the current time.
// An inactive account cannot log in.
func (u *Usuario) RegistrarAcceso() error {
	if !u.activo {
		return ErrUsuarioInactivo
	}

	ahora := time.Now().UTC()
	u.ultimoAcceso = &ahora
	return nil
}

// Activar returns the account to service.
func (u *Usuario) Activar() {
	u.activo = true
}

// Desactivar blocks the account from logging in.
func (u *Usuario) Desactivar() {
	u.activo = false
}

// setID sets the user's unique identifier with validation.
// This is an internal setter used during construction.
func (u *Usuario) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	u.id = id
	return nil
}

// setUsername sets the login name with validation.
func (u *Usuario) setUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrUsernameIsRequired
	}

	u.username = username
	return nil
}

// setPasswordHash sets the credential hash with validation.
func (u *Usuario) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return ErrPasswordHashIsRequired
	}

	u.passwordHash = passwordHash
	return nil
}

// setEmail sets the contact address with a minimal shape check. Address
// verification is out of the domain's hands; it only rejects obvious junk.
func (u *Usuario) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause(
			"email",
			fmt.Errorf("%s is not an email address", email),
		)
	}

	u.email = email
	return nil
}

// setRoles sets the access roles, rejecting duplicates and invalid values.
func (u *Usuario) setRoles(roles []Rol) error {
	if len(roles) == 0 {
		return ErrRolesAreRequired
	}

	assigned := make([]Rol, 0, len(roles))
	for _, rol := range roles {
		if err := rol.Validate(); err != nil {
			return err
		}
		for _, existente := range assigned {
			if existente == rol {
				return errs.NewValueIsInvalidErrorWithCause(
					"roles",
					fmt.Errorf("%s appears more than once", rol),
				)
			}
		}
		assigned = append(assigned, rol)
	}

	u.roles = assigned
	return nil
}
