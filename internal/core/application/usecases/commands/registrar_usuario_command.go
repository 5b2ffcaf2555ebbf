package commands

import (
	"errors"
	"fmt"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/core/domain/model/usuario"
	"transportes/internal/pkg/errs"
	"transportes/internal/pkg/guard"
)

// passwordMinLength is the minimum accepted password length for new
// accounts and password changes.
const passwordMinLength = 8

var ErrRegistrarUsuarioCommandIsNotConstructed = errors.New(
	"RegistrarUsuarioCommand must be created via NewRegistrarUsuarioCommand constructor",
)

// validatePassword applies the password policy shared by registration and
// password changes. The plaintext never travels further than the hasher.
func validatePassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < passwordMinLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"password",
			fmt.Errorf("shorter than %d characters", passwordMinLength),
		)
	}
	return nil
}

// RegistrarUsuarioCommand represents a request to register a new user
// account. A unique ID is generated at construction.
type RegistrarUsuarioCommand struct { //nolint:recvcheck //using for validation
	usuarioID kernel.UUID
	username  string
	password  string
	email     string
	roles     []usuario.Rol

	guard guard.ConstructorGuard
}

// NewRegistrarUsuarioCommand creates a command to register a user account.
// The password travels in plaintext only as far as the handler's hasher.
func NewRegistrarUsuarioCommand(
	username, password, email string, roles []usuario.Rol,
) (RegistrarUsuarioCommand, error) {
	command := RegistrarUsuarioCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUsuarioID(kernel.NewUUID()),
		command.setUsername(username),
		command.setPassword(password),
		command.setEmail(email),
		command.setRoles(roles),
	); err != nil {
		return RegistrarUsuarioCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegistrarUsuarioCommand) Validate() error {
	return c.guard.Validate(ErrRegistrarUsuarioCommandIsNotConstructed)
}

// UsuarioID returns the generated user ID.
func (c RegistrarUsuarioCommand) UsuarioID() kernel.UUID {
	return c.usuarioID
}

// Username returns the login name from the command.
func (c RegistrarUsuarioCommand) Username() string {
	return c.username
}

// Password returns the plaintext password from the command.
func (c RegistrarUsuarioCommand) Password() string {
	return c.password
}

// Email returns the contact address from the command.
func (c RegistrarUsuarioCommand) Email() string {
	return c.email
}

// Roles returns the access roles from the command.
func (c RegistrarUsuarioCommand) Roles() []usuario.Rol {
	out := make([]usuario.Rol, len(c.roles))
	copy(out, c.roles)
	return out
}

func (c *RegistrarUsuarioCommand) setUsuarioID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.usuarioID = id
	return nil
}

func (c *RegistrarUsuarioCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}

	c.username = username
	return nil
}

func (c *RegistrarUsuarioCommand) setPassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}

	c.password = password
	return nil
}

func (c *RegistrarUsuarioCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegistrarUsuarioCommand) setRoles(roles []usuario.Rol) error {
	if len(roles) == 0 {
		return errs.NewValueIsRequiredError("roles")
	}

	for _, rol := range roles {
		if err := rol.Validate(); err != nil {
			return err
		}
	}

	c.roles = make([]usuario.Rol, len(roles))
	copy(c.roles, roles)
	return nil
}
