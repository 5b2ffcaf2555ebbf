package commands

import (
	"errors"

	"transportes/internal/pkg/errs"
	"transportes/internal/pkg/guard"
)

var ErrAutenticarUsuarioCommandIsNotConstructed = errors.New(
	"AutenticarUsuarioCommand must be created via NewAutenticarUsuarioCommand constructor",
)

// AutenticarUsuarioCommand represents a login attempt.
type AutenticarUsuarioCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

// NewAutenticarUsuarioCommand creates a command to authenticate a user.
func NewAutenticarUsuarioCommand(username, password string) (AutenticarUsuarioCommand, error) {
	if username == "" {
		return AutenticarUsuarioCommand{}, errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		return AutenticarUsuarioCommand{}, errs.NewValueIsRequiredError("password")
	}

	return AutenticarUsuarioCommand{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AutenticarUsuarioCommand) Validate() error {
	return c.guard.Validate(ErrAutenticarUsuarioCommandIsNotConstructed)
}

// Username returns the presented login name.
func (c AutenticarUsuarioCommand) Username() string {
	return c.username
}

// Password returns the presented plaintext password.
func (c AutenticarUsuarioCommand) Password() string {
	return c.password
}
