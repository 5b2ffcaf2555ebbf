package commands

import (
	"errors"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/pkg/guard"
)

var ErrCambiarPasswordCommandIsNotConstructed = errors.New(
	"CambiarPasswordCommand must be created via its constructors",
)

// CambiarPasswordCommand represents a password change. Two flavors exist:
// the self-service change, which must present the current password, and the
// admin-driven reset, which does not.
type CambiarPasswordCommand struct { //nolint:recvcheck //using for validation
	usuarioID      kernel.UUID
	passwordActual string
	passwordNueva  string
	esReset        bool

	guard guard.ConstructorGuard
}

// NewCambiarPasswordCommand creates a self-service password change. The
// current password is verified by the handler before the new one is set.
func NewCambiarPasswordCommand(
	usuarioID kernel.UUID, passwordActual, passwordNueva string,
) (CambiarPasswordCommand, error) {
	if err := errors.Join(usuarioID.Validate(), validatePassword(passwordNueva)); err != nil {
		return CambiarPasswordCommand{}, err
	}

	return CambiarPasswordCommand{
		usuarioID:      usuarioID,
		passwordActual: passwordActual,
		passwordNueva:  passwordNueva,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// NewResetPasswordCommand creates an admin-driven reset that replaces the
// password without checking the current one.
func NewResetPasswordCommand(
	usuarioID kernel.UUID, passwordNueva string,
) (CambiarPasswordCommand, error) {
	if err := errors.Join(usuarioID.Validate(), validatePassword(passwordNueva)); err != nil {
		return CambiarPasswordCommand{}, err
	}

	return CambiarPasswordCommand{
		usuarioID:     usuarioID,
		passwordNueva: passwordNueva,
		esReset:       true,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through a constructor.
func (c CambiarPasswordCommand) Validate() error {
	return c.guard.Validate(ErrCambiarPasswordCommandIsNotConstructed)
}

// UsuarioID returns the target account ID.
func (c CambiarPasswordCommand) UsuarioID() kernel.UUID {
	return c.usuarioID
}

// PasswordActual returns the current password, empty for resets.
func (c CambiarPasswordCommand) PasswordActual() string {
	return c.passwordActual
}

// PasswordNueva returns the replacement password.
func (c CambiarPasswordCommand) PasswordNueva() string {
	return c.passwordNueva
}

// EsReset reports whether this is an admin-driven reset.
func (c CambiarPasswordCommand) EsReset() bool {
	return c.esReset
}
