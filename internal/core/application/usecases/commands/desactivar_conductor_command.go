package commands

import (
	"errors"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/pkg/guard"
)

var ErrDesactivarConductorCommandIsNotConstructed = errors.New(
	"DesactivarConductorCommand must be created via NewDesactivarConductorCommand constructor",
)

// DesactivarConductorCommand represents a request to soft-delete a driver.
type DesactivarConductorCommand struct { //nolint:recvcheck //using for validation
	conductorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDesactivarConductorCommand creates a command to deactivate a driver.
func NewDesactivarConductorCommand(conductorID kernel.UUID) (DesactivarConductorCommand, error) {
	if err := conductorID.Validate(); err != nil {
		return DesactivarConductorCommand{}, err
	}

	return DesactivarConductorCommand{
		conductorID: conductorID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DesactivarConductorCommand) Validate() error {
	return c.guard.Validate(ErrDesactivarConductorCommandIsNotConstructed)
}

// ConductorID returns the target driver ID.
func (c DesactivarConductorCommand) ConductorID() kernel.UUID {
	return c.conductorID
}
