package commands

import (
	"errors"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/pkg/guard"
)

var ErrDesactivarVehiculoCommandIsNotConstructed = errors.New(
	"DesactivarVehiculoCommand must be created via NewDesactivarVehiculoCommand constructor",
)

// DesactivarVehiculoCommand represents a request to soft-delete a vehicle.
type DesactivarVehiculoCommand struct { //nolint:recvcheck //using for validation
	vehiculoID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDesactivarVehiculoCommand creates a command to deactivate a vehicle.
func NewDesactivarVehiculoCommand(vehiculoID kernel.UUID) (DesactivarVehiculoCommand, error) {
	if err := vehiculoID.Validate(); err != nil {
		return DesactivarVehiculoCommand{}, err
	}

	return DesactivarVehiculoCommand{
		vehiculoID: vehiculoID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DesactivarVehiculoCommand) Validate() error {
	return c.guard.Validate(ErrDesactivarVehiculoCommandIsNotConstructed)
}

// VehiculoID returns the target vehicle ID.
func (c DesactivarVehiculoCommand) VehiculoID() kernel.UUID {
	return c.vehiculoID
}
