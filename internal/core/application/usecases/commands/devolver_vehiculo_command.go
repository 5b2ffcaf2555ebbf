package commands

import (
	"errors"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/pkg/guard"
)

var ErrDevolverVehiculoCommandIsNotConstructed = errors.New(
	"DevolverVehiculoCommand must be created via NewDevolverVehiculoCommand constructor",
)

// DevolverVehiculoCommand represents a request to take a vehicle back from
// the driver currently holding it.
type DevolverVehiculoCommand struct { //nolint:recvcheck //using for validation
	vehiculoID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDevolverVehiculoCommand creates a command to return a vehicle.
func NewDevolverVehiculoCommand(vehiculoID kernel.UUID) (DevolverVehiculoCommand, error) {
	if err := vehiculoID.Validate(); err != nil {
		return DevolverVehiculoCommand{}, err
	}

	return DevolverVehiculoCommand{
		vehiculoID: vehiculoID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DevolverVehiculoCommand) Validate() error {
	return c.guard.Validate(ErrDevolverVehiculoCommandIsNotConstructed)
}

// VehiculoID returns the vehicle to take back.
func (c DevolverVehiculoCommand) VehiculoID() kernel.UUID {
	return c.vehiculoID
}
