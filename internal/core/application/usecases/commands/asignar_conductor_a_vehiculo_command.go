package commands

import (
	"errors"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/pkg/guard"
)

var ErrAsignarConductorAVehiculoCommandIsNotConstructed = errors.New(
	"AsignarConductorAVehiculoCommand must be created via NewAsignarConductorAVehiculoCommand constructor",
)

// AsignarConductorAVehiculoCommand represents a request to hand a vehicle to
// a driver. The mutual reference is written on both aggregates within one
// transaction.
type AsignarConductorAVehiculoCommand struct { //nolint:recvcheck //using for validation
	vehiculoID  kernel.UUID
	conductorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAsignarConductorAVehiculoCommand creates a command to assign a driver
// to a vehicle.
func NewAsignarConductorAVehiculoCommand(
	vehiculoID, conductorID kernel.UUID,
) (AsignarConductorAVehiculoCommand, error) {
	if err := errors.Join(vehiculoID.Validate(), conductorID.Validate()); err != nil {
		return AsignarConductorAVehiculoCommand{}, err
	}

	return AsignarConductorAVehiculoCommand{
		vehiculoID:  vehiculoID,
		conductorID: conductorID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AsignarConductorAVehiculoCommand) Validate() error {
	return c.guard.Validate(ErrAsignarConductorAVehiculoCommandIsNotConstructed)
}

// VehiculoID returns the vehicle to hand over.
func (c AsignarConductorAVehiculoCommand) VehiculoID() kernel.UUID {
	return c.vehiculoID
}

// ConductorID returns the receiving driver.
func (c AsignarConductorAVehiculoCommand) ConductorID() kernel.UUID {
	return c.conductorID
}
