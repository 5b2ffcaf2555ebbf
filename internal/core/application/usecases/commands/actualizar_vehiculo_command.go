package commands

import (
	"errors"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/core/domain/model/vehiculo"
	"transportes/internal/pkg/errs"
	"transportes/internal/pkg/guard"
)

var ErrActualizarVehiculoCommandIsNotConstructed = errors.New(
	"ActualizarVehiculoCommand must be created via NewActualizarVehiculoCommand constructor",
)

// ActualizarVehiculoCommand represents a request to replace a vehicle's
// plate and/or capacity. Nil fields are left untouched; at least one must be
// present.
type ActualizarVehiculoCommand struct { //nolint:recvcheck //using for validation
	vehiculoID kernel.UUID
	placa      *vehiculo.Placa
	capacidad  *vehiculo.Capacidad

	guard guard.ConstructorGuard
}

// NewActualizarVehiculoCommand creates a command to update a vehicle.
func NewActualizarVehiculoCommand(
	vehiculoID kernel.UUID,
	placa *vehiculo.Placa,
	capacidad *vehiculo.Capacidad,
) (ActualizarVehiculoCommand, error) {
	if placa == nil && capacidad == nil {
		return ActualizarVehiculoCommand{}, errs.NewValueIsRequiredError("placa or capacidad")
	}

	command := ActualizarVehiculoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVehiculoID(vehiculoID),
		command.setPlaca(placa),
		command.setCapacidad(capacidad),
	); err != nil {
		return ActualizarVehiculoCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ActualizarVehiculoCommand) Validate() error {
	return c.guard.Validate(ErrActualizarVehiculoCommandIsNotConstructed)
}

// VehiculoID returns the target vehicle ID.
func (c ActualizarVehiculoCommand) VehiculoID() kernel.UUID {
	return c.vehiculoID
}

// Placa returns the replacement plate, or nil to keep the current one.
func (c ActualizarVehiculoCommand) Placa() *vehiculo.Placa {
	return c.placa
}

// Capacidad returns the replacement capacity, or nil to keep the current one.
func (c ActualizarVehiculoCommand) Capacidad() *vehiculo.Capacidad {
	return c.capacidad
}

func (c *ActualizarVehiculoCommand) setVehiculoID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vehiculoID = id
	return nil
}

func (c *ActualizarVehiculoCommand) setPlaca(placa *vehiculo.Placa) error {
	if placa == nil {
		return nil
	}
	if err := placa.Validate(); err != nil {
		return err
	}

	c.placa = placa
	return nil
}

func (c *ActualizarVehiculoCommand) setCapacidad(capacidad *vehiculo.Capacidad) error {
	if capacidad == nil {
		return nil
	}
	if err := capacidad.Validate(); err != nil {
		return err
	}

	c.capacidad = capacidad
	return nil
}
