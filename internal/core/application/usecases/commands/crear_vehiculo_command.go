package commands

import (
	"errors"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/core/domain/model/vehiculo"
	"transportes/internal/pkg/guard"
)

var ErrCrearVehiculoCommandIsNotConstructed = errors.New(
	"CrearVehiculoCommand must be created via NewCrearVehiculoCommand constructor",
)

// CrearVehiculoCommand represents a request to register a new vehicle in the
// fleet. A unique ID is generated at construction so the caller can read it
// back after handling.
type CrearVehiculoCommand struct { //nolint:recvcheck //using for validation
	vehiculoID kernel.UUID
	placa      vehiculo.Placa
	capacidad  vehiculo.Capacidad

	guard guard.ConstructorGuard
}

// NewCrearVehiculoCommand creates a command to register a new vehicle.
// The plate and capacity must be already-constructed value objects.
func NewCrearVehiculoCommand(placa vehiculo.Placa, capacidad vehiculo.Capacidad) (CrearVehiculoCommand, error) {
	command := CrearVehiculoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVehiculoID(kernel.NewUUID()),
		command.setPlaca(placa),
		command.setCapacidad(capacidad),
	); err != nil {
		return CrearVehiculoCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CrearVehiculoCommand) Validate() error {
	return c.guard.Validate(ErrCrearVehiculoCommandIsNotConstructed)
}

// VehiculoID returns the generated vehicle ID.
func (c CrearVehiculoCommand) VehiculoID() kernel.UUID {
	return c.vehiculoID
}

// Placa returns the registration plate from the command.
func (c CrearVehiculoCommand) Placa() vehiculo.Placa {
	return c.placa
}

// Capacidad returns the cargo capacity from the command.
func (c CrearVehiculoCommand) Capacidad() vehiculo.Capacidad {
	return c.capacidad
}

func (c *CrearVehiculoCommand) setVehiculoID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vehiculoID = id
	return nil
}

func (c *CrearVehiculoCommand) setPlaca(placa vehiculo.Placa) error {
	if err := placa.Validate(); err != nil {
		return err
	}

	c.placa = placa
	return nil
}

func (c *CrearVehiculoCommand) setCapacidad(capacidad vehiculo.Capacidad) error {
	if err := capacidad.Validate(); err != nil {
		return err
	}

	c.capacidad = capacidad
	return nil
}
