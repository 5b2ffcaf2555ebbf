package commands

import (
	"errors"
	"strings"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/pkg/errs"
	"transportes/internal/pkg/guard"
)

var ErrCrearPedidoCommandIsNotConstructed = errors.New(
	"CrearPedidoCommand must be created via NewCrearPedidoCommand constructor",
)

// CrearPedidoCommand represents a request to create a transport order,
// already bound to a vehicle and its driver. A unique ID is generated at
// construction so the caller can read it back after handling.
type CrearPedidoCommand struct { //nolint:recvcheck //using for validation
	pedidoID         kernel.UUID
	descripcion      string
	peso             kernel.Peso
	vehiculoID       kernel.UUID
	conductorID      kernel.UUID
	direccionOrigen  string
	direccionDestino string

	guard guard.ConstructorGuard
}

// NewCrearPedidoCommand creates a command to create a transport order.
// The weight must be an already-constructed value object.
func NewCrearPedidoCommand(
	descripcion string,
	peso kernel.Peso,
	vehiculoID kernel.UUID,
	conductorID kernel.UUID,
	direccionOrigen string,
	direccionDestino string,
) (CrearPedidoCommand, error) {
	command := CrearPedidoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPedidoID(kernel.NewUUID()),
		command.setDescripcion(descripcion),
		command.setPeso(peso),
		command.setVehiculoID(vehiculoID),
		command.setConductorID(conductorID),
		command.setDirecciones(direccionOrigen, direccionDestino),
	); err != nil {
		return CrearPedidoCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CrearPedidoCommand) Validate() error {
	return c.guard.Validate(ErrCrearPedidoCommandIsNotConstructed)
}

// PedidoID returns the generated order ID.
func (c CrearPedidoCommand) PedidoID() kernel.UUID {
	return c.pedidoID
}

// Descripcion returns the cargo description from the command.
func (c CrearPedidoCommand) Descripcion() string {
	return c.descripcion
}

// Peso returns the cargo weight from the command.
func (c CrearPedidoCommand) Peso() kernel.Peso {
	return c.peso
}

// VehiculoID returns the carrying vehicle from the command.
func (c CrearPedidoCommand) VehiculoID() kernel.UUID {
	return c.vehiculoID
}

// ConductorID returns the driver from the command.
func (c CrearPedidoCommand) ConductorID() kernel.UUID {
	return c.conductorID
}

// DireccionOrigen returns the pickup address from the command.
func (c CrearPedidoCommand) DireccionOrigen() string {
	return c.direccionOrigen
}

// DireccionDestino returns the delivery address from the command.
func (c CrearPedidoCommand) DireccionDestino() string {
	return c.direccionDestino
}

func (c *CrearPedidoCommand) setPedidoID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.pedidoID = id
	return nil
}

func (c *CrearPedidoCommand) setDescripcion(descripcion string) error {
	if strings.TrimSpace(descripcion) == "" {
		return errs.NewValueIsRequiredError("descripcion")
	}

	c.descripcion = descripcion
	return nil
}

func (c *CrearPedidoCommand) setPeso(peso kernel.Peso) error {
	if err := peso.Validate(); err != nil {
		return err
	}

	c.peso = peso
	return nil
}

func (c *CrearPedidoCommand) setVehiculoID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vehiculoID = id
	return nil
}

func (c *CrearPedidoCommand) setConductorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.conductorID = id
	return nil
}

func (c *CrearPedidoCommand) setDirecciones(origen, destino string) error {
	if strings.TrimSpace(origen) == "" {
		return errs.NewValueIsRequiredError("direccionOrigen")
	}
	if strings.TrimSpace(destino) == "" {
		return errs.NewValueIsRequiredError("direccionDestino")
	}

	c.direccionOrigen = origen
	c.direccionDestino = destino
	return nil
}
