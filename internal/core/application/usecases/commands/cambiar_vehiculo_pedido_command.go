package commands

import (
	"errors"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/pkg/guard"
)

var ErrCambiarVehiculoPedidoCommandIsNotConstructed = errors.New(
	"CambiarVehiculoPedidoCommand must be created via NewCambiarVehiculoPedidoCommand constructor",
)

// CambiarVehiculoPedidoCommand represents a request to move a pending order
// onto another vehicle of the same driver.
type CambiarVehiculoPedidoCommand struct { //nolint:recvcheck //using for validation
	pedidoID        kernel.UUID
	nuevoVehiculoID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCambiarVehiculoPedidoCommand creates a command to change an order's vehicle.
func NewCambiarVehiculoPedidoCommand(
	pedidoID, nuevoVehiculoID kernel.UUID,
) (CambiarVehiculoPedidoCommand, error) {
	if err := errors.Join(pedidoID.Validate(), nuevoVehiculoID.Validate()); err != nil {
		return CambiarVehiculoPedidoCommand{}, err
	}

	return CambiarVehiculoPedidoCommand{
		pedidoID:        pedidoID,
		nuevoVehiculoID: nuevoVehiculoID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CambiarVehiculoPedidoCommand) Validate() error {
	return c.guard.Validate(ErrCambiarVehiculoPedidoCommandIsNotConstructed)
}

// PedidoID returns the target order ID.
func (c CambiarVehiculoPedidoCommand) PedidoID() kernel.UUID {
	return c.pedidoID
}

// NuevoVehiculoID returns the replacement vehicle ID.
func (c CambiarVehiculoPedidoCommand) NuevoVehiculoID() kernel.UUID {
	return c.nuevoVehiculoID
}
