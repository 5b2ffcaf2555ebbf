package commands

import (
	"errors"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/core/domain/model/pedido"
	"transportes/internal/pkg/guard"
)

var ErrCambiarEstadoPedidoCommandIsNotConstructed = errors.New(
	"CambiarEstadoPedidoCommand must be created via NewCambiarEstadoPedidoCommand constructor",
)

// CambiarEstadoPedidoCommand represents a request to move an order through
// its state machine: start, complete, or cancel it.
type CambiarEstadoPedidoCommand struct { //nolint:recvcheck //using for validation
	pedidoID kernel.UUID
	estado   pedido.Estado

	guard guard.ConstructorGuard
}

// NewCambiarEstadoPedidoCommand creates a command to change an order's estado.
func NewCambiarEstadoPedidoCommand(
	pedidoID kernel.UUID, estado pedido.Estado,
) (CambiarEstadoPedidoCommand, error) {
	if err := errors.Join(pedidoID.Validate(), estado.Validate()); err != nil {
		return CambiarEstadoPedidoCommand{}, err
	}

	return CambiarEstadoPedidoCommand{
		pedidoID: pedidoID,
		estado:   estado,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CambiarEstadoPedidoCommand) Validate() error {
	return c.guard.Validate(ErrCambiarEstadoPedidoCommandIsNotConstructed)
}

// PedidoID returns the target order ID.
func (c CambiarEstadoPedidoCommand) PedidoID() kernel.UUID {
	return c.pedidoID
}

// Estado returns the destination estado.
func (c CambiarEstadoPedidoCommand) Estado() pedido.Estado {
	return c.estado
}
