package commands

import (
	"context"

	"transportes/internal/core/domain/model/pedido"
)

// CambiarEstadoPedidoCommandHandler moves orders through the state machine.
type CambiarEstadoPedidoCommandHandler struct {
	uowFactory PedidoUoWFactory
}

// NewCambiarEstadoPedidoCommandHandler creates a handler for estado changes.
func NewCambiarEstadoPedidoCommandHandler(uowFactory PedidoUoWFactory) CambiarEstadoPedidoCommandHandler {
	return CambiarEstadoPedidoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the transition, and persists it.
// Failure modes:
//   - errs.ErrObjectNotFound when the order is missing
//   - pedido.ErrAsignacionFaltante when starting an unassigned order
//   - pedido.TransicionInvalidaError for a transition the machine forbids
//
// On success it returns the mutated aggregate.
func (h CambiarEstadoPedidoCommandHandler) Handle(
	ctx context.Context, command CambiarEstadoPedidoCommand,
) (*pedido.Pedido, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pedidoRepo := uow.PedidoRepository()

	aggregate, err := pedidoRepo.Get(ctx, command.PedidoID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.CambiarEstado(command.Estado()); err != nil {
		return nil, err
	}

	if err = pedidoRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
