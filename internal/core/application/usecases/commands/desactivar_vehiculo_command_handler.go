package commands

import (
	"context"

	"transportes/internal/core/domain/model/vehiculo"
)

// DesactivarVehiculoCommandHandler soft-deletes vehicles. A vehicle held by
// a conductor must be returned before it can be deactivated.
type DesactivarVehiculoCommandHandler struct {
	uowFactory VehiculoUoWFactory
}

// NewDesactivarVehiculoCommandHandler creates a handler for vehicle deactivation.
func NewDesactivarVehiculoCommandHandler(uowFactory VehiculoUoWFactory) DesactivarVehiculoCommandHandler {
	return DesactivarVehiculoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the vehicle, deactivates it, and persists it.
// On success it returns the deactivated aggregate.
func (h DesactivarVehiculoCommandHandler) Handle(
	ctx context.Context, command DesactivarVehiculoCommand,
) (*vehiculo.Vehiculo, error) {
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

	vehiculoRepo := uow.VehiculoRepository()

	aggregate, err := vehiculoRepo.Get(ctx, command.VehiculoID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Desactivar(); err != nil {
		return nil, err
	}

	if err = vehiculoRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
