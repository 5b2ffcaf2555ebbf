package commands

import (
	"context"

	"transportes/internal/core/domain/model/conductor"
)

// DesactivarConductorCommandHandler soft-deletes drivers. A driver still
// holding vehicles must return them first.
type DesactivarConductorCommandHandler struct {
	uowFactory ConductorUoWFactory
}

// NewDesactivarConductorCommandHandler creates a handler for driver deactivation.
func NewDesactivarConductorCommandHandler(uowFactory ConductorUoWFactory) DesactivarConductorCommandHandler {
	return DesactivarConductorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the driver, deactivates it, and persists it.
// On success it returns the deactivated aggregate.
func (h DesactivarConductorCommandHandler) Handle(
	ctx context.Context, command DesactivarConductorCommand,
) (*conductor.Conductor, error) {
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

	conductorRepo := uow.ConductorRepository()

	aggregate, err := conductorRepo.Get(ctx, command.ConductorID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Desactivar(); err != nil {
		return nil, err
	}

	if err = conductorRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
