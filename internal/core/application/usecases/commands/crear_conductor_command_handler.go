package commands

import (
	"context"
	"errors"

	"transportes/internal/core/domain/model/conductor"
	"transportes/internal/pkg/errs"
)

// CrearConductorCommandHandler registers new drivers, rejecting duplicate
// license numbers.
type CrearConductorCommandHandler struct {
	uowFactory ConductorUoWFactory
}

// NewCrearConductorCommandHandler creates a handler for driver registration.
func NewCrearConductorCommandHandler(uowFactory ConductorUoWFactory) CrearConductorCommandHandler {
	return CrearConductorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the driver and persists it. A driver with the same license
// already registered fails with errs.ErrObjectAlreadyExists.
// On success it returns the created aggregate.
func (h CrearConductorCommandHandler) Handle(
	ctx context.Context, command CrearConductorCommand,
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

	existente, err := conductorRepo.GetByLicencia(ctx, command.Licencia())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existente != nil {
		return nil, errs.NewObjectAlreadyExistsError("licencia", command.Licencia().Numero())
	}

	nuevo, err := conductor.NewConductor(command.ConductorID(), command.Nombre(), command.Licencia())
	if err != nil {
		return nil, err
	}

	if err = conductorRepo.Add(ctx, nuevo); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return nuevo, nil
}
