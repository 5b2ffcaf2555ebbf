package commands

import (
	"context"
	"errors"

	"transportes/internal/core/domain/model/vehiculo"
	"transportes/internal/pkg/errs"
)

// ActualizarVehiculoCommandHandler replaces a vehicle's plate and/or
// capacity, keeping the plate unique across the fleet.
type ActualizarVehiculoCommandHandler struct {
	uowFactory VehiculoUoWFactory
}

// NewActualizarVehiculoCommandHandler creates a handler for vehicle updates.
func NewActualizarVehiculoCommandHandler(uowFactory VehiculoUoWFactory) ActualizarVehiculoCommandHandler {
	return ActualizarVehiculoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the vehicle, applies the requested replacements, and persists
// it. A plate already registered on another vehicle fails with
// errs.ErrObjectAlreadyExists. On success it returns the updated aggregate.
func (h ActualizarVehiculoCommandHandler) Handle(
	ctx context.Context, command ActualizarVehiculoCommand,
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

	if placa := command.Placa(); placa != nil && !aggregate.Placa().IsEqual(*placa) {
		existente, err := vehiculoRepo.GetByPlaca(ctx, *placa)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
		if existente != nil {
			return nil, errs.NewObjectAlreadyExistsError("placa", placa.Valor())
		}

		if err = aggregate.CambiarPlaca(*placa); err != nil {
			return nil, err
		}
	}

	if capacidad := command.Capacidad(); capacidad != nil {
		if err = aggregate.CambiarCapacidad(*capacidad); err != nil {
			return nil, err
		}
	}

	if err = vehiculoRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
