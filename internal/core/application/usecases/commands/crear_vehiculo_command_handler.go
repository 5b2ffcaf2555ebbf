package commands

import (
	"context"
	"errors"

	"transportes/internal/core/domain/model/vehiculo"
	"transportes/internal/pkg/errs"
)

// CrearVehiculoCommandHandler registers new vehicles, rejecting duplicate
// registration plates.
type CrearVehiculoCommandHandler struct {
	uowFactory VehiculoUoWFactory
}

// NewCrearVehiculoCommandHandler creates a handler for vehicle registration.
func NewCrearVehiculoCommandHandler(uowFactory VehiculoUoWFactory) CrearVehiculoCommandHandler {
	return CrearVehiculoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the vehicle and persists it. A vehicle with the same plate
// already in the fleet fails with errs.ErrObjectAlreadyExists.
// On success it returns the created aggregate.
func (h CrearVehiculoCommandHandler) Handle(
	ctx context.Context, command CrearVehiculoCommand,
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

	existente, err := vehiculoRepo.GetByPlaca(ctx, command.Placa())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existente != nil {
		return nil, errs.NewObjectAlreadyExistsError("placa", command.Placa().Valor())
	}

	nuevo, err := vehiculo.NewVehiculo(command.VehiculoID(), command.Placa(), command.Capacidad())
	if err != nil {
		return nil, err
	}

	if err = vehiculoRepo.Add(ctx, nuevo); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return nuevo, nil
}
