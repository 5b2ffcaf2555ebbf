package commands

import (
	"context"

	"transportes/internal/core/domain/model/conductor"
	"transportes/internal/core/domain/model/vehiculo"
)

// DevolverVehiculoCommandHandler takes a vehicle back from its driver.
// A vehicle with open orders cannot be freed: the orders reference it and
// would be orphaned mid-flight.
type DevolverVehiculoCommandHandler struct {
	uowFactory FlotaUoWFactory
}

// NewDevolverVehiculoCommandHandler creates a handler for vehicle returns.
func NewDevolverVehiculoCommandHandler(uowFactory FlotaUoWFactory) DevolverVehiculoCommandHandler {
	return DevolverVehiculoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the mutual reference from both aggregates and persists
// both. Failure modes:
//   - errs.ErrObjectNotFound when the vehicle, or the driver it references,
//     is missing (the latter is a data integrity violation)
//   - vehiculo.ErrVehiculoNoAsignado when the vehicle is already free
//   - vehiculo.VehiculoEnUsoError carrying the open order count
//
// On success it returns both mutated aggregates.
func (h DevolverVehiculoCommandHandler) Handle(
	ctx context.Context, command DevolverVehiculoCommand,
) (*vehiculo.Vehiculo, *conductor.Conductor, error) {
	if err := command.Validate(); err != nil {
		return nil, nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehiculoRepo := uow.VehiculoRepository()
	conductorRepo := uow.ConductorRepository()
	pedidoRepo := uow.PedidoRepository()

	v, err := vehiculoRepo.Get(ctx, command.VehiculoID())
	if err != nil {
		return nil, nil, err
	}

	conductorID := v.ConductorID()
	if conductorID == nil {
		return nil, nil, vehiculo.ErrVehiculoNoAsignado
	}

	c, err := conductorRepo.Get(ctx, *conductorID)
	if err != nil {
		return nil, nil, err
	}

	activos, err := pedidoRepo.CountActivosByVehiculo(ctx, v.ID())
	if err != nil {
		return nil, nil, err
	}
	if activos > 0 {
		return nil, nil, &vehiculo.VehiculoEnUsoError{
			VehiculoID:     v.ID(),
			PedidosActivos: activos,
		}
	}

	if err = v.DesasignarConductor(c.ID()); err != nil {
		return nil, nil, err
	}

	if err = c.DesasignarVehiculo(v.ID()); err != nil {
		return nil, nil, err
	}

	if err = vehiculoRepo.Update(ctx, v); err != nil {
		return nil, nil, err
	}

	if err = conductorRepo.Update(ctx, c); err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return v, c, nil
}
