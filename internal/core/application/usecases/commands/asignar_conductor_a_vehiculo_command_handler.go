package commands

import (
	"context"

	"transportes/internal/core/domain/model/conductor"
	"transportes/internal/core/domain/model/vehiculo"
)

// AsignarConductorAVehiculoCommandHandler executes the vehicle hand-over.
// Both sides of the relationship mutate inside one transaction so the
// vehicle's conductor reference and the driver's vehicle list never diverge.
//
// The check is strict: a vehicle held by a different conductor is rejected,
// it must be returned first. Re-assigning to the conductor that already
// holds the vehicle succeeds without changes.
type AsignarConductorAVehiculoCommandHandler struct {
	uowFactory FlotaUoWFactory
}

// NewAsignarConductorAVehiculoCommandHandler creates a handler for vehicle
// hand-over operations.
func NewAsignarConductorAVehiculoCommandHandler(uowFactory FlotaUoWFactory) AsignarConductorAVehiculoCommandHandler {
	return AsignarConductorAVehiculoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads both aggregates, applies the assignment on each, and persists
// both. Failure modes:
//   - errs.ErrObjectNotFound when either aggregate is missing
//   - vehiculo.VehiculoYaAsignadoError when a different driver holds the vehicle
//   - vehiculo.ErrVehiculoInactivo / conductor.ErrConductorInactivo
//   - conductor.LimiteVehiculosError when the driver's list is full
//
// On success it returns both mutated aggregates.
func (h AsignarConductorAVehiculoCommandHandler) Handle(
	ctx context.Context, command AsignarConductorAVehiculoCommand,
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

	v, err := vehiculoRepo.Get(ctx, command.VehiculoID())
	if err != nil {
		return nil, nil, err
	}

	c, err := conductorRepo.Get(ctx, command.ConductorID())
	if err != nil {
		return nil, nil, err
	}

	if err = v.AsignarConductor(c.ID()); err != nil {
		return nil, nil, err
	}

	// Skip the list add on an idempotent re-assignment.
	if !c.TieneVehiculo(v.ID()) {
		if err = c.AsignarVehiculo(v.ID()); err != nil {
			return nil, nil, err
		}
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
