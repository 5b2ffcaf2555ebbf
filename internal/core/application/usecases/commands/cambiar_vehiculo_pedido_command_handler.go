package commands

import (
	"context"

	"transportes/internal/core/domain/model/pedido"
	"transportes/internal/core/domain/model/vehiculo"
	"transportes/internal/core/domain/services"
)

// CambiarVehiculoPedidoCommandHandler moves a pending order onto another
// vehicle. The replacement must belong to the driver already on the order,
// be active, and fit the cargo.
type CambiarVehiculoPedidoCommandHandler struct {
	uowFactory FlotaUoWFactory
}

// NewCambiarVehiculoPedidoCommandHandler creates a handler for order vehicle
// changes.
func NewCambiarVehiculoPedidoCommandHandler(uowFactory FlotaUoWFactory) CambiarVehiculoPedidoCommandHandler {
	return CambiarVehiculoPedidoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order and the candidate vehicle, verifies eligibility,
// and delegates to the order's own mutator, which additionally enforces the
// PENDIENTE-only rule. Failure modes:
//   - errs.ErrObjectNotFound when the order or the vehicle is missing
//   - pedido.ErrPedidoSinConductor when no driver is on the order
//   - vehiculo.ErrVehiculoInactivo
//   - vehiculo.VehiculoNoAsignadoAConductorError when the candidate belongs
//     to a different driver
//   - vehiculo.CapacidadInsuficienteError carrying capacity and weight
//   - pedido.ErrPedidoNoPendiente when the order already left PENDIENTE
//
// On success it returns the mutated aggregate.
func (h CambiarVehiculoPedidoCommandHandler) Handle(
	ctx context.Context, command CambiarVehiculoPedidoCommand,
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

	conductorID := aggregate.ConductorID()
	if conductorID == nil {
		return nil, pedido.ErrPedidoSinConductor
	}

	v, err := uow.VehiculoRepository().Get(ctx, command.NuevoVehiculoID())
	if err != nil {
		return nil, err
	}

	if !services.EstaActivo[*vehiculo.Vehiculo]().IsSatisfiedBy(v) {
		return nil, vehiculo.ErrVehiculoInactivo
	}

	if !services.EstaAsignadoAConductor(*conductorID).IsSatisfiedBy(v) {
		return nil, &vehiculo.VehiculoNoAsignadoAConductorError{
			VehiculoID:  v.ID(),
			ConductorID: *conductorID,
		}
	}

	if !services.TieneCapacidadSuficiente(aggregate.Peso()).IsSatisfiedBy(v) {
		return nil, &vehiculo.CapacidadInsuficienteError{
			VehiculoID: v.ID(),
			Capacidad:  v.Capacidad(),
			Peso:       aggregate.Peso(),
		}
	}

	if err = aggregate.CambiarVehiculo(v.ID()); err != nil {
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
