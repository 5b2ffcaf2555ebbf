package commands

import (
	"context"

	"transportes/internal/core/domain/model/conductor"
	"transportes/internal/core/domain/model/pedido"
	"transportes/internal/core/domain/model/vehiculo"
	"transportes/internal/core/domain/services"
)

// CrearPedidoCommandHandler creates transport orders bound to an active
// vehicle and driver with enough capacity for the cargo.
type CrearPedidoCommandHandler struct {
	uowFactory FlotaUoWFactory
}

// NewCrearPedidoCommandHandler creates a handler for order creation.
func NewCrearPedidoCommandHandler(uowFactory FlotaUoWFactory) CrearPedidoCommandHandler {
	return CrearPedidoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the vehicle and driver, builds the order in PENDIENTE
// with the pair assigned atomically, and persists it. Failure modes:
//   - errs.ErrObjectNotFound when the vehicle or the driver is missing
//   - vehiculo.ErrVehiculoInactivo / conductor.ErrConductorInactivo
//   - vehiculo.CapacidadInsuficienteError carrying capacity and weight
//
// On success it returns the created aggregate.
func (h CrearPedidoCommandHandler) Handle(
	ctx context.Context, command CrearPedidoCommand,
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

	v, err := uow.VehiculoRepository().Get(ctx, command.VehiculoID())
	if err != nil {
		return nil, err
	}
	if !services.EstaActivo[*vehiculo.Vehiculo]().IsSatisfiedBy(v) {
		return nil, vehiculo.ErrVehiculoInactivo
	}

	c, err := uow.ConductorRepository().Get(ctx, command.ConductorID())
	if err != nil {
		return nil, err
	}
	if !services.EstaActivo[*conductor.Conductor]().IsSatisfiedBy(c) {
		return nil, conductor.ErrConductorInactivo
	}

	if !services.TieneCapacidadSuficiente(command.Peso()).IsSatisfiedBy(v) {
		return nil, &vehiculo.CapacidadInsuficienteError{
			VehiculoID: v.ID(),
			Capacidad:  v.Capacidad(),
			Peso:       command.Peso(),
		}
	}

	nuevo, err := pedido.NewPedido(
		command.PedidoID(),
		command.Descripcion(),
		command.Peso(),
		command.DireccionOrigen(),
		command.DireccionDestino(),
	)
	if err != nil {
		return nil, err
	}

	if err = nuevo.AsignarVehiculoYConductor(v.ID(), c.ID()); err != nil {
		return nil, err
	}

	if err = uow.PedidoRepository().Add(ctx, nuevo); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return nuevo, nil
}
