package queries

import (
	"errors"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPedidosActivosQueryIsNotConstructed = errors.New(
	"GetPedidosActivosQuery must be created via NewGetPedidosActivosQuery constructor",
)

// GetPedidosActivosQuery retrieves all orders still moving through the
// pipeline, PENDIENTE and EN_PROGRESO.
type GetPedidosActivosQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPedidosActivosQuery creates a query to retrieve open orders.
// This is a parameterless query.
func NewGetPedidosActivosQuery() GetPedidosActivosQuery {
	return GetPedidosActivosQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPedidosActivosQuery) Validate() error {
	return q.guard.Validate(ErrGetPedidosActivosQueryIsNotConstructed)
}

// GetPedidosActivosQueryResponse represents an open order in the read model.
// VehiculoID and ConductorID are nil while the order is unassigned.
type GetPedidosActivosQueryResponse struct {
	ID          kernel.UUID
	Descripcion string
	PesoKg      decimal.Decimal
	Estado      string
	VehiculoID  *kernel.UUID
	ConductorID *kernel.UUID
}
