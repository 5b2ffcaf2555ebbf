package queries

import (
	"errors"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetVehiculosPorConductorQueryIsNotConstructed = errors.New(
	"GetVehiculosPorConductorQuery must be created via NewGetVehiculosPorConductorQuery constructor",
)

// GetVehiculosPorConductorQuery retrieves the vehicles currently held by one
// driver.
type GetVehiculosPorConductorQuery struct { //nolint:recvcheck //using for validation
	conductorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVehiculosPorConductorQuery creates a query for a driver's vehicles.
func NewGetVehiculosPorConductorQuery(conductorID kernel.UUID) (GetVehiculosPorConductorQuery, error) {
	if err := conductorID.Validate(); err != nil {
		return GetVehiculosPorConductorQuery{}, err
	}

	return GetVehiculosPorConductorQuery{
		conductorID: conductorID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVehiculosPorConductorQuery) Validate() error {
	return q.guard.Validate(ErrGetVehiculosPorConductorQueryIsNotConstructed)
}

// ConductorID returns the driver whose vehicles are requested.
func (q GetVehiculosPorConductorQuery) ConductorID() kernel.UUID {
	return q.conductorID
}

// GetVehiculosPorConductorQueryResponse represents a held vehicle in the
// read model.
type GetVehiculosPorConductorQueryResponse struct {
	ID          kernel.UUID
	Placa       string
	CapacidadKg decimal.Decimal
	Activo      bool
}
