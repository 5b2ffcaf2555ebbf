package queries

import (
	"errors"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/pkg/guard"
)

var ErrGetConductoresSinVehiculosQueryIsNotConstructed = errors.New(
	"GetConductoresSinVehiculosQuery must be created via NewGetConductoresSinVehiculosQuery constructor",
)

// GetConductoresSinVehiculosQuery retrieves all active drivers currently
// holding no vehicle.
type GetConductoresSinVehiculosQuery struct {
	guard guard.ConstructorGuard
}

// NewGetConductoresSinVehiculosQuery creates a query to retrieve idle
// drivers. This is a parameterless query.
func NewGetConductoresSinVehiculosQuery() GetConductoresSinVehiculosQuery {
	return GetConductoresSinVehiculosQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetConductoresSinVehiculosQuery) Validate() error {
	return q.guard.Validate(ErrGetConductoresSinVehiculosQueryIsNotConstructed)
}

// GetConductoresSinVehiculosQueryResponse represents an idle driver in the
// read model.
type GetConductoresSinVehiculosQueryResponse struct {
	ID       kernel.UUID
	Nombre   string
	Licencia string
}
