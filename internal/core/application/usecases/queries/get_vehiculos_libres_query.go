// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetVehiculosLibresQueryIsNotConstructed = errors.New(
	"GetVehiculosLibresQuery must be created via NewGetVehiculosLibresQuery constructor",
)

// GetVehiculosLibresQuery retrieves all active vehicles with no driver
// assigned, the pool available for hand-over.
//
// Example:
//
//	query := NewGetVehiculosLibresQuery()
//	handler := NewGetVehiculosLibresQueryHandler(db)
//
//	libres, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve free vehicles: %w", err)
//	}
type GetVehiculosLibresQuery struct {
	guard guard.ConstructorGuard
}

// NewGetVehiculosLibresQuery creates a query to retrieve free vehicles.
// This is a parameterless query.
func NewGetVehiculosLibresQuery() GetVehiculosLibresQuery {
	return GetVehiculosLibresQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetVehiculosLibresQuery) Validate() error {
	return q.guard.Validate(ErrGetVehiculosLibresQueryIsNotConstructed)
}

// GetVehiculosLibresQueryResponse represents a free vehicle in the read model.
type GetVehiculosLibresQueryResponse struct {
	ID          kernel.UUID
	Placa       string
	CapacidadKg decimal.Decimal
}
