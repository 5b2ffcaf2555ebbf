// Package ports defines the contracts between the fleet domain and the
// infrastructure: repositories per aggregate, the unit of work transaction
// boundary, and the security collaborators. These interfaces enable
// dependency inversion and testability.
package ports

import (
	"context"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/core/domain/model/vehiculo"
)

// VehiculoRepository defines the persistence contract for vehicle aggregates.
type VehiculoRepository interface {
	// Add persists a new vehicle aggregate to storage.
	// The vehicle must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *vehiculo.Vehiculo) error

	// Update persists changes to an existing vehicle aggregate.
	Update(ctx context.Context, aggregate *vehiculo.Vehiculo) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehiculo.Vehiculo, error)

	// GetByPlaca retrieves a vehicle by its registration plate, used for the
	// duplicate check on creation.
	GetByPlaca(ctx context.Context, placa vehiculo.Placa) (*vehiculo.Vehiculo, error)

	// GetAllLibres retrieves all active vehicles with no conductor assigned.
	GetAllLibres(ctx context.Context) ([]*vehiculo.Vehiculo, error)

	// GetAllByConductor retrieves the vehicles currently held by a conductor.
	GetAllByConductor(ctx context.Context, conductorID kernel.UUID) ([]*vehiculo.Vehiculo, error)
}
