package ports

import (
	"context"

	"transportes/internal/core/domain/model/conductor"
	"transportes/internal/core/domain/model/kernel"
)

// ConductorRepository defines the persistence contract for driver aggregates.
// Drivers are stored with their complete vehicle list.
type ConductorRepository interface {
	// Add persists a new driver aggregate to storage.
	// The driver must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *conductor.Conductor) error

	// Update persists changes to an existing driver aggregate, including
	// additions to and removals from its vehicle list.
	Update(ctx context.Context, aggregate *conductor.Conductor) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*conductor.Conductor, error)

	// GetByLicencia retrieves a driver by license number, used for the
	// duplicate check on creation.
	GetByLicencia(ctx context.Context, licencia conductor.LicenciaConducir) (*conductor.Conductor, error)

	// GetAllSinVehiculos retrieves all active drivers holding no vehicle.
	GetAllSinVehiculos(ctx context.Context) ([]*conductor.Conductor, error)
}
