package conductorrepo

import (
	"context"
	"errors"

	"transportes/internal/core/domain/model/conductor"
	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormConductorRepository implements ConductorRepository using GORM.
type GormConductorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormConductorRepository creates a new GORM driver repository.
func NewGormConductorRepository(db *gorm.DB, tracker aggregateTracker) *GormConductorRepository {
	return &GormConductorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver to the database, vehicle list included.
func (r *GormConductorRepository) Add(ctx context.Context, aggregate *conductor.Conductor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing driver to the database. The vehicle list is
// replaced wholesale: rows removed from the aggregate must also leave the
// child table, which an association save alone would not do.
func (r *GormConductorRepository) Update(ctx context.Context, aggregate *conductor.Conductor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	if err := r.db.WithContext(ctx).
		Where("conductor_id = ?", dto.ID).
		Delete(&ConductorVehiculoDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a driver by ID with the vehicle list preloaded.
func (r *GormConductorRepository) Get(ctx context.Context, id kernel.UUID) (*conductor.Conductor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ConductorDTO
	if err := r.db.WithContext(ctx).
		Preload("Vehiculos").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("conductor", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByLicencia retrieves a driver by license number.
func (r *GormConductorRepository) GetByLicencia(
	ctx context.Context, licencia conductor.LicenciaConducir,
) (*conductor.Conductor, error) {
	if err := licencia.Validate(); err != nil {
		return nil, err
	}

	var dto ConductorDTO
	if err := r.db.WithContext(ctx).
		Preload("Vehiculos").
		First(&dto, "licencia = ?", licencia.Numero()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("licencia", licencia.Numero())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllSinVehiculos retrieves all active drivers whose vehicle list is
// empty, sorted by name for stable output.
func (r *GormConductorRepository) GetAllSinVehiculos(ctx context.Context) ([]*conductor.Conductor, error) {
	var dtos []ConductorDTO
	if err := r.db.WithContext(ctx).
		Preload("Vehiculos").
		Where(`activo = ? AND NOT EXISTS (
			SELECT 1 FROM conductor_vehiculos cv WHERE cv.conductor_id = conductores.id
		)`, true).
		Order("nombre").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	conductores := make([]*conductor.Conductor, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		conductores = append(conductores, c)
	}

	return conductores, nil
}
