package vehiculorepo

import (
	"context"
	"errors"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/core/domain/model/vehiculo"
	"transportes/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVehiculoRepository implements VehiculoRepository using GORM.
type GormVehiculoRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVehiculoRepository creates a new GORM vehicle repository.
func NewGormVehiculoRepository(db *gorm.DB, tracker aggregateTracker) *GormVehiculoRepository {
	return &GormVehiculoRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vehicle to the database.
func (r *GormVehiculoRepository) Add(ctx context.Context, aggregate *vehiculo.Vehiculo) error {
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

// Update saves an existing vehicle to the database.
func (r *GormVehiculoRepository) Update(ctx context.Context, aggregate *vehiculo.Vehiculo) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Save writes every column so a cleared conductor reference becomes NULL
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a vehicle by ID.
func (r *GormVehiculoRepository) Get(ctx context.Context, id kernel.UUID) (*vehiculo.Vehiculo, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehiculoDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehiculo", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByPlaca retrieves a vehicle by its registration plate.
func (r *GormVehiculoRepository) GetByPlaca(
	ctx context.Context, placa vehiculo.Placa,
) (*vehiculo.Vehiculo, error) {
	if err := placa.Validate(); err != nil {
		return nil, err
	}

	var dto VehiculoDTO
	if err := r.db.WithContext(ctx).First(&dto, "placa = ?", placa.Valor()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("placa", placa.Valor())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllLibres retrieves all active vehicles with no conductor assigned,
// sorted by plate for stable output.
func (r *GormVehiculoRepository) GetAllLibres(ctx context.Context) ([]*vehiculo.Vehiculo, error) {
	var dtos []VehiculoDTO
	if err := r.db.WithContext(ctx).
		Where("activo = ? AND conductor_id IS NULL", true).
		Order("placa").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByConductor retrieves the vehicles currently held by a conductor.
func (r *GormVehiculoRepository) GetAllByConductor(
	ctx context.Context, conductorID kernel.UUID,
) ([]*vehiculo.Vehiculo, error) {
	if err := conductorID.Validate(); err != nil {
		return nil, err
	}

	var dtos []VehiculoDTO
	if err := r.db.WithContext(ctx).
		Where("conductor_id = ?", conductorID.Bytes()).
		Order("placa").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []VehiculoDTO) ([]*vehiculo.Vehiculo, error) {
	vehiculos := make([]*vehiculo.Vehiculo, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		vehiculos = append(vehiculos, v)
	}

	return vehiculos, nil
}
