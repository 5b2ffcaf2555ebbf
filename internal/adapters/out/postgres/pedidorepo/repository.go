package pedidorepo

import (
	"context"
	"errors"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/core/domain/model/pedido"
	"transportes/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPedidoRepository implements PedidoRepository using GORM.
type GormPedidoRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPedidoRepository creates a new GORM order repository.
func NewGormPedidoRepository(db *gorm.DB, tracker aggregateTracker) *GormPedidoRepository {
	return &GormPedidoRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormPedidoRepository) Add(ctx context.Context, aggregate *pedido.Pedido) error {
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

// Update saves an existing order to the database.
func (r *GormPedidoRepository) Update(ctx context.Context, aggregate *pedido.Pedido) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

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

// Get retrieves an order by ID.
func (r *GormPedidoRepository) Get(ctx context.Context, id kernel.UUID) (*pedido.Pedido, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PedidoDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pedido", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActivos retrieves all orders in PENDIENTE or EN_PROGRESO estado,
// oldest first.
func (r *GormPedidoRepository) GetAllActivos(ctx context.Context) ([]*pedido.Pedido, error) {
	var dtos []PedidoDTO
	if err := r.db.WithContext(ctx).
		Where("estado IN ?", []int{int(pedido.Pendiente), int(pedido.EnProgreso)}).
		Order("fecha_creacion").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	pedidos := make([]*pedido.Pedido, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		pedidos = append(pedidos, p)
	}

	return pedidos, nil
}

// CountActivosByVehiculo counts the open orders referencing a vehicle.
func (r *GormPedidoRepository) CountActivosByVehiculo(
	ctx context.Context, vehiculoID kernel.UUID,
) (int64, error) {
	if err := vehiculoID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&PedidoDTO{}).
		Where("vehiculo_id = ? AND estado IN ?",
			vehiculoID.Bytes(), []int{int(pedido.Pendiente), int(pedido.EnProgreso)}).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
