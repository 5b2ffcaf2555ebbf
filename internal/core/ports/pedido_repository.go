package ports

import (
	"context"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/core/domain/model/pedido"
)

// PedidoRepository defines the persistence contract for order aggregates.
type PedidoRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *pedido.Pedido) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *pedido.Pedido) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*pedido.Pedido, error)

	// GetAllActivos retrieves all orders in PENDIENTE or EN_PROGRESO estado.
	GetAllActivos(ctx context.Context) ([]*pedido.Pedido, error)

	// CountActivosByVehiculo counts the open orders referencing a vehicle.
	// Returning a vehicle is blocked while this count is above zero.
	CountActivosByVehiculo(ctx context.Context, vehiculoID kernel.UUID) (int64, error)
}
