package queries

import (
	"context"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/core/domain/model/pedido"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetPedidosActivosQueryHandler retrieves open order information from the
// database. Filters out COMPLETADO and CANCELADO orders to show the active
// transport workload.
type GetPedidosActivosQueryHandler struct {
	db *gorm.DB
}

// NewGetPedidosActivosQueryHandler creates a handler for open order queries.
// Requires a GORM database connection for query execution.
func NewGetPedidosActivosQueryHandler(db *gorm.DB) GetPedidosActivosQueryHandler {
	return GetPedidosActivosQueryHandler{db: db}
}

// Handle executes the query to retrieve all open orders.
// Returns orders in PENDIENTE or EN_PROGRESO estado, oldest first.
func (h GetPedidosActivosQueryHandler) Handle(
	ctx context.Context,
	query GetPedidosActivosQuery,
) ([]GetPedidosActivosQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pedidos := make([]GetPedidosActivosQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			descripcion,
			peso_kg,
			estado,
			vehiculo_id,
			conductor_id
		FROM pedidos
		WHERE estado IN (?, ?)
		ORDER BY fecha_creacion
	`, pedido.Pendiente, pedido.EnProgreso).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPedidosActivosQueryResponse
		var id uuid.UUID
		var pesoKg decimal.Decimal
		var estado int
		var vehiculoID, conductorID *uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Descripcion,
			&pesoKg,
			&estado,
			&vehiculoID,
			&conductorID,
		)
		if err != nil {
			return nil, err
		}

		pedidoID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = pedidoID
		resp.PesoKg = pesoKg
		resp.Estado = pedido.Estado(estado).String()

		if vehiculoID != nil {
			converted, convErr := kernel.UUIDFromBytes((*vehiculoID)[:])
			if convErr != nil {
				return nil, convErr
			}
			resp.VehiculoID = &converted
		}
		if conductorID != nil {
			converted, convErr := kernel.UUIDFromBytes((*conductorID)[:])
			if convErr != nil {
				return nil, convErr
			}
			resp.ConductorID = &converted
		}

		pedidos = append(pedidos, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pedidos, nil
}
