package queries

import (
	"context"

	"transportes/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetVehiculosPorConductorQueryHandler retrieves the vehicles held by a
// driver from the database.
type GetVehiculosPorConductorQueryHandler struct {
	db *gorm.DB
}

// NewGetVehiculosPorConductorQueryHandler creates a handler for held vehicle
// queries. Requires a GORM database connection for query execution.
func NewGetVehiculosPorConductorQueryHandler(db *gorm.DB) GetVehiculosPorConductorQueryHandler {
	return GetVehiculosPorConductorQueryHandler{db: db}
}

// Handle executes the query to retrieve a driver's vehicles, sorted by
// plate. An unknown driver yields an empty slice, not an error.
func (h GetVehiculosPorConductorQueryHandler) Handle(
	ctx context.Context,
	query GetVehiculosPorConductorQuery,
) ([]GetVehiculosPorConductorQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehiculos := make([]GetVehiculosPorConductorQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			placa,
			capacidad_kg,
			activo
		FROM vehiculos
		WHERE conductor_id = ?
		ORDER BY placa
	`, query.ConductorID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var vehiculo GetVehiculosPorConductorQueryResponse
		var id uuid.UUID
		var capacidadKg decimal.Decimal

		err = rows.Scan(
			&id,
			&vehiculo.Placa,
			&capacidadKg,
			&vehiculo.Activo,
		)
		if err != nil {
			return nil, err
		}

		vehiculoID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		vehiculo.ID = vehiculoID
		vehiculo.CapacidadKg = capacidadKg
		vehiculos = append(vehiculos, vehiculo)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehiculos, nil
}
