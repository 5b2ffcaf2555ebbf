package queries

import (
	"context"

	"transportes/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetVehiculosLibresQueryHandler retrieves free vehicle information from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetVehiculosLibresQueryHandler struct {
	db *gorm.DB
}

// NewGetVehiculosLibresQueryHandler creates a handler for free vehicle
// queries. Requires a GORM database connection for query execution.
func NewGetVehiculosLibresQueryHandler(db *gorm.DB) GetVehiculosLibresQueryHandler {
	return GetVehiculosLibresQueryHandler{db: db}
}

// Handle executes the query to retrieve all free vehicles.
// Returns active vehicles with no conductor, sorted by plate.
func (h GetVehiculosLibresQueryHandler) Handle(
	ctx context.Context,
	query GetVehiculosLibresQuery,
) ([]GetVehiculosLibresQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehiculos := make([]GetVehiculosLibresQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			placa,
			capacidad_kg
		FROM vehiculos
		WHERE activo = TRUE AND conductor_id IS NULL
		ORDER BY placa
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var vehiculo GetVehiculosLibresQueryResponse
		var id uuid.UUID
		var capacidadKg decimal.Decimal

		err = rows.Scan(
			&id,
			&vehiculo.Placa,
			&capacidadKg,
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
