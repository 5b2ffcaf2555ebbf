package queries

import (
	"context"

	"transportes/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetConductoresSinVehiculosQueryHandler retrieves idle driver information
// from the database. A driver is idle when no row in conductor_vehiculos
// references them.
type GetConductoresSinVehiculosQueryHandler struct {
	db *gorm.DB
}

// NewGetConductoresSinVehiculosQueryHandler creates a handler for idle
// driver queries. Requires a GORM database connection for query execution.
func NewGetConductoresSinVehiculosQueryHandler(db *gorm.DB) GetConductoresSinVehiculosQueryHandler {
	return GetConductoresSinVehiculosQueryHandler{db: db}
}

// Handle executes the query to retrieve all idle drivers.
// Returns active drivers with an empty vehicle list, sorted by name.
func (h GetConductoresSinVehiculosQueryHandler) Handle(
	ctx context.Context,
	query GetConductoresSinVehiculosQuery,
) ([]GetConductoresSinVehiculosQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conductores := make([]GetConductoresSinVehiculosQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.nombre,
			c.licencia
		FROM conductores c
		WHERE c.activo = TRUE
		  AND NOT EXISTS (
			SELECT 1 FROM conductor_vehiculos cv WHERE cv.conductor_id = c.id
		  )
		ORDER BY c.nombre
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var conductor GetConductoresSinVehiculosQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&conductor.Nombre,
			&conductor.Licencia,
		)
		if err != nil {
			return nil, err
		}

		conductorID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		conductor.ID = conductorID
		conductores = append(conductores, conductor)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return conductores, nil
}
