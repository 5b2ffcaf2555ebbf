// Package vehiculorepo provides data transfer objects and mapping functions
// for vehicle persistence. This package implements the repository pattern for
// the vehicle domain aggregate, handling the conversion between domain
// entities and database representations.
package vehiculorepo

import (
	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/core/domain/model/vehiculo"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VehiculoDTO represents the database structure for persisting vehicle
// aggregates. The conductor reference is nullable, a free vehicle has none.
type VehiculoDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Placa       string          `gorm:"type:varchar(7);not null;uniqueIndex"`
	CapacidadKg decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	ConductorID *uuid.UUID      `gorm:"type:uuid;index"`
	Activo      bool            `gorm:"not null"`
}

// TableName specifies the database table name for vehicle entities.
// Overrides GORM's default naming convention to use "vehiculos" instead of "vehiculo_dtos".
func (VehiculoDTO) TableName() string {
	return "vehiculos"
}

// fromDomain converts a vehicle domain aggregate to its database representation.
func fromDomain(aggregate *vehiculo.Vehiculo) VehiculoDTO {
	var conductorID *uuid.UUID
	if aggregate.ConductorID() != nil {
		raw := aggregate.ConductorID().Bytes()
		conductorID = &raw
	}

	return VehiculoDTO{
		ID:          aggregate.ID().Bytes(),
		Placa:       aggregate.Placa().Valor(),
		CapacidadKg: aggregate.Capacidad().ValorKg(),
		ConductorID: conductorID,
		Activo:      aggregate.EstaActivo(),
	}
}

// toDomain converts a database DTO to a vehicle domain aggregate using
// RestoreVehiculo.
func toDomain(dto VehiculoDTO) (*vehiculo.Vehiculo, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	placa, err := vehiculo.NewPlaca(dto.Placa)
	if err != nil {
		return nil, err
	}

	capacidad, err := vehiculo.NewCapacidad(dto.CapacidadKg)
	if err != nil {
		return nil, err
	}

	var conductorID *kernel.UUID
	if dto.ConductorID != nil {
		cID, convErr := kernel.UUIDFromBytes((*dto.ConductorID)[:])
		if convErr != nil {
			return nil, convErr
		}
		conductorID = &cID
	}

	return vehiculo.RestoreVehiculo(id, placa, capacidad, conductorID, dto.Activo)
}
