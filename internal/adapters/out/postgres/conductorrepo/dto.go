// Package conductorrepo provides data transfer objects and mapping functions
// for driver persistence. Drivers are stored with their vehicle list in a
// child table so the aggregate loads and saves as one unit.
package conductorrepo

import (
	"transportes/internal/core/domain/model/conductor"
	"transportes/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ConductorDTO represents the database structure for persisting driver
// aggregates.
type ConductorDTO struct {
	ID        uuid.UUID              `gorm:"type:uuid;primaryKey"`
	Nombre    string                 `gorm:"type:varchar(255);not null"`
	Licencia  string                 `gorm:"type:varchar(64);not null;uniqueIndex"`
	Activo    bool                   `gorm:"not null"`
	Vehiculos []ConductorVehiculoDTO `gorm:"foreignKey:ConductorID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for driver entities.
// Overrides GORM's default naming convention to use "conductores" instead of "conductor_dtos".
func (ConductorDTO) TableName() string {
	return "conductores"
}

// ConductorVehiculoDTO is one row of a driver's vehicle list.
type ConductorVehiculoDTO struct {
	ConductorID uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehiculoID  uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for the vehicle list rows.
func (ConductorVehiculoDTO) TableName() string {
	return "conductor_vehiculos"
}

// fromDomain converts a driver domain aggregate to its database
// representation, including the complete vehicle list.
func fromDomain(aggregate *conductor.Conductor) ConductorDTO {
	conductorID := aggregate.ID().Bytes()
	vehiculos := make([]ConductorVehiculoDTO, 0, aggregate.CantidadVehiculos())

	for _, vehiculoID := range aggregate.VehiculosIDs() {
		vehiculos = append(vehiculos, ConductorVehiculoDTO{
			ConductorID: conductorID,
			VehiculoID:  vehiculoID.Bytes(),
		})
	}

	return ConductorDTO{
		ID:        conductorID,
		Nombre:    aggregate.Nombre(),
		Licencia:  aggregate.Licencia().Numero(),
		Activo:    aggregate.EstaActivo(),
		Vehiculos: vehiculos,
	}
}

// toDomain converts a database DTO to a driver domain aggregate using
// RestoreConductor.
func toDomain(dto ConductorDTO) (*conductor.Conductor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	licencia, err := conductor.NewLicenciaConducir(dto.Licencia)
	if err != nil {
		return nil, err
	}

	vehiculoIDs := make([]kernel.UUID, 0, len(dto.Vehiculos))
	for _, row := range dto.Vehiculos {
		vehiculoID, rowErr := kernel.UUIDFromBytes(row.VehiculoID[:])
		if rowErr != nil {
			return nil, rowErr
		}
		vehiculoIDs = append(vehiculoIDs, vehiculoID)
	}

	return conductor.RestoreConductor(id, dto.Nombre, licencia, vehiculoIDs, dto.Activo)
}
