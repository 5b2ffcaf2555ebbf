// Package pedidorepo provides data transfer objects and mapping functions
// for transport order persistence.
package pedidorepo

import (
	"time"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/core/domain/model/pedido"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PedidoDTO represents the database structure for persisting order
// aggregates. The vehicle and conductor references are nullable and always
// set or cleared together.
type PedidoDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Descripcion        string          `gorm:"type:varchar(512);not null"`
	PesoKg             decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	Estado             int             `gorm:"type:int;not null;index"`
	VehiculoID         *uuid.UUID      `gorm:"type:uuid;index"`
	ConductorID        *uuid.UUID      `gorm:"type:uuid;index"`
	DireccionOrigen    string          `gorm:"type:varchar(512);not null"`
	DireccionDestino   string          `gorm:"type:varchar(512);not null"`
	FechaCreacion      time.Time       `gorm:"not null"`
	FechaActualizacion time.Time       `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "pedidos" instead of "pedido_dtos".
func (PedidoDTO) TableName() string {
	return "pedidos"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *pedido.Pedido) PedidoDTO {
	var vehiculoID, conductorID *uuid.UUID
	if aggregate.VehiculoID() != nil {
		raw := aggregate.VehiculoID().Bytes()
		vehiculoID = &raw
	}
	if aggregate.ConductorID() != nil {
		raw := aggregate.ConductorID().Bytes()
		conductorID = &raw
	}

	return PedidoDTO{
		ID:                 aggregate.ID().Bytes(),
		Descripcion:        aggregate.Descripcion(),
		PesoKg:             aggregate.Peso().ValorKg(),
		Estado:             int(aggregate.Estado()),
		VehiculoID:         vehiculoID,
		ConductorID:        conductorID,
		DireccionOrigen:    aggregate.DireccionOrigen(),
		DireccionDestino:   aggregate.DireccionDestino(),
		FechaCreacion:      aggregate.FechaCreacion(),
		FechaActualizacion: aggregate.FechaActualizacion(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestorePedido.
func toDomain(dto PedidoDTO) (*pedido.Pedido, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	peso, err := kernel.NewPeso(dto.PesoKg)
	if err != nil {
		return nil, err
	}

	var vehiculoID, conductorID *kernel.UUID
	if dto.VehiculoID != nil {
		vID, convErr := kernel.UUIDFromBytes((*dto.VehiculoID)[:])
		if convErr != nil {
			return nil, convErr
		}
		vehiculoID = &vID
	}
	if dto.ConductorID != nil {
		cID, convErr := kernel.UUIDFromBytes((*dto.ConductorID)[:])
		if convErr != nil {
			return nil, convErr
		}
		conductorID = &cID
	}

	return pedido.RestorePedido(
		id,
		dto.Descripcion,
		peso,
		pedido.Estado(dto.Estado),
		vehiculoID,
		conductorID,
		dto.DireccionOrigen,
		dto.DireccionDestino,
		dto.FechaCreacion,
		dto.FechaActualizacion,
	)
}
