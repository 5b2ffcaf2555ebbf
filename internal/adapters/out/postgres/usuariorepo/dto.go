// Package usuariorepo provides data transfer objects and mapping functions
// for user account persistence. Roles live in a child table keyed by user
// and role.
package usuariorepo

import (
	"time"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/core/domain/model/usuario"

	"github.com/google/uuid"
)

// UsuarioDTO represents the database structure for persisting user accounts.
type UsuarioDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Username      string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	PasswordHash  string          `gorm:"type:varchar(255);not null"`
	Email         string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	Activo        bool            `gorm:"not null"`
	FechaCreacion time.Time       `gorm:"not null"`
	UltimoAcceso  *time.Time      `gorm:""`
	Roles         []UsuarioRolDTO `gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for user entities.
// Overrides GORM's default naming convention to use "usuarios" instead of "usuario_dtos".
func (UsuarioDTO) TableName() string {
	return "usuarios"
}

// UsuarioRolDTO is one granted role of a user account.
type UsuarioRolDTO struct {
	UsuarioID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Rol       int       `gorm:"type:int;primaryKey"`
}

// TableName specifies the database table name for the role rows.
func (UsuarioRolDTO) TableName() string {
	return "usuario_roles"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *usuario.Usuario) UsuarioDTO {
	usuarioID := aggregate.ID().Bytes()

	roles := make([]UsuarioRolDTO, 0, len(aggregate.Roles()))
	for _, rol := range aggregate.Roles() {
		roles = append(roles, UsuarioRolDTO{
			UsuarioID: usuarioID,
			Rol:       int(rol),
		})
	}

	var ultimoAcceso *time.Time
	if aggregate.UltimoAcceso() != nil {
		acceso := *aggregate.UltimoAcceso()
		ultimoAcceso = &acceso
	}

	return UsuarioDTO{
		ID:            usuarioID,
		Username:      aggregate.Username(),
		PasswordHash:  aggregate.PasswordHash(),
		Email:         aggregate.Email(),
		Activo:        aggregate.EstaActivo(),
		FechaCreacion: aggregate.FechaCreacion(),
		UltimoAcceso:  ultimoAcceso,
		Roles:         roles,
	}
}

// toDomain converts a database DTO to a user domain aggregate using
// RestoreUsuario.
func toDomain(dto UsuarioDTO) (*usuario.Usuario, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	roles := make([]usuario.Rol, 0, len(dto.Roles))
	for _, row := range dto.Roles {
		roles = append(roles, usuario.Rol(row.Rol))
	}

	return usuario.RestoreUsuario(
		id,
		dto.Username,
		dto.PasswordHash,
		dto.Email,
		roles,
		dto.Activo,
		dto.FechaCreacion,
		dto.UltimoAcceso,
	)
}
