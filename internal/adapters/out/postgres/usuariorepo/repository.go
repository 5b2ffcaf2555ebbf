package usuariorepo

import (
	"context"
	"errors"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/core/domain/model/usuario"
	"transportes/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUsuarioRepository implements UsuarioRepository using GORM.
type GormUsuarioRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormUsuarioRepository creates a new GORM user repository.
func NewGormUsuarioRepository(db *gorm.DB, tracker aggregateTracker) *GormUsuarioRepository {
	return &GormUsuarioRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new user to the database, roles included.
func (r *GormUsuarioRepository) Add(ctx context.Context, aggregate *usuario.Usuario) error {
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

// Update saves an existing user to the database. Role grants are replaced
// wholesale so revoked roles leave the child table.
func (r *GormUsuarioRepository) Update(ctx context.Context, aggregate *usuario.Usuario) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	if err := r.db.WithContext(ctx).
		Where("usuario_id = ?", dto.ID).
		Delete(&UsuarioRolDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a user by ID with roles preloaded.
func (r *GormUsuarioRepository) Get(ctx context.Context, id kernel.UUID) (*usuario.Usuario, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UsuarioDTO
	if err := r.db.WithContext(ctx).
		Preload("Roles").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("usuario", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a user by email address.
func (r *GormUsuarioRepository) GetByEmail(ctx context.Context, email string) (*usuario.Usuario, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto UsuarioDTO
	if err := r.db.WithContext(ctx).
		Preload("Roles").
		First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("email", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUsername retrieves a user by login name.
func (r *GormUsuarioRepository) GetByUsername(ctx context.Context, username string) (*usuario.Usuario, error) {
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}

	var dto UsuarioDTO
	if err := r.db.WithContext(ctx).
		Preload("Roles").
		First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("username", username)
		}
		return nil, err
	}

	return toDomain(dto)
}
