// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. The unit of work maintains a list of aggregates affected by
// a business transaction and coordinates writing out changes atomically.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	// All operations within the same transaction
//	if err := uow.VehiculoRepository().Update(ctx, vehiculo); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	if err := uow.ConductorRepository().Update(ctx, conductor); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance provides an isolated transaction; concurrent
// goroutines must use separate instances.
package postgres

import (
	"context"

	"transportes/internal/adapters/out/postgres/conductorrepo"
	"transportes/internal/adapters/out/postgres/pedidorepo"
	"transportes/internal/adapters/out/postgres/usuariorepo"
	"transportes/internal/adapters/out/postgres/vehiculorepo"
	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Useful for implementing patterns like event sourcing or the outbox pattern.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{} // Will be changed to a common Aggregate interface in the future
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database
// connections. The factory ensures each business operation gets a fresh unit
// of work with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The provided database connection is shared by all instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction
// management. Each instance maintains its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations. Repository accessors return repositories
// bound to the active transaction, or to the main connection when no
// transaction is open.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls on the same instance are safe and will not nest transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// After rollback the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// VehiculoRepository provides access to vehicle persistence operations
// within the unit of work.
func (uow *GormUnitOfWork) VehiculoRepository() ports.VehiculoRepository {
	return vehiculorepo.NewGormVehiculoRepository(uow.conn(), uow)
}

// ConductorRepository provides access to driver persistence operations
// within the unit of work.
func (uow *GormUnitOfWork) ConductorRepository() ports.ConductorRepository {
	return conductorrepo.NewGormConductorRepository(uow.conn(), uow)
}

// PedidoRepository provides access to order persistence operations within
// the unit of work.
func (uow *GormUnitOfWork) PedidoRepository() ports.PedidoRepository {
	return pedidorepo.NewGormPedidoRepository(uow.conn(), uow)
}

// UsuarioRepository provides access to user persistence operations within
// the unit of work.
func (uow *GormUnitOfWork) UsuarioRepository() ports.UsuarioRepository {
	return usuariorepo.NewGormUsuarioRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repository implementations call this when aggregates are added
// or updated.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
