// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"transportes/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// VehiculoRepoFactory provides access to the vehicle repository within a transaction.
	VehiculoRepoFactory interface {
		VehiculoRepository() ports.VehiculoRepository
	}

	// ConductorRepoFactory provides access to the driver repository within a transaction.
	ConductorRepoFactory interface {
		ConductorRepository() ports.ConductorRepository
	}

	// PedidoRepoFactory provides access to the order repository within a transaction.
	PedidoRepoFactory interface {
		PedidoRepository() ports.PedidoRepository
	}

	// UsuarioRepoFactory provides access to the user repository within a transaction.
	UsuarioRepoFactory interface {
		UsuarioRepository() ports.UsuarioRepository
	}

	// VehiculoUoW manages transactions for vehicle-only operations.
	VehiculoUoW interface {
		TxManager
		VehiculoRepoFactory
	}

	// VehiculoUoWFactory creates new vehicle unit of work instances.
	VehiculoUoWFactory interface {
		Create() VehiculoUoW
	}

	// ConductorUoW manages transactions for driver-only operations.
	ConductorUoW interface {
		TxManager
		ConductorRepoFactory
	}

	// ConductorUoWFactory creates new driver unit of work instances.
	ConductorUoWFactory interface {
		Create() ConductorUoW
	}

	// PedidoUoW manages transactions for order-only operations.
	PedidoUoW interface {
		TxManager
		PedidoRepoFactory
	}

	// PedidoUoWFactory creates new order unit of work instances.
	PedidoUoWFactory interface {
		Create() PedidoUoW
	}

	// UsuarioUoW manages transactions for user account operations.
	UsuarioUoW interface {
		TxManager
		UsuarioRepoFactory
	}

	// UsuarioUoWFactory creates new user unit of work instances.
	UsuarioUoWFactory interface {
		Create() UsuarioUoW
	}

	// FlotaUoW manages transactions across the fleet aggregates. Used by the
	// assignment and order commands, which mutate a vehicle, its driver, and
	// sometimes an order within the same atomic boundary.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   vehiculoRepo := uow.VehiculoRepository()
	//   conductorRepo := uow.ConductorRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	FlotaUoW interface {
		TxManager
		VehiculoRepoFactory
		ConductorRepoFactory
		PedidoRepoFactory
	}

	// FlotaUoWFactory creates new unit of work instances for cross-aggregate operations.
	FlotaUoWFactory interface {
		Create() FlotaUoW
	}
)
