package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. The assignment
// operations mutate two aggregates at once; the unit of work guarantees both
// saves land in the same transaction, or neither does.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// VehiculoRepository returns a VehiculoRepository bound to the current transaction.
	VehiculoRepository() VehiculoRepository

	// ConductorRepository returns a ConductorRepository bound to the current transaction.
	ConductorRepository() ConductorRepository

	// PedidoRepository returns a PedidoRepository bound to the current transaction.
	PedidoRepository() PedidoRepository

	// UsuarioRepository returns a UsuarioRepository bound to the current transaction.
	UsuarioRepository() UsuarioRepository
}
