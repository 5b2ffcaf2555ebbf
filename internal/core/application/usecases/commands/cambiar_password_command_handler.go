package commands

import (
	"context"
	"errors"

	"transportes/internal/core/domain/model/usuario"
	"transportes/internal/core/ports"
)

// ErrPasswordIncorrecta is returned when the presented current password does
// not match the stored hash.
var ErrPasswordIncorrecta = errors.New("current password does not match")

// CambiarPasswordCommandHandler replaces account passwords, for both the
// self-service change and the admin-driven reset.
type CambiarPasswordCommandHandler struct {
	uowFactory UsuarioUoWFactory
	hasher     ports.PasswordHasher
}

// NewCambiarPasswordCommandHandler creates a handler for password changes.
func NewCambiarPasswordCommandHandler(
	uowFactory UsuarioUoWFactory, hasher ports.PasswordHasher,
) CambiarPasswordCommandHandler {
	return CambiarPasswordCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle loads the account, verifies the current password unless the change
// is a reset, and stores the new hash. Failure modes:
//   - errs.ErrObjectNotFound when the account is missing
//   - ErrPasswordIncorrecta on a current-password mismatch
//
// On success it returns the mutated aggregate.
func (h CambiarPasswordCommandHandler) Handle(
	ctx context.Context, command CambiarPasswordCommand,
) (*usuario.Usuario, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	usuarioRepo := uow.UsuarioRepository()

	aggregate, err := usuarioRepo.Get(ctx, command.UsuarioID())
	if err != nil {
		return nil, err
	}

	if !command.EsReset() {
		coincide, err := h.hasher.Compare(aggregate.PasswordHash(), command.PasswordActual())
		if err != nil {
			return nil, err
		}
		if !coincide {
			return nil, ErrPasswordIncorrecta
		}
	}

	hash, err := h.hasher.Hash(command.PasswordNueva())
	if err != nil {
		return nil, err
	}

	if err = aggregate.CambiarPasswordHash(hash); err != nil {
		return nil, err
	}

	if err = usuarioRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
