package commands

import (
	"context"
	"errors"

	"transportes/internal/core/domain/model/usuario"
	"transportes/internal/core/ports"
	"transportes/internal/pkg/errs"
)

// RegistrarUsuarioCommandHandler registers user accounts, rejecting
// duplicate usernames and emails and hashing the password before it touches
// the domain.
type RegistrarUsuarioCommandHandler struct {
	uowFactory UsuarioUoWFactory
	hasher     ports.PasswordHasher
}

// NewRegistrarUsuarioCommandHandler creates a handler for user registration.
func NewRegistrarUsuarioCommandHandler(
	uowFactory UsuarioUoWFactory, hasher ports.PasswordHasher,
) RegistrarUsuarioCommandHandler {
	return RegistrarUsuarioCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle hashes the password, creates the account, and persists it. A user
// with the same username or email fails with errs.ErrObjectAlreadyExists.
// On success it returns the created aggregate.
func (h RegistrarUsuarioCommandHandler) Handle(
	ctx context.Context, command RegistrarUsuarioCommand,
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

	existente, err := usuarioRepo.GetByUsername(ctx, command.Username())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existente != nil {
		return nil, errs.NewObjectAlreadyExistsError("username", command.Username())
	}

	existente, err = usuarioRepo.GetByEmail(ctx, command.Email())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existente != nil {
		return nil, errs.NewObjectAlreadyExistsError("email", command.Email())
	}

	hash, err := h.hasher.Hash(command.Password())
	if err != nil {
		return nil, err
	}

	nuevo, err := usuario.NewUsuario(
		command.UsuarioID(), command.Username(), hash, command.Email(), command.Roles())
	if err != nil {
		return nil, err
	}

	if err = usuarioRepo.Add(ctx, nuevo); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return nuevo, nil
}
