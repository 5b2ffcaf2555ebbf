package commands

import (
	"context"
	"errors"
	"time"

	"transportes/internal/core/domain/model/usuario"
	"transportes/internal/core/ports"
	"transportes/internal/pkg/errs"
)

// ErrCredencialesInvalidas is returned for both an unknown username and a
// password mismatch, so a caller cannot probe which accounts exist.
var ErrCredencialesInvalidas = errors.New("invalid credentials")

// Autenticacion is the successful outcome of a login: the account with its
// access recorded, and a signed token.
type Autenticacion struct {
	Usuario *usuario.Usuario
	Token   string
}

// AutenticarUsuarioCommandHandler authenticates users and issues access
// tokens, recording the login on the account.
type AutenticarUsuarioCommandHandler struct {
	uowFactory UsuarioUoWFactory
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
}

// NewAutenticarUsuarioCommandHandler creates a handler for login attempts.
func NewAutenticarUsuarioCommandHandler(
	uowFactory UsuarioUoWFactory,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
) AutenticarUsuarioCommandHandler {
	return AutenticarUsuarioCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		issuer:     issuer,
	}
}

// Handle verifies the credentials, records the access, and issues a token.
// Failure modes:
//   - ErrCredencialesInvalidas for unknown usernames and wrong passwords
//   - usuario.ErrUsuarioInactivo for deactivated accounts
func (h AutenticarUsuarioCommandHandler) Handle(
	ctx context.Context, command AutenticarUsuarioCommand,
) (*Autenticacion, error) {
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

	aggregate, err := usuarioRepo.GetByUsername(ctx, command.Username())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrCredencialesInvalidas
	}
	if err != nil {
		return nil, err
	}

	coincide, err := h.hasher.Compare(aggregate.PasswordHash(), command.Password())
	if err != nil {
		return nil, err
	}
	if !coincide {
		return nil, ErrCredencialesInvalidas
	}

	if err = aggregate.RegistrarAcceso(); err != nil {
		return nil, err
	}

	if err = usuarioRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	token, err := h.issuer.Issue(aggregate, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return &Autenticacion{
		Usuario: aggregate,
		Token:   token,
	}, nil
}
