package http

import (
	"net/http"
	"time"

	"transportes/internal/core/application/usecases/commands"
	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/core/domain/model/usuario"

	"github.com/labstack/echo/v4"
)

type registerUsuarioRequest struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

type changePasswordRequest struct {
	PasswordActual string `json:"password_actual"`
	PasswordNueva  string `json:"password_nueva"`
}

type resetPasswordRequest struct {
	PasswordNueva string `json:"password_nueva"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type usuarioResponse struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	Roles        []string   `json:"roles"`
	Activo       bool       `json:"activo"`
	UltimoAcceso *time.Time `json:"ultimo_acceso,omitempty"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Usuario usuarioResponse `json:"usuario"`
}

func toUsuarioResponse(u *usuario.Usuario) usuarioResponse {
	roles := make([]string, 0, len(u.Roles()))
	for _, rol := range u.Roles() {
		roles = append(roles, rol.String())
	}

	return usuarioResponse{
		ID:           u.ID().String(),
		Username:     u.Username(),
		Email:        u.Email(),
		Roles:        roles,
		Activo:       u.EstaActivo(),
		UltimoAcceso: u.UltimoAcceso(),
	}
}

// RegisterUsuario handles POST /api/v1/usuarios - registers a new account.
func (s *Server) RegisterUsuario(ctx echo.Context) error {
	var request registerUsuarioRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	roles := make([]usuario.Rol, 0, len(request.Roles))
	for _, raw := range request.Roles {
		rol, err := usuario.RolFromString(raw)
		if err != nil {
			return fail(ctx, err)
		}
		roles = append(roles, rol)
	}

	cmd, err := commands.NewRegistrarUsuarioCommand(
		request.Username, request.Password, request.Email, roles)
	if err != nil {
		return fail(ctx, err)
	}

	registered, err := s.registrarUsuarioHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toUsuarioResponse(registered))
}

// ChangePassword handles PUT /api/v1/usuarios/:id/password - replaces the
// account password after checking the current one.
func (s *Server) ChangePassword(ctx echo.Context) error {
	usuarioID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	var request changePasswordRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCambiarPasswordCommand(
		usuarioID, request.PasswordActual, request.PasswordNueva)
	if err != nil {
		return fail(ctx, err)
	}

	changed, err := s.cambiarPasswordHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUsuarioResponse(changed))
}

// ResetPassword handles PUT /api/v1/usuarios/:id/password/reset - replaces
// the account password without checking the current one.
func (s *Server) ResetPassword(ctx echo.Context) error {
	usuarioID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	var request resetPasswordRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewResetPasswordCommand(usuarioID, request.PasswordNueva)
	if err != nil {
		return fail(ctx, err)
	}

	reset, err := s.cambiarPasswordHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUsuarioResponse(reset))
}

// Login handles POST /api/v1/auth/login - authenticates an account and
// returns a signed access token.
func (s *Server) Login(ctx echo.Context) error {
	var request loginRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAutenticarUsuarioCommand(request.Username, request.Password)
	if err != nil {
		return fail(ctx, err)
	}

	autenticacion, err := s.autenticarHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loginResponse{
		Token:   autenticacion.Token,
		Usuario: toUsuarioResponse(autenticacion.Usuario),
	})
}
