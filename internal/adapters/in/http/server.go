// Package http exposes the fleet use cases over a REST API built on echo.
// Handlers bind the request, build a command or query, delegate to the
// application layer, and translate domain errors to HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"transportes/internal/core/application/usecases/commands"
	"transportes/internal/core/application/usecases/queries"
	"transportes/internal/core/domain/model/conductor"
	"transportes/internal/core/domain/model/pedido"
	"transportes/internal/core/domain/model/usuario"
	"transportes/internal/core/domain/model/vehiculo"
	"transportes/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	crearVehiculoHandler       commands.CrearVehiculoCommandHandler
	actualizarVehiculoHandler  commands.ActualizarVehiculoCommandHandler
	desactivarVehiculoHandler  commands.DesactivarVehiculoCommandHandler
	crearConductorHandler      commands.CrearConductorCommandHandler
	desactivarConductorHandler commands.DesactivarConductorCommandHandler
	asignarConductorHandler    commands.AsignarConductorAVehiculoCommandHandler
	devolverVehiculoHandler    commands.DevolverVehiculoCommandHandler
	crearPedidoHandler         commands.CrearPedidoCommandHandler
	cambiarEstadoHandler       commands.CambiarEstadoPedidoCommandHandler
	cambiarVehiculoHandler     commands.CambiarVehiculoPedidoCommandHandler
	registrarUsuarioHandler    commands.RegistrarUsuarioCommandHandler
	cambiarPasswordHandler     commands.CambiarPasswordCommandHandler
	autenticarHandler          commands.AutenticarUsuarioCommandHandler

	// Query handlers
	vehiculosLibresHandler         queries.GetVehiculosLibresQueryHandler
	conductoresSinVehiculosHandler queries.GetConductoresSinVehiculosQueryHandler
	pedidosActivosHandler          queries.GetPedidosActivosQueryHandler
	vehiculosPorConductorHandler   queries.GetVehiculosPorConductorQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	crearVehiculoHandler commands.CrearVehiculoCommandHandler,
	actualizarVehiculoHandler commands.ActualizarVehiculoCommandHandler,
	desactivarVehiculoHandler commands.DesactivarVehiculoCommandHandler,
	crearConductorHandler commands.CrearConductorCommandHandler,
	desactivarConductorHandler commands.DesactivarConductorCommandHandler,
	asignarConductorHandler commands.AsignarConductorAVehiculoCommandHandler,
	devolverVehiculoHandler commands.DevolverVehiculoCommandHandler,
	crearPedidoHandler commands.CrearPedidoCommandHandler,
	cambiarEstadoHandler commands.CambiarEstadoPedidoCommandHandler,
	cambiarVehiculoHandler commands.CambiarVehiculoPedidoCommandHandler,
	registrarUsuarioHandler commands.RegistrarUsuarioCommandHandler,
	cambiarPasswordHandler commands.CambiarPasswordCommandHandler,
	autenticarHandler commands.AutenticarUsuarioCommandHandler,
	vehiculosLibresHandler queries.GetVehiculosLibresQueryHandler,
	conductoresSinVehiculosHandler queries.GetConductoresSinVehiculosQueryHandler,
	pedidosActivosHandler queries.GetPedidosActivosQueryHandler,
	vehiculosPorConductorHandler queries.GetVehiculosPorConductorQueryHandler,
) *Server {
	return &Server{
		crearVehiculoHandler:           crearVehiculoHandler,
		actualizarVehiculoHandler:      actualizarVehiculoHandler,
		desactivarVehiculoHandler:      desactivarVehiculoHandler,
		crearConductorHandler:          crearConductorHandler,
		desactivarConductorHandler:     desactivarConductorHandler,
		asignarConductorHandler:        asignarConductorHandler,
		devolverVehiculoHandler:        devolverVehiculoHandler,
		crearPedidoHandler:             crearPedidoHandler,
		cambiarEstadoHandler:           cambiarEstadoHandler,
		cambiarVehiculoHandler:         cambiarVehiculoHandler,
		registrarUsuarioHandler:        registrarUsuarioHandler,
		cambiarPasswordHandler:         cambiarPasswordHandler,
		autenticarHandler:              autenticarHandler,
		vehiculosLibresHandler:         vehiculosLibresHandler,
		conductoresSinVehiculosHandler: conductoresSinVehiculosHandler,
		pedidosActivosHandler:          pedidosActivosHandler,
		vehiculosPorConductorHandler:   vehiculosPorConductorHandler,
	}
}

// RegisterRoutes mounts every API route on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/vehiculos", s.CreateVehiculo)
	api.GET("/vehiculos/libres", s.GetVehiculosLibres)
	api.PUT("/vehiculos/:id", s.UpdateVehiculo)
	api.DELETE("/vehiculos/:id", s.DeactivateVehiculo)
	api.POST("/vehiculos/:id/conductor", s.AssignConductor)
	api.DELETE("/vehiculos/:id/conductor", s.ReturnVehiculo)

	api.POST("/conductores", s.CreateConductor)
	api.GET("/conductores/disponibles", s.GetConductoresSinVehiculos)
	api.DELETE("/conductores/:id", s.DeactivateConductor)
	api.GET("/conductores/:id/vehiculos", s.GetVehiculosPorConductor)

	api.POST("/pedidos", s.CreatePedido)
	api.GET("/pedidos/activos", s.GetPedidosActivos)
	api.PUT("/pedidos/:id/estado", s.ChangePedidoEstado)
	api.PUT("/pedidos/:id/vehiculo", s.ChangePedidoVehiculo)

	api.POST("/usuarios", s.RegisterUsuario)
	api.PUT("/usuarios/:id/password", s.ChangePassword)
	api.PUT("/usuarios/:id/password/reset", s.ResetPassword)
	api.POST("/auth/login", s.Login)
}

// statusFromError maps application and domain errors to HTTP status codes.
// Anything unrecognized is treated as an internal error.
func statusFromError(err error) int {
	var capacidadErr *vehiculo.CapacidadInsuficienteError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrCredencialesInvalidas),
		errors.Is(err, commands.ErrPasswordIncorrecta):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, vehiculo.ErrVehiculoYaAsignado),
		errors.Is(err, vehiculo.ErrVehiculoNoAsignado),
		errors.Is(err, vehiculo.ErrVehiculoEnUso),
		errors.Is(err, vehiculo.ErrVehiculoInactivo),
		errors.Is(err, conductor.ErrConductorInactivo),
		errors.Is(err, conductor.ErrConductorTieneVehiculos),
		errors.Is(err, conductor.ErrLimiteVehiculosAlcanzado),
		errors.Is(err, conductor.ErrVehiculoYaEnLista),
		errors.Is(err, conductor.ErrVehiculoNoEnLista),
		errors.Is(err, pedido.ErrTransicionInvalida),
		errors.Is(err, pedido.ErrPedidoNoPendiente),
		errors.Is(err, pedido.ErrAsignacionFaltante),
		errors.Is(err, pedido.ErrPedidoSinConductor),
		errors.Is(err, usuario.ErrUsuarioInactivo),
		errors.As(err, &capacidadErr):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error body for a failed request.
func fail(ctx echo.Context, err error) error {
	status := statusFromError(err)
	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

// badRequest writes a 400 body for requests that cannot be bound or parsed.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
