package http

import (
	"net/http"
	"time"

	"transportes/internal/core/application/usecases/commands"
	"transportes/internal/core/application/usecases/queries"
	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/core/domain/model/pedido"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type createPedidoRequest struct {
	Descripcion      string  `json:"descripcion"`
	PesoKg           float64 `json:"peso_kg"`
	VehiculoID       string  `json:"vehiculo_id"`
	ConductorID      string  `json:"conductor_id"`
	DireccionOrigen  string  `json:"direccion_origen"`
	DireccionDestino string  `json:"direccion_destino"`
}

type changePedidoEstadoRequest struct {
	Estado string `json:"estado"`
}

type changePedidoVehiculoRequest struct {
	VehiculoID string `json:"vehiculo_id"`
}

type pedidoResponse struct {
	ID                 string          `json:"id"`
	Descripcion        string          `json:"descripcion"`
	PesoKg             decimal.Decimal `json:"peso_kg"`
	Estado             string          `json:"estado"`
	VehiculoID         *string         `json:"vehiculo_id,omitempty"`
	ConductorID        *string         `json:"conductor_id,omitempty"`
	DireccionOrigen    string          `json:"direccion_origen"`
	DireccionDestino   string          `json:"direccion_destino"`
	FechaCreacion      time.Time       `json:"fecha_creacion"`
	FechaActualizacion time.Time       `json:"fecha_actualizacion"`
}

type pedidoActivoResponse struct {
	ID          string          `json:"id"`
	Descripcion string          `json:"descripcion"`
	PesoKg      decimal.Decimal `json:"peso_kg"`
	Estado      string          `json:"estado"`
	VehiculoID  *string         `json:"vehiculo_id,omitempty"`
	ConductorID *string         `json:"conductor_id,omitempty"`
}

func toPedidoResponse(p *pedido.Pedido) pedidoResponse {
	response := pedidoResponse{
		ID:                 p.ID().String(),
		Descripcion:        p.Descripcion(),
		PesoKg:             p.Peso().ValorKg(),
		Estado:             p.Estado().String(),
		DireccionOrigen:    p.DireccionOrigen(),
		DireccionDestino:   p.DireccionDestino(),
		FechaCreacion:      p.FechaCreacion(),
		FechaActualizacion: p.FechaActualizacion(),
	}
	if vehiculoID := p.VehiculoID(); vehiculoID != nil {
		id := vehiculoID.String()
		response.VehiculoID = &id
	}
	if conductorID := p.ConductorID(); conductorID != nil {
		id := conductorID.String()
		response.ConductorID = &id
	}
	return response
}

// CreatePedido handles POST /api/v1/pedidos - creates a transport order bound
// to a vehicle and its driver.
func (s *Server) CreatePedido(ctx echo.Context) error {
	var request createPedidoRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	peso, err := kernel.NewPesoFromFloat(request.PesoKg)
	if err != nil {
		return fail(ctx, err)
	}

	vehiculoID, err := kernel.UUIDFromString(request.VehiculoID)
	if err != nil {
		return fail(ctx, err)
	}

	conductorID, err := kernel.UUIDFromString(request.ConductorID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCrearPedidoCommand(
		request.Descripcion,
		peso,
		vehiculoID,
		conductorID,
		request.DireccionOrigen,
		request.DireccionDestino,
	)
	if err != nil {
		return fail(ctx, err)
	}

	created, err := s.crearPedidoHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toPedidoResponse(created))
}

// ChangePedidoEstado handles PUT /api/v1/pedidos/:id/estado - moves the order
// through its lifecycle.
func (s *Server) ChangePedidoEstado(ctx echo.Context) error {
	pedidoID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	var request changePedidoEstadoRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	estado, err := pedido.EstadoFromString(request.Estado)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCambiarEstadoPedidoCommand(pedidoID, estado)
	if err != nil {
		return fail(ctx, err)
	}

	changed, err := s.cambiarEstadoHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPedidoResponse(changed))
}

// ChangePedidoVehiculo handles PUT /api/v1/pedidos/:id/vehiculo - moves a
// pending order onto another vehicle of the same driver.
func (s *Server) ChangePedidoVehiculo(ctx echo.Context) error {
	pedidoID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	var request changePedidoVehiculoRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vehiculoID, err := kernel.UUIDFromString(request.VehiculoID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCambiarVehiculoPedidoCommand(pedidoID, vehiculoID)
	if err != nil {
		return fail(ctx, err)
	}

	changed, err := s.cambiarVehiculoHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPedidoResponse(changed))
}

// GetPedidosActivos handles GET /api/v1/pedidos/activos - lists orders that
// are pending or in progress.
func (s *Server) GetPedidosActivos(ctx echo.Context) error {
	query := queries.NewGetPedidosActivosQuery()

	activos, err := s.pedidosActivosHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]pedidoActivoResponse, len(activos))
	for i, activo := range activos {
		item := pedidoActivoResponse{
			ID:          activo.ID.String(),
			Descripcion: activo.Descripcion,
			PesoKg:      activo.PesoKg,
			Estado:      activo.Estado,
		}
		if activo.VehiculoID != nil {
			id := activo.VehiculoID.String()
			item.VehiculoID = &id
		}
		if activo.ConductorID != nil {
			id := activo.ConductorID.String()
			item.ConductorID = &id
		}
		response[i] = item
	}

	return ctx.JSON(http.StatusOK, response)
}
