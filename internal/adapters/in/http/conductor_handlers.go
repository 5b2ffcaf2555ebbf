package http

import (
	"net/http"

	"transportes/internal/core/application/usecases/commands"
	"transportes/internal/core/application/usecases/queries"
	"transportes/internal/core/domain/model/conductor"
	"transportes/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type createConductorRequest struct {
	Nombre   string `json:"nombre"`
	Licencia string `json:"licencia"`
}

type conductorResponse struct {
	ID           string   `json:"id"`
	Nombre       string   `json:"nombre"`
	Licencia     string   `json:"licencia"`
	VehiculosIDs []string `json:"vehiculos_ids"`
	Activo       bool     `json:"activo"`
}

type conductorVehiculoResponse struct {
	ID          string          `json:"id"`
	Placa       string          `json:"placa"`
	CapacidadKg decimal.Decimal `json:"capacidad_kg"`
	Activo      bool            `json:"activo"`
}

func toConductorResponse(c *conductor.Conductor) conductorResponse {
	vehiculosIDs := make([]string, 0, c.CantidadVehiculos())
	for _, vehiculoID := range c.VehiculosIDs() {
		vehiculosIDs = append(vehiculosIDs, vehiculoID.String())
	}

	return conductorResponse{
		ID:           c.ID().String(),
		Nombre:       c.Nombre(),
		Licencia:     c.Licencia().Numero(),
		VehiculosIDs: vehiculosIDs,
		Activo:       c.EstaActivo(),
	}
}

// CreateConductor handles POST /api/v1/conductores - registers a new driver.
func (s *Server) CreateConductor(ctx echo.Context) error {
	var request createConductorRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	licencia, err := conductor.NewLicenciaConducir(request.Licencia)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCrearConductorCommand(request.Nombre, licencia)
	if err != nil {
		return fail(ctx, err)
	}

	created, err := s.crearConductorHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toConductorResponse(created))
}

// DeactivateConductor handles DELETE /api/v1/conductores/:id - retires a
// driver that holds no vehicles.
func (s *Server) DeactivateConductor(ctx echo.Context) error {
	conductorID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewDesactivarConductorCommand(conductorID)
	if err != nil {
		return fail(ctx, err)
	}

	deactivated, err := s.desactivarConductorHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toConductorResponse(deactivated))
}

// GetConductoresSinVehiculos handles GET /api/v1/conductores/disponibles -
// lists active drivers holding no vehicles.
func (s *Server) GetConductoresSinVehiculos(ctx echo.Context) error {
	query := queries.NewGetConductoresSinVehiculosQuery()

	disponibles, err := s.conductoresSinVehiculosHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]conductorResponse, len(disponibles))
	for i, disponible := range disponibles {
		response[i] = conductorResponse{
			ID:           disponible.ID.String(),
			Nombre:       disponible.Nombre,
			Licencia:     disponible.Licencia,
			VehiculosIDs: make([]string, 0),
			Activo:       true,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetVehiculosPorConductor handles GET /api/v1/conductores/:id/vehiculos -
// lists the vehicles a driver currently holds.
func (s *Server) GetVehiculosPorConductor(ctx echo.Context) error {
	conductorID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetVehiculosPorConductorQuery(conductorID)
	if err != nil {
		return fail(ctx, err)
	}

	held, err := s.vehiculosPorConductorHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]conductorVehiculoResponse, len(held))
	for i, v := range held {
		response[i] = conductorVehiculoResponse{
			ID:          v.ID.String(),
			Placa:       v.Placa,
			CapacidadKg: v.CapacidadKg,
			Activo:      v.Activo,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
