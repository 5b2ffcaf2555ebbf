package http

import (
	"net/http"

	"transportes/internal/core/application/usecases/commands"
	"transportes/internal/core/application/usecases/queries"
	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/core/domain/model/vehiculo"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type createVehiculoRequest struct {
	Placa       string  `json:"placa"`
	CapacidadKg float64 `json:"capacidad_kg"`
}

type updateVehiculoRequest struct {
	Placa       *string  `json:"placa"`
	CapacidadKg *float64 `json:"capacidad_kg"`
}

type assignConductorRequest struct {
	ConductorID string `json:"conductor_id"`
}

type vehiculoResponse struct {
	ID          string          `json:"id"`
	Placa       string          `json:"placa"`
	CapacidadKg decimal.Decimal `json:"capacidad_kg"`
	ConductorID *string         `json:"conductor_id,omitempty"`
	Activo      bool            `json:"activo"`
}

func toVehiculoResponse(v *vehiculo.Vehiculo) vehiculoResponse {
	response := vehiculoResponse{
		ID:          v.ID().String(),
		Placa:       v.Placa().Valor(),
		CapacidadKg: v.Capacidad().ValorKg(),
		Activo:      v.EstaActivo(),
	}
	if conductorID := v.ConductorID(); conductorID != nil {
		id := conductorID.String()
		response.ConductorID = &id
	}
	return response
}

// CreateVehiculo handles POST /api/v1/vehiculos - registers a new vehicle.
func (s *Server) CreateVehiculo(ctx echo.Context) error {
	var request createVehiculoRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	placa, err := vehiculo.NewPlaca(request.Placa)
	if err != nil {
		return fail(ctx, err)
	}

	capacidad, err := vehiculo.NewCapacidadFromFloat(request.CapacidadKg)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCrearVehiculoCommand(placa, capacidad)
	if err != nil {
		return fail(ctx, err)
	}

	created, err := s.crearVehiculoHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toVehiculoResponse(created))
}

// UpdateVehiculo handles PUT /api/v1/vehiculos/:id - changes plate and/or capacity.
func (s *Server) UpdateVehiculo(ctx echo.Context) error {
	vehiculoID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	var request updateVehiculoRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var placa *vehiculo.Placa
	if request.Placa != nil {
		parsed, placaErr := vehiculo.NewPlaca(*request.Placa)
		if placaErr != nil {
			return fail(ctx, placaErr)
		}
		placa = &parsed
	}

	var capacidad *vehiculo.Capacidad
	if request.CapacidadKg != nil {
		parsed, capErr := vehiculo.NewCapacidadFromFloat(*request.CapacidadKg)
		if capErr != nil {
			return fail(ctx, capErr)
		}
		capacidad = &parsed
	}

	cmd, err := commands.NewActualizarVehiculoCommand(vehiculoID, placa, capacidad)
	if err != nil {
		return fail(ctx, err)
	}

	updated, err := s.actualizarVehiculoHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toVehiculoResponse(updated))
}

// DeactivateVehiculo handles DELETE /api/v1/vehiculos/:id - retires a vehicle.
func (s *Server) DeactivateVehiculo(ctx echo.Context) error {
	vehiculoID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewDesactivarVehiculoCommand(vehiculoID)
	if err != nil {
		return fail(ctx, err)
	}

	deactivated, err := s.desactivarVehiculoHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toVehiculoResponse(deactivated))
}

// AssignConductor handles POST /api/v1/vehiculos/:id/conductor - hands the
// vehicle to a driver.
func (s *Server) AssignConductor(ctx echo.Context) error {
	vehiculoID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	var request assignConductorRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	conductorID, err := kernel.UUIDFromString(request.ConductorID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewAsignarConductorAVehiculoCommand(vehiculoID, conductorID)
	if err != nil {
		return fail(ctx, err)
	}

	assigned, _, err := s.asignarConductorHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toVehiculoResponse(assigned))
}

// ReturnVehiculo handles DELETE /api/v1/vehiculos/:id/conductor - takes the
// vehicle back from its driver.
func (s *Server) ReturnVehiculo(ctx echo.Context) error {
	vehiculoID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewDevolverVehiculoCommand(vehiculoID)
	if err != nil {
		return fail(ctx, err)
	}

	returned, _, err := s.devolverVehiculoHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toVehiculoResponse(returned))
}

// GetVehiculosLibres handles GET /api/v1/vehiculos/libres - lists active
// vehicles without a driver.
func (s *Server) GetVehiculosLibres(ctx echo.Context) error {
	query := queries.NewGetVehiculosLibresQuery()

	libres, err := s.vehiculosLibresHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]vehiculoResponse, len(libres))
	for i, libre := range libres {
		response[i] = vehiculoResponse{
			ID:          libre.ID.String(),
			Placa:       libre.Placa,
			CapacidadKg: libre.CapacidadKg,
			Activo:      true,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
