package http

import (
	"errors"
	"net/http"
	"testing"

	"transportes/internal/core/application/usecases/commands"
	"transportes/internal/core/domain/model/conductor"
	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/core/domain/model/pedido"
	"transportes/internal/core/domain/model/vehiculo"
	"transportes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	t.Run("should map missing objects to 404", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("vehiculoID", kernel.NewUUID())

		assert.Equal(t, http.StatusNotFound, statusFromError(err))
	})

	t.Run("should map credential failures to 401", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, statusFromError(commands.ErrCredencialesInvalidas))
		assert.Equal(t, http.StatusUnauthorized, statusFromError(commands.ErrPasswordIncorrecta))
	})

	t.Run("should map business rule violations to 409", func(t *testing.T) {
		conflictos := []error{
			errs.NewObjectAlreadyExistsError("placa", "ABC-123"),
			vehiculo.ErrVehiculoYaAsignado,
			vehiculo.ErrVehiculoEnUso,
			vehiculo.ErrVehiculoInactivo,
			conductor.ErrLimiteVehiculosAlcanzado,
			conductor.ErrConductorTieneVehiculos,
			conductor.ErrVehiculoYaEnLista,
			conductor.ErrVehiculoNoEnLista,
			pedido.ErrTransicionInvalida,
			pedido.ErrPedidoNoPendiente,
			&vehiculo.CapacidadInsuficienteError{},
		}

		for _, err := range conflictos {
			assert.Equal(t, http.StatusConflict, statusFromError(err), "error: %v", err)
		}
	})

	t.Run("should map wrapped rich errors through their sentinel", func(t *testing.T) {
		err := &pedido.TransicionInvalidaError{De: pedido.Completado, A: pedido.Cancelado}

		assert.Equal(t, http.StatusConflict, statusFromError(err))
	})

	t.Run("should map invalid values to 400", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, statusFromError(errs.NewValueIsRequiredError("placa")))
		assert.Equal(t, http.StatusBadRequest,
			statusFromError(errs.NewValueIsInvalidErrorWithCause("placa", errors.New("bad format"))))
	})

	t.Run("should map unknown errors to 500", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, statusFromError(errors.New("boom")))
	})
}
