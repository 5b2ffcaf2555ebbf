package vehiculo_test

import (
	"testing"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/core/domain/model/vehiculo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPlaca(t *testing.T, valor string) vehiculo.Placa {
	t.Helper()
	placa, err := vehiculo.NewPlaca(valor)
	require.NoError(t, err)
	return placa
}

func mustCapacidad(t *testing.T, valorKg float64) vehiculo.Capacidad {
	t.Helper()
	capacidad, err := vehiculo.NewCapacidadFromFloat(valorKg)
	require.NoError(t, err)
	return capacidad
}

func newTestVehiculo(t *testing.T) *vehiculo.Vehiculo {
	t.Helper()
	v, err := vehiculo.NewVehiculo(kernel.NewUUID(), mustPlaca(t, "ABC-123"), mustCapacidad(t, 1000))
	require.NoError(t, err)
	return v
}

func TestNewVehiculo(t *testing.T) {
	t.Run("should create active free vehiculo", func(t *testing.T) {
		v := newTestVehiculo(t)
		require.NoError(t, v.Validate())
		assert.True(t, v.EstaActivo())
		assert.True(t, v.EstaLibre())
		assert.False(t, v.EstaAsignado())
		assert.Nil(t, v.ConductorID())
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		var id kernel.UUID
		_, err := vehiculo.NewVehiculo(id, mustPlaca(t, "ABC-123"), mustCapacidad(t, 1000))
		require.Error(t, err)
	})

	t.Run("should fail with unconstructed placa", func(t *testing.T) {
		var placa vehiculo.Placa
		_, err := vehiculo.NewVehiculo(kernel.NewUUID(), placa, mustCapacidad(t, 1000))
		require.Error(t, err)
		assert.ErrorIs(t, err, vehiculo.ErrPlacaIsNotConstructed)
	})

	t.Run("should fail with unconstructed capacidad", func(t *testing.T) {
		var capacidad vehiculo.Capacidad
		_, err := vehiculo.NewVehiculo(kernel.NewUUID(), mustPlaca(t, "ABC-123"), capacidad)
		require.Error(t, err)
		assert.ErrorIs(t, err, vehiculo.ErrCapacidadIsNotConstructed)
	})
}

func TestRestoreVehiculo(t *testing.T) {
	t.Run("should restore assigned inactive vehiculo", func(t *testing.T) {
		id := kernel.NewUUID()
		conductorID := kernel.NewUUID()

		v, err := vehiculo.RestoreVehiculo(id, mustPlaca(t, "XYZ-999"), mustCapacidad(t, 750), &conductorID, false)
		require.NoError(t, err)
		require.NoError(t, v.Validate())
		assert.False(t, v.EstaActivo())
		assert.True(t, v.EstaAsignadoA(conductorID))
	})

	t.Run("should restore free vehiculo", func(t *testing.T) {
		v, err := vehiculo.RestoreVehiculo(kernel.NewUUID(), mustPlaca(t, "XYZ-999"), mustCapacidad(t, 750), nil, true)
		require.NoError(t, err)
		assert.True(t, v.EstaLibre())
	})

	t.Run("should fail with invalid conductor id", func(t *testing.T) {
		var conductorID kernel.UUID
		_, err := vehiculo.RestoreVehiculo(
			kernel.NewUUID(), mustPlaca(t, "XYZ-999"), mustCapacidad(t, 750), &conductorID, true)
		require.Error(t, err)
	})
}

func TestVehiculoAsignarConductor(t *testing.T) {
	t.Run("should assign conductor to free vehiculo", func(t *testing.T) {
		v := newTestVehiculo(t)
		conductorID := kernel.NewUUID()

		require.NoError(t, v.AsignarConductor(conductorID))
		assert.True(t, v.EstaAsignado())
		assert.True(t, v.EstaAsignadoA(conductorID))
		require.NotNil(t, v.ConductorID())
		assert.True(t, v.ConductorID().IsEqual(conductorID))
	})

	t.Run("should fail when already assigned", func(t *testing.T) {
		v := newTestVehiculo(t)
		primero := kernel.NewUUID()
		require.NoError(t, v.AsignarConductor(primero))

		err := v.AsignarConductor(kernel.NewUUID())
		require.Error(t, err)
		assert.ErrorIs(t, err, vehiculo.ErrVehiculoYaAsignado)

		var yaAsignado *vehiculo.VehiculoYaAsignadoError
		require.ErrorAs(t, err, &yaAsignado)
		assert.True(t, yaAsignado.ConductorID.IsEqual(primero))
	})

	t.Run("should keep assignment when reassigning same conductor", func(t *testing.T) {
		v := newTestVehiculo(t)
		conductorID := kernel.NewUUID()
		require.NoError(t, v.AsignarConductor(conductorID))

		require.NoError(t, v.AsignarConductor(conductorID))
		require.NotNil(t, v.ConductorID())
		assert.True(t, conductorID.IsEqual(*v.ConductorID()))
	})

	t.Run("should fail for inactive vehiculo", func(t *testing.T) {
		v := newTestVehiculo(t)
		require.NoError(t, v.Desactivar())

		err := v.AsignarConductor(kernel.NewUUID())
		require.Error(t, err)
		assert.ErrorIs(t, err, vehiculo.ErrVehiculoInactivo)
	})

	t.Run("should fail with invalid conductor id", func(t *testing.T) {
		v := newTestVehiculo(t)
		var conductorID kernel.UUID
		require.Error(t, v.AsignarConductor(conductorID))
	})
}

func TestVehiculoDesasignarConductor(t *testing.T) {
	t.Run("should release vehiculo from its conductor", func(t *testing.T) {
		v := newTestVehiculo(t)
		conductorID := kernel.NewUUID()
		require.NoError(t, v.AsignarConductor(conductorID))

		require.NoError(t, v.DesasignarConductor(conductorID))
		assert.True(t, v.EstaLibre())
	})

	t.Run("should allow reassignment after release", func(t *testing.T) {
		v := newTestVehiculo(t)
		primero := kernel.NewUUID()
		require.NoError(t, v.AsignarConductor(primero))
		require.NoError(t, v.DesasignarConductor(primero))

		segundo := kernel.NewUUID()
		require.NoError(t, v.AsignarConductor(segundo))
		assert.True(t, v.EstaAsignadoA(segundo))
	})

	t.Run("should fail when vehiculo is free", func(t *testing.T) {
		v := newTestVehiculo(t)
		err := v.DesasignarConductor(kernel.NewUUID())
		require.Error(t, err)
		assert.ErrorIs(t, err, vehiculo.ErrVehiculoNoAsignado)
	})

	t.Run("should fail when another conductor holds the vehiculo", func(t *testing.T) {
		v := newTestVehiculo(t)
		require.NoError(t, v.AsignarConductor(kernel.NewUUID()))

		otro := kernel.NewUUID()
		err := v.DesasignarConductor(otro)
		require.Error(t, err)

		var noAsignado *vehiculo.VehiculoNoAsignadoAConductorError
		require.ErrorAs(t, err, &noAsignado)
		assert.True(t, noAsignado.ConductorID.IsEqual(otro))
	})
}

func TestVehiculoCapacidad(t *testing.T) {
	t.Run("should accept cargo within capacity", func(t *testing.T) {
		v := newTestVehiculo(t)
		peso, err := kernel.NewPesoFromFloat(1000)
		require.NoError(t, err)

		cabe, err := v.TieneCapacidadPara(peso)
		require.NoError(t, err)
		assert.True(t, cabe)
		require.NoError(t, v.ValidarCargaPara(peso))
	})

	t.Run("should reject cargo over capacity", func(t *testing.T) {
		v := newTestVehiculo(t)
		peso, err := kernel.NewPesoFromFloat(1000.5)
		require.NoError(t, err)

		cabe, err := v.TieneCapacidadPara(peso)
		require.NoError(t, err)
		assert.False(t, cabe)

		err = v.ValidarCargaPara(peso)
		require.Error(t, err)

		var insuficiente *vehiculo.CapacidadInsuficienteError
		require.ErrorAs(t, err, &insuficiente)
		assert.True(t, insuficiente.VehiculoID.IsEqual(v.ID()))
	})

	t.Run("should fail with unconstructed peso", func(t *testing.T) {
		v := newTestVehiculo(t)
		var peso kernel.Peso
		_, err := v.TieneCapacidadPara(peso)
		require.Error(t, err)
	})
}

func TestVehiculoDesactivar(t *testing.T) {
	t.Run("should deactivate free vehiculo", func(t *testing.T) {
		v := newTestVehiculo(t)
		require.NoError(t, v.Desactivar())
		assert.False(t, v.EstaActivo())
	})

	t.Run("should fail for assigned vehiculo", func(t *testing.T) {
		v := newTestVehiculo(t)
		require.NoError(t, v.AsignarConductor(kernel.NewUUID()))

		err := v.Desactivar()
		require.Error(t, err)
		assert.ErrorIs(t, err, vehiculo.ErrVehiculoYaAsignado)
	})

	t.Run("should allow reactivation", func(t *testing.T) {
		v := newTestVehiculo(t)
		require.NoError(t, v.Desactivar())
		v.Activar()
		assert.True(t, v.EstaActivo())
	})
}

func TestVehiculoCambios(t *testing.T) {
	t.Run("should change placa", func(t *testing.T) {
		v := newTestVehiculo(t)
		nueva := mustPlaca(t, "ZZZ-001")
		require.NoError(t, v.CambiarPlaca(nueva))
		assert.True(t, v.Placa().IsEqual(nueva))
	})

	t.Run("should change capacidad", func(t *testing.T) {
		v := newTestVehiculo(t)
		nueva := mustCapacidad(t, 2500)
		require.NoError(t, v.CambiarCapacidad(nueva))
		assert.True(t, v.Capacidad().IsEqual(nueva))
	})

	t.Run("should reject unconstructed placa", func(t *testing.T) {
		v := newTestVehiculo(t)
		var placa vehiculo.Placa
		require.Error(t, v.CambiarPlaca(placa))
	})
}

func TestVehiculoValidate(t *testing.T) {
	t.Run("should fail for zero value vehiculo", func(t *testing.T) {
		var v vehiculo.Vehiculo
		err := v.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, vehiculo.ErrVehiculoIsNotConstructed)
	})

	t.Run("should fail for nil vehiculo", func(t *testing.T) {
		var v *vehiculo.Vehiculo
		require.Error(t, v.Validate())
	})
}
