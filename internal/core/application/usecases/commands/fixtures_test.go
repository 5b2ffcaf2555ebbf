package commands_test

import (
	"testing"
	"time"

	"transportes/internal/core/domain/model/conductor"
	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/core/domain/model/pedido"
	"transportes/internal/core/domain/model/usuario"
	"transportes/internal/core/domain/model/vehiculo"

	"github.com/stretchr/testify/require"
)

func mustPlaca(t *testing.T, valor string) vehiculo.Placa {
	t.Helper()
	placa, err := vehiculo.NewPlaca(valor)
	require.NoError(t, err)
	return placa
}

func mustCapacidad(t *testing.T, kg float64) vehiculo.Capacidad {
	t.Helper()
	capacidad, err := vehiculo.NewCapacidadFromFloat(kg)
	require.NoError(t, err)
	return capacidad
}

func mustPeso(t *testing.T, kg float64) kernel.Peso {
	t.Helper()
	peso, err := kernel.NewPesoFromFloat(kg)
	require.NoError(t, err)
	return peso
}

func mustLicencia(t *testing.T, numero string) conductor.LicenciaConducir {
	t.Helper()
	licencia, err := conductor.NewLicenciaConducir(numero)
	require.NoError(t, err)
	return licencia
}

func newTestVehiculo(t *testing.T) *vehiculo.Vehiculo {
	t.Helper()
	v, err := vehiculo.NewVehiculo(kernel.NewUUID(), mustPlaca(t, "ABC-123"), mustCapacidad(t, 1000))
	require.NoError(t, err)
	return v
}

func newTestVehiculoAsignado(t *testing.T, conductorID kernel.UUID) *vehiculo.Vehiculo {
	t.Helper()
	v, err := vehiculo.RestoreVehiculo(
		kernel.NewUUID(), mustPlaca(t, "XYZ-789"), mustCapacidad(t, 1000), &conductorID, true)
	require.NoError(t, err)
	return v
}

func newTestConductor(t *testing.T) *conductor.Conductor {
	t.Helper()
	c, err := conductor.NewConductor(kernel.NewUUID(), "Maria Lopez", mustLicencia(t, "LIC-12345"))
	require.NoError(t, err)
	return c
}

func restoreTestPedido(t *testing.T, estado pedido.Estado, vehiculoID, conductorID *kernel.UUID) *pedido.Pedido {
	t.Helper()
	now := time.Now().UTC()
	p, err := pedido.RestorePedido(
		kernel.NewUUID(), "office furniture", mustPeso(t, 120),
		estado, vehiculoID, conductorID,
		"Av. Principal 100", "Calle Secundaria 200", now, now)
	require.NoError(t, err)
	return p
}

func newTestUsuario(t *testing.T, passwordHash string) *usuario.Usuario {
	t.Helper()
	u, err := usuario.NewUsuario(
		kernel.NewUUID(), "mlopez", passwordHash, "mlopez@example.com",
		[]usuario.Rol{usuario.RolAdmin})
	require.NoError(t, err)
	return u
}
