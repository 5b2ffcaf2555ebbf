package pedido_test

import (
	"testing"
	"time"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/core/domain/model/pedido"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPeso(t *testing.T, valorKg float64) kernel.Peso {
	t.Helper()
	peso, err := kernel.NewPesoFromFloat(valorKg)
	require.NoError(t, err)
	return peso
}

func newTestPedido(t *testing.T) *pedido.Pedido {
	t.Helper()
	p, err := pedido.NewPedido(
		kernel.NewUUID(), "Cajas de repuestos", mustPeso(t, 120), "Av. Central 100", "Calle Norte 5")
	require.NoError(t, err)
	return p
}

func newTestPedidoAsignado(t *testing.T) *pedido.Pedido {
	t.Helper()
	p := newTestPedido(t)
	require.NoError(t, p.AsignarVehiculoYConductor(kernel.NewUUID(), kernel.NewUUID()))
	return p
}

func TestNewPedido(t *testing.T) {
	t.Run("should create unassigned pedido in PENDIENTE", func(t *testing.T) {
		p := newTestPedido(t)
		require.NoError(t, p.Validate())
		assert.Equal(t, pedido.Pendiente, p.Estado())
		assert.Nil(t, p.VehiculoID())
		assert.Nil(t, p.ConductorID())
		assert.True(t, p.EstaActivo())
		assert.False(t, p.FechaCreacion().IsZero())
		assert.Equal(t, p.FechaCreacion(), p.FechaActualizacion())
	})

	t.Run("should fail with blank description", func(t *testing.T) {
		_, err := pedido.NewPedido(
			kernel.NewUUID(), "", mustPeso(t, 120), "Av. Central 100", "Calle Norte 5")
		require.Error(t, err)
		assert.ErrorIs(t, err, pedido.ErrDescripcionIsRequired)

		_, err = pedido.NewPedido(
			kernel.NewUUID(), "   ", mustPeso(t, 120), "Av. Central 100", "Calle Norte 5")
		require.Error(t, err)
		assert.ErrorIs(t, err, pedido.ErrDescripcionIsRequired)
	})

	t.Run("should fail with blank addresses", func(t *testing.T) {
		_, err := pedido.NewPedido(
			kernel.NewUUID(), "Cajas", mustPeso(t, 120), "", "Calle Norte 5")
		require.Error(t, err)
		assert.ErrorIs(t, err, pedido.ErrDireccionOrigenIsRequired)

		_, err = pedido.NewPedido(
			kernel.NewUUID(), "Cajas", mustPeso(t, 120), "   ", "Calle Norte 5")
		require.Error(t, err)
		assert.ErrorIs(t, err, pedido.ErrDireccionOrigenIsRequired)

		_, err = pedido.NewPedido(
			kernel.NewUUID(), "Cajas", mustPeso(t, 120), "Av. Central 100", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, pedido.ErrDireccionDestinoIsRequired)

		_, err = pedido.NewPedido(
			kernel.NewUUID(), "Cajas", mustPeso(t, 120), "Av. Central 100", "   ")
		require.Error(t, err)
		assert.ErrorIs(t, err, pedido.ErrDireccionDestinoIsRequired)
	})

	t.Run("should fail with unconstructed peso", func(t *testing.T) {
		var peso kernel.Peso
		_, err := pedido.NewPedido(
			kernel.NewUUID(), "Cajas", peso, "Av. Central 100", "Calle Norte 5")
		require.Error(t, err)
	})

	t.Run("should accept zero weight", func(t *testing.T) {
		_, err := pedido.NewPedido(
			kernel.NewUUID(), "Sobre vacio", mustPeso(t, 0), "Av. Central 100", "Calle Norte 5")
		require.NoError(t, err)
	})
}

func TestRestorePedido(t *testing.T) {
	t.Run("should restore EN_PROGRESO pedido without replaying assignment rules", func(t *testing.T) {
		vehiculoID := kernel.NewUUID()
		conductorID := kernel.NewUUID()
		creacion := time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)
		actualizacion := creacion.Add(2 * time.Hour)

		p, err := pedido.RestorePedido(
			kernel.NewUUID(), "Cajas", mustPeso(t, 120), pedido.EnProgreso,
			&vehiculoID, &conductorID, "Av. Central 100", "Calle Norte 5",
			creacion, actualizacion)
		require.NoError(t, err)
		assert.Equal(t, pedido.EnProgreso, p.Estado())
		assert.True(t, p.VehiculoID().IsEqual(vehiculoID))
		assert.True(t, p.ConductorID().IsEqual(conductorID))
		assert.Equal(t, creacion, p.FechaCreacion())
		assert.Equal(t, actualizacion, p.FechaActualizacion())
	})

	t.Run("should restore unassigned PENDIENTE pedido", func(t *testing.T) {
		p, err := pedido.RestorePedido(
			kernel.NewUUID(), "Cajas", mustPeso(t, 120), pedido.Pendiente,
			nil, nil, "Av. Central 100", "Calle Norte 5",
			time.Now().UTC(), time.Now().UTC())
		require.NoError(t, err)
		assert.Nil(t, p.VehiculoID())
	})

	t.Run("should reject half assignment", func(t *testing.T) {
		vehiculoID := kernel.NewUUID()
		_, err := pedido.RestorePedido(
			kernel.NewUUID(), "Cajas", mustPeso(t, 120), pedido.Pendiente,
			&vehiculoID, nil, "Av. Central 100", "Calle Norte 5",
			time.Now().UTC(), time.Now().UTC())
		require.Error(t, err)
		assert.ErrorIs(t, err, pedido.ErrAsignacionFaltante)
	})

	t.Run("should reject invalid estado", func(t *testing.T) {
		_, err := pedido.RestorePedido(
			kernel.NewUUID(), "Cajas", mustPeso(t, 120), pedido.Unknown,
			nil, nil, "Av. Central 100", "Calle Norte 5",
			time.Now().UTC(), time.Now().UTC())
		require.Error(t, err)
	})
}

func TestPedidoAsignarVehiculoYConductor(t *testing.T) {
	t.Run("should assign both ids atomically", func(t *testing.T) {
		p := newTestPedido(t)
		vehiculoID := kernel.NewUUID()
		conductorID := kernel.NewUUID()

		require.NoError(t, p.AsignarVehiculoYConductor(vehiculoID, conductorID))
		assert.True(t, p.VehiculoID().IsEqual(vehiculoID))
		assert.True(t, p.ConductorID().IsEqual(conductorID))
	})

	t.Run("should fail outside PENDIENTE", func(t *testing.T) {
		p := newTestPedidoAsignado(t)
		require.NoError(t, p.Iniciar())

		err := p.AsignarVehiculoYConductor(kernel.NewUUID(), kernel.NewUUID())
		require.Error(t, err)
		assert.ErrorIs(t, err, pedido.ErrPedidoNoPendiente)
	})

	t.Run("should fail with invalid ids", func(t *testing.T) {
		p := newTestPedido(t)
		var invalido kernel.UUID
		require.Error(t, p.AsignarVehiculoYConductor(invalido, kernel.NewUUID()))
		require.Error(t, p.AsignarVehiculoYConductor(kernel.NewUUID(), invalido))
		assert.Nil(t, p.VehiculoID())
	})
}

func TestPedidoCambiarVehiculo(t *testing.T) {
	t.Run("should replace vehicle keeping conductor", func(t *testing.T) {
		p := newTestPedidoAsignado(t)
		conductorID := p.ConductorID()

		nuevo := kernel.NewUUID()
		require.NoError(t, p.CambiarVehiculo(nuevo))
		assert.True(t, p.VehiculoID().IsEqual(nuevo))
		assert.True(t, p.ConductorID().IsEqual(*conductorID))
	})

	t.Run("should fail outside PENDIENTE", func(t *testing.T) {
		p := newTestPedidoAsignado(t)
		require.NoError(t, p.Iniciar())

		err := p.CambiarVehiculo(kernel.NewUUID())
		require.Error(t, err)
		assert.ErrorIs(t, err, pedido.ErrPedidoNoPendiente)
	})

	t.Run("should fail without conductor", func(t *testing.T) {
		p := newTestPedido(t)
		err := p.CambiarVehiculo(kernel.NewUUID())
		require.Error(t, err)
		assert.ErrorIs(t, err, pedido.ErrPedidoSinConductor)
	})
}

func TestPedidoIniciar(t *testing.T) {
	t.Run("should fail without assignment", func(t *testing.T) {
		p := newTestPedido(t)
		err := p.Iniciar()
		require.Error(t, err)
		assert.ErrorIs(t, err, pedido.ErrAsignacionFaltante)
		assert.Equal(t, pedido.Pendiente, p.Estado())
	})

	t.Run("should start assigned pedido", func(t *testing.T) {
		p := newTestPedidoAsignado(t)
		require.NoError(t, p.Iniciar())
		assert.Equal(t, pedido.EnProgreso, p.Estado())
	})

	t.Run("should fail when already started", func(t *testing.T) {
		p := newTestPedidoAsignado(t)
		require.NoError(t, p.Iniciar())

		err := p.Iniciar()
		require.Error(t, err)
		assert.ErrorIs(t, err, pedido.ErrTransicionInvalida)
	})
}

func TestPedidoCompletar(t *testing.T) {
	t.Run("should complete started pedido", func(t *testing.T) {
		p := newTestPedidoAsignado(t)
		require.NoError(t, p.Iniciar())
		require.NoError(t, p.Completar())
		assert.Equal(t, pedido.Completado, p.Estado())
		assert.False(t, p.EstaActivo())
	})

	t.Run("should fail from PENDIENTE", func(t *testing.T) {
		p := newTestPedido(t)
		err := p.Completar()
		require.Error(t, err)
		assert.ErrorIs(t, err, pedido.ErrTransicionInvalida)
	})
}

func TestPedidoCancelar(t *testing.T) {
	t.Run("should cancel from PENDIENTE", func(t *testing.T) {
		p := newTestPedido(t)
		require.NoError(t, p.Cancelar())
		assert.Equal(t, pedido.Cancelado, p.Estado())
		assert.False(t, p.EstaActivo())
	})

	t.Run("should cancel from EN_PROGRESO", func(t *testing.T) {
		p := newTestPedidoAsignado(t)
		require.NoError(t, p.Iniciar())
		require.NoError(t, p.Cancelar())
		assert.Equal(t, pedido.Cancelado, p.Estado())
	})

	t.Run("should fail on terminal estados", func(t *testing.T) {
		p := newTestPedido(t)
		require.NoError(t, p.Cancelar())

		err := p.Cancelar()
		require.Error(t, err)
		assert.ErrorIs(t, err, pedido.ErrTransicionInvalida)
	})
}

func TestPedidoCambiarEstado(t *testing.T) {
	t.Run("should route to the corresponding verb", func(t *testing.T) {
		p := newTestPedidoAsignado(t)
		require.NoError(t, p.CambiarEstado(pedido.EnProgreso))
		require.NoError(t, p.CambiarEstado(pedido.Completado))
		assert.Equal(t, pedido.Completado, p.Estado())
	})

	t.Run("should keep assignment requirement for EN_PROGRESO", func(t *testing.T) {
		p := newTestPedido(t)
		err := p.CambiarEstado(pedido.EnProgreso)
		require.Error(t, err)
		assert.ErrorIs(t, err, pedido.ErrAsignacionFaltante)
	})

	t.Run("should reject PENDIENTE as destination", func(t *testing.T) {
		p := newTestPedidoAsignado(t)
		err := p.CambiarEstado(pedido.Pendiente)
		require.Error(t, err)
		assert.ErrorIs(t, err, pedido.ErrTransicionInvalida)
	})
}

func TestPedidoFechaActualizacion(t *testing.T) {
	t.Run("should refresh on mutation", func(t *testing.T) {
		p := newTestPedido(t)
		antes := p.FechaActualizacion()

		time.Sleep(time.Millisecond)
		require.NoError(t, p.AsignarVehiculoYConductor(kernel.NewUUID(), kernel.NewUUID()))
		assert.True(t, p.FechaActualizacion().After(antes))
	})
}

func TestPedidoValidate(t *testing.T) {
	t.Run("should fail for zero value pedido", func(t *testing.T) {
		var p pedido.Pedido
		err := p.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, pedido.ErrPedidoIsNotConstructed)
	})

	t.Run("should fail for nil pedido", func(t *testing.T) {
		var p *pedido.Pedido
		require.Error(t, p.Validate())
	})
}
