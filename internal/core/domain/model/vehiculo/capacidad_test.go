package vehiculo_test

import (
	"testing"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/core/domain/model/vehiculo"
	"transportes/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCapacidad(t *testing.T) {
	t.Run("should create capacidad with positive value", func(t *testing.T) {
		capacidad, err := vehiculo.NewCapacidad(decimal.NewFromInt(1000))
		require.NoError(t, err)
		require.NoError(t, capacidad.Validate())
	})

	t.Run("should accept smallest positive value", func(t *testing.T) {
		capacidad, err := vehiculo.NewCapacidadFromFloat(0.01)
		require.NoError(t, err)
		require.NoError(t, capacidad.Validate())
	})

	t.Run("should reject zero", func(t *testing.T) {
		_, err := vehiculo.NewCapacidad(decimal.Zero)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative value", func(t *testing.T) {
		_, err := vehiculo.NewCapacidadFromFloat(-10)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCapacidadEsSuficientePara(t *testing.T) {
	capacidad, err := vehiculo.NewCapacidadFromFloat(500)
	require.NoError(t, err)

	t.Run("should fit lighter cargo", func(t *testing.T) {
		peso, err := kernel.NewPesoFromFloat(499.99)
		require.NoError(t, err)
		assert.True(t, capacidad.EsSuficientePara(peso))
	})

	t.Run("should fit cargo exactly at the limit", func(t *testing.T) {
		peso, err := kernel.NewPesoFromFloat(500)
		require.NoError(t, err)
		assert.True(t, capacidad.EsSuficientePara(peso))
	})

	t.Run("should not fit heavier cargo", func(t *testing.T) {
		peso, err := kernel.NewPesoFromFloat(500.01)
		require.NoError(t, err)
		assert.False(t, capacidad.EsSuficientePara(peso))
	})
}

func TestCapacidadRestar(t *testing.T) {
	capacidad, err := vehiculo.NewCapacidadFromFloat(500)
	require.NoError(t, err)

	t.Run("should return remaining capacity", func(t *testing.T) {
		peso, err := kernel.NewPesoFromFloat(120)
		require.NoError(t, err)

		restante, err := capacidad.Restar(peso)
		require.NoError(t, err)
		assert.True(t, restante.ValorKg().Equal(decimal.NewFromInt(380)))
	})

	t.Run("should allow zero remaining at the exact limit", func(t *testing.T) {
		peso, err := kernel.NewPesoFromFloat(500)
		require.NoError(t, err)

		restante, err := capacidad.Restar(peso)
		require.NoError(t, err)
		require.NoError(t, restante.Validate())
		assert.True(t, restante.ValorKg().IsZero())
	})

	t.Run("should fail when cargo exceeds capacity", func(t *testing.T) {
		peso, err := kernel.NewPesoFromFloat(500.01)
		require.NoError(t, err)

		_, err = capacidad.Restar(peso)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail for unconstructed capacidad", func(t *testing.T) {
		var vacia vehiculo.Capacidad
		peso, err := kernel.NewPesoFromFloat(1)
		require.NoError(t, err)

		_, err = vacia.Restar(peso)
		require.Error(t, err)
		assert.ErrorIs(t, err, vehiculo.ErrCapacidadIsNotConstructed)
	})
}

func TestCapacidadValidate(t *testing.T) {
	t.Run("should fail for zero value capacidad", func(t *testing.T) {
		var capacidad vehiculo.Capacidad
		err := capacidad.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, vehiculo.ErrCapacidadIsNotConstructed)
	})
}
