package vehiculo_test

import (
	"testing"

	"transportes/internal/core/domain/model/vehiculo"
	"transportes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaca(t *testing.T) {
	t.Run("should create placa in canonical form", func(t *testing.T) {
		placa, err := vehiculo.NewPlaca("ABC-123")
		require.NoError(t, err)
		require.NoError(t, placa.Validate())
		assert.Equal(t, "ABC-123", placa.Valor())
	})

	t.Run("should normalize case and whitespace", func(t *testing.T) {
		placa, err := vehiculo.NewPlaca("  abc-123  ")
		require.NoError(t, err)
		assert.Equal(t, "ABC-123", placa.Valor())
	})

	t.Run("should reject blank input", func(t *testing.T) {
		_, err := vehiculo.NewPlaca("   ")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject malformed plates", func(t *testing.T) {
		for _, valor := range []string{
			"AB-123",
			"ABCD-123",
			"ABC-12",
			"ABC-1234",
			"ABC123",
			"123-ABC",
			"AB1-123",
		} {
			_, err := vehiculo.NewPlaca(valor)
			require.Error(t, err, valor)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid, valor)
		}
	})
}

func TestPlacaIsEqual(t *testing.T) {
	t.Run("should equal after normalization", func(t *testing.T) {
		a, err := vehiculo.NewPlaca("xyz-987")
		require.NoError(t, err)
		b, err := vehiculo.NewPlaca("XYZ-987")
		require.NoError(t, err)
		assert.True(t, a.IsEqual(b))
	})

	t.Run("should differ for different plates", func(t *testing.T) {
		a, err := vehiculo.NewPlaca("XYZ-987")
		require.NoError(t, err)
		b, err := vehiculo.NewPlaca("XYZ-988")
		require.NoError(t, err)
		assert.False(t, a.IsEqual(b))
	})
}

func TestPlacaValidate(t *testing.T) {
	t.Run("should fail for zero value placa", func(t *testing.T) {
		var placa vehiculo.Placa
		err := placa.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, vehiculo.ErrPlacaIsNotConstructed)
	})
}
