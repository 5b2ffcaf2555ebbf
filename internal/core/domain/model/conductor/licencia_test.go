package conductor_test

import (
	"testing"

	"transportes/internal/core/domain/model/conductor"
	"transportes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLicenciaConducir(t *testing.T) {
	t.Run("should create licencia in canonical form", func(t *testing.T) {
		licencia, err := conductor.NewLicenciaConducir("B-12345")
		require.NoError(t, err)
		require.NoError(t, licencia.Validate())
		assert.Equal(t, "B-12345", licencia.Numero())
	})

	t.Run("should normalize case and whitespace", func(t *testing.T) {
		licencia, err := conductor.NewLicenciaConducir("  b-12345  ")
		require.NoError(t, err)
		assert.Equal(t, "B-12345", licencia.Numero())
	})

	t.Run("should reject blank input", func(t *testing.T) {
		_, err := conductor.NewLicenciaConducir("   ")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject too short license", func(t *testing.T) {
		_, err := conductor.NewLicenciaConducir("B-12")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should accept license at minimum length", func(t *testing.T) {
		_, err := conductor.NewLicenciaConducir("B-123")
		require.NoError(t, err)
	})
}

func TestLicenciaIsEqual(t *testing.T) {
	t.Run("should equal after normalization", func(t *testing.T) {
		a, err := conductor.NewLicenciaConducir("c-99887")
		require.NoError(t, err)
		b, err := conductor.NewLicenciaConducir("C-99887")
		require.NoError(t, err)
		assert.True(t, a.IsEqual(b))
	})
}

func TestLicenciaValidate(t *testing.T) {
	t.Run("should fail for zero value licencia", func(t *testing.T) {
		var licencia conductor.LicenciaConducir
		err := licencia.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, conductor.ErrLicenciaIsNotConstructed)
	})
}
