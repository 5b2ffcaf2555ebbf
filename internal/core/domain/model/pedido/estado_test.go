package pedido_test

import (
	"testing"

	"transportes/internal/core/domain/model/pedido"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstadoString(t *testing.T) {
	tests := map[pedido.Estado]string{
		pedido.Unknown:    "UNKNOWN",
		pedido.Pendiente:  "PENDIENTE",
		pedido.EnProgreso: "EN_PROGRESO",
		pedido.Completado: "COMPLETADO",
		pedido.Cancelado:  "CANCELADO",
	}

	for estado, expected := range tests {
		assert.Equal(t, expected, estado.String())
	}

	assert.Equal(t, "UNKNOWN", pedido.Estado(42).String())
}

func TestEstadoFromString(t *testing.T) {
	t.Run("should parse valid names", func(t *testing.T) {
		for _, name := range []string{"PENDIENTE", "EN_PROGRESO", "COMPLETADO", "CANCELADO"} {
			estado, err := pedido.EstadoFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, estado.String())
		}
	})

	t.Run("should fail on unknown name", func(t *testing.T) {
		_, err := pedido.EstadoFromString("pendiente")
		require.Error(t, err)
	})
}

func TestEstadoValidate(t *testing.T) {
	t.Run("should accept valid estados", func(t *testing.T) {
		for _, estado := range []pedido.Estado{
			pedido.Pendiente, pedido.EnProgreso, pedido.Completado, pedido.Cancelado,
		} {
			require.NoError(t, estado.Validate())
		}
	})

	t.Run("should reject unknown estado", func(t *testing.T) {
		require.Error(t, pedido.Unknown.Validate())
		require.Error(t, pedido.Estado(42).Validate())
	})
}

func TestEstadoEsFinal(t *testing.T) {
	assert.False(t, pedido.Pendiente.EsFinal())
	assert.False(t, pedido.EnProgreso.EsFinal())
	assert.True(t, pedido.Completado.EsFinal())
	assert.True(t, pedido.Cancelado.EsFinal())
}

func TestEstadoTransicionar(t *testing.T) {
	t.Run("should allow defined transitions", func(t *testing.T) {
		allowed := []struct {
			de pedido.Estado
			a  pedido.Estado
		}{
			{pedido.Pendiente, pedido.EnProgreso},
			{pedido.Pendiente, pedido.Cancelado},
			{pedido.EnProgreso, pedido.Completado},
			{pedido.EnProgreso, pedido.Cancelado},
		}

		for _, tt := range allowed {
			nuevo, err := tt.de.Transicionar(tt.a)
			require.NoError(t, err, "%s -> %s", tt.de, tt.a)
			assert.Equal(t, tt.a, nuevo)
		}
	})

	t.Run("should reject undefined transitions", func(t *testing.T) {
		forbidden := []struct {
			de pedido.Estado
			a  pedido.Estado
		}{
			{pedido.Pendiente, pedido.Completado},
			{pedido.EnProgreso, pedido.EnProgreso},
			{pedido.Completado, pedido.Cancelado},
			{pedido.Completado, pedido.EnProgreso},
			{pedido.Cancelado, pedido.EnProgreso},
			{pedido.Cancelado, pedido.Completado},
		}

		for _, tt := range forbidden {
			_, err := tt.de.Transicionar(tt.a)
			require.Error(t, err, "%s -> %s", tt.de, tt.a)
			assert.ErrorIs(t, err, pedido.ErrTransicionInvalida, "%s -> %s", tt.de, tt.a)

			var transicion *pedido.TransicionInvalidaError
			require.ErrorAs(t, err, &transicion)
			assert.Equal(t, tt.de, transicion.De)
			assert.Equal(t, tt.a, transicion.A)
		}
	})

	t.Run("should reject transition to invalid estado", func(t *testing.T) {
		_, err := pedido.Pendiente.Transicionar(pedido.Unknown)
		require.Error(t, err)
	})
}
