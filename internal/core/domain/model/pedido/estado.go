package pedido

import (
	"errors"
	"fmt"

	"transportes/internal/pkg/errs"
)

// ErrTransicionInvalida is the sentinel wrapped by TransicionInvalidaError.
var ErrTransicionInvalida = errors.New("estado transition is not allowed")

// TransicionInvalidaError indicates an attempted transition the state
// machine does not allow, carrying the from/to pair.
type TransicionInvalidaError struct {
	De Estado
	A  Estado
}

func (e *TransicionInvalidaError) Error() string {
	return fmt.Sprintf("estado transition from %s to %s is not allowed", e.De, e.A)
}

func (e *TransicionInvalidaError) Unwrap() error {
	return ErrTransicionInvalida
}

// Estado represents the lifecycle state of a transport order.
// It implements a state machine with defined transitions.
//
// State transitions:
//
//	PENDIENTE ──┬──> EN_PROGRESO ──> COMPLETADO
//	            │         │
//	            └─────────┴───────> CANCELADO
//
// COMPLETADO and CANCELADO are terminal: no transition leaves them.
type Estado int

const (
	// Unknown represents an invalid or undefined estado.
	// This value (0) helps catch uninitialized Estado values.
	Unknown Estado = iota

	// Pendiente is the initial estado of a freshly created order.
	// Assignment and vehicle changes are only allowed here.
	Pendiente

	// EnProgreso indicates the order is being transported.
	EnProgreso

	// Completado indicates the order was delivered. Terminal.
	Completado

	// Cancelado indicates the order was abandoned. Terminal.
	Cancelado
)

// getEstadoStrings returns a map of Estado values to their string
// representations, the Unknown value included.
func getEstadoStrings() map[Estado]string {
	return map[Estado]string{
		Unknown:    "UNKNOWN",
		Pendiente:  "PENDIENTE",
		EnProgreso: "EN_PROGRESO",
		Completado: "COMPLETADO",
		Cancelado:  "CANCELADO",
	}
}

// getValidEstadoStrings returns a map of only valid Estado values.
func getValidEstadoStrings() map[Estado]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Estado]string{
		Pendiente:  "PENDIENTE",
		EnProgreso: "EN_PROGRESO",
		Completado: "COMPLETADO",
		Cancelado:  "CANCELADO",
	}
}

// EstadoFromString parses the wire representation of an estado
// ("PENDIENTE", "EN_PROGRESO", "COMPLETADO", "CANCELADO").
func EstadoFromString(s string) (Estado, error) {
	for estado, str := range getValidEstadoStrings() {
		if str == s {
			return estado, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"estado",
		fmt.Errorf("%s is not a valid estado", s),
	)
}

// Validate checks if the Estado value is valid.
// Unknown (0) and out-of-range values are invalid.
func (e Estado) Validate() error {
	if _, ok := getValidEstadoStrings()[e]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"estado",
			fmt.Errorf("%d is not a valid estado", e),
		)
	}
	return nil
}

// String returns the canonical name of the estado. It implements
// fmt.Stringer and is safe to call on any value, including invalid ones.
func (e Estado) String() string {
	if str, ok := getEstadoStrings()[e]; ok {
		return str
	}
	return "UNKNOWN"
}

// EsFinal reports whether the estado is terminal.
func (e Estado) EsFinal() bool {
	return e == Completado || e == Cancelado
}

// PuedeTransicionarA reports whether the state machine allows moving from
// this estado to the given one.
func (e Estado) PuedeTransicionarA(destino Estado) bool {
	switch e {
	case Pendiente:
		return destino == EnProgreso || destino == Cancelado
	case EnProgreso:
		return destino == Completado || destino == Cancelado
	default:
		return false
	}
}

// Transicionar moves the state machine to the given estado.
//
// Returns:
//   - (destino, nil) on an allowed transition
//   - (Unknown, *TransicionInvalidaError) otherwise
func (e Estado) Transicionar(destino Estado) (Estado, error) {
	if err := destino.Validate(); err != nil {
		return Unknown, err
	}

	if !e.PuedeTransicionarA(destino) {
		return Unknown, &TransicionInvalidaError{De: e, A: destino}
	}

	return destino, nil
}
