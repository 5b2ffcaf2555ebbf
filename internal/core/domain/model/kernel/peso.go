package kernel

import (
	"fmt"

	"transportes/internal/pkg/errs"
	"transportes/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPesoIsNotConstructed is returned when using an improperly initialized Peso.
var ErrPesoIsNotConstructed = errs.NewValueIsRequiredError(
	"Peso must be created via NewPeso or NewPesoFromFloat")

// Peso is the weight of a cargo in kilograms. It is an immutable value
// object: zero is a valid weight (an empty pedido), negative values are not.
// Arithmetic operations return new instances.
type Peso struct {
	valorKg decimal.Decimal

	guard guard.ConstructorGuard
}

// NewPeso creates a Peso from a decimal kilogram value. Negative values fail.
func NewPeso(valorKg decimal.Decimal) (Peso, error) {
	if valorKg.IsNegative() {
		return Peso{}, errs.NewValueIsInvalidErrorWithCause(
			"peso",
			fmt.Errorf("%s kg is negative", valorKg),
		)
	}

	return Peso{
		valorKg: valorKg,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewPesoFromFloat is a convenience constructor for boundary layers that
// receive weights as float64.
func NewPesoFromFloat(valorKg float64) (Peso, error) {
	return NewPeso(decimal.NewFromFloat(valorKg))
}

// ValorKg returns the weight in kilograms.
func (p Peso) ValorKg() decimal.Decimal {
	return p.valorKg
}

// Sumar returns a new Peso holding the sum of both weights.
func (p Peso) Sumar(otro Peso) Peso {
	return Peso{
		valorKg: p.valorKg.Add(otro.valorKg),
		guard:   guard.NewConstructorGuard(),
	}
}

// IsEqual compares by value: two Pesos are equal when their kilogram amounts
// are numerically equal.
func (p Peso) IsEqual(other Peso) bool {
	return p.valorKg.Equal(other.valorKg)
}

func (p Peso) String() string {
	return p.valorKg.String() + " kg"
}

func (p Peso) Validate() error {
	return p.guard.Validate(ErrPesoIsNotConstructed)
}
