package vehiculo

import (
	"fmt"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/pkg/errs"
	"transportes/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrCapacidadIsNotConstructed is returned when using an improperly initialized Capacidad.
var ErrCapacidadIsNotConstructed = errs.NewValueIsRequiredError(
	"Capacidad must be created via NewCapacidad constructor")

// Capacidad is the maximum cargo weight a vehicle can carry, in kilograms.
// Unlike Peso, zero is not a valid capacity: a vehicle that can carry
// nothing cannot exist in the fleet.
type Capacidad struct {
	valorKg decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCapacidad creates a Capacidad from a decimal kilogram value.
// The value must be strictly greater than zero.
func NewCapacidad(valorKg decimal.Decimal) (Capacidad, error) {
	if !valorKg.IsPositive() {
		return Capacidad{}, errs.NewValueIsInvalidErrorWithCause(
			"capacidad",
			fmt.Errorf("%s kg is not greater than 0", valorKg),
		)
	}

	return Capacidad{
		valorKg: valorKg,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewCapacidadFromFloat is a convenience constructor for boundary layers that
// receive capacities as float64.
func NewCapacidadFromFloat(valorKg float64) (Capacidad, error) {
	return NewCapacidad(decimal.NewFromFloat(valorKg))
}

// ValorKg returns the capacity in kilograms.
func (c Capacidad) ValorKg() decimal.Decimal {
	return c.valorKg
}

// EsSuficientePara reports whether a cargo of the given weight fits within
// this capacity. A cargo exactly at the limit fits.
func (c Capacidad) EsSuficientePara(peso kernel.Peso) bool {
	return c.valorKg.GreaterThanOrEqual(peso.ValorKg())
}

// Restar returns the capacity remaining after loading a cargo of the given
// weight. It fails when the cargo exceeds the capacity. A cargo exactly at
// the limit leaves zero remaining, which is a valid result here even though
// zero is not a constructible capacity.
func (c Capacidad) Restar(peso kernel.Peso) (Capacidad, error) {
	if err := c.Validate(); err != nil {
		return Capacidad{}, err
	}
	if err := peso.Validate(); err != nil {
		return Capacidad{}, err
	}

	restante := c.valorKg.Sub(peso.ValorKg())
	if restante.IsNegative() {
		return Capacidad{}, errs.NewValueIsOutOfRangeError(
			"peso", peso.ValorKg(), 0, c.valorKg)
	}

	return Capacidad{
		valorKg: restante,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// IsEqual compares by value: two capacities are equal when their kilogram
// amounts are numerically equal.
func (c Capacidad) IsEqual(other Capacidad) bool {
	return c.valorKg.Equal(other.valorKg)
}

func (c Capacidad) String() string {
	return c.valorKg.String() + " kg"
}

func (c Capacidad) Validate() error {
	return c.guard.Validate(ErrCapacidadIsNotConstructed)
}
