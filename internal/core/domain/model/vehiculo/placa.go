package vehiculo

import (
	"fmt"
	"regexp"
	"strings"

	"transportes/internal/pkg/errs"
	"transportes/internal/pkg/guard"
)

// ErrPlacaIsNotConstructed is returned when using an improperly initialized Placa.
var ErrPlacaIsNotConstructed = errs.NewValueIsRequiredError(
	"Placa must be created via NewPlaca constructor")

// placaPattern is the national registration plate format: three uppercase
// letters, a dash, three digits.
var placaPattern = regexp.MustCompile(`^[A-Z]{3}-[0-9]{3}$`)

// Placa is the registration plate of a vehicle. It is an immutable value
// object normalized to canonical form: surrounding whitespace is stripped and
// letters are upper-cased before the format check, so " abc-123 " and
// "ABC-123" produce equal plates.
type Placa struct {
	valor string

	guard guard.ConstructorGuard
}

// NewPlaca creates a Placa from raw input, normalizing it first.
// Input that is blank or does not match the AAA-000 format fails.
func NewPlaca(valor string) (Placa, error) {
	normalizado := strings.ToUpper(strings.TrimSpace(valor))
	if normalizado == "" {
		return Placa{}, errs.NewValueIsRequiredError("placa")
	}

	if !placaPattern.MatchString(normalizado) {
		return Placa{}, errs.NewValueIsInvalidErrorWithCause(
			"placa",
			fmt.Errorf("%s does not match format AAA-000", normalizado),
		)
	}

	return Placa{
		valor: normalizado,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Valor returns the canonical plate string.
func (p Placa) Valor() string {
	return p.valor
}

func (p Placa) String() string {
	return p.valor
}

// IsEqual compares by canonical value.
func (p Placa) IsEqual(other Placa) bool {
	return p.valor == other.valor
}

func (p Placa) Validate() error {
	return p.guard.Validate(ErrPlacaIsNotConstructed)
}
