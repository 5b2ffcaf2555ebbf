package conductor

import (
	"fmt"
	"strings"

	"transportes/internal/pkg/errs"
	"transportes/internal/pkg/guard"
)

// licenciaMinLength is the minimum number of characters of a license number
// after normalization.
const licenciaMinLength = 5

// ErrLicenciaIsNotConstructed is returned when using an improperly initialized LicenciaConducir.
var ErrLicenciaIsNotConstructed = errs.NewValueIsRequiredError(
	"LicenciaConducir must be created via NewLicenciaConducir constructor")

// LicenciaConducir is a conductor's driving license number. It is an
// immutable value object normalized to canonical form: surrounding
// whitespace is stripped and letters are upper-cased, so " b-1234 " and
// "B-1234" produce equal licenses.
type LicenciaConducir struct {
	numero string

	guard guard.ConstructorGuard
}

// NewLicenciaConducir creates a LicenciaConducir from raw input, normalizing
// it first. Input that is blank or shorter than five characters fails.
func NewLicenciaConducir(numero string) (LicenciaConducir, error) {
	normalizado := strings.ToUpper(strings.TrimSpace(numero))
	if normalizado == "" {
		return LicenciaConducir{}, errs.NewValueIsRequiredError("licencia")
	}

	if len(normalizado) < licenciaMinLength {
		return LicenciaConducir{}, errs.NewValueIsInvalidErrorWithCause(
			"licencia",
			fmt.Errorf("%s is shorter than %d characters", normalizado, licenciaMinLength),
		)
	}

	return LicenciaConducir{
		numero: normalizado,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Numero returns the canonical license number.
func (l LicenciaConducir) Numero() string {
	return l.numero
}

func (l LicenciaConducir) String() string {
	return l.numero
}

// IsEqual compares by canonical value.
func (l LicenciaConducir) IsEqual(other LicenciaConducir) bool {
	return l.numero == other.numero
}

func (l LicenciaConducir) Validate() error {
	return l.guard.Validate(ErrLicenciaIsNotConstructed)
}
