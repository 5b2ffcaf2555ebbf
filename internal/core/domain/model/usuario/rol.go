package usuario

import (
	"fmt"

	"transportes/internal/pkg/errs"
)

// Rol represents an access role of a system user.
type Rol int

const (
	// RolUnknown represents an invalid or undefined rol.
	RolUnknown Rol = iota

	// RolAdmin grants full fleet administration.
	RolAdmin

	// RolConductor identifies driver accounts.
	RolConductor

	// RolCliente identifies customer accounts that create orders.
	RolCliente
)

// getRolStrings returns a map of Rol values to their string representations.
func getRolStrings() map[Rol]string {
	return map[Rol]string{
		RolUnknown:   "UNKNOWN",
		RolAdmin:     "ADMIN",
		RolConductor: "CONDUCTOR",
		RolCliente:   "CLIENTE",
	}
}

// getValidRolStrings returns a map of only valid Rol values.
func getValidRolStrings() map[Rol]string {
	//nolint:exhaustive // RolUnknown is intentionally excluded as it's invalid
	return map[Rol]string{
		RolAdmin:     "ADMIN",
		RolConductor: "CONDUCTOR",
		RolCliente:   "CLIENTE",
	}
}

// RolFromString parses the wire representation of a rol
// ("ADMIN", "CONDUCTOR", "CLIENTE").
func RolFromString(s string) (Rol, error) {
	for rol, str := range getValidRolStrings() {
		if str == s {
			return rol, nil
		}
	}
	return RolUnknown, errs.NewValueIsInvalidErrorWithCause(
		"rol",
		fmt.Errorf("%s is not a valid rol", s),
	)
}

// Validate checks if the Rol value is valid.
func (r Rol) Validate() error {
	if _, ok := getValidRolStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"rol",
			fmt.Errorf("%d is not a valid rol", r),
		)
	}
	return nil
}

// String returns the canonical name of the rol. It implements fmt.Stringer
// and is safe to call on any value, including invalid ones.
func (r Rol) String() string {
	if str, ok := getRolStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
