package conductor

import (
	"errors"
	"fmt"
	"strings"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/pkg/errs"
	"transportes/internal/pkg/guard"
)

// LimiteVehiculos is the maximum number of vehicles a single conductor can
// hold at a time.
const LimiteVehiculos = 3

// Domain errors for conductor operations.
var (
	// ErrNombreIsRequired is returned when attempting to create a conductor without a name.
	ErrNombreIsRequired = errs.NewValueIsRequiredError("nombre")
	// ErrConductorIsNotConstructed is returned when using an improperly initialized Conductor.
	ErrConductorIsNotConstructed = errors.New("Conductor must be created via NewConductor constructor")
	// ErrConductorInactivo is returned when attempting an operation on a deactivated conductor.
	ErrConductorInactivo = errors.New("conductor is inactive")
	// ErrConductorTieneVehiculos is returned when deactivating a conductor that still holds vehicles.
	ErrConductorTieneVehiculos = errors.New("conductor still holds vehicles")
	// ErrLimiteVehiculosAlcanzado is the sentinel wrapped by LimiteVehiculosError.
	ErrLimiteVehiculosAlcanzado = errors.New("conductor has reached the vehicle limit")
	// ErrVehiculoYaEnLista is returned when assigning a vehicle the conductor already holds.
	ErrVehiculoYaEnLista = errors.New("conductor already holds this vehiculo")
	// ErrVehiculoNoEnLista is returned when releasing a vehicle the conductor does not hold.
	ErrVehiculoNoEnLista = errors.New("conductor does not hold this vehiculo")
)

// LimiteVehiculosError indicates an assignment attempt on a conductor whose
// vehicle list is full.
type LimiteVehiculosError struct {
	ConductorID kernel.UUID
	Limite      int
}

func (e *LimiteVehiculosError) Error() string {
	return fmt.Sprintf("conductor %s has reached the limit of %d vehiculos",
		e.ConductorID, e.Limite)
}

func (e *LimiteVehiculosError) Unwrap() error {
	return ErrLimiteVehiculosAlcanzado
}

// Conductor represents a driver of the fleet. It is an aggregate root that
// manages the driver's identity, license, and the vehicles assigned to them.
//
// Business rules:
//   - A conductor holds at most LimiteVehiculos vehicles at a time
//   - The same vehicle cannot appear twice in the list
//   - An inactive conductor cannot receive vehicles
//   - A conductor cannot be deactivated while holding vehicles
//   - The vehicle list must always mirror the assignment stored on each
//     Vehiculo; the application layer mutates both sides in one transaction
type Conductor struct {
	// id uniquely identifies the conductor
	id kernel.UUID
	// nombre is the human-readable name of the conductor
	nombre string
	// licencia is the driving license, unique across the fleet
	licencia LicenciaConducir
	// vehiculoIDs are the vehicles currently held, at most LimiteVehiculos
	vehiculoIDs []kernel.UUID
	// activo marks whether the conductor participates in fleet operations
	activo bool
	// guard ensures the conductor was properly constructed
	guard guard.ConstructorGuard
}

// NewConductor creates a new active Conductor with an empty vehicle list.
// This is the only way to create a valid Conductor instance.
func NewConductor(id kernel.UUID, nombre string, licencia LicenciaConducir) (*Conductor, error) {
	conductor := &Conductor{
		activo: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		conductor.setID(id),
		conductor.setNombre(nombre),
		conductor.setLicencia(licencia),
	); err != nil {
		return nil, err
	}

	return conductor, nil
}

// RestoreConductor reconstructs a Conductor aggregate from persistent
// storage, including its vehicle list and activity state.
func RestoreConductor(
	id kernel.UUID,
	nombre string,
	licencia LicenciaConducir,
	vehiculoIDs []kernel.UUID,
	activo bool,
) (*Conductor, error) {
	conductor := &Conductor{
		activo: activo,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		conductor.setID(id),
		conductor.setNombre(nombre),
		conductor.setLicencia(licencia),
		conductor.setVehiculoIDs(vehiculoIDs),
	); err != nil {
		return nil, err
	}

	return conductor, nil
}

// IsEqual compares two conductors by their unique identifiers.
func (c *Conductor) IsEqual(other *Conductor) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks that the Conductor was properly constructed.
// The zero value and nil are invalid.
func (c *Conductor) Validate() error {
	if c == nil {
		return ErrConductorIsNotConstructed
	}
	return c.guard.Validate(ErrConductorIsNotConstructed)
}

// ID returns the unique identifier of the conductor.
func (c *Conductor) ID() kernel.UUID {
	return c.id
}

// Nombre returns the conductor's name.
func (c *Conductor) Nombre() string {
	return c.nombre
}

// Licencia returns the driving license.
func (c *Conductor) Licencia() LicenciaConducir {
	return c.licencia
}

// EstaActivo reports whether the conductor participates in fleet operations.
func (c *Conductor) EstaActivo() bool {
	return c.activo
}

// VehiculosIDs returns the vehicles currently held.
// The returned slice is a copy to prevent external modification.
func (c *Conductor) VehiculosIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(c.vehiculoIDs))
	copy(out, c.vehiculoIDs)
	return out
}

// CantidadVehiculos returns the number of vehicles currently held.
func (c *Conductor) CantidadVehiculos() int {
	return len(c.vehiculoIDs)
}

// TieneVehiculos reports whether the conductor holds any vehicle.
func (c *Conductor) TieneVehiculos() bool {
	return len(c.vehiculoIDs) > 0
}

// TieneVehiculo reports whether the conductor holds the given vehicle.
func (c *Conductor) TieneVehiculo(vehiculoID kernel.UUID) bool {
	for _, id := range c.vehiculoIDs {
		if id.IsEqual(vehiculoID) {
			return true
		}
	}
	return false
}

// PuedeAsignarMasVehiculos reports whether the conductor can receive another
// vehicle without exceeding LimiteVehiculos.
func (c *Conductor) PuedeAsignarMasVehiculos() bool {
	return len(c.vehiculoIDs) < LimiteVehiculos
}

// AsignarVehiculo adds a vehicle to the conductor's list.
//
// Business rules:
//   - The conductor must be active
//   - The vehicle must not already be in the list
//   - The list must have room below LimiteVehiculos
//
// Returns:
//   - error: ErrConductorInactivo, ErrVehiculoYaEnLista, LimiteVehiculosError,
//     or a validation error if vehiculoID is invalid
func (c *Conductor) AsignarVehiculo(vehiculoID kernel.UUID) error {
	if err := vehiculoID.Validate(); err != nil {
		return err
	}

	if !c.activo {
		return ErrConductorInactivo
	}

	if c.TieneVehiculo(vehiculoID) {
		return ErrVehiculoYaEnLista
	}

	if !c.PuedeAsignarMasVehiculos() {
		return &LimiteVehiculosError{
			ConductorID: c.id,
			Limite:      LimiteVehiculos,
		}
	}

	c.vehiculoIDs = append(c.vehiculoIDs, vehiculoID)
	return nil
}

// DesasignarVehiculo removes a vehicle from the conductor's list.
//
// Returns:
//   - error: ErrVehiculoNoEnLista if the conductor does not hold the vehicle,
//     or a validation error if vehiculoID is invalid
func (c *Conductor) DesasignarVehiculo(vehiculoID kernel.UUID) error {
	if err := vehiculoID.Validate(); err != nil {
		return err
	}

	for i, id := range c.vehiculoIDs {
		if id.IsEqual(vehiculoID) {
			c.vehiculoIDs = append(c.vehiculoIDs[:i], c.vehiculoIDs[i+1:]...)
			return nil
		}
	}

	return ErrVehiculoNoEnLista
}

// Activar returns the conductor to fleet operations.
func (c *Conductor) Activar() {
	c.activo = true
}

// Desactivar removes the conductor from fleet operations.
// A conductor still holding vehicles cannot be deactivated.
func (c *Conductor) Desactivar() error {
	if c.TieneVehiculos() {
		return ErrConductorTieneVehiculos
	}

	c.activo = false
	return nil
}

// CambiarNombre replaces the conductor's name.
func (c *Conductor) CambiarNombre(nombre string) error {
	return c.setNombre(nombre)
}

// setID sets the conductor's unique identifier with validation.
// This is an internal setter used during construction.
func (c *Conductor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

// setNombre sets the conductor's name with validation. Whitespace-only names
// are rejected along with empty ones.
func (c *Conductor) setNombre(nombre string) error {
	if strings.TrimSpace(nombre) == "" {
		return ErrNombreIsRequired
	}

	c.nombre = nombre
	return nil
}

// setLicencia sets the driving license with validation.
func (c *Conductor) setLicencia(licencia LicenciaConducir) error {
	if err := licencia.Validate(); err != nil {
		return err
	}

	c.licencia = licencia
	return nil
}

// setVehiculoIDs sets the vehicle list during restoration, enforcing the
// limit and rejecting duplicates.
func (c *Conductor) setVehiculoIDs(vehiculoIDs []kernel.UUID) error {
	if len(vehiculoIDs) > LimiteVehiculos {
		return &LimiteVehiculosError{
			ConductorID: c.id,
			Limite:      LimiteVehiculos,
		}
	}

	restored := make([]kernel.UUID, 0, len(vehiculoIDs))
	for _, id := range vehiculoIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		for _, existente := range restored {
			if existente.IsEqual(id) {
				return ErrVehiculoYaEnLista
			}
		}
		restored = append(restored, id)
	}

	c.vehiculoIDs = restored
	return nil
}
