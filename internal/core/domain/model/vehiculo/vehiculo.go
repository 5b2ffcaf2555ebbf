package vehiculo

import (
	"errors"
	"fmt"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/pkg/guard"
)

// Domain errors for vehicle operations.
var (
	// ErrVehiculoIsNotConstructed is returned when using an improperly initialized Vehiculo.
	ErrVehiculoIsNotConstructed = errors.New("Vehiculo must be created via NewVehiculo constructor")
	// ErrVehiculoInactivo is returned when attempting an operation on a deactivated vehicle.
	ErrVehiculoInactivo = errors.New("vehiculo is inactive")
	// ErrVehiculoNoAsignado is returned when a release is attempted on a free vehicle.
	ErrVehiculoNoAsignado = errors.New("vehiculo has no conductor assigned")
	// ErrVehiculoYaAsignado is the sentinel wrapped by VehiculoYaAsignadoError.
	ErrVehiculoYaAsignado = errors.New("vehiculo is already assigned to a conductor")
	// ErrVehiculoEnUso is the sentinel wrapped by VehiculoEnUsoError.
	ErrVehiculoEnUso = errors.New("vehiculo has open pedidos")
)

// VehiculoEnUsoError indicates a release attempt on a vehicle that still has
// open orders referencing it, carrying the open-order count.
type VehiculoEnUsoError struct {
	VehiculoID     kernel.UUID
	PedidosActivos int64
}

func (e *VehiculoEnUsoError) Error() string {
	return fmt.Sprintf("vehiculo %s has %d open pedidos", e.VehiculoID, e.PedidosActivos)
}

func (e *VehiculoEnUsoError) Unwrap() error {
	return ErrVehiculoEnUso
}

// VehiculoYaAsignadoError indicates an assignment attempt on a vehicle that
// already has a conductor. Assignment is strict: even reassigning the same
// conductor fails, the vehicle must be released first.
type VehiculoYaAsignadoError struct {
	VehiculoID  kernel.UUID
	ConductorID kernel.UUID
}

func (e *VehiculoYaAsignadoError) Error() string {
	return fmt.Sprintf("vehiculo %s is already assigned to conductor %s",
		e.VehiculoID, e.ConductorID)
}

func (e *VehiculoYaAsignadoError) Unwrap() error {
	return ErrVehiculoYaAsignado
}

// VehiculoNoAsignadoAConductorError indicates a release attempt by a
// conductor that does not hold the vehicle.
type VehiculoNoAsignadoAConductorError struct {
	VehiculoID  kernel.UUID
	ConductorID kernel.UUID
}

func (e *VehiculoNoAsignadoAConductorError) Error() string {
	return fmt.Sprintf("vehiculo %s is not assigned to conductor %s",
		e.VehiculoID, e.ConductorID)
}

func (e *VehiculoNoAsignadoAConductorError) Unwrap() error {
	return ErrVehiculoNoAsignado
}

// CapacidadInsuficienteError indicates that a cargo exceeds the capacity of
// the vehicle chosen to carry it.
type CapacidadInsuficienteError struct {
	VehiculoID kernel.UUID
	Capacidad  Capacidad
	Peso       kernel.Peso
}

func (e *CapacidadInsuficienteError) Error() string {
	return fmt.Sprintf("vehiculo %s with capacity %s cannot carry %s",
		e.VehiculoID, e.Capacidad, e.Peso)
}

// Vehiculo represents a vehicle of the fleet. It is an aggregate root that
// manages the vehicle's identity, cargo capacity, and its assignment to a
// conductor.
//
// Business rules:
//   - A vehicle holds at most one conductor at a time
//   - Assignment is strict: an assigned vehicle must be released before it
//     can be assigned again, even to the same conductor
//   - An inactive vehicle cannot receive a conductor
//   - A vehicle cannot be deactivated while a conductor holds it
//   - The assignment on the vehicle side must always mirror the conductor's
//     vehicle list; the application layer mutates both sides in one
//     transaction
type Vehiculo struct {
	// id uniquely identifies the vehicle
	id kernel.UUID
	// placa is the registration plate, unique across the fleet
	placa Placa
	// capacidad is the maximum cargo weight the vehicle can carry
	capacidad Capacidad
	// conductorID is the assigned conductor, nil when the vehicle is free
	conductorID *kernel.UUID
	// activo marks whether the vehicle participates in fleet operations
	activo bool
	// guard ensures the vehicle was properly constructed
	guard guard.ConstructorGuard
}

// NewVehiculo creates a new active, unassigned Vehiculo.
// This is the only way to create a valid Vehiculo instance.
func NewVehiculo(id kernel.UUID, placa Placa, capacidad Capacidad) (*Vehiculo, error) {
	vehiculo := &Vehiculo{
		activo: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehiculo.setID(id),
		vehiculo.setPlaca(placa),
		vehiculo.setCapacidad(capacidad),
	); err != nil {
		return nil, err
	}

	return vehiculo, nil
}

// RestoreVehiculo reconstructs a Vehiculo aggregate from persistent storage,
// including its assignment and activity state. The restored vehicle behaves
// identically to one built through normal domain operations.
func RestoreVehiculo(
	id kernel.UUID,
	placa Placa,
	capacidad Capacidad,
	conductorID *kernel.UUID,
	activo bool,
) (*Vehiculo, error) {
	vehiculo := &Vehiculo{
		activo: activo,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehiculo.setID(id),
		vehiculo.setPlaca(placa),
		vehiculo.setCapacidad(capacidad),
		vehiculo.setConductorID(conductorID),
	); err != nil {
		return nil, err
	}

	return vehiculo, nil
}

// IsEqual compares two vehicles by their unique identifiers.
func (v *Vehiculo) IsEqual(other *Vehiculo) bool {
	if other == nil {
		return false
	}
	return v.id.IsEqual(other.id)
}

// Validate checks that the Vehiculo was properly constructed.
// The zero value and nil are invalid.
func (v *Vehiculo) Validate() error {
	if v == nil {
		return ErrVehiculoIsNotConstructed
	}
	return v.guard.Validate(ErrVehiculoIsNotConstructed)
}

// ID returns the unique identifier of the vehicle.
func (v *Vehiculo) ID() kernel.UUID {
	return v.id
}

// Placa returns the registration plate.
func (v *Vehiculo) Placa() Placa {
	return v.placa
}

// Capacidad returns the maximum cargo weight.
func (v *Vehiculo) Capacidad() Capacidad {
	return v.capacidad
}

// ConductorID returns the assigned conductor's ID, or nil when the vehicle
// is free. The returned pointer is a copy.
func (v *Vehiculo) ConductorID() *kernel.UUID {
	if v.conductorID == nil {
		return nil
	}
	id := *v.conductorID
	return &id
}

// EstaActivo reports whether the vehicle participates in fleet operations.
func (v *Vehiculo) EstaActivo() bool {
	return v.activo
}

// EstaLibre reports whether the vehicle has no conductor assigned.
func (v *Vehiculo) EstaLibre() bool {
	return v.conductorID == nil
}

// EstaAsignado reports whether a conductor currently holds the vehicle.
func (v *Vehiculo) EstaAsignado() bool {
	return v.conductorID != nil
}

// EstaAsignadoA reports whether the given conductor currently holds the vehicle.
func (v *Vehiculo) EstaAsignadoA(conductorID kernel.UUID) bool {
	return v.conductorID != nil && v.conductorID.IsEqual(conductorID)
}

// TieneCapacidadPara reports whether a cargo of the given weight fits in the
// vehicle.
//
// Parameters:
//   - peso: The cargo weight to check (must be a valid Peso)
//
// Returns:
//   - bool: true when the cargo fits, a cargo exactly at the limit fits
//   - error: Validation error if peso is invalid
func (v *Vehiculo) TieneCapacidadPara(peso kernel.Peso) (bool, error) {
	if err := peso.Validate(); err != nil {
		return false, err
	}
	return v.capacidad.EsSuficientePara(peso), nil
}

// ValidarCargaPara checks that a cargo of the given weight fits and returns
// a CapacidadInsuficienteError when it does not.
func (v *Vehiculo) ValidarCargaPara(peso kernel.Peso) error {
	cabe, err := v.TieneCapacidadPara(peso)
	if err != nil {
		return err
	}
	if !cabe {
		return &CapacidadInsuficienteError{
			VehiculoID: v.id,
			Capacidad:  v.capacidad,
			Peso:       peso,
		}
	}
	return nil
}

// AsignarConductor assigns the vehicle to a conductor.
//
// Business rules:
//   - The vehicle must be active
//   - Assignment never overwrites a different conductor; re-assignment to
//     the conductor that already holds the vehicle is an idempotent no-op
//
// Returns:
//   - error: ErrVehiculoInactivo, VehiculoYaAsignadoError, or a validation
//     error if conductorID is invalid
func (v *Vehiculo) AsignarConductor(conductorID kernel.UUID) error {
	if err := conductorID.Validate(); err != nil {
		return err
	}

	if !v.activo {
		return ErrVehiculoInactivo
	}

	if v.conductorID != nil {
		if v.conductorID.IsEqual(conductorID) {
			return nil
		}
		return &VehiculoYaAsignadoError{
			VehiculoID:  v.id,
			ConductorID: *v.conductorID,
		}
	}

	v.conductorID = &conductorID
	return nil
}

// DesasignarConductor releases the vehicle from the given conductor.
//
// Business rules:
//   - The vehicle must be assigned
//   - Only the conductor that holds the vehicle can release it
//
// Returns:
//   - error: ErrVehiculoNoAsignado, VehiculoNoAsignadoAConductorError, or a
//     validation error if conductorID is invalid
func (v *Vehiculo) DesasignarConductor(conductorID kernel.UUID) error {
	if err := conductorID.Validate(); err != nil {
		return err
	}

	if v.conductorID == nil {
		return ErrVehiculoNoAsignado
	}

	if !v.conductorID.IsEqual(conductorID) {
		return &VehiculoNoAsignadoAConductorError{
			VehiculoID:  v.id,
			ConductorID: conductorID,
		}
	}

	v.conductorID = nil
	return nil
}

// Activar returns the vehicle to fleet operations.
func (v *Vehiculo) Activar() {
	v.activo = true
}

// Desactivar removes the vehicle from fleet operations.
// A vehicle held by a conductor cannot be deactivated.
func (v *Vehiculo) Desactivar() error {
	if v.conductorID != nil {
		return &VehiculoYaAsignadoError{
			VehiculoID:  v.id,
			ConductorID: *v.conductorID,
		}
	}

	v.activo = false
	return nil
}

// CambiarPlaca replaces the registration plate.
func (v *Vehiculo) CambiarPlaca(placa Placa) error {
	return v.setPlaca(placa)
}

// CambiarCapacidad replaces the cargo capacity.
func (v *Vehiculo) CambiarCapacidad(capacidad Capacidad) error {
	return v.setCapacidad(capacidad)
}

// setID sets the vehicle's unique identifier with validation.
// This is an internal setter used during construction.
func (v *Vehiculo) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	v.id = id
	return nil
}

// setPlaca sets the registration plate with validation.
func (v *Vehiculo) setPlaca(placa Placa) error {
	if err := placa.Validate(); err != nil {
		return err
	}

	v.placa = placa
	return nil
}

// setCapacidad sets the cargo capacity with validation.
func (v *Vehiculo) setCapacidad(capacidad Capacidad) error {
	if err := capacidad.Validate(); err != nil {
		return err
	}

	v.capacidad = capacidad
	return nil
}

// setConductorID sets the assignment during restoration. A nil pointer means
// the vehicle is free.
func (v *Vehiculo) setConductorID(conductorID *kernel.UUID) error {
	if conductorID == nil {
		v.conductorID = nil
		return nil
	}

	if err := conductorID.Validate(); err != nil {
		return err
	}

	id := *conductorID
	v.conductorID = &id
	return nil
}
