package pedido

import (
	"errors"
	"strings"
	"time"

	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/pkg/errs"
	"transportes/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrPedidoIsNotConstructed is returned when using an improperly initialized Pedido.
	ErrPedidoIsNotConstructed = errors.New("Pedido must be created via NewPedido constructor")
	// ErrDescripcionIsRequired is returned when attempting to create an order without a description.
	ErrDescripcionIsRequired = errs.NewValueIsRequiredError("descripcion")
	// ErrDireccionOrigenIsRequired is returned when the pickup address is blank.
	ErrDireccionOrigenIsRequired = errs.NewValueIsRequiredError("direccionOrigen")
	// ErrDireccionDestinoIsRequired is returned when the delivery address is blank.
	ErrDireccionDestinoIsRequired = errs.NewValueIsRequiredError("direccionDestino")
	// ErrPedidoNoPendiente is returned when mutating assignment outside the PENDIENTE estado.
	ErrPedidoNoPendiente = errors.New("pedido is not in PENDIENTE estado")
	// ErrAsignacionFaltante is returned when starting an order that has no vehicle and conductor.
	ErrAsignacionFaltante = errors.New("pedido requires vehiculo and conductor before starting")
	// ErrPedidoSinConductor is returned when changing the vehicle of an order with no conductor.
	ErrPedidoSinConductor = errors.New("pedido has no conductor assigned")
)

// Pedido represents a transport order. It is an aggregate root that manages
// the order lifecycle from creation through assignment to completion.
//
// Business rules:
//   - The vehicle and conductor are assigned as an atomic pair, never one
//     without the other, and only while the order is PENDIENTE
//   - Estado transitions follow the state machine defined on Estado
//   - Starting the order requires both assignments to be present
//   - Every mutation refreshes fechaActualizacion
type Pedido struct {
	// id uniquely identifies the order
	id kernel.UUID
	// descripcion is the human-readable cargo description
	descripcion string
	// peso is the cargo weight
	peso kernel.Peso
	// estado is the current position in the order lifecycle
	estado Estado
	// vehiculoID is the carrying vehicle, nil while unassigned
	vehiculoID *kernel.UUID
	// conductorID is the driver, nil while unassigned
	conductorID *kernel.UUID
	// direccionOrigen is the pickup address
	direccionOrigen string
	// direccionDestino is the delivery address
	direccionDestino string
	// fechaCreacion is when the order entered the system, UTC
	fechaCreacion time.Time
	// fechaActualizacion is when the order last changed, UTC
	fechaActualizacion time.Time
	// guard ensures the order was properly constructed
	guard guard.ConstructorGuard
}

// NewPedido creates a new unassigned Pedido in the PENDIENTE estado with
// both audit timestamps set to the current time.
func NewPedido(
	id kernel.UUID,
	descripcion string,
	peso kernel.Peso,
	direccionOrigen string,
	direccionDestino string,
) (*Pedido, error) {
	ahora := time.Now().UTC()
	pedido := &Pedido{
		estado:             Pendiente,
		fechaCreacion:      ahora,
		fechaActualizacion: ahora,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pedido.setID(id),
		pedido.setDescripcion(descripcion),
		pedido.setPeso(peso),
		pedido.setDirecciones(direccionOrigen, direccionDestino),
	); err != nil {
		return nil, err
	}

	return pedido, nil
}

// RestorePedido reconstructs a Pedido aggregate from persistent storage.
// Unlike NewPedido it restores estado, assignment, and timestamps directly,
// without replaying the PENDIENTE-only assignment validation: an EN_PROGRESO
// order with vehicle and conductor set loads as-is.
func RestorePedido(
	id kernel.UUID,
	descripcion string,
	peso kernel.Peso,
	estado Estado,
	vehiculoID *kernel.UUID,
	conductorID *kernel.UUID,
	direccionOrigen string,
	direccionDestino string,
	fechaCreacion time.Time,
	fechaActualizacion time.Time,
) (*Pedido, error) {
	pedido := &Pedido{
		fechaCreacion:      fechaCreacion,
		fechaActualizacion: fechaActualizacion,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pedido.setID(id),
		pedido.setDescripcion(descripcion),
		pedido.setPeso(peso),
		pedido.setDirecciones(direccionOrigen, direccionDestino),
		pedido.setEstado(estado),
		pedido.setAsignacion(vehiculoID, conductorID),
	); err != nil {
		return nil, err
	}

	return pedido, nil
}

// IsEqual compares two orders by their unique identifiers.
func (p *Pedido) IsEqual(other *Pedido) bool {
	if other == nil {
		return false
	}
	return p.id.IsEqual(other.id)
}

// Validate checks that the Pedido was properly constructed.
// The zero value and nil are invalid.
func (p *Pedido) Validate() error {
	if p == nil {
		return ErrPedidoIsNotConstructed
	}
	return p.guard.Validate(ErrPedidoIsNotConstructed)
}

// ID returns the unique identifier of the order.
func (p *Pedido) ID() kernel.UUID {
	return p.id
}

// Descripcion returns the cargo description.
func (p *Pedido) Descripcion() string {
	return p.descripcion
}

// Peso returns the cargo weight.
func (p *Pedido) Peso() kernel.Peso {
	return p.peso
}

// Estado returns the current lifecycle estado.
func (p *Pedido) Estado() Estado {
	return p.estado
}

// VehiculoID returns the carrying vehicle's ID, or nil while unassigned.
// The returned pointer is a copy.
func (p *Pedido) VehiculoID() *kernel.UUID {
	if p.vehiculoID == nil {
		return nil
	}
	id := *p.vehiculoID
	return &id
}

// ConductorID returns the driver's ID, or nil while unassigned.
// The returned pointer is a copy.
func (p *Pedido) ConductorID() *kernel.UUID {
	if p.conductorID == nil {
		return nil
	}
	id := *p.conductorID
	return &id
}

// DireccionOrigen returns the pickup address.
func (p *Pedido) DireccionOrigen() string {
	return p.direccionOrigen
}

// DireccionDestino returns the delivery address.
func (p *Pedido) DireccionDestino() string {
	return p.direccionDestino
}

// FechaCreacion returns when the order entered the system.
func (p *Pedido) FechaCreacion() time.Time {
	return p.fechaCreacion
}

// FechaActualizacion returns when the order last changed.
func (p *Pedido) FechaActualizacion() time.Time {
	return p.fechaActualizacion
}

// EstaActivo reports whether the order still represents open work, that is,
// its estado is PENDIENTE or EN_PROGRESO.
func (p *Pedido) EstaActivo() bool {
	return !p.estado.EsFinal()
}

// AsignarVehiculoYConductor assigns the vehicle and the conductor as an
// atomic pair. The order must be PENDIENTE; one ID is never set without the
// other.
func (p *Pedido) AsignarVehiculoYConductor(vehiculoID, conductorID kernel.UUID) error {
	if err := errors.Join(vehiculoID.Validate(), conductorID.Validate()); err != nil {
		return err
	}

	if p.estado != Pendiente {
		return ErrPedidoNoPendiente
	}

	p.vehiculoID = &vehiculoID
	p.conductorID = &conductorID
	p.touch()
	return nil
}

// CambiarVehiculo replaces the carrying vehicle, keeping the conductor.
// Only PENDIENTE orders that already have a conductor can change vehicle.
func (p *Pedido) CambiarVehiculo(vehiculoID kernel.UUID) error {
	if err := vehiculoID.Validate(); err != nil {
		return err
	}

	if p.estado != Pendiente {
		return ErrPedidoNoPendiente
	}

	if p.conductorID == nil {
		return ErrPedidoSinConductor
	}

	p.vehiculoID = &vehiculoID
	p.touch()
	return nil
}

// Iniciar moves the order to EN_PROGRESO. Both the vehicle and the conductor
// must already be assigned.
func (p *Pedido) Iniciar() error {
	if p.vehiculoID == nil || p.conductorID == nil {
		return ErrAsignacionFaltante
	}

	return p.transicionar(EnProgreso)
}

// Completar moves the order to COMPLETADO.
func (p *Pedido) Completar() error {
	return p.transicionar(Completado)
}

// Cancelar moves the order to CANCELADO.
func (p *Pedido) Cancelar() error {
	return p.transicionar(Cancelado)
}

// CambiarEstado moves the order to the given estado through the
// corresponding verb, so EN_PROGRESO still demands a full assignment.
func (p *Pedido) CambiarEstado(destino Estado) error {
	switch destino {
	case EnProgreso:
		return p.Iniciar()
	case Completado:
		return p.Completar()
	case Cancelado:
		return p.Cancelar()
	default:
		return &TransicionInvalidaError{De: p.estado, A: destino}
	}
}

// transicionar applies a state machine transition and refreshes the audit
// timestamp.
func (p *Pedido) transicionar(destino Estado) error {
	nuevo, err := p.estado.Transicionar(destino)
	if err != nil {
		return err
	}

	p.estado = nuevo
	p.touch()
	return nil
}

// touch refreshes fechaActualizacion. Every mutator calls it after a
// successful change.
func (p *Pedido) touch() {
	p.fechaActualizacion = time.Now().UTC()
}

// setID sets the order's unique identifier with validation.
// This is an internal setter used during construction.
func (p *Pedido) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

// setDescripcion sets the cargo description with validation. Whitespace-only
// descriptions are rejected along with empty ones.
func (p *Pedido) setDescripcion(descripcion string) error {
	if strings.TrimSpace(descripcion) == "" {
		return ErrDescripcionIsRequired
	}

	p.descripcion = descripcion
	return nil
}

// setPeso sets the cargo weight with validation.
func (p *Pedido) setPeso(peso kernel.Peso) error {
	if err := peso.Validate(); err != nil {
		return err
	}

	p.peso = peso
	return nil
}

// setDirecciones sets both addresses with validation. Whitespace-only
// addresses are rejected along with empty ones.
func (p *Pedido) setDirecciones(origen, destino string) error {
	if strings.TrimSpace(origen) == "" {
		return ErrDireccionOrigenIsRequired
	}
	if strings.TrimSpace(destino) == "" {
		return ErrDireccionDestinoIsRequired
	}

	p.direccionOrigen = origen
	p.direccionDestino = destino
	return nil
}

// setEstado sets the estado during restoration.
func (p *Pedido) setEstado(estado Estado) error {
	if err := estado.Validate(); err != nil {
		return err
	}

	p.estado = estado
	return nil
}

// setAsignacion sets the assignment pair during restoration. Both pointers
// must be nil or both set; a half assignment cannot be persisted by the
// domain and is rejected on load.
func (p *Pedido) setAsignacion(vehiculoID, conductorID *kernel.UUID) error {
	if (vehiculoID == nil) != (conductorID == nil) {
		return ErrAsignacionFaltante
	}

	if vehiculoID == nil {
		return nil
	}

	if err := errors.Join(vehiculoID.Validate(), conductorID.Validate()); err != nil {
		return err
	}

	v, c := *vehiculoID, *conductorID
	p.vehiculoID = &v
	p.conductorID = &c
	return nil
}
