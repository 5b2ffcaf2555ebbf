package services

import (
	"transportes/internal/core/domain/model/conductor"
	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/core/domain/model/pedido"
	"transportes/internal/core/domain/model/vehiculo"
)

// Activable is satisfied by every aggregate carrying the activo flag.
type Activable interface {
	EstaActivo() bool
}

// EstaActivo is satisfied by active aggregates. It works for any aggregate
// with the activo flag, so the same specification serves vehicles, drivers,
// and users.
func EstaActivo[T Activable]() Specification[T] {
	return SpecificationFunc[T](func(candidate T) bool {
		return candidate.EstaActivo()
	})
}

// VehiculoEstaLibre is satisfied by vehicles with no conductor assigned.
func VehiculoEstaLibre() Specification[*vehiculo.Vehiculo] {
	return SpecificationFunc[*vehiculo.Vehiculo](func(v *vehiculo.Vehiculo) bool {
		return v.EstaLibre()
	})
}

// TieneCapacidadSuficiente is satisfied by vehicles whose capacity can carry
// a cargo of the given weight. A cargo exactly at the limit fits.
func TieneCapacidadSuficiente(peso kernel.Peso) Specification[*vehiculo.Vehiculo] {
	return SpecificationFunc[*vehiculo.Vehiculo](func(v *vehiculo.Vehiculo) bool {
		return v.Capacidad().EsSuficientePara(peso)
	})
}

// EstaAsignadoAConductor is satisfied by vehicles currently held by the
// given conductor.
func EstaAsignadoAConductor(conductorID kernel.UUID) Specification[*vehiculo.Vehiculo] {
	return SpecificationFunc[*vehiculo.Vehiculo](func(v *vehiculo.Vehiculo) bool {
		return v.EstaAsignadoA(conductorID)
	})
}

// PuedeAsignarVehiculo is satisfied by active conductors whose vehicle list
// still has room below the limit.
func PuedeAsignarVehiculo() Specification[*conductor.Conductor] {
	return SpecificationFunc[*conductor.Conductor](func(c *conductor.Conductor) bool {
		return c.EstaActivo() && c.PuedeAsignarMasVehiculos()
	})
}

// PedidoEstaActivo is satisfied by orders that still represent open work,
// that is, PENDIENTE or EN_PROGRESO.
func PedidoEstaActivo() Specification[*pedido.Pedido] {
	return SpecificationFunc[*pedido.Pedido](func(p *pedido.Pedido) bool {
		return p.EstaActivo()
	})
}
