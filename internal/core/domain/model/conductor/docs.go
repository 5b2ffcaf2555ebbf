// Package conductor contains the Conductor aggregate and the
// LicenciaConducir value object.
//
// A Conductor is a driver identified by a unique driving license. A
// conductor can hold up to three vehicles at a time; the vehicle list mirrors
// the assignment stored on each Vehiculo and the application layer keeps both
// sides consistent within a single transaction.
package conductor
