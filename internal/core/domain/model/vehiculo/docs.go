// Package vehiculo contains the Vehiculo aggregate and its value objects.
//
// A Vehiculo is a fleet vehicle identified by a unique registration plate
// (Placa) and carrying a maximum cargo weight (Capacidad). A vehicle can be
// assigned to at most one conductor at a time; the assignment state lives on
// both sides of the relationship and the application layer keeps them
// consistent within a single transaction.
package vehiculo
