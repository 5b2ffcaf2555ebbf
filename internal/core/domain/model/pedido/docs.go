// Package pedido contains the Pedido aggregate and its Estado state machine.
//
// A Pedido is a transport order moving through PENDIENTE, EN_PROGRESO and
// the terminal COMPLETADO or CANCELADO estados. The carrying vehicle and the
// driver are assigned as an atomic pair while the order is still PENDIENTE.
package pedido
