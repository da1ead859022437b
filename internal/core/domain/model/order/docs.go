// Package order contains the order aggregate and its lifecycle state machine.
//
// An order is a single customer transaction with one vendor: a set of
// immutable line snapshots, a payment mode, and a status that moves through
// placed, accepted, preparing, ready, and the terminal completed or
// cancelled states. Illegal transitions are refused, not raised; callers
// check CanTransition before issuing the state change.
package order
