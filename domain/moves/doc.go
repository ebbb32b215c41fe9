// Package moves implements the generalized rock-paper-scissors rules over an
// arbitrary odd-sized, ordered list of move names.
//
// # Core Types
//
// MoveSet: the validated, immutable move list. The position of a move is its
// ordinal in the circular order.
//
// Engine: owns a MoveSet, draws the opponent's move from a cryptographic
// stream and decides the outcome of a (challenger, opponent) pair.
//
// Row: one line of the dominance table, derived from Engine.Winner.
//
// # Circular Dominance
//
// With n moves and half = n/2, every move beats the half moves that precede it
// cyclically and loses to the half moves that follow it. An odd n makes both
// arcs the same size, so two distinct moves never tie.
package moves
