package moves

import "errors"

var (
	// ErrMoveCount is returned for move lists that are not odd or hold fewer than MinMoves.
	ErrMoveCount = errors.New("an odd number of at least 3 moves is required")
	// ErrDuplicateMove is returned when a move name appears more than once.
	ErrDuplicateMove = errors.New("moves must be unique")
	// ErrInvalidMove is returned when a move is not part of the MoveSet.
	ErrInvalidMove = errors.New("invalid move")
	// ErrEntropy is returned when the random stream behind RandomMove fails.
	ErrEntropy = errors.New("secure random source failed")
)
