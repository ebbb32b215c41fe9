package moves

import (
	"fmt"
	"slices"
)

// MinMoves is the smallest playable move list.
const MinMoves = 3

// MoveSet is an ordered list of distinct move names. The zero value is empty
// and rejected by NewEngine.
type MoveSet struct {
	names []string
	index map[string]int
}

// NewMoveSet validates names and freezes their order.
// Identity is case sensitive: "Rock" and "rock" are two different moves.
func NewMoveSet(names []string) (MoveSet, error) {
	if len(names) < MinMoves || len(names)%2 == 0 {
		return MoveSet{}, fmt.Errorf("%w: got %d", ErrMoveCount, len(names))
	}
	index := make(map[string]int, len(names))
	for i, name := range names {
		if _, ok := index[name]; ok {
			return MoveSet{}, fmt.Errorf("%w: %q repeated", ErrDuplicateMove, name)
		}
		index[name] = i
	}
	return MoveSet{
		names: slices.Clone(names),
		index: index,
	}, nil
}

// Len returns the number of moves.
func (s MoveSet) Len() int {
	return len(s.names)
}

// Names returns a copy of the move names in canonical order.
func (s MoveSet) Names() []string {
	return slices.Clone(s.names)
}

// At returns the move with ordinal i.
func (s MoveSet) At(i int) (string, error) {
	if i < 0 || i >= len(s.names) {
		return "", fmt.Errorf("%w: ordinal %d out of range [0, %d)", ErrInvalidMove, i, len(s.names))
	}
	return s.names[i], nil
}

// Index returns the ordinal of move.
func (s MoveSet) Index(move string) (int, error) {
	i, ok := s.index[move]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrInvalidMove, move)
	}
	return i, nil
}

// Contains reports whether move belongs to the set.
func (s MoveSet) Contains(move string) bool {
	_, ok := s.index[move]
	return ok
}

func (s MoveSet) valid() bool {
	return len(s.names) >= MinMoves && len(s.names)%2 == 1 && len(s.index) == len(s.names)
}
