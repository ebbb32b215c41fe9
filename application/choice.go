package application

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/luca-patrignani/fairplay/domain/moves"
)

const (
	HelpInput = "?"
	ExitInput = "0"
)

// ErrInvalidChoice is returned for menu input that is neither a move number,
// HelpInput nor ExitInput.
var ErrInvalidChoice = errors.New("invalid choice")

type ChoiceKind int

const (
	ChoiceMove ChoiceKind = iota
	ChoiceHelp
	ChoiceExit
)

// Choice is a parsed menu entry. Move is only set for ChoiceMove.
type Choice struct {
	Kind ChoiceKind
	Move string
}

// ParseChoice maps menu input to a Choice. Moves are numbered from 1 in
// MoveSet order.
func ParseChoice(input string, set moves.MoveSet) (Choice, error) {
	input = strings.TrimSpace(input)
	switch input {
	case HelpInput:
		return Choice{Kind: ChoiceHelp}, nil
	case ExitInput:
		return Choice{Kind: ChoiceExit}, nil
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return Choice{}, fmt.Errorf("%w: %q is not a number", ErrInvalidChoice, input)
	}
	move, err := set.At(n - 1)
	if err != nil {
		return Choice{}, fmt.Errorf("%w: %d is not between 1 and %d", ErrInvalidChoice, n, set.Len())
	}
	return Choice{Kind: ChoiceMove, Move: move}, nil
}
