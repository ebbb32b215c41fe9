package main

import (
	"errors"

	"github.com/luca-patrignani/fairplay/domain/moves"
)

// argsErrorMessage turns a move list validation error into the text shown to
// the user.
func argsErrorMessage(err error) string {
	switch {
	case errors.Is(err, moves.ErrDuplicateMove):
		return "Error: Moves must be unique.\n" +
			"Example: rock paper scissors (you can't repeat moves like 'rock rock scissors')"
	case errors.Is(err, moves.ErrMoveCount):
		return "Error: You must provide an odd number (≥ 3) of non-repeating moves.\n" +
			"Example: rock paper scissors"
	default:
		return "Error: " + err.Error()
	}
}
