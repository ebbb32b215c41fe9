package moves

import (
	"crypto/cipher"
	"encoding/binary"
	"fmt"
	"io"

	"go.dedis.ch/kyber/v4/util/random"
)

// Outcome of a round from the challenger's point of view.
type Outcome int

const (
	Draw Outcome = iota
	ChallengerWins
	OpponentWins
)

func (o Outcome) String() string {
	switch o {
	case Draw:
		return "Draw"
	case ChallengerWins:
		return "Challenger wins"
	case OpponentWins:
		return "Opponent wins"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Engine decides rounds over a fixed MoveSet.
type Engine struct {
	set    MoveSet
	random io.Reader
}

type option func(Engine) Engine

// WithRandom feeds the move stream from r instead of crypto/rand.
func WithRandom(r io.Reader) option {
	return func(e Engine) Engine {
		e.random = r
		return e
	}
}

// NewEngine returns an Engine for set. A MoveSet that did not come out of
// NewMoveSet is rejected with ErrMoveCount.
func NewEngine(set MoveSet, opts ...option) (*Engine, error) {
	if !set.valid() {
		return nil, fmt.Errorf("%w: got %d", ErrMoveCount, set.Len())
	}
	e := Engine{set: set}
	for _, opt := range opts {
		e = opt(e)
	}
	return &e, nil
}

// Moves returns the engine's MoveSet.
func (e *Engine) Moves() MoveSet {
	return e.set
}

// RandomMove draws a move uniformly from the whole MoveSet.
func (e *Engine) RandomMove() (string, error) {
	var stream cipher.Stream
	if e.random == nil {
		stream = random.New()
	} else {
		stream = random.New(e.random)
	}
	i, err := uniformIndex(stream, e.set.Len())
	if err != nil {
		return "", err
	}
	return e.set.names[i], nil
}

// uniformIndex rejects 32-bit draws above the largest multiple of n so that
// every index in [0, n) is equally likely.
func uniformIndex(stream cipher.Stream, n int) (idx int, err error) {
	// kyber's stream panics when its readers fail
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrEntropy, r)
		}
	}()
	const space = uint64(1) << 32
	limit := space - space%uint64(n)
	buf := make([]byte, 4)
	for {
		clear(buf)
		stream.XORKeyStream(buf, buf)
		v := uint64(binary.BigEndian.Uint32(buf))
		if v < limit {
			return int(v % uint64(n)), nil
		}
	}
}

// Winner decides a round.
//
// Both moves must belong to the MoveSet, otherwise ErrInvalidMove is returned.
// With i and j the ordinals of challenger and opponent, d = (j - i) mod n is
// the forward distance: 1 <= d <= n/2 means the opponent wins, any larger d
// means the challenger wins.
func (e *Engine) Winner(challenger, opponent string) (Outcome, error) {
	i, err := e.set.Index(challenger)
	if err != nil {
		return Draw, fmt.Errorf("challenger: %w", err)
	}
	j, err := e.set.Index(opponent)
	if err != nil {
		return Draw, fmt.Errorf("opponent: %w", err)
	}
	if challenger == opponent {
		return Draw, nil
	}
	n := e.set.Len()
	half := n / 2
	d := ((j-i)%n + n) % n
	if d >= 1 && d <= half {
		return OpponentWins, nil
	}
	return ChallengerWins, nil
}
