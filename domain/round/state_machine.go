package round

import (
	"errors"
	"fmt"
	"io"

	"github.com/luca-patrignani/fairplay/commitment"
	"github.com/luca-patrignani/fairplay/domain/moves"
)

type State string

const (
	Idle      State = "idle"
	Committed State = "committed"
	Resolved  State = "resolved"
	Disclosed State = "disclosed"
)

// ErrInvalidTransition is returned when an operation does not match the current state.
var ErrInvalidTransition = errors.New("invalid round transition")

// Transcript is everything needed to audit a disclosed round.
type Transcript struct {
	Opponent   string         `json:"opponent"`
	Challenger string         `json:"challenger"`
	Outcome    moves.Outcome  `json:"outcome"`
	Key        commitment.Key `json:"key"`
	Tag        commitment.Tag `json:"tag"`
}

// Verify recomputes the tag from the disclosed key and the opponent's move.
func (t Transcript) Verify() error {
	if err := commitment.Verify(t.Key, t.Opponent, t.Tag); err != nil {
		return fmt.Errorf("round %s vs %s: %w", t.Challenger, t.Opponent, err)
	}
	return nil
}

// Round is the state machine of one exchange. It is not safe for concurrent use.
type Round struct {
	engine    *moves.Engine
	keySource io.Reader

	state      State
	key        commitment.Key
	tag        commitment.Tag
	opponent   string
	challenger string
	outcome    moves.Outcome
}

type option func(Round) Round

// WithKeySource draws the round key from r instead of crypto/rand.
func WithKeySource(r io.Reader) option {
	return func(rd Round) Round {
		rd.keySource = r
		return rd
	}
}

// New returns an Idle round played with engine.
func New(engine *moves.Engine, opts ...option) *Round {
	r := Round{
		engine: engine,
		state:  Idle,
	}
	for _, opt := range opts {
		r = opt(r)
	}
	return &r
}

func (r *Round) State() State {
	return r.state
}

// Tag returns the published commitment, empty while Idle.
func (r *Round) Tag() commitment.Tag {
	return r.tag
}

// Commit generates the key, picks the opponent's move and returns the tag to
// publish. On failure the round stays Idle.
func (r *Round) Commit() (commitment.Tag, error) {
	if r.state != Idle {
		return "", fmt.Errorf("%w: commit in state %s", ErrInvalidTransition, r.state)
	}
	key, err := commitment.GenerateKey(r.keySource)
	if err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	opponent, err := r.engine.RandomMove()
	if err != nil {
		return "", fmt.Errorf("pick opponent move: %w", err)
	}
	r.key = key
	r.opponent = opponent
	r.tag = commitment.Authenticate(key, opponent)
	r.state = Committed
	return r.tag, nil
}

// Resolve records the challenger's move and computes the outcome. An unknown
// move leaves the round Committed.
func (r *Round) Resolve(challenger string) (moves.Outcome, error) {
	if r.state != Committed {
		return moves.Draw, fmt.Errorf("%w: resolve in state %s", ErrInvalidTransition, r.state)
	}
	outcome, err := r.engine.Winner(challenger, r.opponent)
	if err != nil {
		return moves.Draw, err
	}
	r.challenger = challenger
	r.outcome = outcome
	r.state = Resolved
	return outcome, nil
}

// Disclose reveals the key. It is only allowed once the round is Resolved.
func (r *Round) Disclose() (Transcript, error) {
	if r.state != Resolved {
		return Transcript{}, fmt.Errorf("%w: disclose in state %s", ErrInvalidTransition, r.state)
	}
	r.state = Disclosed
	return Transcript{
		Opponent:   r.opponent,
		Challenger: r.challenger,
		Outcome:    r.outcome,
		Key:        r.key,
		Tag:        r.tag,
	}, nil
}
