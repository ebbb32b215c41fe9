package application

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/luca-patrignani/fairplay/commitment"
	"github.com/luca-patrignani/fairplay/domain/moves"
	"github.com/luca-patrignani/fairplay/domain/round"
	"github.com/luca-patrignani/fairplay/ledger"
)

// Prompter reads the challenger's input.
type Prompter interface {
	// ReadChoice returns the raw menu input.
	ReadChoice() (string, error)
	PlayAgain() (bool, error)
}

// Presenter renders the session to the challenger.
type Presenter interface {
	ShowCommitment(n int, tag commitment.Tag)
	ShowMenu(names []string)
	ShowHelp(rows []moves.Row)
	ShowInvalidChoice(err error, names []string)
	ShowResult(t round.Transcript)
	ShowDisclosure(key commitment.Key, verifyURL string)
	ShowSummary(rounds []round.Transcript)
	ShowExit()
}

// GameOrchestrator runs a session: one round after the other until the
// challenger leaves or the round limit is reached.
type GameOrchestrator struct {
	engine    *moves.Engine
	ledger    *ledger.Ledger
	prompter  Prompter
	presenter Presenter
	logger    *slog.Logger
	keySource io.Reader
	maxRounds int
	verifyURL string
}

type option func(GameOrchestrator) GameOrchestrator

func WithLogger(logger *slog.Logger) option {
	return func(g GameOrchestrator) GameOrchestrator {
		g.logger = logger
		return g
	}
}

// WithKeySource draws round keys from r instead of crypto/rand.
func WithKeySource(r io.Reader) option {
	return func(g GameOrchestrator) GameOrchestrator {
		g.keySource = r
		return g
	}
}

// WithMaxRounds stops the session after n disclosed rounds, 0 means no limit.
func WithMaxRounds(n int) option {
	return func(g GameOrchestrator) GameOrchestrator {
		g.maxRounds = n
		return g
	}
}

func WithVerifyURL(url string) option {
	return func(g GameOrchestrator) GameOrchestrator {
		g.verifyURL = url
		return g
	}
}

func NewGameOrchestrator(engine *moves.Engine, prompter Prompter, presenter Presenter, opts ...option) *GameOrchestrator {
	g := GameOrchestrator{
		engine:    engine,
		ledger:    ledger.NewLedger(),
		prompter:  prompter,
		presenter: presenter,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		g = opt(g)
	}
	return &g
}

// Ledger returns the record of the rounds disclosed so far.
func (g *GameOrchestrator) Ledger() *ledger.Ledger {
	return g.ledger
}

// Run plays the session. Any fault aborts the current round and is returned;
// a round abandoned through ExitInput is never disclosed.
func (g *GameOrchestrator) Run() error {
	for played := 0; ; {
		exited, err := g.playRound(played + 1)
		if err != nil {
			g.logger.Error("round aborted", "round", played+1, "error", err)
			return fmt.Errorf("round %d: %w", played+1, err)
		}
		if exited {
			break
		}
		played++
		if g.maxRounds > 0 && played >= g.maxRounds {
			break
		}
		again, err := g.prompter.PlayAgain()
		if err != nil {
			return fmt.Errorf("play again: %w", err)
		}
		if !again {
			break
		}
	}

	g.presenter.ShowSummary(g.ledger.Rounds())
	if err := g.ledger.Verify(); err != nil {
		return fmt.Errorf("session ledger: %w", err)
	}
	g.presenter.ShowExit()
	return nil
}

// playRound reports exited when the challenger chose ExitInput.
func (g *GameOrchestrator) playRound(n int) (exited bool, err error) {
	r := round.New(g.engine, round.WithKeySource(g.keySource))
	tag, err := r.Commit()
	if err != nil {
		return false, err
	}
	g.logger.Debug("round committed", "round", n)
	g.presenter.ShowCommitment(n, tag)

	set := g.engine.Moves()
	names := set.Names()
	for {
		g.presenter.ShowMenu(names)
		input, err := g.prompter.ReadChoice()
		if err != nil {
			return false, fmt.Errorf("read choice: %w", err)
		}
		choice, err := ParseChoice(input, set)
		if err != nil {
			g.presenter.ShowInvalidChoice(err, names)
			continue
		}
		switch choice.Kind {
		case ChoiceHelp:
			rows, err := moves.BuildTable(g.engine)
			if err != nil {
				return false, err
			}
			g.presenter.ShowHelp(rows)
		case ChoiceExit:
			g.logger.Debug("round abandoned", "round", n)
			return true, nil
		case ChoiceMove:
			return false, g.settle(r, n, choice.Move)
		}
	}
}

// settle resolves the round, then discloses the key and records it.
func (g *GameOrchestrator) settle(r *round.Round, n int, move string) error {
	outcome, err := r.Resolve(move)
	if err != nil {
		return err
	}
	g.logger.Debug("round resolved", "round", n, "outcome", outcome)

	t, err := r.Disclose()
	if err != nil {
		return err
	}
	g.logger.Debug("round disclosed", "round", n)
	g.presenter.ShowResult(t)
	g.presenter.ShowDisclosure(t.Key, g.verifyURL)
	return g.ledger.Append(t)
}
