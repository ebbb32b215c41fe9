package moves

import (
	"errors"
	"fmt"
	"testing"
)

func moveNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("move%d", i)
	}
	return names
}

func newTestEngine(t *testing.T, names []string, opts ...option) *Engine {
	t.Helper()
	set, err := NewMoveSet(names)
	if err != nil {
		t.Fatalf("new move set: %v", err)
	}
	e, err := NewEngine(set, opts...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e
}

func TestNewEngineRejectsZeroMoveSet(t *testing.T) {
	if _, err := NewEngine(MoveSet{}); !errors.Is(err, ErrMoveCount) {
		t.Fatalf("expected ErrMoveCount, got %v", err)
	}
}

func TestWinnerClassic(t *testing.T) {
	e := newTestEngine(t, []string{"rock", "paper", "scissors"})
	tests := []struct {
		challenger, opponent string
		want                 Outcome
	}{
		{"rock", "scissors", ChallengerWins},
		{"scissors", "rock", OpponentWins},
		{"rock", "paper", OpponentWins},
		{"paper", "rock", ChallengerWins},
		{"scissors", "paper", ChallengerWins},
		{"paper", "scissors", OpponentWins},
		{"rock", "rock", Draw},
	}
	for _, tt := range tests {
		got, err := e.Winner(tt.challenger, tt.opponent)
		if err != nil {
			t.Fatalf("Winner(%s, %s): %v", tt.challenger, tt.opponent, err)
		}
		if got != tt.want {
			t.Fatalf("Winner(%s, %s) = %s, want %s", tt.challenger, tt.opponent, got, tt.want)
		}
	}
}

func TestWinnerFiveMoves(t *testing.T) {
	e := newTestEngine(t, []string{"rock", "paper", "scissors", "lizard", "spock"})
	tests := []struct {
		challenger, opponent string
		want                 Outcome
	}{
		{"rock", "paper", OpponentWins},
		{"rock", "scissors", OpponentWins},
		{"rock", "lizard", ChallengerWins},
		{"rock", "spock", ChallengerWins},
		{"spock", "rock", OpponentWins},
		{"spock", "paper", OpponentWins},
		{"spock", "scissors", ChallengerWins},
	}
	for _, tt := range tests {
		got, err := e.Winner(tt.challenger, tt.opponent)
		if err != nil {
			t.Fatalf("Winner(%s, %s): %v", tt.challenger, tt.opponent, err)
		}
		if got != tt.want {
			t.Fatalf("Winner(%s, %s) = %s, want %s", tt.challenger, tt.opponent, got, tt.want)
		}
	}
}

func TestWinnerInvalidMove(t *testing.T) {
	e := newTestEngine(t, []string{"rock", "paper", "scissors"})
	for _, pair := range [][2]string{{"lizard", "rock"}, {"rock", "lizard"}, {"", ""}, {"Rock", "Rock"}} {
		if _, err := e.Winner(pair[0], pair[1]); !errors.Is(err, ErrInvalidMove) {
			t.Fatalf("Winner(%q, %q): expected ErrInvalidMove, got %v", pair[0], pair[1], err)
		}
	}
}

func TestWinnerTournamentProperties(t *testing.T) {
	for _, n := range []int{3, 5, 7, 9, 11, 21} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			names := moveNames(n)
			e := newTestEngine(t, names)
			for _, a := range names {
				if got, err := e.Winner(a, a); err != nil || got != Draw {
					t.Fatalf("Winner(%s, %s) = %s, %v; want Draw", a, a, got, err)
				}
				wins, losses := 0, 0
				for _, b := range names {
					if a == b {
						continue
					}
					ab, err := e.Winner(a, b)
					if err != nil {
						t.Fatal(err)
					}
					ba, err := e.Winner(b, a)
					if err != nil {
						t.Fatal(err)
					}
					switch {
					case ab == ChallengerWins && ba == OpponentWins:
						wins++
					case ab == OpponentWins && ba == ChallengerWins:
						losses++
					default:
						t.Fatalf("Winner(%s, %s) = %s and Winner(%s, %s) = %s are not opposite", a, b, ab, b, a, ba)
					}
				}
				if wins != (n-1)/2 || losses != (n-1)/2 {
					t.Fatalf("%s beats %d and loses to %d moves, want %d each", a, wins, losses, (n-1)/2)
				}
			}
		})
	}
}

func TestRandomMoveDistribution(t *testing.T) {
	const trials = 10000
	for _, n := range []int{3, 5, 7} {
		names := moveNames(n)
		e := newTestEngine(t, names)
		counts := make(map[string]int, n)
		for range trials {
			m, err := e.RandomMove()
			if err != nil {
				t.Fatalf("random move: %v", err)
			}
			counts[m]++
		}
		expected := float64(trials) / float64(n)
		for _, name := range names {
			got := float64(counts[name])
			if got < expected*0.85 || got > expected*1.15 {
				t.Fatalf("n=%d: %s drawn %v times, expected about %.0f", n, name, got, expected)
			}
		}
	}
}

type counterReader struct {
	next byte
}

func (r *counterReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.next
		r.next++
	}
	return len(p), nil
}

func TestRandomMoveFromInjectedReader(t *testing.T) {
	names := moveNames(7)
	a := newTestEngine(t, names, WithRandom(&counterReader{}))
	b := newTestEngine(t, names, WithRandom(&counterReader{}))
	for range 20 {
		ma, err := a.RandomMove()
		if err != nil {
			t.Fatal(err)
		}
		mb, err := b.RandomMove()
		if err != nil {
			t.Fatal(err)
		}
		if ma != mb {
			t.Fatalf("identical streams drew %s and %s", ma, mb)
		}
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, fmt.Errorf("read error") }

func TestRandomMoveEntropyFailure(t *testing.T) {
	e := newTestEngine(t, moveNames(3), WithRandom(errReader{}))
	m, err := e.RandomMove()
	if !errors.Is(err, ErrEntropy) {
		t.Fatalf("expected ErrEntropy, got %q, %v", m, err)
	}
}

func TestUniformIndexRejectsBiasedDraws(t *testing.T) {
	// 0xffffffff lies above the largest multiple of 3 below 2^32 and must be redrawn.
	stream := &fixedStream{values: [][]byte{{0xff, 0xff, 0xff, 0xff}, {0, 0, 0, 4}}}
	i, err := uniformIndex(stream, 3)
	if err != nil {
		t.Fatal(err)
	}
	if i != 1 {
		t.Fatalf("expected index 1, got %d", i)
	}
	if stream.calls != 2 {
		t.Fatalf("expected 2 draws, got %d", stream.calls)
	}
}

type fixedStream struct {
	values [][]byte
	calls  int
}

func (s *fixedStream) XORKeyStream(dst, src []byte) {
	v := s.values[s.calls]
	s.calls++
	for i := range dst {
		dst[i] = src[i] ^ v[i]
	}
}

func TestOutcomeString(t *testing.T) {
	if Draw.String() != "Draw" || ChallengerWins.String() != "Challenger wins" || OpponentWins.String() != "Opponent wins" {
		t.Fatal("unexpected outcome names")
	}
	if Outcome(9).String() != "Outcome(9)" {
		t.Fatalf("unexpected name for unknown outcome: %s", Outcome(9))
	}
}
