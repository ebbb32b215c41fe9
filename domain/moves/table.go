package moves

// Cell is a dominance table entry.
type Cell string

const (
	CellWin  Cell = "Win"
	CellLose Cell = "Lose"
	CellDraw Cell = "Draw"
)

// Row holds, for the opponent playing Move, the result of every challenger
// move in MoveSet order.
type Row struct {
	Move  string
	Cells []Cell
}

// BuildTable derives the full dominance table from Winner. Cell (i, j) is
// CellWin when the challenger playing move j beats the opponent playing
// move i. Nothing is cached: every cell is a fresh Winner call.
func BuildTable(e *Engine) ([]Row, error) {
	names := e.set.names
	rows := make([]Row, len(names))
	for i, opponent := range names {
		cells := make([]Cell, len(names))
		for j, challenger := range names {
			if i == j {
				cells[j] = CellDraw
				continue
			}
			outcome, err := e.Winner(challenger, opponent)
			if err != nil {
				return nil, err
			}
			if outcome == ChallengerWins {
				cells[j] = CellWin
			} else {
				cells[j] = CellLose
			}
		}
		rows[i] = Row{Move: opponent, Cells: cells}
	}
	return rows, nil
}
