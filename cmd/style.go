package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/fairplay/application"
	"github.com/luca-patrignani/fairplay/commitment"
	"github.com/luca-patrignani/fairplay/domain/moves"
	"github.com/luca-patrignani/fairplay/domain/round"
)

const tableCorner = "v PC\\User >"

// terminal is the pterm Presenter and Prompter of the game.
type terminal struct{}

func (terminal) ShowCommitment(n int, tag commitment.Tag) {
	pterm.DefaultSection.Printfln("Round %d", n)
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	pbox.WithTitle(pterm.LightYellow("|COMMITMENT|")).WithTitleTopCenter().Println("HMAC: " + string(tag))
}

func (terminal) ShowMenu(names []string) {
	pterm.Println()
	pterm.Println("Available moves:")
	for _, line := range menuLines(names) {
		pterm.Println(line)
	}
	pterm.Println()
}

func (terminal) ShowHelp(rows []moves.Row) {
	if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(helpTableData(rows)).Render(); err != nil {
		pterm.Error.Println(err.Error())
	}
}

func (terminal) ShowInvalidChoice(err error, names []string) {
	pterm.Error.Printfln("Invalid move! Please enter a valid number corresponding to a move. (%v)", err)
	pterm.Info.Println(choiceExample(names))
}

func (terminal) ShowResult(t round.Transcript) {
	pterm.Printfln("Your move: %s", pterm.LightCyan(t.Challenger))
	pterm.Printfln("Computer move: %s", pterm.LightCyan(t.Opponent))
	switch t.Outcome {
	case moves.ChallengerWins:
		pterm.Success.Println(resultText(t.Outcome))
	case moves.OpponentWins:
		pterm.Warning.Println(resultText(t.Outcome))
	default:
		pterm.Info.Println(resultText(t.Outcome))
	}
}

func (terminal) ShowDisclosure(key commitment.Key, verifyURL string) {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	pbox.WithTitle(pterm.LightGreen("|DISCLOSURE|")).WithTitleTopCenter().Println("HMAC key: " + string(key))
	pterm.Info.Println("Check the HMAC key to verify the integrity of the game.")
	if verifyURL != "" {
		pterm.Info.Println(verifyURL)
	}
}

func (terminal) ShowSummary(rounds []round.Transcript) {
	if len(rounds) == 0 {
		pterm.Info.Println("No rounds played.")
		return
	}
	pterm.DefaultSection.Println("Session")
	if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(summaryTableData(rounds)).Render(); err != nil {
		pterm.Error.Println(err.Error())
	}
}

func (terminal) ShowExit() {
	pterm.Info.Println("Exiting the game.")
}

func (terminal) ReadChoice() (string, error) {
	return pterm.DefaultInteractiveTextInput.WithDefaultText("Enter your move").Show()
}

func (terminal) PlayAgain() (bool, error) {
	return pterm.DefaultInteractiveConfirm.WithDefaultText("Play another round?").WithDefaultValue(true).Show()
}

func menuLines(names []string) []string {
	lines := make([]string, 0, len(names)+2)
	for i, name := range names {
		lines = append(lines, fmt.Sprintf("%d - %s", i+1, name))
	}
	return append(lines,
		application.ExitInput+" - Exit",
		application.HelpInput+" - Help",
	)
}

func choiceExample(names []string) string {
	if len(names) < 2 {
		return "Example: Enter 1 for the first move."
	}
	return fmt.Sprintf("Example: Enter 1 for %q, 2 for %q, etc.", names[0], names[1])
}

// helpTableData lays the dominance table out with computer moves as rows and
// the user's moves as columns.
func helpTableData(rows []moves.Row) [][]string {
	header := []string{tableCorner}
	for _, r := range rows {
		header = append(header, r.Move)
	}
	data := [][]string{header}
	for _, r := range rows {
		line := []string{r.Move}
		for _, c := range r.Cells {
			line = append(line, string(c))
		}
		data = append(data, line)
	}
	return data
}

func summaryTableData(rounds []round.Transcript) [][]string {
	data := [][]string{{"Round", "Your move", "Computer move", "Result", "HMAC"}}
	for i, t := range rounds {
		data = append(data, []string{strconv.Itoa(i + 1), t.Challenger, t.Opponent, resultText(t.Outcome), string(t.Tag)})
	}
	return data
}

func resultText(o moves.Outcome) string {
	switch o {
	case moves.ChallengerWins:
		return "You win!"
	case moves.OpponentWins:
		return "Computer wins!"
	default:
		return "Draw!"
	}
}
