package main

import (
	"flag"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/fairplay/application"
	"github.com/luca-patrignani/fairplay/config"
	"github.com/luca-patrignani/fairplay/domain/moves"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}
	if cfg.NoColor {
		pterm.DisableColor()
	}
	logger := newLogger(cfg.LogLevel)

	args := os.Args[1:]
	if len(args) > 0 && args[0] == "verify" {
		vcfg, err := parseVerifyConfig(flag.NewFlagSet("verify", flag.ExitOnError), args[1:])
		if err != nil {
			config.Exitf("verify: %v", err)
		}
		if err := runVerify(vcfg, os.Stdout); err != nil {
			config.Exitf("verify: %v", err)
		}
		return
	}

	set, err := moves.NewMoveSet(args)
	if err != nil {
		config.Exitf("%s", argsErrorMessage(err))
	}
	engine, err := moves.NewEngine(set)
	if err != nil {
		config.Exitf("%v", err)
	}

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Fair", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("play", pterm.FgDarkGray.ToStyle()),
	).Render()
	logger.Debug("session started", "moves", set.Len())

	console := terminal{}
	orchestrator := application.NewGameOrchestrator(engine, console, console,
		application.WithLogger(logger),
		application.WithMaxRounds(cfg.MaxRounds),
		application.WithVerifyURL(cfg.VerifyURL),
	)
	if err := orchestrator.Run(); err != nil {
		logger.Error("game aborted", "error", err)
		os.Exit(1)
	}
}
