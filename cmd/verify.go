package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/luca-patrignani/fairplay/commitment"
)

// verifyConfig holds the values printed during a round.
type verifyConfig struct {
	Key  string
	Move string
	HMAC string
}

func parseVerifyConfig(fs *flag.FlagSet, args []string) (verifyConfig, error) {
	var cfg verifyConfig
	fs.StringVar(&cfg.Key, "key", "", "disclosed HMAC key (64 hex characters)")
	fs.StringVar(&cfg.Move, "move", "", "computer move revealed at the end of the round")
	fs.StringVar(&cfg.HMAC, "hmac", "", "HMAC published before your move (64 hex characters)")
	if err := fs.Parse(args); err != nil {
		return verifyConfig{}, err
	}
	if cfg.Key == "" || cfg.Move == "" || cfg.HMAC == "" {
		return verifyConfig{}, errors.New("-key, -move and -hmac are required")
	}
	return cfg, nil
}

// runVerify recomputes the commitment of a finished round and writes the verdict to out.
func runVerify(cfg verifyConfig, out io.Writer) error {
	key, err := commitment.ParseKey(cfg.Key)
	if err != nil {
		return err
	}
	tag, err := commitment.ParseTag(cfg.HMAC)
	if err != nil {
		return err
	}
	if err := commitment.Verify(key, cfg.Move, tag); err != nil {
		return fmt.Errorf("move %q was not committed under this key: %w", cfg.Move, err)
	}
	_, err = fmt.Fprintf(out, "OK: HMAC %s commits to %q\n", tag, cfg.Move)
	return err
}
