package ledger

import "github.com/luca-patrignani/fairplay/domain/round"

// Block records a single disclosed round.
type Block struct {
	Index     int              `json:"index"`
	Timestamp int64            `json:"timestamp"`
	PrevHash  string           `json:"prev_hash"`
	Hash      string           `json:"hash"`
	Round     round.Transcript `json:"round"`
}
