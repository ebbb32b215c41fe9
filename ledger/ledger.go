package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/luca-patrignani/fairplay/domain/round"
)

const genesisPrevHash = "0"

type Ledger struct {
	mu     sync.RWMutex
	blocks []Block
	now    func() time.Time
}

// NewLedger creates a ledger holding only the genesis block.
func NewLedger() *Ledger {
	l := &Ledger{now: time.Now}
	genesis := Block{
		Index:     0,
		Timestamp: l.now().Unix(),
		PrevHash:  genesisPrevHash,
	}
	genesis.Hash = calculateHash(genesis)
	l.blocks = append(l.blocks, genesis)
	return l
}

// Append records a disclosed round. Rounds whose key does not reproduce their
// tag are refused.
func (l *Ledger) Append(t round.Transcript) error {
	if err := t.Verify(); err != nil {
		return fmt.Errorf("refusing round: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	latest := l.blocks[len(l.blocks)-1]
	block := Block{
		Index:     latest.Index + 1,
		Timestamp: l.now().Unix(),
		PrevHash:  latest.Hash,
		Round:     t,
	}
	block.Hash = calculateHash(block)

	if err := validateBlock(block, latest); err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}
	l.blocks = append(l.blocks, block)
	return nil
}

// GetLatest returns the most recently added block.
func (l *Ledger) GetLatest() Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.blocks[len(l.blocks)-1]
}

// GetByIndex retrieves a block by its position in the chain.
func (l *Ledger) GetByIndex(index int) (Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 || index >= len(l.blocks) {
		return Block{}, fmt.Errorf("index %d out of range", index)
	}
	return l.blocks[index], nil
}

// Rounds returns the recorded rounds in play order, genesis excluded.
func (l *Ledger) Rounds() []round.Transcript {
	l.mu.RLock()
	defer l.mu.RUnlock()

	rounds := make([]round.Transcript, 0, len(l.blocks)-1)
	for _, b := range l.blocks[1:] {
		rounds = append(rounds, b.Round)
	}
	return rounds
}

// Verify walks the whole chain: genesis, index continuity, hash links, block
// hashes and every round's commitment.
func (l *Ledger) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	genesis := l.blocks[0]
	if genesis.Index != 0 || genesis.PrevHash != genesisPrevHash || genesis.Hash != calculateHash(genesis) {
		return fmt.Errorf("invalid genesis block")
	}
	for i := 1; i < len(l.blocks); i++ {
		if err := validateBlock(l.blocks[i], l.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
		if err := l.blocks[i].Round.Verify(); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
	}
	return nil
}

func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	if expected := calculateHash(current); current.Hash != expected {
		return fmt.Errorf("invalid hash: expected %s, got %s", expected, current.Hash)
	}
	return nil
}

// calculateHash is the SHA256 over index, timestamp, previous hash and the
// JSON form of the round.
func calculateHash(b Block) string {
	roundBytes, _ := json.Marshal(b.Round)
	data := fmt.Sprintf("%d%d%s%s", b.Index, b.Timestamp, b.PrevHash, roundBytes)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
