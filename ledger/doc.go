// Package ledger keeps an append-only, hash-chained record of the rounds
// disclosed during one game session.
//
// # Core Components
//
// Ledger: the chain of blocks, starting with a genesis block.
//
// Block: one disclosed round together with its link to the previous block.
//
// # Security Properties
//
// The ledger provides:
//   - Tamper detection: changing any recorded round breaks the hash chain
//   - Fairness audit: every block's commitment is re-checked against its key
//
// Nothing is written to disk; the ledger lives as long as the session.
package ledger
