// Package round drives a single commit-resolve-disclose exchange between the
// opponent and the challenger.
//
// # States
//
// A Round moves strictly through Idle → Committed → Resolved → Disclosed.
// The opponent's move and its commitment tag exist from Committed on, the
// challenger's move and the outcome from Resolved on, and the key is only
// handed out by Disclose. Disclosed is terminal: a new exchange needs a new
// Round and therefore a new key.
package round
