// Package commitment implements the commit-then-disclose protocol that makes a
// round provably fair.
//
// # Protocol
//
//  1. A fresh 256-bit Key is drawn from a cryptographically secure source.
//  2. The opponent's move is bound to the key with HMAC-SHA-256 and the
//     resulting Tag is published before the challenger chooses.
//  3. Once the round is resolved the Key is disclosed and anyone can recompute
//     Authenticate(key, move) and compare it with the published Tag.
//
// The HMAC secret is the hex text of the key exactly as it is displayed, so an
// external HMAC calculator fed with the printed key reproduces the tag.
package commitment
