package commitment

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

// KeySize is the number of random bytes behind a Key.
const KeySize = 32

// HexSize is the length of a hex encoded Key or Tag.
const HexSize = 2 * sha256.Size

var (
	// ErrEntropy is returned when the secure random source cannot deliver.
	ErrEntropy = errors.New("secure random source failed")
	// ErrMismatch is returned when a disclosed key does not reproduce a tag.
	ErrMismatch = errors.New("commitment mismatch")
	// ErrMalformed is returned for keys or tags that are not 64 hex characters.
	ErrMalformed = errors.New("malformed commitment value")
)

// Key is a per-round secret, lowercase hex of KeySize random bytes.
type Key string

// Tag is the lowercase hex HMAC-SHA-256 of a message under a Key.
type Tag string

// GenerateKey reads KeySize bytes from reader and returns them hex encoded.
// A nil reader means crypto/rand. A short or failing read is an ErrEntropy,
// there is no fallback source.
func GenerateKey(reader io.Reader) (Key, error) {
	if reader == nil {
		reader = rand.Reader
	}
	buf := make([]byte, KeySize)
	if _, err := io.ReadFull(reader, buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEntropy, err)
	}
	return Key(hex.EncodeToString(buf)), nil
}

// Authenticate returns the HMAC-SHA-256 of message keyed with the text of key.
func Authenticate(key Key, message string) Tag {
	mac := hmac.New(sha256.New, []byte(key))
	_, _ = mac.Write([]byte(message))
	return Tag(hex.EncodeToString(mac.Sum(nil)))
}

// Verify checks that key and message reproduce tag.
func Verify(key Key, message string, tag Tag) error {
	expected := Authenticate(key, message)
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(string(tag)))) {
		return ErrMismatch
	}
	return nil
}

// ParseKey normalizes a user supplied key.
func ParseKey(s string) (Key, error) {
	v, err := parseHex(s)
	if err != nil {
		return "", fmt.Errorf("key: %w", err)
	}
	return Key(v), nil
}

// ParseTag normalizes a user supplied tag.
func ParseTag(s string) (Tag, error) {
	v, err := parseHex(s)
	if err != nil {
		return "", fmt.Errorf("hmac: %w", err)
	}
	return Tag(v), nil
}

func parseHex(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != HexSize {
		return "", fmt.Errorf("%w: expected %d hex characters, got %d", ErrMalformed, HexSize, len(s))
	}
	if _, err := hex.DecodeString(s); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return s, nil
}
