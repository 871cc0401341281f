// Package cipher obfuscates journal snapshots with a passphrase-derived
// repeating XOR keystream, encoded as standard base64.
//
// This is NOT cryptographically strong: the keystream repeats every
// len(passphrase) bytes and falls to known-plaintext and frequency analysis.
// It is kept as-is so blobs stay interchangeable with existing exports.
package cipher

import (
	"encoding/base64"
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrDecrypt is returned by Open for every kind of undecodable input.
	ErrDecrypt = errors.New("failed to decrypt data")
	// ErrEmptyPassphrase is returned when the passphrase has no bytes.
	ErrEmptyPassphrase = errors.New("passphrase is empty")
)

// Seal XORs plaintext with the passphrase keystream and base64-encodes it.
// Seal is deterministic for identical inputs.
func Seal(plaintext, passphrase string) (string, error) {
	if passphrase == "" {
		return "", ErrEmptyPassphrase
	}
	return base64.StdEncoding.EncodeToString(xor([]byte(plaintext), []byte(passphrase))), nil
}

// Open reverses Seal. Any failure is reported as ErrDecrypt.
func Open(blob, passphrase string) (string, error) {
	if passphrase == "" {
		return "", fmt.Errorf("%w: %w", ErrDecrypt, ErrEmptyPassphrase)
	}
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", fmt.Errorf("%w: invalid encoding", ErrDecrypt)
	}
	plain := xor(raw, []byte(passphrase))
	if !utf8.Valid(plain) {
		return "", fmt.Errorf("%w: invalid text", ErrDecrypt)
	}
	return string(plain), nil
}

func xor(data, key []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key[i%len(key)]
	}
	return out
}
