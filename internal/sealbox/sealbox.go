// Package sealbox encrypts secret values for GitHub Actions using
// anonymous NaCl sealed boxes (libsodium crypto_box_seal).
package sealbox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/nacl/box"
)

// KeySize is the length of a Curve25519 public key
const KeySize = 32

// ErrInvalidKeyLength is returned when the decoded public key is not KeySize bytes
var ErrInvalidKeyLength = errors.New("invalid public key length")

// Seal encrypts plaintext for the holder of the base64 encoded public key
// and returns the base64 encoded ciphertext. Every call uses a fresh
// ephemeral key pair, so the output differs for identical input.
func Seal(publicKey, plaintext string) (string, error) {
	recipient, err := DecodePublicKey(publicKey)
	if err != nil {
		return "", err
	}

	sealed, err := box.SealAnonymous(nil, []byte(plaintext), recipient, rand.Reader)
	if err != nil {
		return "", fmt.Errorf("sealing secret: %w", err)
	}

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// DecodePublicKey decodes a standard base64 public key
func DecodePublicKey(publicKey string) (*[KeySize]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(publicKey)
	if err != nil {
		return nil, fmt.Errorf("decoding public key: %w", err)
	}
	if len(raw) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(raw), KeySize)
	}

	var key [KeySize]byte
	copy(key[:], raw)
	return &key, nil
}
