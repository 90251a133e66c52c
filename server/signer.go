package server

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
)

// SecretKeySize is the decoded length of a secret key in bytes.
const SecretKeySize = 32

// Signer signs and verifies values with HMAC-SHA256, typically cookie values.
type Signer struct {
	key []byte
}

// NewSigner creates a signer from a standard base64 encoded 256-bit key.
// An empty key generates a random one, so signed values do not survive a restart.
func NewSigner(secretKey string) (*Signer, error) {
	if secretKey == "" {
		key := make([]byte, SecretKeySize)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generate secret key: %w", err)
		}
		return &Signer{key: key}, nil
	}

	key, err := base64.StdEncoding.DecodeString(secretKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSecretKey, err)
	}
	if len(key) != SecretKeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSecretKey, len(key), SecretKeySize)
	}

	return &Signer{key: key}, nil
}

// Sign returns value followed by a dot and its URL-safe base64 signature.
func (s *Signer) Sign(value string) string {
	return value + "." + base64.RawURLEncoding.EncodeToString(s.mac(value))
}

// Verify checks a value produced by Sign and returns the original value.
func (s *Signer) Verify(signed string) (string, error) {
	idx := strings.LastIndexByte(signed, '.')
	if idx < 0 {
		return "", fmt.Errorf("%w: missing signature", ErrInvalidSignature)
	}

	value, encoded := signed[:idx], signed[idx+1:]
	sig, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	if !hmac.Equal(sig, s.mac(value)) {
		return "", ErrInvalidSignature
	}

	return value, nil
}

func (s *Signer) mac(value string) []byte {
	h := hmac.New(sha256.New, s.key)
	h.Write([]byte(value))
	return h.Sum(nil)
}
