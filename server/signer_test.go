package server_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/website/server"
)

func testSecretKey() string {
	return base64.StdEncoding.EncodeToString([]byte(strings.Repeat("k", server.SecretKeySize)))
}

func TestSigner_RoundTrip(t *testing.T) {
	signer, err := server.NewSigner(testSecretKey())
	require.NoError(t, err)

	signed := signer.Sign("user=42")
	assert.True(t, strings.HasPrefix(signed, "user=42."))

	value, err := signer.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user=42", value)
}

func TestSigner_Tampered(t *testing.T) {
	signer, err := server.NewSigner(testSecretKey())
	require.NoError(t, err)

	signed := signer.Sign("user=42")
	tampered := "user=43" + strings.TrimPrefix(signed, "user=42")

	_, err = signer.Verify(tampered)
	assert.ErrorIs(t, err, server.ErrInvalidSignature)

	_, err = signer.Verify("no-signature")
	assert.ErrorIs(t, err, server.ErrInvalidSignature)

	_, err = signer.Verify("value.!!!")
	assert.ErrorIs(t, err, server.ErrInvalidSignature)
}

func TestSigner_DifferentKeys(t *testing.T) {
	a, err := server.NewSigner(testSecretKey())
	require.NoError(t, err)
	b, err := server.NewSigner("")
	require.NoError(t, err)

	_, err = b.Verify(a.Sign("value"))
	assert.ErrorIs(t, err, server.ErrInvalidSignature)
}

func TestNewSigner_InvalidKey(t *testing.T) {
	_, err := server.NewSigner("not base64!")
	assert.ErrorIs(t, err, server.ErrInvalidSecretKey)

	_, err = server.NewSigner(base64.StdEncoding.EncodeToString([]byte("short")))
	assert.ErrorIs(t, err, server.ErrInvalidSecretKey)
}
