package encrypter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecrypt(t *testing.T) {
	e := New("0123456789abcdef")

	sealed, err := e.Encrypt("ingest-srv:secret")
	require.NoError(t, err)
	assert.NotEqual(t, "ingest-srv:secret", sealed)

	plain, err := e.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "ingest-srv:secret", plain)
}

func TestInvalidKey(t *testing.T) {
	_, err := New("short").Encrypt("x")
	assert.ErrorIs(t, err, ErrInvalidKeyLength)
}

func TestDecryptGarbage(t *testing.T) {
	e := New("0123456789abcdef")
	_, err := e.Decrypt("bm9wZQ==")
	assert.ErrorIs(t, err, ErrCiphertextTooShort)
}

func TestPasswordHash(t *testing.T) {
	e := New("0123456789abcdef")
	hash, err := e.HashPassword("secret")
	require.NoError(t, err)

	assert.True(t, e.CheckPasswordHash("secret", hash))
	assert.False(t, e.CheckPasswordHash("other", hash))
	assert.True(t, e.CheckPasswordHash("plain", "plain"))
	assert.False(t, e.CheckPasswordHash("", ""))
}
