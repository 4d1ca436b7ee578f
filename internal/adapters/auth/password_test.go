package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_Hash_and_Compare(t *testing.T) {
	h := NewBcryptHasher(4) // low cost to keep the test fast
	password := "my-secret-password"

	hash, err := h.Hash(password)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, password, hash)

	require.NoError(t, h.Compare(hash, password))
}

func TestBcryptHasher_Compare_wrong_password(t *testing.T) {
	h := NewBcryptHasher(4)
	hash, err := h.Hash("correct")
	require.NoError(t, err)

	assert.Error(t, h.Compare(hash, "wrong"))
}

func TestBcryptHasher_Hash_salted(t *testing.T) {
	h := NewBcryptHasher(4)

	hash1, err := h.Hash("password")
	require.NoError(t, err)
	hash2, err := h.Hash("password")
	require.NoError(t, err)
	assert.NotEqual(t, hash1, hash2, "bcrypt embeds a random salt, hashes must differ")
}
