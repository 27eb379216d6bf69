//go:build unit
// +build unit

package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptHasher(4)

	hash, err := hasher.Hash("testpassword123")
	require.NoError(t, err)

	assert.NotEqual(t, "testpassword123", hash, "hash must not equal the plaintext")
	assert.True(t, hasher.Verify(hash, "testpassword123"))
	assert.False(t, hasher.Verify(hash, "wrongpassword"))
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewBcryptHasher(4)

	first, err := hasher.Hash("testpassword123")
	require.NoError(t, err)

	second, err := hasher.Hash("testpassword123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "each hash must carry its own salt")
	assert.True(t, hasher.Verify(first, "testpassword123"))
	assert.True(t, hasher.Verify(second, "testpassword123"))
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasher(99)

	hash, err := hasher.Hash("testpassword123")
	require.NoError(t, err)
	assert.True(t, hasher.Verify(hash, "testpassword123"))
}

func TestBcryptHasher_VerifyGarbageHash(t *testing.T) {
	hasher := NewBcryptHasher(4)

	assert.False(t, hasher.Verify("not-a-bcrypt-hash", "testpassword123"))
}
