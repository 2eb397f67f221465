package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))
	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong-pass"))
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	require.Error(t, err)
}

func TestHashPassword_Idempotent(t *testing.T) {
	// Re-hashing an already hashed value must pass it through unchanged so a
	// user record can be saved back without double-hashing.
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	again, err := HashPassword(hash)
	require.NoError(t, err)

	assert.Equal(t, hash, again)
	assert.True(t, CheckPassword(again, "s3cret-pass"))
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "anything"))
}
