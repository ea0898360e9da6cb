package password_test

import (
	"testing"

	"storefront/pkg/password"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, password.Verify(hash, "password123"))
	assert.False(t, password.Verify(hash, "wrongpassword"))
	assert.False(t, password.Verify(hash, ""))
}

func TestHashUsesFreshSalt(t *testing.T) {
	first, err := password.Hash("password123")
	assert.NoError(t, err)
	second, err := password.Hash("password123")
	assert.NoError(t, err)

	// Each hash embeds its own salt, so the outputs differ even for the
	// same plaintext, and each still verifies.
	assert.NotEqual(t, first, second)
	assert.True(t, password.Verify(first, "password123"))
	assert.True(t, password.Verify(second, "password123"))
}

func TestVerifyRejectsGarbageHash(t *testing.T) {
	assert.False(t, password.Verify("not-a-bcrypt-hash", "password123"))
}
