package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPasswordAsBcrypt(t *testing.T) {
	hash, err := HashPasswordAsBcrypt("secret1")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, CheckPasswordHash(hash, "secret1"))
	assert.False(t, CheckPasswordHash(hash, "secret2"))
	assert.False(t, CheckPasswordHash("not-a-hash", "secret1"))
}

func TestHashPasswordDiffersPerCall(t *testing.T) {
	first, err := HashPasswordAsBcrypt("secret1")
	assert.NoError(t, err)
	second, err := HashPasswordAsBcrypt("secret1")
	assert.NoError(t, err)

	// bcrypt salts every hash
	assert.NotEqual(t, first, second)
}
