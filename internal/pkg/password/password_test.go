package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	plain := "longenough1"
	hash, err := Hash(plain)

	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, plain, hash)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, Cost, cost)
}

func TestHash_Salted(t *testing.T) {
	a, err := Hash("longenough1")
	assert.NoError(t, err)
	b, err := Hash("longenough1")
	assert.NoError(t, err)

	// per-record salt: same input, different hashes, both verify
	assert.NotEqual(t, a, b)
	assert.True(t, Verify(a, "longenough1"))
	assert.True(t, Verify(b, "longenough1"))
}

func TestVerify(t *testing.T) {
	hash, _ := Hash("longenough1")

	assert.True(t, Verify(hash, "longenough1"))
	assert.False(t, Verify(hash, "wrongpassword"))
}

func TestVerify_InvalidHash(t *testing.T) {
	assert.False(t, Verify("not-a-bcrypt-hash", "longenough1"))
}
