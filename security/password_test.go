package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, hasher.Verify("s3cret-pass", hash))
	assert.False(t, hasher.Verify("wrong-pass", hash))
	assert.False(t, hasher.Verify("s3cret-pass", "not-a-bcrypt-hash"))
}

func TestNewPasswordHasherCostFallback(t *testing.T) {
	// 非法成本回退为默认值，不 panic
	hasher := NewPasswordHasher(999)
	hash, err := hasher.Hash("abc")
	require.NoError(t, err)
	assert.True(t, hasher.Verify("abc", hash))
}
