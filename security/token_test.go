package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appConfig "github.com/Xushengqwer/content_service/config"
)

func newTestTokenManager(secret string, expireMinutes int) *TokenManager {
	return NewTokenManager(&appConfig.AuthConfig{
		JWTSecret:        secret,
		JWTExpireMinutes: expireMinutes,
		JWTIssuer:        "content_service_test",
	})
}

func TestTokenIssueAndVerify(t *testing.T) {
	manager := newTestTokenManager("test-secret", 60)

	token, err := manager.Issue(42, "alice", []string{"manager", "editor"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, claims, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), userID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, []string{"manager", "editor"}, claims.Roles)
	assert.Equal(t, "content_service_test", claims.Issuer)
}

func TestTokenVerifyRejectsWrongSecret(t *testing.T) {
	issuer := newTestTokenManager("secret-a", 60)
	verifier := newTestTokenManager("secret-b", 60)

	token, err := issuer.Issue(1, "bob", nil)
	require.NoError(t, err)

	_, _, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenVerifyRejectsExpired(t *testing.T) {
	manager := newTestTokenManager("test-secret", 60)
	// 直接缩短有效期到过去
	manager.expiry = -time.Minute

	token, err := manager.Issue(1, "bob", nil)
	require.NoError(t, err)

	_, _, err = manager.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenVerifyRejectsGarbage(t *testing.T) {
	manager := newTestTokenManager("test-secret", 60)

	_, _, err := manager.Verify("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
