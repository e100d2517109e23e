package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/metehanbayar/orman/config"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		AdminUsername: "admin",
		AdminPassword: "correct-horse",
		JWTSecret:     "test-secret",
	}
}

func TestLoginAndValidate(t *testing.T) {
	svc := NewAuthService(testAuthConfig())

	token, err := svc.Login("admin", "correct-horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(testAuthConfig())

	_, err := svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("root", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWithPasswordHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := testAuthConfig()
	cfg.AdminPassword = ""
	cfg.AdminPasswordHash = string(hash)
	svc := NewAuthService(cfg)

	_, err = svc.Login("admin", "correct-horse")
	assert.NoError(t, err)

	_, err = svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(testAuthConfig())

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)

	// A token signed with a different secret fails verification.
	other := NewAuthService(&config.Config{
		AdminUsername: "admin",
		AdminPassword: "correct-horse",
		JWTSecret:     "other-secret",
	})
	token, err := other.Login("admin", "correct-horse")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
