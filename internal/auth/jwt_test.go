package auth

import (
	"testing"
	"time"

	"floorplan-server/internal/shared/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestSecret(t *testing.T) {
	t.Helper()
	config.GlobalConfig = &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "0123456789abcdef0123456789abcdef",
			TokenExpiration: time.Hour,
		},
	}
	t.Cleanup(func() { config.GlobalConfig = nil })
}

func TestGenerateAndValidateToken(t *testing.T) {
	setTestSecret(t)

	token, err := GenerateToken("ops", RoleAdmin)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "ops", claims.Subject)
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	setTestSecret(t)

	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestTokensUnavailableWithoutSecret(t *testing.T) {
	config.GlobalConfig = &config.Config{}
	t.Cleanup(func() { config.GlobalConfig = nil })

	_, err := GenerateToken("ops", RoleAdmin)
	assert.Error(t, err)

	_, err = ValidateToken("anything")
	assert.Error(t, err)
}
