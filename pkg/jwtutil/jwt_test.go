package jwtutil

import (
	"testing"

	"backoffice-service/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJWT(t *testing.T) {
	t.Helper()
	Initialize(&config.JWTConfig{
		SigningKey:      "test-signing-key",
		ExpirationHours: 1,
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	setupJWT(t)

	token, err := GenerateToken("admin@example.com", 7, "superadmin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "superadmin", claims.Role)
	assert.Nil(t, claims.TenantID)
}

func TestGenerateTokenWithTenant(t *testing.T) {
	setupJWT(t)

	tenantID := uint(42)
	token, err := GenerateTokenWithTenant("owner@example.com", 3, &tenantID, "Acme Wellness", "owner")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	require.NotNil(t, claims.TenantID)
	assert.Equal(t, uint(42), *claims.TenantID)
	assert.Equal(t, "Acme Wellness", claims.TenantName)
	assert.Equal(t, "owner", claims.Role)
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	setupJWT(t)

	token, err := GenerateToken("user@example.com", 1, "owner")
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	setupJWT(t)
	token, err := GenerateToken("user@example.com", 1, "owner")
	require.NoError(t, err)

	Initialize(&config.JWTConfig{SigningKey: "different-key", ExpirationHours: 1})
	_, err = ValidateToken(token)
	assert.Error(t, err)
}
