package jwtutil

import (
	"testing"
	"time"

	"github.com/baladi39/hippo-portal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	Initialize(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationTime: time.Hour})

	token, err := GenerateToken("broker@example.com", 1, "broker")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "broker@example.com", claims.Email)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "broker", claims.Role)
}

func TestValidateTokenRejectsForeignSignature(t *testing.T) {
	Initialize(&config.JWTConfig{SigningKey: "key-one", ExpirationTime: time.Hour})
	token, err := GenerateToken("broker@example.com", 1, "broker")
	require.NoError(t, err)

	Initialize(&config.JWTConfig{SigningKey: "key-two", ExpirationTime: time.Hour})
	_, err = ValidateToken(token)
	require.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	Initialize(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationTime: -time.Hour})
	token, err := GenerateToken("broker@example.com", 1, "broker")
	require.NoError(t, err)

	_, err = ValidateToken(token)
	require.Error(t, err)
}
