package utils

import (
	"testing"

	"github.com/rentalhub/rental-recommender/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func initTestJWT(secret string, expiresIn int) {
	cfg := &configs.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.ExpiresIn = expiresIn
	InitJWT(cfg)
}

func TestGenerateAndParseToken(t *testing.T) {
	initTestJWT("test-secret", 1)

	token, err := GenerateToken(42, "user@example.com")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestParseToken_WrongSecret(t *testing.T) {
	initTestJWT("secret-a", 1)
	token, err := GenerateToken(1, "")
	require.NoError(t, err)

	initTestJWT("secret-b", 1)
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	// 过期时间为负数，生成即过期
	initTestJWT("test-secret", -1)
	token, err := GenerateToken(1, "")
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_NoSecret(t *testing.T) {
	initTestJWT("", 1)
	_, err := ParseToken("anything")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(configs.Log{Level: "debug", Development: true})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = NewLogger(configs.Log{Level: "warn"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	_, err = NewLogger(configs.Log{Level: "loud"})
	assert.Error(t, err)
}
