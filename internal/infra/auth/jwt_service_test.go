package auth

import (
	"testing"
	"time"

	"vend/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	accountID := uuid.New()
	roles := []string{"reseller", "admin"}

	token, err := jwtService.GenerateAccessToken(accountID, roles)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, roles, claims.Roles)
}

func TestJWTService_MissingSecret(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	assert.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "a_completely_different_secret_key_for_testing"
	otherService, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	token, err := jwtService.GenerateAccessToken(uuid.New(), []string{"reseller"})
	assert.NoError(t, err)

	claims, err := otherService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	expired := &jwtService{
		accessSecret: "test_access_secret_key_very_long_for_testing",
		accessTTL:    -time.Minute,
	}

	token, err := expired.GenerateAccessToken(uuid.New(), []string{"reseller"})
	assert.NoError(t, err)

	claims, err := expired.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_CustomTTL(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: 30 * time.Minute}

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	token, err := jwtService.GenerateAccessToken(uuid.New(), []string{"reseller"})
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
}
