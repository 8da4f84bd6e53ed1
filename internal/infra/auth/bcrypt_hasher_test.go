package auth

import (
	"testing"

	"vend/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	secret := "reseller-api-secret"
	hash, err := hasher.Hash(secret)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, secret, hash)

	// Correct secret verifies, anything else does not.
	assert.True(t, hasher.Check(secret, hash))
	assert.False(t, hasher.Check("wrong-secret", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(secret, "invalid_hash"))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	first, err := hasher.Hash("same-secret")
	assert.NoError(t, err)
	second, err := hasher.Hash("same-secret")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-secret", first))
	assert.True(t, hasher.Check("same-secret", second))
}

func TestBcryptHasher_CustomCost(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 6},
	}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("reseller-api-secret")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_CostOutOfRangeFallsBack(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 99},
	}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("reseller-api-secret")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
