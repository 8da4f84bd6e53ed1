package service

import (
	"github.com/google/uuid"
)

// TokenClaims is the verified identity carried by an access token.
type TokenClaims struct {
	AccountID uuid.UUID
	Roles     []string
}

// TokenService issues and verifies reseller API tokens. The purchase engine
// trusts the resolved account reference and does not re-verify it.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for the account.
	GenerateAccessToken(accountID uuid.UUID, roles []string) (string, error)

	// ValidateToken checks a presented token and returns its claims.
	ValidateToken(tokenString string) (*TokenClaims, error)
}
