package usecase

import (
	"context"
)

// LoginInput carries the reseller's credentials.
type LoginInput struct {
	Email  string
	Secret string
}

// LoginOutput carries the issued access token.
type LoginOutput struct {
	AccessToken string `json:"access_token"`
}

// AuthUsecase is the auth collaborator: it resolves presented credentials to
// an account reference and issues API tokens.
type AuthUsecase interface {
	// Login verifies the credentials and returns a signed access token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
