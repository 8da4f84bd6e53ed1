package impl

import (
	"context"
	"testing"

	"vend/internal/domain/entity"
	domainerrors "vend/internal/domain/errors"
	"vend/internal/domain/repository"
	mockRepo "vend/internal/mocks/repository"
	mockSvc "vend/internal/mocks/service"
	"vend/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*mockRepo.MockAccountRepository, *mockSvc.MockSecretHasher, *mockSvc.MockTokenService, usecase.AuthUsecase) {
	t.Helper()

	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockSecretHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		AccountRepo:  accountRepo,
		SecretHasher: hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return accountRepo, hasher, tokenService, service
}

func TestAuthService_Login_Success(t *testing.T) {
	accountRepo, hasher, tokenService, service := newAuthFixture(t)
	ctx := context.Background()

	account := newActiveAccount("100")
	account.SecretHash = "$2a$10$hash"

	accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	hasher.EXPECT().Check("my-secret", account.SecretHash).Return(true)
	tokenService.EXPECT().
		GenerateAccessToken(account.ID, []string{string(entity.RoleReseller)}).
		Return("signed-token", nil)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:  account.Email,
		Secret: "my-secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	_, _, _, service := newAuthFixture(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.LoginInput
	}{
		{"nil input", nil},
		{"missing email", &usecase.LoginInput{Secret: "secret"}},
		{"missing secret", &usecase.LoginInput{Email: "a@b.c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := service.Login(ctx, tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidRequest)
			assert.Nil(t, output)
		})
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	accountRepo, _, _, service := newAuthFixture(t)
	ctx := context.Background()

	accountRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrAccountNotFound)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:  "ghost@example.com",
		Secret: "whatever",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	accountRepo, _, _, service := newAuthFixture(t)
	ctx := context.Background()

	account := newActiveAccount("100")
	account.Status = entity.AccountStatusDisabled

	accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:  account.Email,
		Secret: "my-secret",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestAuthService_Login_WrongSecret(t *testing.T) {
	accountRepo, hasher, _, service := newAuthFixture(t)
	ctx := context.Background()

	account := newActiveAccount("100")
	account.SecretHash = "$2a$10$hash"

	accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	hasher.EXPECT().Check("wrong", account.SecretHash).Return(false)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:  account.Email,
		Secret: "wrong",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestAuthService_Login_LookupError(t *testing.T) {
	accountRepo, _, _, service := newAuthFixture(t)
	ctx := context.Background()

	accountRepo.EXPECT().FindByEmail(ctx, "a@b.c").Return(nil, errors.New("db error"))

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:  "a@b.c",
		Secret: "secret",
	})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}
