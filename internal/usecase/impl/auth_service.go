package impl

import (
	"context"
	"log/slog"

	deliverycontext "vend/internal/delivery/context"
	domainerrors "vend/internal/domain/errors"
	"vend/internal/domain/repository"
	"vend/internal/domain/service"
	"vend/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type authService struct {
	accountRepo  repository.AccountRepository
	secretHasher service.SecretHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	SecretHasher service.SecretHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		accountRepo:  params.AccountRepo,
		secretHasher: params.SecretHasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the presented credentials and issues an access token. Lookup
// and hash failures collapse into one rejection so callers cannot probe which
// emails exist.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || input.Email == "" || input.Secret == "" {
		return nil, domainerrors.ErrInvalidRequest.WrapMessage("email and secret are required")
	}

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !account.IsActive() {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if !srv.secretHasher.Check(input.Secret, account.SecretHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateAccessToken(account.ID, []string{string(account.Role)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("Account logged in", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{AccessToken: token}, nil
}
