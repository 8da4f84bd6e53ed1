package impl

import (
	"context"
	"log/slog"

	deliverycontext "vend/internal/delivery/context"
	"vend/internal/domain/entity"
	domainerrors "vend/internal/domain/errors"
	"vend/internal/domain/repository"
	"vend/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type ledgerService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	orderRepo   repository.OrderRepository
	logger      *slog.Logger
}

// LedgerServiceParams holds dependencies for ledgerService, injected by Fx.
type LedgerServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	OrderRepo   repository.OrderRepository
	Logger      *slog.Logger
}

// NewLedgerService is the constructor for ledgerService.
func NewLedgerService(params LedgerServiceParams) usecase.LedgerUsecase {
	return &ledgerService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		orderRepo:   params.OrderRepo,
		logger:      params.Logger,
	}
}

func (srv *ledgerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *ledgerService) GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

// AdjustCredit applies a signed balance adjustment under a row lock. A
// deduction may not push the balance below zero unless the account carries
// the negative-allowed flag.
func (srv *ledgerService) AdjustCredit(ctx context.Context, accountID uuid.UUID, delta decimal.Decimal) (*entity.Account, error) {
	if delta.IsZero() {
		return nil, domainerrors.ErrInvalidRequest.WrapMessage("adjustment must be non-zero")
	}

	var updated *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		account, err := repoFactory.AccountRepo().FindByIDForUpdate(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "failed to lock account row")
		}

		next := account.Balance.Add(delta)
		if next.IsNegative() && !account.AllowNegative {
			return domainerrors.ErrInsufficientFunds.WrapMessage("deduction would push balance below zero")
		}

		if err := repoFactory.AccountRepo().AdjustBalance(ctx, accountID, delta); err != nil {
			return errors.Wrap(err, "failed to adjust balance")
		}

		account.Balance = next
		updated = account

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute credit adjustment transaction")
	}

	srv.log(ctx).Info("Credit adjusted",
		slog.Any("accountID", accountID),
		slog.String("delta", delta.String()),
		slog.String("balance", updated.Balance.String()),
	)

	return updated, nil
}

func (srv *ledgerService) ListOrders(ctx context.Context, accountID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder fetches an order by code. Resellers may only see their own orders;
// a foreign code yields not-found rather than revealing its existence.
func (srv *ledgerService) GetOrder(ctx context.Context, accountID uuid.UUID, isAdmin bool, code string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if !isAdmin && order.AccountID != accountID {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}
