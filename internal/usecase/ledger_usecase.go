package usecase

import (
	"context"

	"vend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerUsecase exposes account balances, order history and admin credit
// adjustments.
type LedgerUsecase interface {
	// GetAccount returns the account with its balance and counters.
	GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// AdjustCredit applies a signed admin credit adjustment and returns the
	// updated account. A deduction below zero is rejected unless the account
	// has the negative-allowed flag.
	AdjustCredit(ctx context.Context, accountID uuid.UUID, delta decimal.Decimal) (*entity.Account, error)

	// ListOrders returns the account's orders, newest first.
	ListOrders(ctx context.Context, accountID uuid.UUID) ([]*entity.Order, error)

	// GetOrder returns one of the account's orders by code. Admins may fetch
	// any order.
	GetOrder(ctx context.Context, accountID uuid.UUID, isAdmin bool, code string) (*entity.Order, error)
}
