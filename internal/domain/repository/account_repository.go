// Package repository defines the persistence contracts of the domain layer.
package repository

import (
	"context"

	"vend/internal/domain/entity"
	"vend/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrAccountNotFound is returned when no account matches the lookup.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository is the ledger store: it holds each account's credit
// balance and cumulative purchase counter.
type AccountRepository interface {
	// FindByID retrieves an account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves an account by its login email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByIDForUpdate retrieves an account and acquires a row lock on it.
	// Must be called inside a transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// Create persists a new account.
	Create(ctx context.Context, account *entity.Account) error

	// Debit subtracts amount from the balance and increments the purchase
	// counter in one statement. The sufficiency decision is made by the
	// caller on the locked row; Debit itself never re-checks.
	Debit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error

	// AdjustBalance applies a signed credit adjustment (admin top-up or
	// deduction) without touching the purchase counter.
	AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error

	// List returns every account, used by the snapshot exporter.
	List(ctx context.Context) ([]*entity.Account, error)
}
