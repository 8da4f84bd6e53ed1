package impl

import (
	"context"
	"io"
	"log/slog"

	"vend/internal/domain/entity"
	"vend/internal/domain/repository"
	mockRepo "vend/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubRepoFactory hands out the test's mock repositories as if they were
// bound to one transaction.
type stubRepoFactory struct {
	accountRepo  *mockRepo.MockAccountRepository
	productRepo  *mockRepo.MockProductRepository
	discountRepo *mockRepo.MockDiscountRepository
	couponRepo   *mockRepo.MockCouponRepository
	orderRepo    *mockRepo.MockOrderRepository
}

func (f *stubRepoFactory) AccountRepo() repository.AccountRepository {
	return f.accountRepo
}

func (f *stubRepoFactory) ProductRepo() repository.ProductRepository {
	return f.productRepo
}

func (f *stubRepoFactory) DiscountRepo() repository.DiscountRepository {
	return f.discountRepo
}

func (f *stubRepoFactory) CouponRepo() repository.CouponRepository {
	return f.couponRepo
}

func (f *stubRepoFactory) OrderRepo() repository.OrderRepository {
	return f.orderRepo
}

// stubTxManager runs the transactional function directly against the stub
// factory, with no real transaction underneath.
type stubTxManager struct {
	factory *stubRepoFactory
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

func newActiveAccount(balance string) *entity.Account {
	return &entity.Account{
		ID:      uuid.New(),
		Name:    "Test Reseller",
		Email:   "reseller@example.com",
		Balance: decimal.RequireFromString(balance),
		Role:    entity.RoleReseller,
		Status:  entity.AccountStatusActive,
	}
}

func newActiveProduct(unitPrice string, available int) *entity.Product {
	return &entity.Product{
		ID:        uuid.New(),
		Name:      "Test Product",
		UnitPrice: decimal.RequireFromString(unitPrice),
		Available: available,
		Status:    entity.ProductStatusActive,
	}
}
