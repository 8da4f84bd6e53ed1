package impl

import (
	"context"
	"testing"

	"vend/internal/domain/entity"
	domainerrors "vend/internal/domain/errors"
	"vend/internal/domain/repository"
	mockRepo "vend/internal/mocks/repository"
	"vend/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ledgerFixture struct {
	accountRepo   *mockRepo.MockAccountRepository
	orderRepo     *mockRepo.MockOrderRepository
	txAccountRepo *mockRepo.MockAccountRepository
	service       usecase.LedgerUsecase
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()

	f := &ledgerFixture{
		accountRepo:   mockRepo.NewMockAccountRepository(t),
		orderRepo:     mockRepo.NewMockOrderRepository(t),
		txAccountRepo: mockRepo.NewMockAccountRepository(t),
	}

	factory := &stubRepoFactory{
		accountRepo:  f.txAccountRepo,
		productRepo:  mockRepo.NewMockProductRepository(t),
		discountRepo: mockRepo.NewMockDiscountRepository(t),
		couponRepo:   mockRepo.NewMockCouponRepository(t),
		orderRepo:    mockRepo.NewMockOrderRepository(t),
	}

	f.service = NewLedgerService(LedgerServiceParams{
		TxManager:   &stubTxManager{factory: factory},
		AccountRepo: f.accountRepo,
		OrderRepo:   f.orderRepo,
		Logger:      newDiscardLogger(),
	})

	return f
}

func TestLedgerService_GetAccount(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	account := newActiveAccount("42")
	f.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	got, err := f.service.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, account, got)
}

func TestLedgerService_GetAccount_NotFound(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.accountRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAccountNotFound)

	got, err := f.service.GetAccount(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	assert.Nil(t, got)
}

func TestLedgerService_AdjustCredit_ZeroDelta(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	got, err := f.service.AdjustCredit(ctx, uuid.New(), decimal.Zero)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRequest)
	assert.Nil(t, got)
}

func TestLedgerService_AdjustCredit_TopUp(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	account := newActiveAccount("10")
	delta := decimal.RequireFromString("25")

	f.txAccountRepo.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
	f.txAccountRepo.EXPECT().AdjustBalance(ctx, account.ID, mock.AnythingOfType("decimal.Decimal")).Return(nil)

	got, err := f.service.AdjustCredit(ctx, account.ID, delta)
	require.NoError(t, err)
	assert.Equal(t, "35", got.Balance.String())
}

func TestLedgerService_AdjustCredit_DeductionBelowZero(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	account := newActiveAccount("10")
	delta := decimal.RequireFromString("-15")

	f.txAccountRepo.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)

	got, err := f.service.AdjustCredit(ctx, account.ID, delta)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientFunds)
	assert.Nil(t, got)
}

func TestLedgerService_AdjustCredit_DeductionBelowZeroAllowed(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	account := newActiveAccount("10")
	account.AllowNegative = true
	delta := decimal.RequireFromString("-15")

	f.txAccountRepo.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
	f.txAccountRepo.EXPECT().AdjustBalance(ctx, account.ID, mock.AnythingOfType("decimal.Decimal")).Return(nil)

	got, err := f.service.AdjustCredit(ctx, account.ID, delta)
	require.NoError(t, err)
	assert.Equal(t, "-5", got.Balance.String())
}

func TestLedgerService_AdjustCredit_UnknownAccount(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.txAccountRepo.EXPECT().FindByIDForUpdate(ctx, id).Return(nil, repository.ErrAccountNotFound)

	got, err := f.service.AdjustCredit(ctx, id, decimal.RequireFromString("5"))
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	assert.Nil(t, got)
}

func TestLedgerService_ListOrders(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	accountID := uuid.New()

	orders := []*entity.Order{
		{ID: uuid.New(), Code: "ORD-A-AAAAAA", AccountID: accountID},
		{ID: uuid.New(), Code: "ORD-B-BBBBBB", AccountID: accountID},
	}
	f.orderRepo.EXPECT().ListByAccount(ctx, accountID).Return(orders, nil)

	got, err := f.service.ListOrders(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, orders, got)
}

func TestLedgerService_GetOrder_Owner(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	accountID := uuid.New()

	order := &entity.Order{ID: uuid.New(), Code: "ORD-A-AAAAAA", AccountID: accountID}
	f.orderRepo.EXPECT().FindByCode(ctx, order.Code).Return(order, nil)

	got, err := f.service.GetOrder(ctx, accountID, false, order.Code)
	require.NoError(t, err)
	assert.Equal(t, order, got)
}

func TestLedgerService_GetOrder_ForeignOrderHidden(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	order := &entity.Order{ID: uuid.New(), Code: "ORD-A-AAAAAA", AccountID: uuid.New()}
	f.orderRepo.EXPECT().FindByCode(ctx, order.Code).Return(order, nil)

	// A reseller probing someone else's code gets not-found, not forbidden.
	got, err := f.service.GetOrder(ctx, uuid.New(), false, order.Code)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	assert.Nil(t, got)
}

func TestLedgerService_GetOrder_AdminSeesAll(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	order := &entity.Order{ID: uuid.New(), Code: "ORD-A-AAAAAA", AccountID: uuid.New()}
	f.orderRepo.EXPECT().FindByCode(ctx, order.Code).Return(order, nil)

	got, err := f.service.GetOrder(ctx, uuid.New(), true, order.Code)
	require.NoError(t, err)
	assert.Equal(t, order, got)
}

func TestLedgerService_GetOrder_NotFound(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	f.orderRepo.EXPECT().FindByCode(ctx, "ORD-X-XXXXXX").Return(nil, repository.ErrOrderNotFound)

	got, err := f.service.GetOrder(ctx, uuid.New(), false, "ORD-X-XXXXXX")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	assert.Nil(t, got)
}
