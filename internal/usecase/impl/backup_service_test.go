package impl

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"vend/internal/domain/entity"
	domainerrors "vend/internal/domain/errors"
	"vend/internal/domain/repository"
	mockRepo "vend/internal/mocks/repository"
	mockSvc "vend/internal/mocks/service"
	"vend/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type backupFixture struct {
	accountRepo *mockRepo.MockAccountRepository
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
	store       *mockSvc.MockSnapshotStore
	service     usecase.BackupUsecase
}

func newBackupFixture(t *testing.T) *backupFixture {
	t.Helper()

	f := &backupFixture{
		accountRepo: mockRepo.NewMockAccountRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		store:       mockSvc.NewMockSnapshotStore(t),
	}

	factory := &stubRepoFactory{
		accountRepo:  f.accountRepo,
		productRepo:  f.productRepo,
		discountRepo: mockRepo.NewMockDiscountRepository(t),
		couponRepo:   mockRepo.NewMockCouponRepository(t),
		orderRepo:    f.orderRepo,
	}

	f.service = NewBackupService(BackupServiceParams{
		TxManager: &stubTxManager{factory: factory},
		Store:     f.store,
		Logger:    newDiscardLogger(),
	})

	return f
}

func TestBackupService_ExportSnapshot(t *testing.T) {
	f := newBackupFixture(t)
	ctx := context.Background()

	account := newActiveAccount("100")
	product := newActiveProduct("4", 5)
	order := &entity.Order{
		ID:        uuid.New(),
		Code:      "ORD-A-AAAAAA",
		AccountID: account.ID,
		ProductID: product.ID,
		Quantity:  1,
	}

	f.accountRepo.EXPECT().List(ctx).Return([]*entity.Account{account}, nil)
	f.productRepo.EXPECT().List(ctx).Return([]*entity.Product{product}, nil)
	f.orderRepo.EXPECT().List(ctx).Return([]*entity.Order{order}, nil)

	var written []byte
	f.store.EXPECT().
		Write(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("[]uint8")).
		Run(func(args mock.Arguments) {
			written = args.Get(2).([]byte)
		}).
		Return(nil)

	key, err := f.service.ExportSnapshot(ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "snapshot-"))
	assert.True(t, strings.HasSuffix(key, ".json"))

	var snap snapshot
	require.NoError(t, json.Unmarshal(written, &snap))
	assert.Equal(t, snapshotVersion, snap.Version)
	require.Len(t, snap.Accounts, 1)
	require.Len(t, snap.Products, 1)
	require.Len(t, snap.Orders, 1)

	// Orders carry natural keys so a restore can re-link them.
	assert.Equal(t, account.Email, snap.Orders[0].AccountEmail)
	assert.Equal(t, product.Name, snap.Orders[0].ProductName)
}

func TestBackupService_ImportSnapshot_FreshDatabase(t *testing.T) {
	f := newBackupFixture(t)
	ctx := context.Background()

	account := newActiveAccount("100")
	product := newActiveProduct("4", 5)
	order := &entity.Order{
		ID:        uuid.New(),
		Code:      "ORD-A-AAAAAA",
		AccountID: account.ID,
		ProductID: product.ID,
		Quantity:  1,
	}

	data, err := json.Marshal(&snapshot{
		Version:  snapshotVersion,
		Accounts: []*entity.Account{account},
		Products: []*entity.Product{product},
		Orders: []snapshotOrder{{
			Order:        order,
			AccountEmail: account.Email,
			ProductName:  product.Name,
		}},
	})
	require.NoError(t, err)

	f.store.EXPECT().Read(ctx, "snapshot-test.json").Return(data, nil)

	f.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(nil, repository.ErrAccountNotFound)
	f.accountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	f.productRepo.EXPECT().FindByName(ctx, product.Name).Return(nil, repository.ErrProductNotFound)
	f.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	var restoredOrder *entity.Order
	f.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) {
			restoredOrder = args.Get(1).(*entity.Order)
		}).
		Return(nil)

	summary, err := f.service.ImportSnapshot(ctx, "snapshot-test.json")
	require.NoError(t, err)

	assert.Equal(t, 1, summary.AccountsCreated)
	assert.Equal(t, 1, summary.ProductsCreated)
	assert.Equal(t, 1, summary.OrdersCreated)
	assert.Equal(t, 0, summary.OrdersSkipped)

	// The restored order is re-linked to freshly generated IDs, not the
	// snapshot's surrogate IDs.
	require.NotNil(t, restoredOrder)
	assert.NotEqual(t, order.ID, restoredOrder.ID)
	assert.NotEqual(t, account.ID, restoredOrder.AccountID)
	assert.NotEqual(t, product.ID, restoredOrder.ProductID)
	assert.Equal(t, order.Code, restoredOrder.Code)
}

func TestBackupService_ImportSnapshot_ExistingRecordsSkipped(t *testing.T) {
	f := newBackupFixture(t)
	ctx := context.Background()

	account := newActiveAccount("100")
	product := newActiveProduct("4", 5)
	order := &entity.Order{
		ID:        uuid.New(),
		Code:      "ORD-A-AAAAAA",
		AccountID: account.ID,
		ProductID: product.ID,
	}

	data, err := json.Marshal(&snapshot{
		Version:  snapshotVersion,
		Accounts: []*entity.Account{account},
		Products: []*entity.Product{product},
		Orders: []snapshotOrder{{
			Order:        order,
			AccountEmail: account.Email,
			ProductName:  product.Name,
		}},
	})
	require.NoError(t, err)

	f.store.EXPECT().Read(ctx, "snapshot-test.json").Return(data, nil)

	// Everything already exists: accounts and products match by natural key,
	// the order code collides.
	f.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	f.productRepo.EXPECT().FindByName(ctx, product.Name).Return(product, nil)
	f.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(repository.ErrOrderCodeTaken)

	summary, err := f.service.ImportSnapshot(ctx, "snapshot-test.json")
	require.NoError(t, err)

	assert.Equal(t, 0, summary.AccountsCreated)
	assert.Equal(t, 0, summary.ProductsCreated)
	assert.Equal(t, 0, summary.OrdersCreated)
	assert.Equal(t, 1, summary.OrdersSkipped)
}

func TestBackupService_ImportSnapshot_UnsupportedVersion(t *testing.T) {
	f := newBackupFixture(t)
	ctx := context.Background()

	data, err := json.Marshal(&snapshot{Version: 99})
	require.NoError(t, err)

	f.store.EXPECT().Read(ctx, "snapshot-test.json").Return(data, nil)

	summary, err := f.service.ImportSnapshot(ctx, "snapshot-test.json")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRequest)
	assert.Nil(t, summary)
}

func TestBackupService_ImportSnapshot_MalformedPayload(t *testing.T) {
	f := newBackupFixture(t)
	ctx := context.Background()

	f.store.EXPECT().Read(ctx, "snapshot-test.json").Return([]byte("not json"), nil)

	summary, err := f.service.ImportSnapshot(ctx, "snapshot-test.json")
	assert.Error(t, err)
	assert.Nil(t, summary)
}

func TestBackupService_ImportSnapshot_MissingSnapshot(t *testing.T) {
	f := newBackupFixture(t)
	ctx := context.Background()

	f.store.EXPECT().Read(ctx, "missing.json").Return(nil, domainerrors.ErrSnapshotNotFound)

	summary, err := f.service.ImportSnapshot(ctx, "missing.json")
	assert.ErrorIs(t, err, domainerrors.ErrSnapshotNotFound)
	assert.Nil(t, summary)
}
