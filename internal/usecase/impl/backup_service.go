package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "vend/internal/delivery/context"
	"vend/internal/domain/entity"
	domainerrors "vend/internal/domain/errors"
	"vend/internal/domain/repository"
	"vend/internal/domain/service"
	"vend/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const snapshotVersion = 1

// snapshot is the portable backup payload. Orders keep their account and
// product natural keys so they can be re-linked on a database whose surrogate
// IDs differ.
type snapshot struct {
	Version    int               `json:"version"`
	ExportedAt time.Time         `json:"exported_at"`
	Accounts   []*entity.Account `json:"accounts"`
	Products   []*entity.Product `json:"products"`
	Orders     []snapshotOrder   `json:"orders"`
}

type snapshotOrder struct {
	Order        *entity.Order `json:"order"`
	AccountEmail string        `json:"account_email"`
	ProductName  string        `json:"product_name"`
}

type backupService struct {
	txManager repository.TransactionManager
	store     service.SnapshotStore
	logger    *slog.Logger
	now       func() time.Time
}

// BackupServiceParams holds dependencies for backupService, injected by Fx.
type BackupServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Store     service.SnapshotStore
	Logger    *slog.Logger
}

// NewBackupService is the constructor for backupService.
func NewBackupService(params BackupServiceParams) usecase.BackupUsecase {
	return &backupService{
		txManager: params.TxManager,
		store:     params.Store,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *backupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ExportSnapshot reads all accounts, products and orders in one transaction
// so the snapshot is internally consistent, then writes it to the store.
func (srv *backupService) ExportSnapshot(ctx context.Context) (string, error) {
	snap := &snapshot{
		Version:    snapshotVersion,
		ExportedAt: srv.now().UTC(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accounts, err := repoFactory.AccountRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list accounts")
		}
		snap.Accounts = accounts

		products, err := repoFactory.ProductRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list products")
		}
		snap.Products = products

		accountEmails := make(map[uuid.UUID]string, len(accounts))
		for _, account := range accounts {
			accountEmails[account.ID] = account.Email
		}
		productNames := make(map[uuid.UUID]string, len(products))
		for _, product := range products {
			productNames[product.ID] = product.Name
		}

		orders, err := repoFactory.OrderRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}
		snap.Orders = make([]snapshotOrder, 0, len(orders))
		for _, order := range orders {
			snap.Orders = append(snap.Orders, snapshotOrder{
				Order:        order,
				AccountEmail: accountEmails[order.AccountID],
				ProductName:  productNames[order.ProductID],
			})
		}

		return nil
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to execute snapshot export transaction")
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal snapshot")
	}

	key := fmt.Sprintf("snapshot-%s.json", snap.ExportedAt.Format("20060102T150405Z"))
	if err := srv.store.Write(ctx, key, data); err != nil {
		return "", errors.Wrap(err, "failed to write snapshot")
	}

	srv.log(ctx).Info("Snapshot exported",
		slog.String("key", key),
		slog.Int("accounts", len(snap.Accounts)),
		slog.Int("products", len(snap.Products)),
		slog.Int("orders", len(snap.Orders)),
	)

	return key, nil
}

// ImportSnapshot restores a snapshot into the current database. Accounts and
// products are matched by natural key (email and name) and created when
// missing; orders are re-linked through those keys and skipped when their
// code already exists.
func (srv *backupService) ImportSnapshot(ctx context.Context, key string) (*usecase.ImportSummary, error) {
	data, err := srv.store.Read(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read snapshot")
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal snapshot")
	}
	if snap.Version != snapshotVersion {
		return nil, domainerrors.ErrInvalidRequest.WrapMessage("unsupported snapshot version")
	}

	summary := &usecase.ImportSummary{}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountIDs, err := srv.restoreAccounts(ctx, repoFactory.AccountRepo(), snap.Accounts, summary)
		if err != nil {
			return err
		}

		productIDs, err := srv.restoreProducts(ctx, repoFactory.ProductRepo(), snap.Products, summary)
		if err != nil {
			return err
		}

		return srv.restoreOrders(ctx, repoFactory.OrderRepo(), snap.Orders, accountIDs, productIDs, summary)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute snapshot import transaction")
	}

	srv.log(ctx).Info("Snapshot imported",
		slog.String("key", key),
		slog.Int("accountsCreated", summary.AccountsCreated),
		slog.Int("productsCreated", summary.ProductsCreated),
		slog.Int("ordersCreated", summary.OrdersCreated),
		slog.Int("ordersSkipped", summary.OrdersSkipped),
	)

	return summary, nil
}

func (srv *backupService) restoreAccounts(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	accounts []*entity.Account,
	summary *usecase.ImportSummary,
) (map[string]uuid.UUID, error) {
	ids := make(map[string]uuid.UUID, len(accounts))
	for _, account := range accounts {
		existing, err := accountRepo.FindByEmail(ctx, account.Email)
		if err == nil {
			ids[account.Email] = existing.ID

			continue
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(err, "failed to find account by email")
		}

		restored := *account
		restored.ID = uuid.New()
		if err := accountRepo.Create(ctx, &restored); err != nil {
			return nil, errors.Wrap(err, "failed to restore account")
		}

		ids[account.Email] = restored.ID
		summary.AccountsCreated++
	}

	return ids, nil
}

func (srv *backupService) restoreProducts(
	ctx context.Context,
	productRepo repository.ProductRepository,
	products []*entity.Product,
	summary *usecase.ImportSummary,
) (map[string]uuid.UUID, error) {
	ids := make(map[string]uuid.UUID, len(products))
	for _, product := range products {
		existing, err := productRepo.FindByName(ctx, product.Name)
		if err == nil {
			ids[product.Name] = existing.ID

			continue
		}
		if !errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(err, "failed to find product by name")
		}

		restored := *product
		restored.ID = uuid.New()
		if err := productRepo.Create(ctx, &restored); err != nil {
			return nil, errors.Wrap(err, "failed to restore product")
		}

		ids[product.Name] = restored.ID
		summary.ProductsCreated++
	}

	return ids, nil
}

func (srv *backupService) restoreOrders(
	ctx context.Context,
	orderRepo repository.OrderRepository,
	orders []snapshotOrder,
	accountIDs, productIDs map[string]uuid.UUID,
	summary *usecase.ImportSummary,
) error {
	for _, entry := range orders {
		accountID, ok := accountIDs[entry.AccountEmail]
		if !ok {
			return domainerrors.ErrInvalidRequest.WrapMessage("snapshot order references unknown account")
		}
		productID, ok := productIDs[entry.ProductName]
		if !ok {
			return domainerrors.ErrInvalidRequest.WrapMessage("snapshot order references unknown product")
		}

		restored := *entry.Order
		restored.ID = uuid.New()
		restored.AccountID = accountID
		restored.ProductID = productID

		err := orderRepo.Create(ctx, &restored)
		if err == nil {
			summary.OrdersCreated++

			continue
		}
		if errors.Is(err, repository.ErrOrderCodeTaken) {
			summary.OrdersSkipped++

			continue
		}

		return errors.Wrap(err, "failed to restore order")
	}

	return nil
}
