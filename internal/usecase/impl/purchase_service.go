package impl

import (
	"context"
	"log/slog"
	"time"

	"vend/config"
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

const (
	defaultOrderCodeAttempts = 3
	defaultNotifyTimeout     = 10 * time.Second
)

// purchaseService is the transaction coordinator. It walks one purchase
// through validating, pricing, reserving and committing, with every mutation
// inside a single database transaction.
type purchaseService struct {
	txManager         repository.TransactionManager
	publisher         service.SaleEventPublisher
	logger            *slog.Logger
	now               func() time.Time
	orderCodeAttempts int
	notifyTimeout     time.Duration
}

// PurchaseServiceParams holds dependencies for purchaseService, injected by Fx.
type PurchaseServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.SaleEventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPurchaseService is the constructor for purchaseService.
func NewPurchaseService(params PurchaseServiceParams) usecase.PurchaseUsecase {
	attempts := defaultOrderCodeAttempts
	notifyTimeout := defaultNotifyTimeout
	if params.Config != nil && params.Config.Purchase != nil {
		if params.Config.Purchase.OrderCodeAttempts > 0 {
			attempts = params.Config.Purchase.OrderCodeAttempts
		}
		if params.Config.Purchase.NotifyTimeout > 0 {
			notifyTimeout = params.Config.Purchase.NotifyTimeout
		}
	}

	return &purchaseService{
		txManager:         params.TxManager,
		publisher:         params.Publisher,
		logger:            params.Logger,
		now:               time.Now,
		orderCodeAttempts: attempts,
		notifyTimeout:     notifyTimeout,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *purchaseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Purchase executes one purchase request as a single atomic unit. Every
// rejection before the final commit leaves no observable state behind.
func (srv *purchaseService) Purchase(ctx context.Context, input *usecase.PurchaseInput) (*usecase.PurchaseResult, error) {
	if input == nil || input.Quantity < 1 || input.AccountID == uuid.Nil || input.ProductID == uuid.Nil {
		return nil, domainerrors.ErrInvalidRequest.WrapMessage("quantity must be >= 1 and references must be set")
	}

	srv.log(ctx).Debug("Starting purchase",
		slog.Any("accountID", input.AccountID),
		slog.Any("productID", input.ProductID),
		slog.Int("quantity", input.Quantity),
	)

	var result *usecase.PurchaseResult
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		account, lockedProduct, err := srv.lockParticipants(ctx, repoFactory, input)
		if err != nil {
			return err
		}
		product = lockedProduct

		percent, provenance, coupon, err := srv.priceDiscount(ctx, repoFactory, account, product, input.CouponCode)
		if err != nil {
			return err
		}

		originalCost, finalCost := purchaseCost(product.UnitPrice, input.Quantity, percent)

		// Reserve: both checks run on locked rows before any mutation.
		if product.Available < input.Quantity {
			return domainerrors.ErrInsufficientStock.WrapMessage("available stock is below requested quantity")
		}
		if !account.CanSpend(finalCost) {
			return domainerrors.ErrInsufficientFunds.WrapMessage("balance cannot cover the final cost")
		}

		lines, err := repoFactory.ProductRepo().AllocateStock(ctx, product.ID, input.Quantity)
		if err != nil {
			if errors.Is(err, repository.ErrInsufficientStock) {
				return domainerrors.ErrInsufficientStock.WrapMessage("stock was consumed concurrently")
			}

			return errors.Wrap(err, "failed to allocate stock lines")
		}

		if err := repoFactory.AccountRepo().Debit(ctx, account.ID, finalCost); err != nil {
			return errors.Wrap(err, "failed to debit account")
		}

		order := &entity.Order{
			ID:              uuid.New(),
			AccountID:       account.ID,
			ProductID:       product.ID,
			Quantity:        input.Quantity,
			Lines:           lines,
			OriginalCost:    originalCost,
			DiscountPercent: percent,
			Provenance:      provenance,
			FinalCost:       finalCost,
		}
		if err := srv.recordOrder(ctx, repoFactory.OrderRepo(), order); err != nil {
			return err
		}

		// A coupon that lost the arbitration is not consumed.
		if provenance == entity.ProvenanceCoupon {
			if err := srv.consumeCoupon(ctx, repoFactory.CouponRepo(), coupon, account.ID, order.ID); err != nil {
				return err
			}
		}

		result = &usecase.PurchaseResult{
			OrderCode:        order.Code,
			Lines:            lines,
			OriginalCost:     originalCost,
			DiscountPercent:  percent,
			Provenance:       provenance,
			FinalCost:        finalCost,
			RemainingBalance: account.Balance.Sub(finalCost),
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Purchase rejected",
			slog.Any("accountID", input.AccountID),
			slog.Any("productID", input.ProductID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute purchase transaction")
	}

	srv.log(ctx).Info("Purchase committed",
		slog.String("orderCode", result.OrderCode),
		slog.Any("accountID", input.AccountID),
		slog.String("finalCost", result.FinalCost.String()),
	)

	// Best-effort sale notification, outside the transaction. Failures are
	// logged and never surfaced to the buyer.
	event := &service.SaleEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		OrderCode:   result.OrderCode,
		AccountID:   input.AccountID.String(),
		ProductID:   product.ID.String(),
		ProductName: product.Name,
		Quantity:    input.Quantity,
		FinalCost:   result.FinalCost.String(),
	}
	go srv.notifySale(event)

	return result, nil
}

// lockParticipants loads and row-locks the account and product, validating
// that both may take part in a purchase.
func (srv *purchaseService) lockParticipants(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	input *usecase.PurchaseInput,
) (*entity.Account, *entity.Product, error) {
	account, err := repoFactory.AccountRepo().FindByIDForUpdate(ctx, input.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, nil, domainerrors.ErrInvalidRequest.WrapMessage("unknown account reference")
		}

		return nil, nil, errors.Wrap(err, "failed to lock account row")
	}
	if !account.IsActive() {
		return nil, nil, domainerrors.ErrInvalidRequest.WrapMessage("account is not active")
	}

	product, err := repoFactory.ProductRepo().FindByIDForUpdate(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, nil, domainerrors.ErrInvalidRequest.WrapMessage("unknown product reference")
		}

		return nil, nil, errors.Wrap(err, "failed to lock product row")
	}
	if !product.IsActive() {
		return nil, nil, domainerrors.ErrInvalidRequest.WrapMessage("product is not active")
	}

	return account, product, nil
}

// priceDiscount resolves the winning discount percentage and its provenance.
func (srv *purchaseService) priceDiscount(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	account *entity.Account,
	product *entity.Product,
	couponCode string,
) (int, entity.DiscountProvenance, *entity.Coupon, error) {
	now := srv.now()

	personal, err := repoFactory.DiscountRepo().FindBestForPurchase(ctx, account.ID, product.ID, now)
	if err != nil && !errors.Is(err, repository.ErrDiscountNotFound) {
		return 0, entity.ProvenanceNone, nil, errors.Wrap(err, "failed to look up personal discount")
	}

	var coupon *entity.Coupon
	if couponCode != "" {
		coupon, err = srv.vetCoupon(ctx, repoFactory.CouponRepo(), account.ID, product.ID, couponCode, now)
		if err != nil {
			return 0, entity.ProvenanceNone, nil, err
		}
	}

	percent, provenance := resolveDiscount(personal, coupon)

	return percent, provenance, coupon, nil
}

// vetCoupon validates a supplied coupon code before arbitration. A code that
// fails any check rejects the whole purchase rather than being ignored.
func (srv *purchaseService) vetCoupon(
	ctx context.Context,
	couponRepo repository.CouponRepository,
	accountID, productID uuid.UUID,
	code string,
	now time.Time,
) (*entity.Coupon, error) {
	coupon, err := couponRepo.FindByCode(ctx, entity.CanonicalCouponCode(code))
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, domainerrors.ErrInvalidCoupon.WrapMessage("unknown coupon code")
		}

		return nil, errors.Wrap(err, "failed to look up coupon")
	}

	if !coupon.EligibleAt(now) {
		return nil, domainerrors.ErrInvalidCoupon.WrapMessage("coupon is inactive or expired")
	}
	if !coupon.AppliesTo(productID) {
		return nil, domainerrors.ErrInvalidCoupon.WrapMessage("coupon does not cover this product")
	}
	if !coupon.HasRemainingUses() {
		return nil, domainerrors.ErrInvalidCoupon.WrapMessage("coupon has no remaining uses")
	}

	if coupon.SingleUsePerAccount() {
		used, err := couponRepo.HasUsage(ctx, coupon.ID, accountID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check coupon usage")
		}
		if used {
			return nil, domainerrors.ErrCouponAlreadyUsed.WrapMessage("coupon already consumed by this account")
		}
	}

	return coupon, nil
}

// recordOrder persists the order, regenerating the code on the rare collision.
func (srv *purchaseService) recordOrder(ctx context.Context, orderRepo repository.OrderRepository, order *entity.Order) error {
	for attempt := 0; attempt < srv.orderCodeAttempts; attempt++ {
		code, err := newOrderCode(srv.now())
		if err != nil {
			return errors.Wrap(err, "failed to generate order code")
		}
		order.Code = code

		err = orderRepo.Create(ctx, order)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrOrderCodeTaken) {
			return errors.Wrap(err, "failed to create order")
		}

		srv.log(ctx).Warn("Order code collision, regenerating", slog.String("code", code))
	}

	return domainerrors.ErrTransactionFailed.WrapMessage("exhausted order code attempts")
}

// consumeCoupon records the coupon use. The coupon row is not pre-locked, so
// a concurrent purchase may have exhausted it; the guarded increment catches
// that and rolls the purchase back.
func (srv *purchaseService) consumeCoupon(
	ctx context.Context,
	couponRepo repository.CouponRepository,
	coupon *entity.Coupon,
	accountID, orderID uuid.UUID,
) error {
	usage := &entity.CouponUsage{
		ID:        uuid.New(),
		CouponID:  coupon.ID,
		AccountID: accountID,
		OrderID:   orderID,
	}

	err := couponRepo.RecordUsage(ctx, usage)
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrCouponExhausted) {
		return domainerrors.ErrInvalidCoupon.WrapMessage("coupon was exhausted concurrently")
	}
	if errors.Is(err, repository.ErrCouponUsageExists) {
		return domainerrors.ErrCouponAlreadyUsed.WrapMessage("coupon was consumed concurrently by this account")
	}

	return errors.Wrap(err, "failed to record coupon usage")
}

// notifySale publishes the sale event with a bounded, detached context.
func (srv *purchaseService) notifySale(event *service.SaleEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), srv.notifyTimeout)
	defer cancel()

	if err := srv.publisher.PublishSaleEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish sale event",
			slog.String("orderCode", event.OrderCode),
			slog.Any("error", err),
		)
	}
}
