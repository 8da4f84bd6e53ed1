package postgres

import (
	"context"

	"vend/internal/domain/entity"
	"vend/internal/domain/repository"
	"vend/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// couponRepository implements the repository.CouponRepository interface.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{
		db: db,
	}
}

// FindByCode retrieves a coupon by its canonical upper-case code.
func (repo *couponRepository) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by code")
	}

	return toCouponDomain(&couponM), nil
}

// Create persists a new coupon.
func (repo *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	couponM := fromCouponDomain(coupon)

	if err := repo.db.WithContext(ctx).Create(couponM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(err, "coupon code already exists")
		}

		return errors.Wrap(err, "failed to create coupon")
	}

	coupon.ID = couponM.ID
	coupon.CreatedAt = couponM.CreatedAt

	return nil
}

// HasUsage reports whether the account has already consumed the coupon.
func (repo *couponRepository) HasUsage(ctx context.Context, couponID, accountID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CouponUsageModel{}).
		Where("coupon_id = ? AND account_id = ?", couponID, accountID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count coupon usages")
	}

	return count > 0, nil
}

// RecordUsage increments the coupon's used-count and inserts the usage row.
// The increment is guarded so it never pushes used_count past max_uses; a
// zero-row update means the coupon was exhausted by a concurrent purchase.
func (repo *couponRepository) RecordUsage(ctx context.Context, usage *entity.CouponUsage) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("id = ?", usage.CouponID).
		Where("max_uses = 0 OR used_count < max_uses").
		Update("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment coupon used count")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCouponExhausted
	}

	usageM := fromCouponUsageDomain(usage)
	if err := repo.db.WithContext(ctx).Create(usageM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCouponUsageExists
		}

		return errors.Wrap(err, "failed to create coupon usage")
	}

	usage.CreatedAt = usageM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// toCouponDomain converts a GORM CouponModel to a domain Coupon entity.
func toCouponDomain(data *model.CouponModel) *entity.Coupon {
	if data == nil {
		return nil
	}

	return &entity.Coupon{
		ID:        data.ID,
		Code:      data.Code,
		Percent:   data.Percent,
		ProductID: data.ProductID,
		MaxUses:   data.MaxUses,
		UsedCount: data.UsedCount,
		ExpiresAt: data.ExpiresAt,
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
	}
}

// fromCouponDomain converts a domain Coupon entity to a GORM CouponModel.
func fromCouponDomain(data *entity.Coupon) *model.CouponModel {
	if data == nil {
		return nil
	}

	return &model.CouponModel{
		ID:        data.ID,
		Code:      data.Code,
		Percent:   data.Percent,
		ProductID: data.ProductID,
		MaxUses:   data.MaxUses,
		UsedCount: data.UsedCount,
		ExpiresAt: data.ExpiresAt,
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
	}
}

// fromCouponUsageDomain converts a domain CouponUsage entity to a GORM CouponUsageModel.
func fromCouponUsageDomain(data *entity.CouponUsage) *model.CouponUsageModel {
	if data == nil {
		return nil
	}

	return &model.CouponUsageModel{
		ID:        data.ID,
		CouponID:  data.CouponID,
		AccountID: data.AccountID,
		OrderID:   data.OrderID,
		CreatedAt: data.CreatedAt,
	}
}
