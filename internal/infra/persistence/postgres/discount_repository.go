package postgres

import (
	"context"
	"time"

	"vend/internal/domain/entity"
	"vend/internal/domain/repository"
	"vend/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// discountRepository implements the repository.DiscountRepository interface.
type discountRepository struct {
	db *gorm.DB
}

// NewDiscountRepository is the constructor for discountRepository.
func NewDiscountRepository(db *gorm.DB) repository.DiscountRepository {
	return &discountRepository{
		db: db,
	}
}

// FindBestForPurchase returns the single best eligible discount for the
// (account, product) pair. Product-scoped rows sort before account-wide ones,
// then higher percent wins.
func (repo *discountRepository) FindBestForPurchase(ctx context.Context, accountID, productID uuid.UUID, now time.Time) (*entity.PersonalDiscount, error) {
	var discountM model.PersonalDiscountModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ? AND active = ?", accountID, true).
		Where("product_id IS NULL OR product_id = ?", productID).
		Where("expires_at IS NULL OR expires_at > ?", now).
		Order("product_id IS NOT NULL DESC, percent DESC").
		First(&discountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDiscountNotFound
		}

		return nil, errors.Wrap(err, "failed to find personal discount")
	}

	return toDiscountDomain(&discountM), nil
}

// Create persists a new personal discount.
func (repo *discountRepository) Create(ctx context.Context, discount *entity.PersonalDiscount) error {
	discountM := fromDiscountDomain(discount)

	if err := repo.db.WithContext(ctx).Create(discountM).Error; err != nil {
		return errors.Wrap(err, "failed to create personal discount")
	}

	discount.ID = discountM.ID
	discount.CreatedAt = discountM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// toDiscountDomain converts a GORM PersonalDiscountModel to a domain PersonalDiscount entity.
func toDiscountDomain(data *model.PersonalDiscountModel) *entity.PersonalDiscount {
	if data == nil {
		return nil
	}

	return &entity.PersonalDiscount{
		ID:        data.ID,
		AccountID: data.AccountID,
		ProductID: data.ProductID,
		Percent:   data.Percent,
		ExpiresAt: data.ExpiresAt,
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
	}
}

// fromDiscountDomain converts a domain PersonalDiscount entity to a GORM PersonalDiscountModel.
func fromDiscountDomain(data *entity.PersonalDiscount) *model.PersonalDiscountModel {
	if data == nil {
		return nil
	}

	return &model.PersonalDiscountModel{
		ID:        data.ID,
		AccountID: data.AccountID,
		ProductID: data.ProductID,
		Percent:   data.Percent,
		ExpiresAt: data.ExpiresAt,
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
	}
}
