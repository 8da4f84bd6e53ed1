package postgres

import (
	"context"
	"encoding/json"

	"vend/internal/domain/entity"
	"vend/internal/domain/repository"
	"vend/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new immutable order. A code collision surfaces as
// ErrOrderCodeTaken so the caller can regenerate.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM, err := fromOrderDomain(order)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrOrderCodeTaken
		}

		return errors.Wrap(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

// FindByCode retrieves an order by its shareable code.
func (repo *orderRepository) FindByCode(ctx context.Context, code string) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by code")
	}

	return toOrderDomain(&orderM)
}

// ListByAccount returns the account's orders, newest first.
func (repo *orderRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by account")
	}

	return toOrderDomainList(orderModels)
}

// List returns every order.
func (repo *orderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return toOrderDomainList(orderModels)
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	if data == nil {
		return nil, nil
	}

	var lines []string
	if err := json.Unmarshal(data.Lines, &lines); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal order lines")
	}

	return &entity.Order{
		ID:              data.ID,
		Code:            data.Code,
		AccountID:       data.AccountID,
		ProductID:       data.ProductID,
		Quantity:        data.Quantity,
		Lines:           lines,
		OriginalCost:    data.OriginalCost,
		DiscountPercent: data.DiscountPercent,
		Provenance:      entity.DiscountProvenance(data.Provenance),
		FinalCost:       data.FinalCost,
		CreatedAt:       data.CreatedAt,
	}, nil
}

func toOrderDomainList(models []*model.OrderModel) ([]*entity.Order, error) {
	orders := make([]*entity.Order, 0, len(models))
	for _, orderM := range models {
		order, err := toOrderDomain(orderM)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) (*model.OrderModel, error) {
	if data == nil {
		return nil, nil
	}

	lines, err := json.Marshal(data.Lines)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal order lines")
	}

	return &model.OrderModel{
		ID:              data.ID,
		Code:            data.Code,
		AccountID:       data.AccountID,
		ProductID:       data.ProductID,
		Quantity:        data.Quantity,
		Lines:           lines,
		OriginalCost:    data.OriginalCost,
		DiscountPercent: data.DiscountPercent,
		Provenance:      string(data.Provenance),
		FinalCost:       data.FinalCost,
		CreatedAt:       data.CreatedAt,
	}, nil
}
