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
	"gorm.io/gorm/clause"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByID retrieves a product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindByName retrieves a product by its natural key.
func (repo *productRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by name")
	}

	return toProductDomain(&productM), nil
}

// FindByIDForUpdate retrieves a product with a FOR UPDATE row lock,
// serializing concurrent allocations on the same product.
func (repo *productRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to lock product by ID")
	}

	return toProductDomain(&productM), nil
}

// ListActive returns all purchasable products.
func (repo *productRepository) ListActive(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.ProductStatusActive)).
		Order("name ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active products")
	}

	return toProductDomainList(productModels), nil
}

// List returns every product.
func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomainList(productModels), nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(err, "product name already exists")
		}

		return errors.Wrap(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// AllocateStock marks the oldest quantity unsold lines as sold and moves the
// product counters, returning the payloads in consumption order. The caller
// holds the product row lock, so the select-then-update pair cannot race with
// another allocation on the same product.
func (repo *productRepository) AllocateStock(ctx context.Context, productID uuid.UUID, quantity int) ([]string, error) {
	var lineModels []*model.StockLineModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ? AND sold = ?", productID, false).
		Order("position ASC").
		Limit(quantity).
		Find(&lineModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to select stock lines")
	}

	if len(lineModels) < quantity {
		return nil, repository.ErrInsufficientStock
	}

	lineIDs := make([]uuid.UUID, 0, len(lineModels))
	payloads := make([]string, 0, len(lineModels))
	for _, lineM := range lineModels {
		lineIDs = append(lineIDs, lineM.ID)
		payloads = append(payloads, lineM.Payload)
	}

	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.StockLineModel{}).
		Where("id IN ? AND sold = ?", lineIDs, false).
		Updates(map[string]any{
			"sold":    true,
			"sold_at": now,
		})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to mark stock lines sold")
	}
	if result.RowsAffected != int64(len(lineIDs)) {
		// Another transaction slipped in despite the product lock.
		return nil, repository.ErrInsufficientStock
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", productID).
		Updates(map[string]any{
			"available":  gorm.Expr("available - ?", quantity),
			"total_sold": gorm.Expr("total_sold + ?", quantity),
		}).Error; err != nil {
		return nil, errors.Wrap(err, "failed to update product counters")
	}

	return payloads, nil
}

// AddStock appends lines to the product's queue and raises the available
// counter. Positions come from the bigserial sequence, so appended lines sort
// after every existing line.
func (repo *productRepository) AddStock(ctx context.Context, productID uuid.UUID, payloads []string) error {
	lineModels := make([]*model.StockLineModel, 0, len(payloads))
	for _, payload := range payloads {
		lineModels = append(lineModels, &model.StockLineModel{
			ID:        uuid.New(),
			ProductID: productID,
			Payload:   payload,
		})
	}

	if err := repo.db.WithContext(ctx).
		Omit("Position").
		Create(&lineModels).Error; err != nil {
		return errors.Wrap(err, "failed to insert stock lines")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", productID).
		Update("available", gorm.Expr("available + ?", len(payloads)))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update available counter")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:        data.ID,
		Name:      data.Name,
		UnitPrice: data.UnitPrice,
		Available: data.Available,
		TotalSold: data.TotalSold,
		Status:    entity.ProductStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toProductDomainList(models []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(models))
	for _, productM := range models {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:        data.ID,
		Name:      data.Name,
		UnitPrice: data.UnitPrice,
		Available: data.Available,
		TotalSold: data.TotalSold,
		Status:    string(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
