// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"
	"time"

	"vend/config"
	domainerrors "vend/internal/domain/errors"
	"vend/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db          *gorm.DB
	lockTimeout time.Duration
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create repository
// instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

func (f *gormRepositoryFactory) AccountRepo() repository.AccountRepository {
	return NewAccountRepository(f.tx)
}

func (f *gormRepositoryFactory) ProductRepo() repository.ProductRepository {
	return NewProductRepository(f.tx)
}

func (f *gormRepositoryFactory) DiscountRepo() repository.DiscountRepository {
	return NewDiscountRepository(f.tx)
}

func (f *gormRepositoryFactory) CouponRepo() repository.CouponRepository {
	return NewCouponRepository(f.tx)
}

func (f *gormRepositoryFactory) OrderRepo() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB, cfg *config.Config) repository.TransactionManager {
	var lockTimeout time.Duration
	if cfg != nil && cfg.Purchase != nil {
		lockTimeout = cfg.Purchase.LockTimeout
	}

	return &gormTransactionManager{db: db, lockTimeout: lockTimeout}
}

// Execute runs the given function within a single database transaction.
// Serialization failures, deadlocks and lock timeouts surface as a retryable
// conflict; the caller may re-submit the whole operation.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// This defer block ensures that if a panic occurs within the callback
	// function, the transaction is always rolled back.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			// Re-panic to allow Fx or other middleware to handle the panic.
			panic(r)
		}
	}()

	if tm.lockTimeout > 0 {
		// SET LOCAL scopes the timeout to this transaction only.
		timeoutMs := tm.lockTimeout.Milliseconds()
		if err := tx.Exec(fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", timeoutMs)).Error; err != nil {
			tx.Rollback()

			return fmt.Errorf("failed to set lock timeout: %w", err)
		}
	}

	factory := &gormRepositoryFactory{tx: tx}

	err := fn(factory)
	if err != nil {
		// If the business logic returns an error, roll back the transaction.
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Return the original, more meaningful business error.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		if isTransientConflict(err) {
			return domainerrors.ErrTransientConflict.WrapMessage(err.Error())
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		if isTransientConflict(err) {
			return domainerrors.ErrTransientConflict.WrapMessage(err.Error())
		}

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
