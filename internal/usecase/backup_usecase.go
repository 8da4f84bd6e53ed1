package usecase

import (
	"context"
)

// ImportSummary reports what a snapshot import created or skipped.
type ImportSummary struct {
	AccountsCreated int `json:"accounts_created"`
	ProductsCreated int `json:"products_created"`
	OrdersCreated   int `json:"orders_created"`
	OrdersSkipped   int `json:"orders_skipped"` // Already present (matched by code).
}

// BackupUsecase is the backup/restore collaborator. It bulk-reads and
// bulk-inserts records outside the normal purchase path, matching accounts
// and products by natural key since surrogate IDs are not stable across
// restores.
type BackupUsecase interface {
	// ExportSnapshot writes a full snapshot to the snapshot store and
	// returns its key.
	ExportSnapshot(ctx context.Context) (string, error)

	// ImportSnapshot restores records from a previously exported snapshot.
	ImportSnapshot(ctx context.Context, key string) (*ImportSummary, error)
}
