package service

import "context"

// SnapshotStore persists backup snapshots outside the primary database.
type SnapshotStore interface {
	// Write stores snapshot data under the given key.
	Write(ctx context.Context, key string, data []byte) error

	// Read loads snapshot data by key.
	Read(ctx context.Context, key string) ([]byte, error)

	// Close releases any resources held by the store.
	Close() error
}
