// Package snapshot stores backup snapshots in a blob bucket.
package snapshot

import (
	"context"
	"log/slog"
	"strings"

	"vend/config"
	domainerrors "vend/internal/domain/errors"
	"vend/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Registered bucket drivers. The bucket URL scheme selects one at runtime.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// blobSnapshotStore implements service.SnapshotStore on a gocloud.dev bucket,
// so the same code serves local directories, in-memory buckets and GCS.
type blobSnapshotStore struct {
	bucket *blob.Bucket
	prefix string
}

// StoreParams holds dependencies for the snapshot store, injected by Fx.
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobSnapshotStore opens the configured bucket and returns the store.
func NewBlobSnapshotStore(params StoreParams) (service.SnapshotStore, error) {
	cfg := params.Config.Snapshot
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("snapshot bucket URL must be configured")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open snapshot bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Snapshot store initialized",
		slog.String("bucket_url", cfg.BucketURL),
		slog.String("prefix", cfg.Prefix),
	)

	store := &blobSnapshotStore{
		bucket: bucket,
		prefix: cfg.Prefix,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

func (s *blobSnapshotStore) key(key string) string {
	if s.prefix == "" {
		return key
	}

	return strings.TrimSuffix(s.prefix, "/") + "/" + key
}

// Write stores snapshot data under the given key.
func (s *blobSnapshotStore) Write(ctx context.Context, key string, data []byte) error {
	if err := s.bucket.WriteAll(ctx, s.key(key), data, nil); err != nil {
		return errors.Wrapf(err, "failed to write snapshot %s", key)
	}

	return nil
}

// Read loads snapshot data by key.
func (s *blobSnapshotStore) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, s.key(key))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrSnapshotNotFound
		}

		return nil, errors.Wrapf(err, "failed to read snapshot %s", key)
	}

	return data, nil
}

// Close releases the bucket handle.
func (s *blobSnapshotStore) Close() error {
	return s.bucket.Close()
}
