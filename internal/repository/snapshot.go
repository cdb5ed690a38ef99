package repository

import (
	"context"
	"fmt"

	"github.com/swiftserve/registry/internal/storage"
)

// SnapshotRepository reads the raw persisted key space for the
// administrator panel and debug views.
type SnapshotRepository struct {
	// Store is the underlying key-value store.
	Store storage.Store
}

// NewSnapshotRepository creates a SnapshotRepository over store.
func NewSnapshotRepository(store storage.Store) *SnapshotRepository {
	return &SnapshotRepository{Store: store}
}

// Dump returns every persisted key with its raw string value.
func (r *SnapshotRepository) Dump(ctx context.Context) (map[string]string, error) {
	keys, err := r.Store.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot keys: %w", err)
	}
	dump := make(map[string]string, len(keys))
	for _, key := range keys {
		value, ok, err := r.Store.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("snapshot %q: %w", key, err)
		}
		if ok {
			dump[key] = value
		}
	}
	return dump, nil
}
