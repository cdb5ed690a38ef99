// Package storage provides the on-device key-value store that backs the
// whole application. Two implementations are available: a single JSON file
// and a SQL table (sqlite or postgres).
package storage

import "context"

// Store is a persistent string key-value store.
//
// Every higher layer reads and writes through this interface; raw keys are
// only interpreted by the typed repositories built on top of it.
type Store interface {
	// Get returns the value stored under key. ok is false when the key
	// is unset.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an unset key is not an error.
	Delete(ctx context.Context, key string) error
	// Keys returns every currently set key.
	Keys(ctx context.Context) ([]string, error)
}
