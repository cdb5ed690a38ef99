package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/swiftserve/registry/internal/models"
	"github.com/swiftserve/registry/internal/storage"
)

const keyUsers = "users"

// UserRepository persists the user directory as one JSON object under the
// users key.
type UserRepository struct {
	// Store is the underlying key-value store.
	Store storage.Store
}

// NewUserRepository creates a UserRepository over store.
func NewUserRepository(store storage.Store) *UserRepository {
	return &UserRepository{Store: store}
}

// All returns the full user directory. An unset key is an empty directory.
func (r *UserRepository) All(ctx context.Context) (models.UserDirectory, error) {
	raw, ok, err := r.Store.Get(ctx, keyUsers)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if !ok || raw == "" {
		return models.UserDirectory{}, nil
	}
	var dir models.UserDirectory
	if err := json.Unmarshal([]byte(raw), &dir); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return dir, nil
}

// Exists reports whether username is registered.
func (r *UserRepository) Exists(ctx context.Context, username string) (bool, error) {
	dir, err := r.All(ctx)
	if err != nil {
		return false, err
	}
	_, ok := dir[username]
	return ok, nil
}

// Password returns the stored password for username. ok is false when the
// user is not registered.
func (r *UserRepository) Password(ctx context.Context, username string) (string, bool, error) {
	dir, err := r.All(ctx)
	if err != nil {
		return "", false, err
	}
	pw, ok := dir[username]
	return pw, ok, nil
}

// Put stores password for username, creating or overwriting the entry, and
// persists the whole directory.
func (r *UserRepository) Put(ctx context.Context, username, password string) error {
	dir, err := r.All(ctx)
	if err != nil {
		return err
	}
	dir[username] = password
	raw, err := json.Marshal(dir)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := r.Store.Set(ctx, keyUsers, string(raw)); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}
