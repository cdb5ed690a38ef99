// Package repository provides typed persistence over the key-value store.
// Raw store keys are interpreted only here; every consumer works with
// models types instead.
package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/swiftserve/registry/internal/models"
	"github.com/swiftserve/registry/internal/storage"
)

// Persisted session keys.
const (
	keyLoggedIn    = "loggedIn"
	keyCurrentUser = "currentUser"
	keyIsAdmin     = "isAdmin"
)

// SessionRepository persists the single active device session as three
// scalar keys.
type SessionRepository struct {
	// Store is the underlying key-value store.
	Store storage.Store
}

// NewSessionRepository creates a SessionRepository over store.
func NewSessionRepository(store storage.Store) *SessionRepository {
	return &SessionRepository{Store: store}
}

// Load reads the session flags. Unset keys yield zero values, so a device
// without an active session loads as a logged-out session.
func (r *SessionRepository) Load(ctx context.Context) (models.SessionFlags, error) {
	var flags models.SessionFlags

	loggedIn, _, err := r.Store.Get(ctx, keyLoggedIn)
	if err != nil {
		return models.SessionFlags{}, fmt.Errorf("load session: %w", err)
	}
	flags.LoggedIn = loggedIn == "true"

	user, _, err := r.Store.Get(ctx, keyCurrentUser)
	if err != nil {
		return models.SessionFlags{}, fmt.Errorf("load session: %w", err)
	}
	flags.CurrentUser = user

	admin, _, err := r.Store.Get(ctx, keyIsAdmin)
	if err != nil {
		return models.SessionFlags{}, fmt.Errorf("load session: %w", err)
	}
	flags.IsAdmin = admin == "true"

	return flags, nil
}

// Save persists the session flags.
func (r *SessionRepository) Save(ctx context.Context, flags models.SessionFlags) error {
	if err := r.Store.Set(ctx, keyLoggedIn, strconv.FormatBool(flags.LoggedIn)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if err := r.Store.Set(ctx, keyCurrentUser, flags.CurrentUser); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if err := r.Store.Set(ctx, keyIsAdmin, strconv.FormatBool(flags.IsAdmin)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear removes all three session keys. The original screens disagreed on
// which keys logout removes; the canonical contract clears everything.
func (r *SessionRepository) Clear(ctx context.Context) error {
	for _, key := range []string{keyLoggedIn, keyCurrentUser, keyIsAdmin} {
		if err := r.Store.Delete(ctx, key); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
	}
	return nil
}
