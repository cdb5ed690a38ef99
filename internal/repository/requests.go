package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/swiftserve/registry/internal/models"
	"github.com/swiftserve/registry/internal/storage"
)

const keyRequests = "requests"

// ErrNotFound is returned when no request with the given id exists.
var ErrNotFound = errors.New("request not found")

// RequestRepository persists the request ledger as one JSON array under the
// requests key. Insertion order is preserved; every mutation is a
// read-modify-write of the whole ledger.
type RequestRepository struct {
	// Store is the underlying key-value store.
	Store storage.Store
}

// NewRequestRepository creates a RequestRepository over store.
func NewRequestRepository(store storage.Store) *RequestRepository {
	return &RequestRepository{Store: store}
}

// All returns the full ledger in insertion order. An unset key is an empty
// ledger.
func (r *RequestRepository) All(ctx context.Context) ([]models.CertificateRequest, error) {
	raw, ok, err := r.Store.Get(ctx, keyRequests)
	if err != nil {
		return nil, fmt.Errorf("load requests: %w", err)
	}
	if !ok || raw == "" {
		return []models.CertificateRequest{}, nil
	}
	var ledger []models.CertificateRequest
	if err := json.Unmarshal([]byte(raw), &ledger); err != nil {
		return nil, fmt.Errorf("decode requests: %w", err)
	}
	return ledger, nil
}

// save persists the whole ledger.
func (r *RequestRepository) save(ctx context.Context, ledger []models.CertificateRequest) error {
	raw, err := json.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("encode requests: %w", err)
	}
	if err := r.Store.Set(ctx, keyRequests, string(raw)); err != nil {
		return fmt.Errorf("save requests: %w", err)
	}
	return nil
}

// Append adds req to the end of the ledger.
func (r *RequestRepository) Append(ctx context.Context, req models.CertificateRequest) error {
	ledger, err := r.All(ctx)
	if err != nil {
		return err
	}
	return r.save(ctx, append(ledger, req))
}

// Find returns the request with the given id, or ErrNotFound.
func (r *RequestRepository) Find(ctx context.Context, id string) (models.CertificateRequest, error) {
	ledger, err := r.All(ctx)
	if err != nil {
		return models.CertificateRequest{}, err
	}
	for _, req := range ledger {
		if req.ID == id {
			return req, nil
		}
	}
	return models.CertificateRequest{}, ErrNotFound
}

// SetStatus updates the status of the request with the given id.
// Returns ErrNotFound when no such request exists.
func (r *RequestRepository) SetStatus(ctx context.Context, id string, status models.RequestStatus) error {
	ledger, err := r.All(ctx)
	if err != nil {
		return err
	}
	for i := range ledger {
		if ledger[i].ID == id {
			ledger[i].Status = status
			return r.save(ctx, ledger)
		}
	}
	return ErrNotFound
}

// Remove deletes the request with the given id from the ledger.
// Returns ErrNotFound when no such request exists.
func (r *RequestRepository) Remove(ctx context.Context, id string) error {
	ledger, err := r.All(ctx)
	if err != nil {
		return err
	}
	for i := range ledger {
		if ledger[i].ID == id {
			return r.save(ctx, append(ledger[:i], ledger[i+1:]...))
		}
	}
	return ErrNotFound
}
