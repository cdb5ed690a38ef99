package service

import (
	"context"
	"fmt"

	"github.com/swiftserve/registry/internal/models"
)

// SnapshotRepository defines the raw key-space read required by the admin
// service.
type SnapshotRepository interface {
	// Dump returns every persisted key with its raw string value.
	Dump(ctx context.Context) (map[string]string, error)
}

// AdminService exposes the raw storage snapshot backing the administrator
// panel and the debug screen.
type AdminService struct {
	snapshots SnapshotRepository
}

// NewAdminService constructs an AdminService using the provided repository.
func NewAdminService(snapshots SnapshotRepository) *AdminService {
	return &AdminService{snapshots: snapshots}
}

// Storage returns the raw persisted key space. Admin only.
func (s *AdminService) Storage(ctx context.Context, session models.SessionFlags) (map[string]string, error) {
	if !session.IsAdmin {
		return nil, ErrForbidden
	}
	dump, err := s.snapshots.Dump(ctx)
	if err != nil {
		return nil, fmt.Errorf("dump storage: %w", err)
	}
	return dump, nil
}
