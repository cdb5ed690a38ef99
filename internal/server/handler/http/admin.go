package http

import (
	"context"
	"net/http"

	"github.com/swiftserve/registry/internal/middleware"
	"github.com/swiftserve/registry/internal/models"
)

// AdminService defines the interface for the administrator panel.
type AdminService interface {
	// Storage returns the raw persisted key space. Admin only.
	Storage(ctx context.Context, session models.SessionFlags) (map[string]string, error)
}

// AdminHandler handles HTTP requests for the administrator panel and the
// debug screen.
type AdminHandler struct {
	// AdminService performs the underlying snapshot reads.
	AdminService AdminService
}

// Storage handles GET /api/admin/storage, returning every persisted key
// with its raw value for inspection.
func (h *AdminHandler) Storage(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSessionFromContext(r.Context())
	dump, err := h.AdminService.Storage(r.Context(), session)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dump)
}
