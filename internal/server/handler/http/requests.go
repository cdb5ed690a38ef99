package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/swiftserve/registry/internal/middleware"
	"github.com/swiftserve/registry/internal/models"
	"github.com/swiftserve/registry/internal/service"
)

// RequestService defines the interface for ledger operations required by
// the HTTP handlers.
type RequestService interface {
	// Submit validates the form and appends a Pending request to the ledger.
	Submit(ctx context.Context, in service.SubmitInput, session models.SessionFlags) (models.CertificateRequest, error)
	// List returns the requests visible to the session.
	List(ctx context.Context, session models.SessionFlags) ([]models.CertificateRequest, error)
	// UpdateStatus advances the status of a request. Admin only.
	UpdateStatus(ctx context.Context, id string, status models.RequestStatus, session models.SessionFlags) error
	// Remove deletes a request from the ledger. Admin only.
	Remove(ctx context.Context, id string, session models.SessionFlags) error
}

// RequestHandler handles HTTP requests for the home screen and the
// request-submission form.
type RequestHandler struct {
	// RequestService performs the underlying ledger operations.
	RequestService RequestService
}

// UpdateStatusRequest is the JSON payload for a status change.
type UpdateStatusRequest struct {
	Status models.RequestStatus `json:"status"`
}

// List handles GET /api/requests. Administrators see the whole ledger;
// everyone else sees only their own submissions.
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSessionFromContext(r.Context())
	requests, err := h.RequestService.List(r.Context(), session)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

// Submit handles POST /api/requests from the submission form.
func (h *RequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in service.SubmitInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	session := middleware.GetSessionFromContext(r.Context())
	req, err := h.RequestService.Submit(r.Context(), in, session)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

// UpdateStatus handles PATCH /api/requests/{id}/status.
func (h *RequestHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	id := chi.URLParam(r, "id")
	session := middleware.GetSessionFromContext(r.Context())
	if err := h.RequestService.UpdateStatus(r.Context(), id, req.Status, session); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Remove handles DELETE /api/requests/{id}.
func (h *RequestHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	session := middleware.GetSessionFromContext(r.Context())
	if err := h.RequestService.Remove(r.Context(), id, session); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
