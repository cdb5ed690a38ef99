// Package http provides the HTTP handlers behind the app's screens: login,
// signup, settings, the request ledger, and the administrator panel.
package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/swiftserve/registry/internal/middleware"
	"github.com/swiftserve/registry/internal/models"
)

// AuthService defines the interface for authentication operations required
// by the HTTP handlers.
type AuthService interface {
	// Login authenticates a username/password pair and persists the session.
	Login(ctx context.Context, username, password string) (models.SessionFlags, error)
	// Signup registers a new user without logging them in.
	Signup(ctx context.Context, username, password, confirmPassword string) error
	// Logout clears the persisted session.
	Logout(ctx context.Context) error
	// ChangePassword verifies the current password and stores the new one.
	ChangePassword(ctx context.Context, username, currentPassword, newPassword, confirmPassword string) error
}

// AuthHandler handles HTTP requests for the login, signup, and settings
// screens.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// LoginRequest is the JSON payload for the login screen.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupRequest is the JSON payload for the signup screen.
type SignupRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ChangePasswordRequest is the JSON payload for the settings screen.
// The username comes from the active session, not the payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Login handles POST /api/login. On success it responds with the new
// session flags.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	flags, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, flags)
}

// Signup handles POST /api/signup. The new account is not logged in; the
// UI returns to the login screen.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.AuthService.Signup(r.Context(), req.Username, req.Password, req.ConfirmPassword); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"status": "ok",
		"user":   req.Username,
	})
}

// Logout handles POST /api/logout, clearing the device session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.AuthService.Logout(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Session handles GET /api/session, returning the active session flags so
// the dashboard can gate its tabs.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, middleware.GetSessionFromContext(r.Context()))
}

// ChangePassword handles POST /api/password for the settings screen.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	session := middleware.GetSessionFromContext(r.Context())
	err := h.AuthService.ChangePassword(r.Context(), session.CurrentUser,
		req.CurrentPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
