package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/swiftserve/registry/internal/service"
)

// writeError maps a service error to an HTTP status and a user-facing
// message. Anything unrecognized is a storage failure, reported generically
// without detail.
func writeError(w http.ResponseWriter, err error) {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		http.Error(w, vErr.Error(), http.StatusBadRequest)
		return
	}
	switch {
	case errors.Is(err, service.ErrFieldsMissing),
		errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrSamePassword):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrWrongCurrentPassword),
		errors.Is(err, service.ErrNotLoggedIn):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrUsernameTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "storage failure, please try again", http.StatusInternalServerError)
	}
}

// writeJSON encodes v as the JSON response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
