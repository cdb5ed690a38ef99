// Package middleware provides HTTP middlewares for session loading and
// request logging.
package middleware

import (
	"context"
	"net/http"

	"github.com/swiftserve/registry/internal/models"
)

type ctxKey string

const sessionKey ctxKey = "session"

// SessionLoader reads the persisted device session.
type SessionLoader interface {
	Load(ctx context.Context) (models.SessionFlags, error)
}

// Paths reachable without an active session.
var publicPaths = map[string]bool{
	"/api/login":  true,
	"/api/signup": true,
}

// SessionAuth loads the persisted session flags and stores them in the
// request context. Login and signup pass through without a session; every
// other route requires an authenticated session and answers 401 otherwise.
func SessionAuth(sessions SessionLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}
			flags, err := sessions.Load(r.Context())
			if err != nil {
				http.Error(w, "storage failure", http.StatusInternalServerError)
				return
			}
			if !flags.LoggedIn {
				http.Error(w, "not logged in", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), flags)))
		})
	}
}

// WithSession returns a context carrying the given session flags, as
// SessionAuth would install them.
func WithSession(ctx context.Context, flags models.SessionFlags) context.Context {
	return context.WithValue(ctx, sessionKey, flags)
}

// GetSessionFromContext extracts the session flags placed by SessionAuth.
// Returns a zero (logged-out) session if none are present.
func GetSessionFromContext(ctx context.Context) models.SessionFlags {
	if flags, ok := ctx.Value(sessionKey).(models.SessionFlags); ok {
		return flags
	}
	return models.SessionFlags{}
}
