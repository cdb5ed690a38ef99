package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/swiftserve/registry/internal/middleware"
)

// NewRouter constructs the HTTP handler serving the app's localhost API.
//
// Routes:
//
//	POST   /api/signup                  → authHandler.Signup (public)
//	POST   /api/login                   → authHandler.Login (public)
//	POST   /api/logout                  → authHandler.Logout
//	GET    /api/session                 → authHandler.Session
//	POST   /api/password                → authHandler.ChangePassword
//	GET    /api/requests                → requestHandler.List
//	POST   /api/requests                → requestHandler.Submit
//	PATCH  /api/requests/{id}/status    → requestHandler.UpdateStatus
//	DELETE /api/requests/{id}           → requestHandler.Remove
//	GET    /api/admin/storage           → adminHandler.Storage
//
// Middleware chain (applied in order):
//  1. cors.Handler                       — allows the local WebView UI origin
//  2. AllowContentType("application/json") — rejects non-JSON bodies
//  3. WithRequestLogging(logger)         — logs each request
//  4. SessionAuth(sessions)              — loads the device session, gates
//     everything except signup and login
func NewRouter(
	authHandler *AuthHandler,
	requestHandler *RequestHandler,
	adminHandler *AdminHandler,
	sessions middleware.SessionLoader,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "https://localhost:*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))
	// Load the persisted session and gate protected routes
	r.Use(middleware.SessionAuth(sessions))

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)

		// Session-gated endpoints
		r.Post("/logout", authHandler.Logout)
		r.Get("/session", authHandler.Session)
		r.Post("/password", authHandler.ChangePassword)

		r.Route("/requests", func(r chi.Router) {
			r.Get("/", requestHandler.List)
			r.Post("/", requestHandler.Submit)
			r.Patch("/{id}/status", requestHandler.UpdateStatus)
			r.Delete("/{id}", requestHandler.Remove)
		})

		r.Get("/admin/storage", adminHandler.Storage)
	})

	return r
}
