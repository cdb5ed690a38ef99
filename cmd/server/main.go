// Package main initializes and starts the SwiftServe registry daemon,
// setting up configuration, logging, the key-value store, repositories,
// services, and the HTTP router.
package main

import (
	"cmp"
	"fmt"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/swiftserve/registry/internal/config"
	"github.com/swiftserve/registry/internal/db"
	"github.com/swiftserve/registry/internal/logger"
	"github.com/swiftserve/registry/internal/repository"
	"github.com/swiftserve/registry/internal/server/handler/http"
	"github.com/swiftserve/registry/internal/service"
	"github.com/swiftserve/registry/internal/storage"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

// openStore builds the configured storage backend.
func openStore(options *config.Options) (storage.Store, error) {
	switch options.Backend {
	case "sqlite":
		database, err := db.InitSQLite(options.StorePath)
		if err != nil {
			return nil, err
		}
		return storage.NewSQLStore(database), nil
	case "postgres":
		database, err := db.InitPostgres(options.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return storage.NewSQLStore(database), nil
	default:
		store, err := storage.OpenFileStore(options.StorePath)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
}

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	if err := log.Init(options.LogLevel); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	defer func() { _ = log.Log.Sync() }()
	zapLogger := log.Log

	// Open the configured key-value store.
	store, err := openStore(options)
	if err != nil {
		zapLogger.Fatal("cannot open store", zap.Error(err))
	}

	// Initialize typed repositories over the store.
	sessionRepo := repository.NewSessionRepository(store)
	userRepo := repository.NewUserRepository(store)
	requestRepo := repository.NewRequestRepository(store)
	snapshotRepo := repository.NewSnapshotRepository(store)

	// Initialize business-logic services.
	authService := service.NewAuthService(sessionRepo, userRepo)
	requestService := service.NewRequestService(requestRepo, service.ParsePolicy(options.Policy))
	adminService := service.NewAdminService(snapshotRepo)

	// Create HTTP handlers for the screen surface.
	authHandler := &http.AuthHandler{AuthService: authService}
	requestHandler := &http.RequestHandler{RequestService: requestService}
	adminHandler := &http.AdminHandler{AdminService: adminService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, requestHandler, adminHandler, sessionRepo, zapLogger)

	server := &nethttp.Server{
		Addr:    options.Port,
		Handler: router,
	}

	zapLogger.Info("starting registry daemon",
		zap.String("addr", options.Port),
		zap.String("backend", options.Backend),
	)
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start server", zap.Error(err))
	}
}
