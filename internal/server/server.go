// Package server boots the storefront HTTP process: configuration,
// database, cache, storage, routes and graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/singitronic/storefront/app/models"
	"github.com/singitronic/storefront/app/routes"
	"github.com/singitronic/storefront/config"
	"github.com/singitronic/storefront/pkg/cache"
	"github.com/singitronic/storefront/pkg/database"
	"github.com/singitronic/storefront/pkg/logger"
	"github.com/singitronic/storefront/pkg/metrics"
	"github.com/singitronic/storefront/pkg/middleware"
	"github.com/singitronic/storefront/pkg/reqid"
	"github.com/singitronic/storefront/pkg/response"
	"github.com/singitronic/storefront/pkg/router"
	"github.com/singitronic/storefront/pkg/storage"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// NewRouter assembles the full middleware stack and API routes around
// the given database handle. Split out from Run so tests can mount the
// whole surface against an in-memory database.
func NewRouter(db *gorm.DB) *router.Router {
	r := router.New()

	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(300, time.Minute),
	)

	r.HandleFunc("/metrics", metrics.Handler())
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		response.OK(w, map[string]string{"status": "ok"})
	})

	routes.RegisterAPI(r, db)
	return r
}

// AutoMigrate creates or updates the storefront tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.CustomerOrder{},
		&models.OrderProduct{},
		&models.Image{},
		&models.User{},
		&models.Wishlist{},
	)
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM, then
// drains in-flight requests and closes the database.
func Run() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Open()
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	storage.Connect()

	r := NewRouter(db)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "error", err)
	}

	if err := database.Close(db); err != nil {
		logger.Error("close database", "error", err)
	}

	logger.Info("server stopped")
	return nil
}
