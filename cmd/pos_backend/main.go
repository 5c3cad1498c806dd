package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	portssvc "github.com/SscSPs/pos_shift_app/internal/core/ports/services"
	"github.com/SscSPs/pos_shift_app/internal/core/services"
	"github.com/SscSPs/pos_shift_app/internal/handlers"
	"github.com/SscSPs/pos_shift_app/internal/middleware"
	"github.com/SscSPs/pos_shift_app/internal/platform/config"
	"github.com/SscSPs/pos_shift_app/internal/platform/metrics"
	"github.com/SscSPs/pos_shift_app/internal/platform/storage"
)

// @title POS Shift API
// @version 1.0
// @description Cash-drawer shift engine for point-of-sale tills.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Store profile loaded",
		slog.String("store", cfg.Store.StoreName),
		slog.String("currency", cfg.Store.CurrencyCode),
		slog.String("storage", cfg.StorageDriver))

	store, err := storage.Open(context.Background(), cfg, true)
	if err != nil {
		logger.Error("Failed to open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	var (
		registry  *prometheus.Registry
		observers []portssvc.ShiftObserver
	)
	if cfg.MetricsEnabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		observers = append(observers, metrics.NewShiftMetrics(registry))
	}

	serviceContainer := services.NewServiceContainer(cfg, store.Repos, observers...)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if registry != nil {
		r.Use(middleware.NewHTTPMetrics(registry).Middleware())
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AddAllowHeaders("Authorization", "X-Request-ID")
	r.Use(cors.New(corsConfig))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Keep the gatherer interface nil when metrics are off
	var gatherer prometheus.Gatherer
	if registry != nil {
		gatherer = registry
	}
	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, store.Repos.Health, gatherer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
