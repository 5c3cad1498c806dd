package handlers

import (
	"fmt"

	"github.com/SscSPs/pos_shift_app/cmd/docs"
	portsrepo "github.com/SscSPs/pos_shift_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_shift_app/internal/core/ports/services"
	"github.com/SscSPs/pos_shift_app/internal/middleware"
	"github.com/SscSPs/pos_shift_app/internal/platform/config"
	"github.com/SscSPs/pos_shift_app/internal/report"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// gatherer may be nil, in which case /metrics is not served.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	store portsrepo.Pinger,
	gatherer prometheus.Gatherer,
) error {
	r.GET("/health", healthCheck(store))
	if gatherer != nil {
		r.GET("/metrics", metricsHandler(gatherer))
	}

	// Register public authentication routes
	loginLimiter, err := middleware.NewLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("login rate limit: %w", err)
	}
	auth := newAuthHandler(services.Auth)
	registerAuthRoutes(r, auth, middleware.RateLimit(loginLimiter))

	renderer, err := report.NewRenderer(cfg.Store)
	if err != nil {
		return fmt.Errorf("report renderer: %w", err)
	}

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, services.Sessions))
	v1.POST("/auth/logout", auth.logout)
	registerSessionRoutes(v1, services.Sessions)
	registerShiftRoutes(v1, newShiftHandler(services, renderer, cfg.Store.CurrencyCode))

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
