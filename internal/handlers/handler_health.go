package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	portsrepo "github.com/SscSPs/pos_shift_app/internal/core/ports/repositories"
	"github.com/SscSPs/pos_shift_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const healthTimeout = 2 * time.Second

// healthCheck godoc
// @Summary Liveness and storage check
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Failure 503 {string} string "storage unavailable"
// @Router /health [get]
func healthCheck(store portsrepo.Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.String(http.StatusOK, "OK")
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", slog.String("error", err.Error()))
			c.String(http.StatusServiceUnavailable, "storage unavailable")
			return
		}
		c.String(http.StatusOK, "OK")
	}
}

// metricsHandler exposes the collectors registered on gatherer.
func metricsHandler(gatherer prometheus.Gatherer) gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}
