package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"cepcache/internal/delivery/api/response"
	deliverycontext "cepcache/internal/delivery/context"
	"cepcache/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const healthCheckTimeout = 2 * time.Second

// Pinger reports whether local storage is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Storage   Pinger
	Providers []service.AddressProvider
	Logger    *slog.Logger
}

// HealthHandler reports service liveness and storage reachability
type HealthHandler struct {
	storage   Pinger
	providers int
	logger    *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		storage:   params.Storage,
		providers: len(params.Providers),
		logger:    params.Logger,
	}
}

// HealthResponse is the body of the health endpoint
type HealthResponse struct {
	Status    string `json:"status"`
	Storage   string `json:"storage"`
	Providers int    `json:"providers"`
}

// HealthCheck answers 200 when storage responds and 503 otherwise
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.storage.PingContext(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Warn("Health check failed", slog.String("error", err.Error()))

		return response.Success(c, http.StatusServiceUnavailable, HealthResponse{
			Status:    "degraded",
			Storage:   "unreachable",
			Providers: h.providers,
		})
	}

	return response.Success(c, http.StatusOK, HealthResponse{
		Status:    "ok",
		Storage:   "ok",
		Providers: h.providers,
	})
}
