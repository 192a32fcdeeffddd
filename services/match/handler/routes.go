package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/database"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/middleware"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
	natspkg "github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/nats"
	nrpkg "github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/newrelic"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/services/match"
	httpHandler "github.com/AnthonyPaton1/taxi-booking-app-sub003/services/match/handler/http"
	natsHandler "github.com/AnthonyPaton1/taxi-booking-app-sub003/services/match/handler/nats"
)

// Handler combines all handlers for the match service
type Handler struct {
	matchHTTP   *httpHandler.MatchHandler
	matchNATS   *natsHandler.MatchHandler
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewHandler creates a new combined handler. redisClient backs the per-driver
// rate limit and may be nil.
func NewHandler(
	matchUC match.MatchUC,
	natsClient *natspkg.Client,
	nrApp *newrelic.Application,
	redisClient *database.RedisClient,
	cfg *models.Config,
) *Handler {
	return &Handler{
		matchHTTP:   httpHandler.NewMatchHandler(matchUC),
		matchNATS:   natsHandler.NewMatchHandler(matchUC, natsClient, nrApp),
		cfg:         cfg,
		redisClient: redisClient,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKeyValidator *middleware.APIKeyValidator) {
	matchesMiddleware := []echo.MiddlewareFunc{}
	if h.redisClient != nil && h.cfg.Match.RateLimitPerMinute > 0 {
		matchesMiddleware = append(matchesMiddleware,
			middleware.DriverRateLimiter(h.cfg.Match.RateLimitPerMinute, time.Minute, h.redisClient.GetClient()))
	}

	drivers := e.Group("/drivers")
	drivers.GET("/:driverID/matches",
		nrpkg.TraceHandler("GetDriverMatches", h.matchHTTP.GetDriverMatches), matchesMiddleware...)

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", apiKeyValidator.ValidateAPIKey(middleware.ServiceAdmin, middleware.ServiceBooking))
	internal.POST("/drivers/:driverID/invalidate",
		nrpkg.TraceHandler("InvalidateDriverMatches", h.matchHTTP.InvalidateDriver))
	internal.GET("/match/cache/stats", h.matchHTTP.CacheStats)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.matchNATS.InitNATSConsumers()
}

// Close stops the NATS consumers
func (h *Handler) Close() {
	h.matchNATS.Close()
}
