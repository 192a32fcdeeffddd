package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"

	ServiceAdmin   = "admin-service"
	ServiceBooking = "booking-service"
	ServiceMatch   = "match-service"
)

// APIKeyValidator checks service-to-service API keys on internal routes
type APIKeyValidator struct {
	keys map[string]string
}

// NewAPIKeyValidator builds the service name to key mapping from config
func NewAPIKeyValidator(cfg models.APIKeysConfig) *APIKeyValidator {
	return &APIKeyValidator{
		keys: map[string]string{
			ServiceAdmin:   cfg.AdminService,
			ServiceBooking: cfg.BookingService,
			ServiceMatch:   cfg.MatchService,
		},
	}
}

// ValidateAPIKey middleware only lets through requests carrying the key of one of allowedServices
func (v *APIKeyValidator) ValidateAPIKey(allowedServices ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			for _, service := range allowedServices {
				expected := v.keys[service]
				if expected != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) == 1 {
					c.Set("caller_service", service)
					return next(c)
				}
			}

			return utils.UnauthorizedResponse(c, "Invalid API key")
		}
	}
}
