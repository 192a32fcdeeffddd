package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/middleware"
	nrpkg "github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/newrelic"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/services/drivers"
	httpHandler "github.com/AnthonyPaton1/taxi-booking-app-sub003/services/drivers/handler/http"
)

// Handler combines all handlers for driver administration
type Handler struct {
	driverHTTP *httpHandler.DriverHandler
}

// NewHandler creates a new combined handler
func NewHandler(driverUC drivers.DriverUC) *Handler {
	return &Handler{
		driverHTTP: httpHandler.NewDriverHandler(driverUC),
	}
}

// RegisterRoutes registers the administrative driver routes. Only the admin
// service may change driver state.
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKeyValidator *middleware.APIKeyValidator) {
	admin := e.Group("/internal/drivers", apiKeyValidator.ValidateAPIKey(middleware.ServiceAdmin))

	admin.POST("/:driverID/approve", nrpkg.TraceHandler("ApproveDriver", h.driverHTTP.ApproveDriver))
	admin.POST("/:driverID/reject", nrpkg.TraceHandler("RejectDriver", h.driverHTTP.RejectDriver))
	admin.POST("/:driverID/suspend", nrpkg.TraceHandler("SuspendDriver", h.driverHTTP.SuspendDriver))
	admin.POST("/:driverID/reactivate", nrpkg.TraceHandler("ReactivateDriver", h.driverHTTP.ReactivateDriver))
	admin.DELETE("/:driverID", nrpkg.TraceHandler("DeleteDriver", h.driverHTTP.DeleteDriver))
	admin.PATCH("/:driverID/capabilities", nrpkg.TraceHandler("UpdateDriverCapabilities", h.driverHTTP.UpdateCapabilities))
}
