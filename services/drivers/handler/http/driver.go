package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/middleware"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/utils"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/services/drivers"
)

// DriverHandler handles administrative HTTP requests for drivers
type DriverHandler struct {
	driverUC drivers.DriverUC
}

// NewDriverHandler creates a new driver HTTP handler
func NewDriverHandler(driverUC drivers.DriverUC) *DriverHandler {
	return &DriverHandler{
		driverUC: driverUC,
	}
}

// ApproveDriver handles POST /internal/drivers/:driverID/approve
func (h *DriverHandler) ApproveDriver(c echo.Context) error {
	return h.transition(c, h.driverUC.ApproveDriver, "Driver approved")
}

// RejectDriver handles POST /internal/drivers/:driverID/reject
func (h *DriverHandler) RejectDriver(c echo.Context) error {
	return h.transition(c, h.driverUC.RejectDriver, "Driver rejected")
}

// SuspendDriver handles POST /internal/drivers/:driverID/suspend
func (h *DriverHandler) SuspendDriver(c echo.Context) error {
	return h.transition(c, h.driverUC.SuspendDriver, "Driver suspended")
}

// ReactivateDriver handles POST /internal/drivers/:driverID/reactivate
func (h *DriverHandler) ReactivateDriver(c echo.Context) error {
	return h.transition(c, h.driverUC.ReactivateDriver, "Driver reactivated")
}

// DeleteDriver handles DELETE /internal/drivers/:driverID
func (h *DriverHandler) DeleteDriver(c echo.Context) error {
	return h.transition(c, h.driverUC.DeleteDriver, "Driver deleted")
}

// UpdateCapabilities handles PATCH /internal/drivers/:driverID/capabilities
func (h *DriverHandler) UpdateCapabilities(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}
	middleware.SetDriverID(c, driverID)

	var caps models.DriverCapabilities
	if err := c.Bind(&caps); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	profile, err := h.driverUC.UpdateCapabilities(c.Request().Context(), driverID, caps)
	if err != nil {
		return errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver capabilities updated", profile)
}

func (h *DriverHandler) transition(c echo.Context, fn func(ctx context.Context, driverID string) error, message string) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}
	middleware.SetDriverID(c, driverID)

	if err := fn(c.Request().Context(), driverID); err != nil {
		return errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, message, echo.Map{
		"driverId": driverID,
	})
}
