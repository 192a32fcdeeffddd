package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/middleware"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/utils"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/services/match"
)

// MatchHandler handles HTTP requests for match operations
type MatchHandler struct {
	matchUC match.MatchUC
}

// NewMatchHandler creates a new match HTTP handler
func NewMatchHandler(matchUC match.MatchUC) *MatchHandler {
	return &MatchHandler{
		matchUC: matchUC,
	}
}

// GetDriverMatches returns the ranked bookings a driver can take
func (h *MatchHandler) GetDriverMatches(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}
	middleware.SetDriverID(c, driverID)

	limit, ok := utils.QueryInt(c, "limit", 0)
	if !ok {
		return utils.BadRequestResponse(c, "limit must be an integer")
	}
	offset, ok := utils.QueryInt(c, "offset", 0)
	if !ok {
		return utils.BadRequestResponse(c, "offset must be an integer")
	}

	list, err := h.matchUC.GetDriverMatches(c.Request().Context(), driverID, models.MatchPage{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return errorResponse(c, err)
	}

	middleware.AddAttribute(c, "match.total", list.Total)
	return utils.SuccessResponse(c, http.StatusOK, "Matches retrieved successfully", list)
}

// InvalidateDriver drops the cached rankings of a driver
func (h *MatchHandler) InvalidateDriver(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}
	middleware.SetDriverID(c, driverID)

	if err := h.matchUC.InvalidateDriver(c.Request().Context(), driverID); err != nil {
		return errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Match cache invalidated", echo.Map{
		"driverId": driverID,
	})
}

// CacheStats reports the match cache counters
func (h *MatchHandler) CacheStats(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Match cache stats", h.matchUC.CacheStats())
}
