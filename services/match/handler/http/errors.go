package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/logger"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/middleware"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/utils"
)

// errorResponse maps use case errors onto HTTP responses
func errorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidDriverID),
		errors.Is(err, models.ErrInvalidPage):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, models.ErrDriverNotFound):
		return utils.NotFoundResponse(c, err.Error())
	default:
		middleware.NoticeError(c, err)
		logger.ErrorCtx(c.Request().Context(), "Match request failed",
			logger.String("path", c.Path()),
			logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
	}
}
