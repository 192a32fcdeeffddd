package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/logger"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/middleware"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/utils"
)

func errorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidDriverID),
		errors.Is(err, models.ErrEmptyUpdate),
		errors.Is(err, models.ErrInvalidLocation),
		errors.Is(err, models.ErrInvalidRadius):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, models.ErrDriverNotFound):
		return utils.NotFoundResponse(c, err.Error())
	default:
		middleware.NoticeError(c, err)
		logger.ErrorCtx(c.Request().Context(), "Driver request failed",
			logger.String("path", c.Path()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Internal server error")
	}
}
