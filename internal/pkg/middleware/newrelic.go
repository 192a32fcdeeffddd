package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/requestcontext"
)

// NewRelicMiddleware instruments requests with nrecho. A nil app disables it.
func NewRelicMiddleware(app *newrelic.Application) echo.MiddlewareFunc {
	if app == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return nrecho.Middleware(app)
}

// AddAttribute adds a custom attribute to the current transaction
func AddAttribute(c echo.Context, key string, value interface{}) {
	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.AddAttribute(key, value)
	}
}

// NoticeError reports an error to New Relic
func NoticeError(c echo.Context, err error) {
	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.NoticeError(err)
	}
}

// SetDriverID tags the current transaction and request context with the
// driver being matched or administered
func SetDriverID(c echo.Context, driverID string) {
	AddAttribute(c, "driver.id", driverID)

	req := c.Request()
	c.SetRequest(req.WithContext(requestcontext.WithDriverID(req.Context(), driverID)))
}
