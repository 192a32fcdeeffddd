package usecase

import (
	"time"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/retry"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/services/drivers"
)

// DriverUC implements the driver use case interface
type DriverUC struct {
	cfg         *models.Config
	driverRepo  drivers.DriverRepo
	driverGW    drivers.DriverGW
	invalidator drivers.MatchInvalidator
	retrier     *retry.Retrier
	now         func() time.Time
}

// NewDriverUC creates a new driver use case. A nil retrier uses the default
// publish backoff.
func NewDriverUC(
	cfg *models.Config,
	driverRepo drivers.DriverRepo,
	driverGW drivers.DriverGW,
	invalidator drivers.MatchInvalidator,
	retrier *retry.Retrier,
) *DriverUC {
	if retrier == nil {
		retrier = retry.NewWithDefaults()
	}
	return &DriverUC{
		cfg:         cfg,
		driverRepo:  driverRepo,
		driverGW:    driverGW,
		invalidator: invalidator,
		retrier:     retrier,
		now:         time.Now,
	}
}
