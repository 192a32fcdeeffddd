package usecase

import (
	"time"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/services/match"
)

// MatchUC implements the match use case interface
type MatchUC struct {
	cfg         *models.Config
	driverRepo  match.DriverRepo
	bookingRepo match.BookingRepo
	matchCache  match.MatchCache
	now         func() time.Time
}

// NewMatchUC creates a new match use case
func NewMatchUC(
	cfg *models.Config,
	driverRepo match.DriverRepo,
	bookingRepo match.BookingRepo,
	matchCache match.MatchCache,
) *MatchUC {
	return &MatchUC{
		cfg:         cfg,
		driverRepo:  driverRepo,
		bookingRepo: bookingRepo,
		matchCache:  matchCache,
		now:         time.Now,
	}
}
