package gateway

import (
	"context"
	"fmt"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/constants"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/logger"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
	nrpkg "github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/newrelic"
)

// Publisher is the part of the NATS client the gateway needs
type Publisher interface {
	PublishJSON(subject string, message interface{}) error
}

// DriverGW publishes driver events over NATS
type DriverGW struct {
	publisher Publisher
}

// NewDriverGW creates a new NATS gateway
func NewDriverGW(publisher Publisher) *DriverGW {
	return &DriverGW{publisher: publisher}
}

// PublishDriverUpdated announces a committed driver change
func (g *DriverGW) PublishDriverUpdated(ctx context.Context, event models.DriverEvent) error {
	err := nrpkg.WithSegment(ctx, "nats.publish."+constants.SubjectDriverUpdated, func() error {
		return g.publisher.PublishJSON(constants.SubjectDriverUpdated, event)
	})
	if err != nil {
		return fmt.Errorf("failed to publish driver event: %w", err)
	}

	logger.DebugCtx(ctx, "Published driver event",
		logger.DriverID(event.DriverID),
		logger.String("type", string(event.Type)))
	return nil
}
