package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/constants"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/logger"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
	natspkg "github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/nats"
	nrpkg "github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/newrelic"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/requestcontext"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/services/match"
)

const handleTimeout = 5 * time.Second

// MatchHandler handles NATS subscriptions for the match service
type MatchHandler struct {
	matchUC    match.MatchUC
	natsClient *natspkg.Client
	nrApp      *newrelic.Application
	consumers  []*natspkg.Consumer
}

// NewMatchHandler creates a new match NATS handler
func NewMatchHandler(matchUC match.MatchUC, client *natspkg.Client, nrApp *newrelic.Application) *MatchHandler {
	return &MatchHandler{
		matchUC:    matchUC,
		natsClient: client,
		nrApp:      nrApp,
	}
}

// InitNATSConsumers subscribes to driver change events
func (h *MatchHandler) InitNATSConsumers() error {
	consumer, err := natspkg.NewConsumer(h.natsClient, constants.SubjectDriverUpdated, handleTimeout, h.HandleDriverUpdated)
	if err != nil {
		return fmt.Errorf("failed to subscribe to driver events: %w", err)
	}
	h.consumers = append(h.consumers, consumer)
	return nil
}

// HandleDriverUpdated invalidates cached matches for the driver in the event
func (h *MatchHandler) HandleDriverUpdated(ctx context.Context, data []byte) error {
	ctx, end := nrpkg.StartBackgroundTransaction(ctx, h.nrApp, "nats/"+constants.SubjectDriverUpdated)
	defer end()

	var event models.DriverEvent
	if err := json.Unmarshal(data, &event); err != nil {
		logger.ErrorCtx(ctx, "Failed to unmarshal driver event", logger.Err(err))
		return err
	}
	ctx = requestcontext.WithDriverID(ctx, event.DriverID)

	logger.DebugCtx(ctx, "Received driver event", logger.String("type", string(event.Type)))

	return h.matchUC.HandleDriverEvent(ctx, event)
}

// Close stops all consumers
func (h *MatchHandler) Close() {
	for _, c := range h.consumers {
		c.Stop()
	}
	h.consumers = nil
}
