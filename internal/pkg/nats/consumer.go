package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/logger"
)

// MessageHandler processes one message payload
type MessageHandler func(ctx context.Context, data []byte) error

// Consumer delivers messages of one subject to a handler.
// Every replica gets every message; there is no queue group.
type Consumer struct {
	subject      string
	handler      MessageHandler
	timeout      time.Duration
	subscription *nats.Subscription
}

// NewConsumer subscribes handler to subject on client. Each message is
// handled with its own timeout-bounded context.
func NewConsumer(client *Client, subject string, timeout time.Duration, handler MessageHandler) (*Consumer, error) {
	c := &Consumer{
		subject: subject,
		handler: handler,
		timeout: timeout,
	}

	sub, err := client.Subscribe(subject, c.dispatch)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}
	c.subscription = sub

	logger.Info("NATS consumer started", logger.String("subject", subject))
	return c, nil
}

func (c *Consumer) dispatch(msg *nats.Msg) {
	ctx := context.Background()
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if err := c.handler(ctx, msg.Data); err != nil {
		logger.Warn("Error processing message",
			logger.String("subject", msg.Subject),
			logger.Err(err))
	}
}

// Stop unsubscribes the consumer
func (c *Consumer) Stop() {
	if c.subscription == nil {
		return
	}
	if err := c.subscription.Unsubscribe(); err != nil {
		logger.Warn("Failed to unsubscribe", logger.String("subject", c.subject), logger.Err(err))
	}
}
