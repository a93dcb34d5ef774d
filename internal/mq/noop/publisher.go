package noop

import (
	"context"

	"github.com/programmerrush/api-bills/internal/mq"
)

// Publisher implements mq.Publisher without side effects. Used in dev mode
// and in tests where no broker is available.
type Publisher struct{}

// NewPublisher creates a new no-op Publisher.
func NewPublisher() *Publisher {
	return &Publisher{}
}

// Publish discards the message and returns nil.
func (p *Publisher) Publish(ctx context.Context, topic string, body []byte) error {
	return nil
}

// Close does nothing.
func (p *Publisher) Close() {}

var _ mq.Publisher = (*Publisher)(nil)
