package mq

import "context"

// Publisher is the broker abstraction the outbox processor publishes bill
// events through. RabbitMQ in production, a no-op in dev and tests.
type Publisher interface {
	Publish(ctx context.Context, topic string, body []byte) error
	Close()
}
