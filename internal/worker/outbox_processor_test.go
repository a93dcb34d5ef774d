package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/programmerrush/api-bills/internal/conf"
	"github.com/programmerrush/api-bills/internal/models"
	"github.com/programmerrush/api-bills/internal/mq/noop"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type mockOutboxRepository struct {
	mock.Mock
}

func (m *mockOutboxRepository) Create(ctx context.Context, message *models.OutboxMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *mockOutboxRepository) ClaimAndFetchEvents(ctx context.Context, limit int) ([]*models.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	var msgs []*models.OutboxMessage
	if args.Get(0) != nil {
		msgs = args.Get(0).([]*models.OutboxMessage)
	}
	return msgs, args.Error(1)
}

func (m *mockOutboxRepository) MarkAsProcessed(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockOutboxRepository) IncrementRetry(ctx context.Context, id primitive.ObjectID, errorMessage string) error {
	args := m.Called(ctx, id, errorMessage)
	return args.Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, topic string, body []byte) error {
	args := m.Called(ctx, topic, body)
	return args.Error(0)
}

func (m *mockPublisher) Close() {}

func workerConfig() *conf.WorkerConfig {
	return &conf.WorkerConfig{
		Outbox:  conf.OutboxWorkerConfig{IntervalSeconds: 1, BatchSize: 10},
		Overdue: conf.OverdueWorkerConfig{IntervalSeconds: 1, GraceDays: 45},
	}
}

func TestOutboxProcessor_ProcessEvents(t *testing.T) {
	t.Run("publishes claimed events and marks them processed", func(t *testing.T) {
		outboxRepo := new(mockOutboxRepository)
		publisher := new(mockPublisher)
		p := NewOutboxProcessor(outboxRepo, publisher, zap.NewNop(), workerConfig())

		event := &models.OutboxMessage{
			ID:      primitive.NewObjectID(),
			Topic:   "bill.events",
			Payload: `{"action":"create"}`,
		}
		outboxRepo.On("ClaimAndFetchEvents", mock.Anything, 10).Return([]*models.OutboxMessage{event}, nil).Once()
		publisher.On("Publish", mock.Anything, "bill.events", []byte(event.Payload)).Return(nil).Once()
		outboxRepo.On("MarkAsProcessed", mock.Anything, event.ID).Return(nil).Once()

		p.processEvents(context.Background())

		outboxRepo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("failed publish increments retry and keeps going", func(t *testing.T) {
		outboxRepo := new(mockOutboxRepository)
		publisher := new(mockPublisher)
		p := NewOutboxProcessor(outboxRepo, publisher, zap.NewNop(), workerConfig())

		failing := &models.OutboxMessage{ID: primitive.NewObjectID(), Topic: "bill.events", Payload: `{"n":1}`}
		healthy := &models.OutboxMessage{ID: primitive.NewObjectID(), Topic: "bill.events", Payload: `{"n":2}`}

		outboxRepo.On("ClaimAndFetchEvents", mock.Anything, 10).
			Return([]*models.OutboxMessage{failing, healthy}, nil).Once()
		publisher.On("Publish", mock.Anything, "bill.events", []byte(failing.Payload)).
			Return(errors.New("broker unavailable")).Once()
		outboxRepo.On("IncrementRetry", mock.Anything, failing.ID, "broker unavailable").Return(nil).Once()
		publisher.On("Publish", mock.Anything, "bill.events", []byte(healthy.Payload)).Return(nil).Once()
		outboxRepo.On("MarkAsProcessed", mock.Anything, healthy.ID).Return(nil).Once()

		p.processEvents(context.Background())

		outboxRepo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("claim error skips the tick", func(t *testing.T) {
		outboxRepo := new(mockOutboxRepository)
		publisher := new(mockPublisher)
		p := NewOutboxProcessor(outboxRepo, publisher, zap.NewNop(), workerConfig())

		outboxRepo.On("ClaimAndFetchEvents", mock.Anything, 10).
			Return(nil, errors.New("db down")).Once()

		p.processEvents(context.Background())

		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("noop publisher drains the batch", func(t *testing.T) {
		outboxRepo := new(mockOutboxRepository)
		p := NewOutboxProcessor(outboxRepo, noop.NewPublisher(), zap.NewNop(), workerConfig())

		event := &models.OutboxMessage{ID: primitive.NewObjectID(), Topic: "bill.events", Payload: `{}`}
		outboxRepo.On("ClaimAndFetchEvents", mock.Anything, 10).Return([]*models.OutboxMessage{event}, nil).Once()
		outboxRepo.On("MarkAsProcessed", mock.Anything, event.ID).Return(nil).Once()

		p.processEvents(context.Background())

		outboxRepo.AssertExpectations(t)
	})
}

func TestOutboxProcessor_StartStopsOnContextCancel(t *testing.T) {
	outboxRepo := new(mockOutboxRepository)
	p := NewOutboxProcessor(outboxRepo, noop.NewPublisher(), zap.NewNop(), workerConfig())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("processor did not stop after context cancellation")
	}
}
