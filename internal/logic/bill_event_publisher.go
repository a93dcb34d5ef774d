package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/programmerrush/api-bills/internal/constants"
	"github.com/programmerrush/api-bills/internal/dao/repository"
	"github.com/programmerrush/api-bills/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BillEventTopic is the routing key for bill lifecycle events.
type BillEventTopic string

// BillEventPublisher writes bill lifecycle events to the outbox so they are
// published in the same unit of work as the bill change itself.
type BillEventPublisher struct {
	outboxRepo     repository.OutboxRepository
	billEventTopic BillEventTopic
}

// NewBillEventPublisher creates a new BillEventPublisher.
func NewBillEventPublisher(outboxRepo repository.OutboxRepository, billEventTopic BillEventTopic) *BillEventPublisher {
	return &BillEventPublisher{
		outboxRepo:     outboxRepo,
		billEventTopic: billEventTopic,
	}
}

// PublishBillEvent creates an outbox message for a bill lifecycle event.
func (p *BillEventPublisher) PublishBillEvent(ctx context.Context, action constants.BillAction, bill *models.Bill) error {
	payload := map[string]interface{}{
		"action":         action.String(),
		"bill_id":        bill.ID.Hex(),
		"company_id":     bill.Company.Hex(),
		"serial":         bill.Serial,
		"payment_status": bill.PaymentStatus,
		"paid":           bill.Paid,
	}
	if bill.Amount != nil {
		payload["amount"] = *bill.Amount
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal bill event payload: %w", err)
	}

	outboxMsg := &models.OutboxMessage{
		ID:        primitive.NewObjectID(),
		Topic:     string(p.billEventTopic),
		Payload:   string(payloadBytes),
		Status:    models.OutboxStatusPending,
		CreatedAt: time.Now(),
	}

	if err := p.outboxRepo.Create(ctx, outboxMsg); err != nil {
		return fmt.Errorf("failed to create bill event outbox message: %w", err)
	}
	return nil
}
