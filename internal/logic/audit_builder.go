package logic

import (
	"time"

	"github.com/programmerrush/api-bills/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditLogOption defines a function that configures an AuditLog object.
type AuditLogOption func(*models.AuditLog)

// WithReason is an option to add a reason to an audit log.
func WithReason(reason string) AuditLogOption {
	return func(log *models.AuditLog) {
		if reason != "" {
			log.Reason = reason
		}
	}
}

// NewAuditLog is a shared constructor for creating standardized audit log
// objects using the Option Pattern.
func NewAuditLog(user *models.User, action, entityType string, entityID primitive.ObjectID, before, after interface{}, opts ...AuditLogOption) *models.AuditLog {
	log := &models.AuditLog{
		ID:         primitive.NewObjectID(),
		UserID:     user.UserID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Changes: map[string]interface{}{
			"before": before,
			"after":  after,
		},
		Timestamp: time.Now(),
	}

	for _, opt := range opts {
		opt(log)
	}

	return log
}

func buildCreateBillAuditLog(operator *models.User, bill *models.Bill) *models.AuditLog {
	return NewAuditLog(operator, "CREATE_BILL", "bill", bill.ID, nil, bill)
}

func buildUpdateBillPaymentAuditLog(operator *models.User, before, after *models.Bill) *models.AuditLog {
	return NewAuditLog(operator, "UPDATE_BILL_PAYMENT", "bill", before.ID, before, after)
}

func buildDeleteBillAuditLog(operator *models.User, deleted *models.Bill) *models.AuditLog {
	return NewAuditLog(operator, "DELETE_BILL", "bill", deleted.ID, deleted, nil)
}

func buildCreateCompanyAuditLog(operator *models.User, company *models.Company) *models.AuditLog {
	return NewAuditLog(operator, "CREATE_COMPANY", "company", company.ID, nil, company)
}

func buildUpdateCompanyAuditLog(operator *models.User, before, after *models.Company) *models.AuditLog {
	return NewAuditLog(operator, "UPDATE_COMPANY", "company", before.ID, before, after)
}

func buildDeleteCompanyAuditLog(operator *models.User, deleted *models.Company) *models.AuditLog {
	return NewAuditLog(operator, "DELETE_COMPANY", "company", deleted.ID, deleted, nil, WithReason("soft delete"))
}
