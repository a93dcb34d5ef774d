package dto

import (
	"time"

	"github.com/programmerrush/api-bills/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- CreateBill DTOs ---

func NewCreateBillRequest(companyID primitive.ObjectID, jsonObj bson.M, paymentStatus string, amount *float64, meta bson.M, operator *models.User) *CreateBillRequest {
	return &CreateBillRequest{
		companyID:     companyID,
		jsonObj:       jsonObj,
		paymentStatus: paymentStatus,
		amount:        amount,
		meta:          meta,
		operator:      operator,
	}
}

type CreateBillRequest struct {
	companyID     primitive.ObjectID
	jsonObj       bson.M
	paymentStatus string
	amount        *float64
	meta          bson.M
	operator      *models.User
}

func (r *CreateBillRequest) GetCompanyID() primitive.ObjectID { return r.companyID }
func (r *CreateBillRequest) GetJSONObj() bson.M               { return r.jsonObj }
func (r *CreateBillRequest) GetPaymentStatus() string         { return r.paymentStatus }
func (r *CreateBillRequest) GetAmount() *float64              { return r.amount }
func (r *CreateBillRequest) GetMeta() bson.M                  { return r.meta }
func (r *CreateBillRequest) GetOperator() *models.User        { return r.operator }

// --- UpdateBillPayment DTOs ---

// UpdateBillPaymentRequest is a partial update; a nil pointer means "leave
// the field alone". PaymentDate and Meta distinguish "absent" from "clear"
// through the separate Clear flags.
type UpdateBillPaymentRequest struct {
	companyID primitive.ObjectID
	billID    primitive.ObjectID
	operator  *models.User

	paymentStatus    *string
	paid             *bool
	paymentDate      *time.Time
	clearPaymentDate bool
	amount           *float64
	meta             bson.M
	setMeta          bool
}

func NewUpdateBillPaymentRequest(companyID, billID primitive.ObjectID, operator *models.User) *UpdateBillPaymentRequest {
	return &UpdateBillPaymentRequest{
		companyID: companyID,
		billID:    billID,
		operator:  operator,
	}
}

func (r *UpdateBillPaymentRequest) GetCompanyID() primitive.ObjectID { return r.companyID }
func (r *UpdateBillPaymentRequest) GetBillID() primitive.ObjectID    { return r.billID }
func (r *UpdateBillPaymentRequest) GetOperator() *models.User        { return r.operator }
func (r *UpdateBillPaymentRequest) GetPaymentStatus() *string        { return r.paymentStatus }
func (r *UpdateBillPaymentRequest) GetPaid() *bool                   { return r.paid }
func (r *UpdateBillPaymentRequest) GetPaymentDate() *time.Time       { return r.paymentDate }
func (r *UpdateBillPaymentRequest) ClearPaymentDate() bool           { return r.clearPaymentDate }
func (r *UpdateBillPaymentRequest) GetAmount() *float64              { return r.amount }
func (r *UpdateBillPaymentRequest) GetMeta() bson.M                  { return r.meta }
func (r *UpdateBillPaymentRequest) SetMeta() bool                    { return r.setMeta }

func (r *UpdateBillPaymentRequest) WithPaymentStatus(s string) *UpdateBillPaymentRequest {
	r.paymentStatus = &s
	return r
}

func (r *UpdateBillPaymentRequest) WithPaid(p bool) *UpdateBillPaymentRequest {
	r.paid = &p
	return r
}

func (r *UpdateBillPaymentRequest) WithPaymentDate(t *time.Time) *UpdateBillPaymentRequest {
	if t == nil {
		r.clearPaymentDate = true
		r.paymentDate = nil
		return r
	}
	r.paymentDate = t
	return r
}

func (r *UpdateBillPaymentRequest) WithAmount(a *float64) *UpdateBillPaymentRequest {
	r.amount = a
	return r
}

func (r *UpdateBillPaymentRequest) WithMeta(m bson.M) *UpdateBillPaymentRequest {
	r.meta = m
	r.setMeta = true
	return r
}

// HasChanges reports whether any field was provided at all.
func (r *UpdateBillPaymentRequest) HasChanges() bool {
	return r.paymentStatus != nil || r.paid != nil || r.paymentDate != nil ||
		r.clearPaymentDate || r.amount != nil || r.setMeta
}
