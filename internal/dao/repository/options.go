package repository

import (
	"time"

	"github.com/programmerrush/api-bills/internal/dao/fields"

	"go.mongodb.org/mongo-driver/bson"
)

// UpdateOptions is an exported struct that holds the fields for a MongoDB
// update operation. It is used with the Functional Options pattern.
type UpdateOptions struct {
	SetFields bson.M
	IncFields bson.M
}

// NewUpdateOptions creates a new instance of UpdateOptions.
func NewUpdateOptions() *UpdateOptions {
	return &UpdateOptions{
		SetFields: bson.M{},
		IncFields: bson.M{},
	}
}

// UpdateOption defines a function that can modify the UpdateOptions.
type UpdateOption func(*UpdateOptions)

// WithPaymentStatus is an option to update the bill's paymentStatus field.
func WithPaymentStatus(status string) UpdateOption {
	return func(o *UpdateOptions) {
		o.SetFields[fields.FieldBillPaymentStatus] = status
	}
}

// WithPaid is an option to update the bill's paid flag.
func WithPaid(paid bool) UpdateOption {
	return func(o *UpdateOptions) {
		o.SetFields[fields.FieldBillPaid] = paid
	}
}

// WithPaymentDate is an option to update the bill's paymentDate field.
// A nil value clears the date.
func WithPaymentDate(t *time.Time) UpdateOption {
	return func(o *UpdateOptions) {
		o.SetFields[fields.FieldBillPaymentDate] = t
	}
}

// WithAmount is an option to update the bill's amount field.
func WithAmount(amount *float64) UpdateOption {
	return func(o *UpdateOptions) {
		o.SetFields[fields.FieldBillAmount] = amount
	}
}

// WithMeta is an option to replace the bill's meta document.
func WithMeta(meta bson.M) UpdateOption {
	return func(o *UpdateOptions) {
		o.SetFields[fields.FieldBillMeta] = meta
	}
}

// WithField is an option to set an arbitrary named field. Used by the company
// update path, where the set of mutable fields is wide but flat.
func WithField(name string, value interface{}) UpdateOption {
	return func(o *UpdateOptions) {
		o.SetFields[name] = value
	}
}

// WithUpdatedAt is an option to update the updated_at field.
func WithUpdatedAt(t time.Time) UpdateOption {
	return func(o *UpdateOptions) {
		o.SetFields[fields.FieldUpdatedAt] = t
	}
}
