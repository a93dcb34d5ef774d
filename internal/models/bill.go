package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bill is one billing-period record for a company. The line items parsed from
// the uploaded bill live in JSONObj; its layout is not enforced and has
// changed several times over the life of the product (see dao/fields for the
// period shapes we still have to match).
type Bill struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Company       primitive.ObjectID `bson:"company" json:"company"`
	Serial        uint64             `bson:"serial,omitempty" json:"serial,omitempty"`
	JSONObj       bson.M             `bson:"jsonObj" json:"jsonObj"`
	PaymentStatus string             `bson:"paymentStatus" json:"paymentStatus"`
	Paid          bool               `bson:"paid" json:"paid"`
	PaymentDate   *time.Time         `bson:"paymentDate,omitempty" json:"paymentDate,omitempty"`
	Amount        *float64           `bson:"amount,omitempty" json:"amount,omitempty"`
	Meta          bson.M             `bson:"meta,omitempty" json:"meta,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Fields returns the nested jsonObj.fields sub-document, or an empty map when
// the bill has no such sub-document (older uploads stored line items at the
// top level of jsonObj).
func (b *Bill) Fields() bson.M {
	if b == nil || b.JSONObj == nil {
		return bson.M{}
	}
	switch f := b.JSONObj["fields"].(type) {
	case bson.M:
		return f
	case map[string]interface{}:
		return f
	}
	return bson.M{}
}
