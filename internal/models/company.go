package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Company is a tenant. Bills belong to exactly one company.
type Company struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Name    string `bson:"name" json:"name"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	Image   string `bson:"image,omitempty" json:"image,omitempty"`

	Email              string `bson:"email" json:"email"`
	ContactPersonName  string `bson:"contact_person_name" json:"contact_person_name"`
	ContactPersonPhone string `bson:"contact_person_phone" json:"contact_person_phone"`

	// Tariff configuration used by the upstream bill parser.
	ElectricityRate  string `bson:"electricityRate,omitempty" json:"electricityRate,omitempty"`
	BillingCycleDate string `bson:"billingCycleDate,omitempty" json:"billingCycleDate,omitempty"`

	ShiftAFrom string `bson:"shiftAFrom,omitempty" json:"shiftAFrom,omitempty"`
	ShiftATo   string `bson:"shiftATo,omitempty" json:"shiftATo,omitempty"`
	ShiftBFrom string `bson:"shiftBFrom,omitempty" json:"shiftBFrom,omitempty"`
	ShiftBTo   string `bson:"shiftBTo,omitempty" json:"shiftBTo,omitempty"`
	ShiftCFrom string `bson:"shiftCFrom,omitempty" json:"shiftCFrom,omitempty"`
	ShiftCTo   string `bson:"shiftCTo,omitempty" json:"shiftCTo,omitempty"`

	IsActive       bool `bson:"isActive" json:"isActive"`
	IsPaymentDelay bool `bson:"isPaymentDelay" json:"isPaymentDelay"`
	IsDeleted      bool `bson:"isDeleted" json:"isDeleted"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
