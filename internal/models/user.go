package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SystemUser represents an operator for actions performed by the system itself.
var SystemUser = &User{
	UserID: primitive.NilObjectID,
	Name:   "System",
	Email:  "system@3phase.local",
	Role:   "system",
}

// User is the authenticated actor as carried in the access token. User
// accounts themselves are managed by the auth service; this service only
// reads the claims.
type User struct {
	UserID  primitive.ObjectID `json:"user_id" bson:"user_id"`
	Name    string             `json:"name" bson:"name"`
	Email   string             `json:"email" bson:"email"`
	Role    string             `json:"role" bson:"role"`
	Company primitive.ObjectID `json:"company,omitempty" bson:"company,omitempty"`
}
