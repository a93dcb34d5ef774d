package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetBillsByCompanyParams holds the filters for the historical-bills query.
// StartDate/EndDate bound created_at when non-nil.
type GetBillsByCompanyParams struct {
	CompanyID primitive.ObjectID
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}
