package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/programmerrush/api-bills/internal/constants"
	"github.com/programmerrush/api-bills/internal/dao/fields"
	"github.com/programmerrush/api-bills/internal/dao/repository"
	"github.com/programmerrush/api-bills/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func NewBillDAO(db *mongo.Database, logger *zap.Logger) *BillDAO {
	return &BillDAO{
		billsCollection: db.Collection(CollectionBills),
		logger:          logger.Named("BillDAO"),
	}
}

type BillDAO struct {
	billsCollection *mongo.Collection
	logger          *zap.Logger
}

func (d *BillDAO) CreateBill(ctx context.Context, bill *models.Bill) (primitive.ObjectID, error) {
	res, err := d.billsCollection.InsertOne(ctx, bill)
	if err != nil {
		d.logger.Error("CreateBill: InsertOne failed", zap.Error(err), zap.Stringer("company", bill.Company))
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// GetBillByID retrieves a single bill scoped to its owning company. A bill id
// belonging to another company is indistinguishable from a missing bill.
func (d *BillDAO) GetBillByID(ctx context.Context, companyID, billID primitive.ObjectID) (*models.Bill, error) {
	var bill models.Bill
	filter := bson.M{fields.FieldObjectId: billID, fields.FieldBillCompany: companyID}
	err := d.billsCollection.FindOne(ctx, filter).Decode(&bill)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		d.logger.Error("GetBillByID: FindOne failed", zap.Error(err), zap.Stringer("billID", billID))
		return nil, err
	}
	return &bill, nil
}

// GetBillsByCompany returns the company's bills newest first, with an
// optional created_at range, plus the total count for pagination.
func (d *BillDAO) GetBillsByCompany(ctx context.Context, params *repository.GetBillsByCompanyParams) ([]*models.Bill, int64, error) {
	filter := bson.M{fields.FieldBillCompany: params.CompanyID}
	if params.StartDate != nil || params.EndDate != nil {
		createdAt := bson.M{}
		if params.StartDate != nil {
			createdAt["$gte"] = *params.StartDate
		}
		if params.EndDate != nil {
			createdAt["$lte"] = *params.EndDate
		}
		filter[fields.FieldCreatedAt] = createdAt
	}

	total, err := d.billsCollection.CountDocuments(ctx, filter)
	if err != nil {
		d.logger.Error("GetBillsByCompany: CountDocuments failed", zap.Error(err), zap.Stringer("companyID", params.CompanyID))
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: fields.FieldCreatedAt, Value: -1}}).
		SetSkip(int64(params.Offset)).
		SetLimit(int64(params.Limit))

	cursor, err := d.billsCollection.Find(ctx, filter, findOptions)
	if err != nil {
		d.logger.Error("GetBillsByCompany: Find failed", zap.Error(err), zap.Stringer("companyID", params.CompanyID))
		return nil, 0, err
	}
	var bills []*models.Bill
	if err := cursor.All(ctx, &bills); err != nil {
		d.logger.Error("GetBillsByCompany: cursor.All failed", zap.Error(err), zap.Stringer("companyID", params.CompanyID))
		return nil, 0, err
	}
	return bills, total, nil
}

// periodClauses enumerates every billing-period shape the parser has ever
// produced. They are OR'd together; the created_at range is the last resort
// and matches bills merely entered in that month, which is accepted.
func periodClauses(year, month int) bson.A {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	return bson.A{
		bson.M{fields.PeriodJSONYear: year, fields.PeriodJSONMonth: month},
		bson.M{fields.PeriodBillingPeriodYear: year, fields.PeriodBillingPeriodMonth: month},
		bson.M{fields.PeriodBillingPeriodSnakeYear: year, fields.PeriodBillingPeriodSnakeMonth: month},
		bson.M{fields.PeriodBillYear: year, fields.PeriodBillMonth: month},
		bson.M{fields.PeriodFieldsBillYear: year, fields.PeriodFieldsBillMonth: month},
		bson.M{fields.PeriodFieldsYear: year, fields.PeriodFieldsMonth: month},
		bson.M{fields.PeriodBillingYear: year, fields.PeriodBillingMonth: month},
		bson.M{fields.PeriodPeriodYear: year, fields.PeriodPeriodMonth: month},
		bson.M{fields.PeriodMetaYear: year, fields.PeriodMetaMonth: month},
		bson.M{fields.PeriodMetaBillYear: year, fields.PeriodMetaBillMonth: month},
		bson.M{fields.FieldCreatedAt: bson.M{"$gte": start, "$lt": end}},
	}
}

// FindByPeriod resolves the bill for (company, year, month). Nothing enforces
// one bill per period; when several match, the newest created_at wins so the
// choice is deterministic for a given collection state. Callers validate
// month before calling.
func (d *BillDAO) FindByPeriod(ctx context.Context, companyID primitive.ObjectID, year, month int) (*models.Bill, error) {
	filter := bson.M{
		fields.FieldBillCompany: companyID,
		"$or":                   periodClauses(year, month),
	}

	findOptions := options.FindOne().SetSort(bson.D{{Key: fields.FieldCreatedAt, Value: -1}})

	var bill models.Bill
	err := d.billsCollection.FindOne(ctx, filter, findOptions).Decode(&bill)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		d.logger.Error("FindByPeriod: FindOne failed", zap.Error(err),
			zap.Stringer("companyID", companyID), zap.Int("year", year), zap.Int("month", month))
		return nil, err
	}
	return &bill, nil
}

// UpdateBill updates a single bill using functional options.
func (d *BillDAO) UpdateBill(ctx context.Context, companyID, billID primitive.ObjectID, opts ...repository.UpdateOption) error {
	updateData := repository.NewUpdateOptions()
	for _, opt := range opts {
		opt(updateData)
	}

	update := bson.M{}
	if len(updateData.SetFields) > 0 {
		updateData.SetFields[fields.FieldUpdatedAt] = time.Now()
		update["$set"] = updateData.SetFields
	}
	if len(updateData.IncFields) > 0 {
		update["$inc"] = updateData.IncFields
	}
	if len(update) == 0 {
		return nil
	}

	filter := bson.M{fields.FieldObjectId: billID, fields.FieldBillCompany: companyID}
	res, err := d.billsCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		d.logger.Error("UpdateBill: UpdateOne failed", zap.Error(err), zap.Stringer("billID", billID))
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBill removes a bill and returns the deleted document.
func (d *BillDAO) DeleteBill(ctx context.Context, companyID, billID primitive.ObjectID) (*models.Bill, error) {
	filter := bson.M{fields.FieldObjectId: billID, fields.FieldBillCompany: companyID}

	var bill models.Bill
	err := d.billsCollection.FindOneAndDelete(ctx, filter).Decode(&bill)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		d.logger.Error("DeleteBill: FindOneAndDelete failed", zap.Error(err), zap.Stringer("billID", billID))
		return nil, err
	}
	return &bill, nil
}

// DistinctLineItemKeys returns the distinct top-level jsonObj keys used
// across all of the company's historical bills.
func (d *BillDAO) DistinctLineItemKeys(ctx context.Context, companyID primitive.ObjectID) ([]string, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{fields.FieldBillCompany: companyID}}},
		{{Key: "$project", Value: bson.M{"kv": bson.M{"$objectToArray": "$" + fields.FieldBillJSONObj}}}},
		{{Key: "$unwind", Value: "$kv"}},
		{{Key: "$group", Value: bson.M{"_id": nil, "keys": bson.M{"$addToSet": "$kv.k"}}}},
		{{Key: "$project", Value: bson.M{"_id": 0, "keys": 1}}},
	}

	cursor, err := d.billsCollection.Aggregate(ctx, pipeline)
	if err != nil {
		d.logger.Error("DistinctLineItemKeys: Aggregate failed", zap.Error(err), zap.Stringer("companyID", companyID))
		return nil, err
	}

	var results []struct {
		Keys []string `bson:"keys"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		d.logger.Error("DistinctLineItemKeys: cursor.All failed", zap.Error(err), zap.Stringer("companyID", companyID))
		return nil, err
	}
	if len(results) == 0 {
		return []string{}, nil
	}
	return results[0].Keys, nil
}

// MarkOverdueBills flips every pending bill created before the cutoff to
// overdue and returns how many were updated.
func (d *BillDAO) MarkOverdueBills(ctx context.Context, pendingBefore time.Time) (int64, error) {
	filter := bson.M{
		fields.FieldBillPaymentStatus: constants.PaymentStatusPending.String(),
		fields.FieldCreatedAt:         bson.M{"$lt": pendingBefore},
	}
	update := bson.M{"$set": bson.M{
		fields.FieldBillPaymentStatus: constants.PaymentStatusOverdue.String(),
		fields.FieldUpdatedAt:         time.Now(),
	}}

	res, err := d.billsCollection.UpdateMany(ctx, filter, update)
	if err != nil {
		d.logger.Error("MarkOverdueBills: UpdateMany failed", zap.Error(err))
		return 0, err
	}
	return res.ModifiedCount, nil
}
