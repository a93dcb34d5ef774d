package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/programmerrush/api-bills/internal/dao/fields"
	"github.com/programmerrush/api-bills/internal/dao/repository"
	"github.com/programmerrush/api-bills/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func NewCompanyDAO(db *mongo.Database, logger *zap.Logger) *CompanyDAO {
	return &CompanyDAO{
		companiesCollection: db.Collection(CollectionCompanies),
		logger:              logger.Named("CompanyDAO"),
	}
}

type CompanyDAO struct {
	companiesCollection *mongo.Collection
	logger              *zap.Logger
}

func (d *CompanyDAO) CreateCompany(ctx context.Context, company *models.Company) (primitive.ObjectID, error) {
	res, err := d.companiesCollection.InsertOne(ctx, company)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrDuplicateName
		}
		d.logger.Error("CreateCompany: InsertOne failed", zap.Error(err), zap.String("name", company.Name))
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (d *CompanyDAO) GetCompanyByID(ctx context.Context, id primitive.ObjectID) (*models.Company, error) {
	var company models.Company
	filter := bson.M{fields.FieldObjectId: id, fields.FieldCompanyIsDeleted: bson.M{"$ne": true}}
	err := d.companiesCollection.FindOne(ctx, filter).Decode(&company)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		d.logger.Error("GetCompanyByID: FindOne failed", zap.Error(err), zap.Stringer("id", id))
		return nil, err
	}
	return &company, nil
}

func (d *CompanyDAO) GetCompanyByName(ctx context.Context, name string) (*models.Company, error) {
	var company models.Company
	err := d.companiesCollection.FindOne(ctx, bson.M{fields.FieldCompanyName: name}).Decode(&company)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		d.logger.Error("GetCompanyByName: FindOne failed", zap.Error(err), zap.String("name", name))
		return nil, err
	}
	return &company, nil
}

func (d *CompanyDAO) ListCompanies(ctx context.Context) ([]*models.Company, error) {
	filter := bson.M{fields.FieldCompanyIsDeleted: bson.M{"$ne": true}}
	cursor, err := d.companiesCollection.Find(ctx, filter)
	if err != nil {
		d.logger.Error("ListCompanies: Find failed", zap.Error(err))
		return nil, err
	}
	var companies []*models.Company
	if err := cursor.All(ctx, &companies); err != nil {
		d.logger.Error("ListCompanies: cursor.All failed", zap.Error(err))
		return nil, err
	}
	return companies, nil
}

func (d *CompanyDAO) UpdateCompany(ctx context.Context, id primitive.ObjectID, opts ...repository.UpdateOption) error {
	updateData := repository.NewUpdateOptions()
	for _, opt := range opts {
		opt(updateData)
	}

	update := bson.M{}
	if len(updateData.SetFields) > 0 {
		updateData.SetFields[fields.FieldUpdatedAt] = time.Now()
		update["$set"] = updateData.SetFields
	}
	if len(update) == 0 {
		return nil
	}

	res, err := d.companiesCollection.UpdateOne(ctx, bson.M{fields.FieldObjectId: id}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateName
		}
		d.logger.Error("UpdateCompany: UpdateOne failed", zap.Error(err), zap.Stringer("id", id))
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDeleteCompany flags the company deleted and inactive. Historical bills
// are kept; the company just stops resolving.
func (d *CompanyDAO) SoftDeleteCompany(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{
		fields.FieldCompanyIsDeleted: true,
		fields.FieldCompanyIsActive:  false,
		fields.FieldUpdatedAt:        time.Now(),
	}}
	res, err := d.companiesCollection.UpdateOne(ctx, bson.M{fields.FieldObjectId: id}, update)
	if err != nil {
		d.logger.Error("SoftDeleteCompany: UpdateOne failed", zap.Error(err), zap.Stringer("id", id))
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
