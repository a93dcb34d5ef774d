package repository

import (
	"context"
	"time"

	"github.com/programmerrush/api-bills/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BillRepository interface {
	CreateBill(ctx context.Context, bill *models.Bill) (primitive.ObjectID, error)
	GetBillByID(ctx context.Context, companyID, billID primitive.ObjectID) (*models.Bill, error)
	GetBillsByCompany(ctx context.Context, params *GetBillsByCompanyParams) ([]*models.Bill, int64, error)
	FindByPeriod(ctx context.Context, companyID primitive.ObjectID, year, month int) (*models.Bill, error)
	UpdateBill(ctx context.Context, companyID, billID primitive.ObjectID, opts ...UpdateOption) error
	DeleteBill(ctx context.Context, companyID, billID primitive.ObjectID) (*models.Bill, error)
	DistinctLineItemKeys(ctx context.Context, companyID primitive.ObjectID) ([]string, error)
	MarkOverdueBills(ctx context.Context, pendingBefore time.Time) (int64, error)
}

type CompanyRepository interface {
	CreateCompany(ctx context.Context, company *models.Company) (primitive.ObjectID, error)
	GetCompanyByID(ctx context.Context, id primitive.ObjectID) (*models.Company, error)
	GetCompanyByName(ctx context.Context, name string) (*models.Company, error)
	ListCompanies(ctx context.Context) ([]*models.Company, error)
	UpdateCompany(ctx context.Context, id primitive.ObjectID, opts ...UpdateOption) error
	SoftDeleteCompany(ctx context.Context, id primitive.ObjectID) error
}

type AuditLogRepository interface {
	Create(ctx context.Context, log *models.AuditLog) error
}

type OutboxRepository interface {
	Create(ctx context.Context, message *models.OutboxMessage) error
	ClaimAndFetchEvents(ctx context.Context, limit int) ([]*models.OutboxMessage, error)
	MarkAsProcessed(ctx context.Context, id primitive.ObjectID) error
	IncrementRetry(ctx context.Context, id primitive.ObjectID, errorMessage string) error
}
