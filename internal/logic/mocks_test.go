package logic

import (
	"context"
	"time"

	"github.com/programmerrush/api-bills/internal/dao/repository"
	"github.com/programmerrush/api-bills/internal/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mockBillRepository implements repository.BillRepository using testify/mock.
type mockBillRepository struct {
	mock.Mock
}

func newMockBillRepository() *mockBillRepository {
	return &mockBillRepository{}
}

func (m *mockBillRepository) CreateBill(ctx context.Context, bill *models.Bill) (primitive.ObjectID, error) {
	args := m.Called(ctx, bill)
	if oid := args.Get(0); oid != nil {
		return oid.(primitive.ObjectID), args.Error(1)
	}
	return primitive.NilObjectID, args.Error(1)
}

func (m *mockBillRepository) GetBillByID(ctx context.Context, companyID, billID primitive.ObjectID) (*models.Bill, error) {
	args := m.Called(ctx, companyID, billID)
	if bill := args.Get(0); bill != nil {
		return bill.(*models.Bill), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBillRepository) GetBillsByCompany(ctx context.Context, params *repository.GetBillsByCompanyParams) ([]*models.Bill, int64, error) {
	args := m.Called(ctx, params)
	if bills := args.Get(0); bills != nil {
		return bills.([]*models.Bill), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockBillRepository) FindByPeriod(ctx context.Context, companyID primitive.ObjectID, year, month int) (*models.Bill, error) {
	args := m.Called(ctx, companyID, year, month)
	if bill := args.Get(0); bill != nil {
		return bill.(*models.Bill), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBillRepository) UpdateBill(ctx context.Context, companyID, billID primitive.ObjectID, opts ...repository.UpdateOption) error {
	args := m.Called(ctx, companyID, billID, opts)
	return args.Error(0)
}

func (m *mockBillRepository) DeleteBill(ctx context.Context, companyID, billID primitive.ObjectID) (*models.Bill, error) {
	args := m.Called(ctx, companyID, billID)
	if bill := args.Get(0); bill != nil {
		return bill.(*models.Bill), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBillRepository) DistinctLineItemKeys(ctx context.Context, companyID primitive.ObjectID) ([]string, error) {
	args := m.Called(ctx, companyID)
	if keys := args.Get(0); keys != nil {
		return keys.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBillRepository) MarkOverdueBills(ctx context.Context, pendingBefore time.Time) (int64, error) {
	args := m.Called(ctx, pendingBefore)
	return args.Get(0).(int64), args.Error(1)
}

// mockCompanyRepository implements repository.CompanyRepository using testify/mock.
type mockCompanyRepository struct {
	mock.Mock
}

func newMockCompanyRepository() *mockCompanyRepository {
	return &mockCompanyRepository{}
}

func (m *mockCompanyRepository) CreateCompany(ctx context.Context, company *models.Company) (primitive.ObjectID, error) {
	args := m.Called(ctx, company)
	if oid := args.Get(0); oid != nil {
		return oid.(primitive.ObjectID), args.Error(1)
	}
	return primitive.NilObjectID, args.Error(1)
}

func (m *mockCompanyRepository) GetCompanyByID(ctx context.Context, id primitive.ObjectID) (*models.Company, error) {
	args := m.Called(ctx, id)
	if company := args.Get(0); company != nil {
		return company.(*models.Company), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCompanyRepository) GetCompanyByName(ctx context.Context, name string) (*models.Company, error) {
	args := m.Called(ctx, name)
	if company := args.Get(0); company != nil {
		return company.(*models.Company), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCompanyRepository) ListCompanies(ctx context.Context) ([]*models.Company, error) {
	args := m.Called(ctx)
	if companies := args.Get(0); companies != nil {
		return companies.([]*models.Company), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCompanyRepository) UpdateCompany(ctx context.Context, id primitive.ObjectID, opts ...repository.UpdateOption) error {
	args := m.Called(ctx, id, opts)
	return args.Error(0)
}

func (m *mockCompanyRepository) SoftDeleteCompany(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockAuditLogRepository implements repository.AuditLogRepository using testify/mock.
type mockAuditLogRepository struct {
	mock.Mock
}

func newMockAuditLogRepository() *mockAuditLogRepository {
	return &mockAuditLogRepository{}
}

func (m *mockAuditLogRepository) Create(ctx context.Context, log *models.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

// mockOutboxRepository implements repository.OutboxRepository using testify/mock.
type mockOutboxRepository struct {
	mock.Mock
}

func newMockOutboxRepository() *mockOutboxRepository {
	return &mockOutboxRepository{}
}

func (m *mockOutboxRepository) Create(ctx context.Context, message *models.OutboxMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *mockOutboxRepository) ClaimAndFetchEvents(ctx context.Context, limit int) ([]*models.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	if msgs := args.Get(0); msgs != nil {
		return msgs.([]*models.OutboxMessage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOutboxRepository) MarkAsProcessed(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockOutboxRepository) IncrementRetry(ctx context.Context, id primitive.ObjectID, errorMessage string) error {
	args := m.Called(ctx, id, errorMessage)
	return args.Error(0)
}
