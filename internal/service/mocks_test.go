package service

import (
	"context"
	"testing"
	"time"

	"github.com/programmerrush/api-bills/internal/dao/repository"
	"github.com/programmerrush/api-bills/internal/db"
	"github.com/programmerrush/api-bills/internal/logic"
	"github.com/programmerrush/api-bills/internal/models"
	"github.com/programmerrush/api-bills/pkg/snowflake"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// MockBillRepository is a mock for repository.BillRepository.
type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) CreateBill(ctx context.Context, bill *models.Bill) (primitive.ObjectID, error) {
	args := m.Called(ctx, bill)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockBillRepository) GetBillByID(ctx context.Context, companyID, billID primitive.ObjectID) (*models.Bill, error) {
	args := m.Called(ctx, companyID, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bill), args.Error(1)
}

func (m *MockBillRepository) GetBillsByCompany(ctx context.Context, params *repository.GetBillsByCompanyParams) ([]*models.Bill, int64, error) {
	args := m.Called(ctx, params)
	var bills []*models.Bill
	if args.Get(0) != nil {
		bills = args.Get(0).([]*models.Bill)
	}
	return bills, args.Get(1).(int64), args.Error(2)
}

func (m *MockBillRepository) FindByPeriod(ctx context.Context, companyID primitive.ObjectID, year, month int) (*models.Bill, error) {
	args := m.Called(ctx, companyID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bill), args.Error(1)
}

func (m *MockBillRepository) UpdateBill(ctx context.Context, companyID, billID primitive.ObjectID, opts ...repository.UpdateOption) error {
	args := m.Called(ctx, companyID, billID, opts)
	return args.Error(0)
}

func (m *MockBillRepository) DeleteBill(ctx context.Context, companyID, billID primitive.ObjectID) (*models.Bill, error) {
	args := m.Called(ctx, companyID, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bill), args.Error(1)
}

func (m *MockBillRepository) DistinctLineItemKeys(ctx context.Context, companyID primitive.ObjectID) ([]string, error) {
	args := m.Called(ctx, companyID)
	var keys []string
	if args.Get(0) != nil {
		keys = args.Get(0).([]string)
	}
	return keys, args.Error(1)
}

func (m *MockBillRepository) MarkOverdueBills(ctx context.Context, pendingBefore time.Time) (int64, error) {
	args := m.Called(ctx, pendingBefore)
	return args.Get(0).(int64), args.Error(1)
}

// MockCompanyRepository is a mock for repository.CompanyRepository.
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) CreateCompany(ctx context.Context, company *models.Company) (primitive.ObjectID, error) {
	args := m.Called(ctx, company)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockCompanyRepository) GetCompanyByID(ctx context.Context, id primitive.ObjectID) (*models.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyRepository) GetCompanyByName(ctx context.Context, name string) (*models.Company, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListCompanies(ctx context.Context) ([]*models.Company, error) {
	args := m.Called(ctx)
	var companies []*models.Company
	if args.Get(0) != nil {
		companies = args.Get(0).([]*models.Company)
	}
	return companies, args.Error(1)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, id primitive.ObjectID, opts ...repository.UpdateOption) error {
	args := m.Called(ctx, id, opts)
	return args.Error(0)
}

func (m *MockCompanyRepository) SoftDeleteCompany(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAuditLogRepository is a mock for repository.AuditLogRepository.
type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Create(ctx context.Context, log *models.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

// MockOutboxRepository is a mock for repository.OutboxRepository.
type MockOutboxRepository struct {
	mock.Mock
}

func (m *MockOutboxRepository) Create(ctx context.Context, message *models.OutboxMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockOutboxRepository) ClaimAndFetchEvents(ctx context.Context, limit int) ([]*models.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	var msgs []*models.OutboxMessage
	if args.Get(0) != nil {
		msgs = args.Get(0).([]*models.OutboxMessage)
	}
	return msgs, args.Error(1)
}

func (m *MockOutboxRepository) MarkAsProcessed(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOutboxRepository) IncrementRetry(ctx context.Context, id primitive.ObjectID, errorMessage string) error {
	args := m.Called(ctx, id, errorMessage)
	return args.Error(0)
}

type handlerMocks struct {
	billRepo     *MockBillRepository
	companyRepo  *MockCompanyRepository
	auditLogRepo *MockAuditLogRepository
	outboxRepo   *MockOutboxRepository
}

// newTestBillLogic wires a real BillLogic onto mocked repositories so handler
// tests exercise the full request path below the router.
func newTestBillLogic(t *testing.T) (*logic.BillLogic, *handlerMocks) {
	t.Helper()

	m := &handlerMocks{
		billRepo:     new(MockBillRepository),
		companyRepo:  new(MockCompanyRepository),
		auditLogRepo: new(MockAuditLogRepository),
		outboxRepo:   new(MockOutboxRepository),
	}

	idGen, err := snowflake.NewGenerator(1)
	require.NoError(t, err)

	l := logic.NewBillLogic(
		m.billRepo,
		m.companyRepo,
		m.auditLogRepo,
		logic.NewBillEventPublisher(m.outboxRepo, logic.BillEventTopic("bill.events")),
		db.NewNoOpTransactionManager(),
		idGen,
		zap.NewNop(),
	)
	return l, m
}

func newTestCompanyLogic(t *testing.T) (*logic.CompanyLogic, *handlerMocks) {
	t.Helper()

	m := &handlerMocks{
		companyRepo:  new(MockCompanyRepository),
		auditLogRepo: new(MockAuditLogRepository),
	}
	return logic.NewCompanyLogic(m.companyRepo, m.auditLogRepo, zap.NewNop()), m
}
