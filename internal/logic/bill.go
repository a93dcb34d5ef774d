package logic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/programmerrush/api-bills/internal/constants"
	"github.com/programmerrush/api-bills/internal/dao/mongodb"
	"github.com/programmerrush/api-bills/internal/dao/repository"
	"github.com/programmerrush/api-bills/internal/db"
	"github.com/programmerrush/api-bills/internal/dto"
	"github.com/programmerrush/api-bills/internal/models"
	"github.com/programmerrush/api-bills/pkg/pagination"
	"github.com/programmerrush/api-bills/pkg/snowflake"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type BillLogic struct {
	billRepo           repository.BillRepository
	companyRepo        repository.CompanyRepository
	auditLogRepo       repository.AuditLogRepository
	billEventPublisher *BillEventPublisher
	txManager          db.TransactionManager
	idGenerator        *snowflake.Generator
	logger             *zap.Logger
}

func NewBillLogic(billRepo repository.BillRepository, companyRepo repository.CompanyRepository, auditLogRepo repository.AuditLogRepository, billEventPublisher *BillEventPublisher, txManager db.TransactionManager, idGenerator *snowflake.Generator, logger *zap.Logger) *BillLogic {
	return &BillLogic{
		billRepo:           billRepo,
		companyRepo:        companyRepo,
		auditLogRepo:       auditLogRepo,
		billEventPublisher: billEventPublisher,
		txManager:          txManager,
		idGenerator:        idGenerator,
		logger:             logger.Named("BillLogic"),
	}
}

// CreateBill stores a new bill for the company. Ownership is mandatory: the
// company must exist and not be deleted, regardless of the creator's role.
func (l *BillLogic) CreateBill(ctx context.Context, d *dto.CreateBillRequest) (primitive.ObjectID, error) {
	if len(d.GetJSONObj()) == 0 {
		return primitive.NilObjectID, ErrJSONObjRequired
	}

	if _, err := l.companyRepo.GetCompanyByID(ctx, d.GetCompanyID()); err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return primitive.NilObjectID, ErrCompanyNotFound
		}
		return primitive.NilObjectID, fmt.Errorf("failed to get company for bill creation: %w", err)
	}

	serial, err := l.idGenerator.GetID()
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to generate bill serial: %w", err)
	}

	paymentStatus := d.GetPaymentStatus()
	if paymentStatus == "" {
		paymentStatus = constants.PaymentStatusPending.String()
	}

	now := time.Now()
	bill := &models.Bill{
		ID:            primitive.NewObjectID(),
		Company:       d.GetCompanyID(),
		Serial:        serial,
		JSONObj:       d.GetJSONObj(),
		PaymentStatus: paymentStatus,
		Paid:          false,
		Amount:        d.GetAmount(),
		Meta:          d.GetMeta(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// The bill and its outbox event commit in one transaction so the event
	// stream never diverges from the collection.
	res, err := l.txManager.WithTransaction(ctx, func(sessCtx context.Context) (interface{}, error) {
		billID, err := l.billRepo.CreateBill(sessCtx, bill)
		if err != nil {
			return nil, fmt.Errorf("failed to create bill in repository: %w", err)
		}
		if err := l.billEventPublisher.PublishBillEvent(sessCtx, constants.BillActionCreate, bill); err != nil {
			return nil, err
		}
		return billID, nil
	})
	if err != nil {
		return primitive.NilObjectID, err
	}

	if err := l.auditLogRepo.Create(ctx, buildCreateBillAuditLog(d.GetOperator(), bill)); err != nil {
		l.logger.Error("CreateBill: Failed to create audit log", zap.Error(err))
	}

	return res.(primitive.ObjectID), nil
}

// GetHistoricalBills returns the company's bills newest first, paginated,
// optionally bounded by a created_at range.
func (l *BillLogic) GetHistoricalBills(ctx context.Context, companyID primitive.ObjectID, startDate, endDate *time.Time, page *pagination.PageRequest) ([]*models.Bill, int64, error) {
	params := &repository.GetBillsByCompanyParams{
		CompanyID: companyID,
		StartDate: startDate,
		EndDate:   endDate,
		Limit:     page.GetLimit(),
		Offset:    page.GetOffset(),
	}
	return l.billRepo.GetBillsByCompany(ctx, params)
}

// GetBill fetches one bill scoped to the company.
func (l *BillLogic) GetBill(ctx context.Context, companyID, billID primitive.ObjectID) (*models.Bill, error) {
	bill, err := l.billRepo.GetBillByID(ctx, companyID, billID)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}
	return bill, nil
}

// ResolveOpenBill finds the bill for (company, year, month) across every
// historical period shape. Month is validated here, before any store access;
// year only has to be an integer.
func (l *BillLogic) ResolveOpenBill(ctx context.Context, companyID primitive.ObjectID, year, month int) (*models.Bill, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}
	bill, err := l.billRepo.FindByPeriod(ctx, companyID, year, month)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}
	return bill, nil
}

// GetCaseMetrics resolves the period bill and derives the requested case
// view. The case id is checked before the store is touched.
func (l *BillLogic) GetCaseMetrics(ctx context.Context, companyID primitive.ObjectID, year, month int, billCase constants.BillCase) (interface{}, error) {
	if !billCase.Valid() {
		return nil, ErrInvalidCase
	}
	bill, err := l.ResolveOpenBill(ctx, companyID, year, month)
	if err != nil {
		return nil, err
	}
	return ExtractCaseMetrics(bill, billCase)
}

// UpdateBillPayment applies a partial payment update and returns the updated
// bill.
func (l *BillLogic) UpdateBillPayment(ctx context.Context, d *dto.UpdateBillPaymentRequest) (*models.Bill, error) {
	before, err := l.billRepo.GetBillByID(ctx, d.GetCompanyID(), d.GetBillID())
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}

	if !d.HasChanges() {
		return before, nil
	}

	updateOptions := make([]repository.UpdateOption, 0, 5)
	if s := d.GetPaymentStatus(); s != nil {
		updateOptions = append(updateOptions, repository.WithPaymentStatus(*s))
	}
	if p := d.GetPaid(); p != nil {
		updateOptions = append(updateOptions, repository.WithPaid(*p))
	}
	if d.ClearPaymentDate() {
		updateOptions = append(updateOptions, repository.WithPaymentDate(nil))
	} else if t := d.GetPaymentDate(); t != nil {
		updateOptions = append(updateOptions, repository.WithPaymentDate(t))
	}
	if a := d.GetAmount(); a != nil {
		updateOptions = append(updateOptions, repository.WithAmount(a))
	}
	if d.SetMeta() {
		updateOptions = append(updateOptions, repository.WithMeta(d.GetMeta()))
	}

	res, err := l.txManager.WithTransaction(ctx, func(sessCtx context.Context) (interface{}, error) {
		if err := l.billRepo.UpdateBill(sessCtx, d.GetCompanyID(), d.GetBillID(), updateOptions...); err != nil {
			if errors.Is(err, mongodb.ErrNotFound) {
				return nil, ErrBillNotFound
			}
			return nil, fmt.Errorf("failed to update bill: %w", err)
		}
		after, err := l.billRepo.GetBillByID(sessCtx, d.GetCompanyID(), d.GetBillID())
		if err != nil {
			return nil, fmt.Errorf("failed to refetch bill: %w", err)
		}
		if err := l.billEventPublisher.PublishBillEvent(sessCtx, constants.BillActionPaymentUpdate, after); err != nil {
			return nil, err
		}
		return after, nil
	})
	if err != nil {
		return nil, err
	}
	after := res.(*models.Bill)

	if err := l.auditLogRepo.Create(ctx, buildUpdateBillPaymentAuditLog(d.GetOperator(), before, after)); err != nil {
		l.logger.Error("UpdateBillPayment: Failed to create audit log", zap.Error(err))
	}

	return after, nil
}

// DeleteBill removes a bill and returns its id.
func (l *BillLogic) DeleteBill(ctx context.Context, companyID, billID primitive.ObjectID, operator *models.User) (primitive.ObjectID, error) {
	res, err := l.txManager.WithTransaction(ctx, func(sessCtx context.Context) (interface{}, error) {
		deleted, err := l.billRepo.DeleteBill(sessCtx, companyID, billID)
		if err != nil {
			if errors.Is(err, mongodb.ErrNotFound) {
				return nil, ErrBillNotFound
			}
			return nil, fmt.Errorf("failed to delete bill: %w", err)
		}
		if err := l.billEventPublisher.PublishBillEvent(sessCtx, constants.BillActionDelete, deleted); err != nil {
			return nil, err
		}
		return deleted, nil
	})
	if err != nil {
		return primitive.NilObjectID, err
	}
	deleted := res.(*models.Bill)

	if err := l.auditLogRepo.Create(ctx, buildDeleteBillAuditLog(operator, deleted)); err != nil {
		l.logger.Error("DeleteBill: Failed to create audit log", zap.Error(err))
	}

	return deleted.ID, nil
}

// GetBillParams returns the distinct top-level jsonObj keys the company's
// bills have carried.
func (l *BillLogic) GetBillParams(ctx context.Context, companyID primitive.ObjectID) ([]string, error) {
	return l.billRepo.DistinctLineItemKeys(ctx, companyID)
}

// MarkOverdueBills flips pending bills older than the grace period to
// overdue. Run periodically by the overdue marker worker.
func (l *BillLogic) MarkOverdueBills(ctx context.Context, gracePeriod time.Duration) (int64, error) {
	cutoff := time.Now().Add(-gracePeriod)
	count, err := l.billRepo.MarkOverdueBills(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to mark overdue bills: %w", err)
	}
	if count > 0 {
		l.logger.Info("Marked bills as overdue", zap.Int64("count", count), zap.Time("cutoff", cutoff))
	}
	return count, nil
}
