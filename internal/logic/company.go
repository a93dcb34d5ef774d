package logic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/programmerrush/api-bills/internal/dao/mongodb"
	"github.com/programmerrush/api-bills/internal/dao/repository"
	"github.com/programmerrush/api-bills/internal/dto"
	"github.com/programmerrush/api-bills/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type CompanyLogic struct {
	companyRepo  repository.CompanyRepository
	auditLogRepo repository.AuditLogRepository
	logger       *zap.Logger
}

func NewCompanyLogic(companyRepo repository.CompanyRepository, auditLogRepo repository.AuditLogRepository, logger *zap.Logger) *CompanyLogic {
	return &CompanyLogic{
		companyRepo:  companyRepo,
		auditLogRepo: auditLogRepo,
		logger:       logger.Named("CompanyLogic"),
	}
}

// CreateCompany registers a new tenant. Names are unique; the pre-check gives
// a friendly error, the unique index backs it up under races.
func (l *CompanyLogic) CreateCompany(ctx context.Context, d *dto.CreateCompanyRequest) (*models.Company, error) {
	_, err := l.companyRepo.GetCompanyByName(ctx, d.GetName())
	if err == nil {
		return nil, ErrCompanyNameTaken
	}
	if !errors.Is(err, mongodb.ErrNotFound) {
		return nil, fmt.Errorf("failed to check company name: %w", err)
	}

	now := time.Now()
	company := &models.Company{
		ID:                 primitive.NewObjectID(),
		Name:               d.GetName(),
		Address:            d.GetAddress(),
		Email:              d.GetEmail(),
		ContactPersonName:  d.GetContactName(),
		ContactPersonPhone: d.GetContactPhone(),
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if _, err := l.companyRepo.CreateCompany(ctx, company); err != nil {
		if errors.Is(err, mongodb.ErrDuplicateName) {
			return nil, ErrCompanyNameTaken
		}
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	if err := l.auditLogRepo.Create(ctx, buildCreateCompanyAuditLog(d.GetOperator(), company)); err != nil {
		l.logger.Error("CreateCompany: Failed to create audit log", zap.Error(err))
	}

	return company, nil
}

func (l *CompanyLogic) ListCompanies(ctx context.Context) ([]*models.Company, error) {
	return l.companyRepo.ListCompanies(ctx)
}

func (l *CompanyLogic) GetCompany(ctx context.Context, id primitive.ObjectID) (*models.Company, error) {
	company, err := l.companyRepo.GetCompanyByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return company, nil
}

// UpdateCompany applies the provided field updates and returns the updated
// company.
func (l *CompanyLogic) UpdateCompany(ctx context.Context, d *dto.UpdateCompanyRequest) (*models.Company, error) {
	before, err := l.companyRepo.GetCompanyByID(ctx, d.GetCompanyID())
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	if !d.HasChanges() {
		return before, nil
	}

	updateOptions := make([]repository.UpdateOption, 0, len(d.GetUpdates()))
	for field, value := range d.GetUpdates() {
		updateOptions = append(updateOptions, repository.WithField(field, value))
	}

	if err := l.companyRepo.UpdateCompany(ctx, d.GetCompanyID(), updateOptions...); err != nil {
		switch {
		case errors.Is(err, mongodb.ErrNotFound):
			return nil, ErrCompanyNotFound
		case errors.Is(err, mongodb.ErrDuplicateName):
			return nil, ErrCompanyNameTaken
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	after, err := l.companyRepo.GetCompanyByID(ctx, d.GetCompanyID())
	if err != nil {
		return nil, fmt.Errorf("failed to refetch company: %w", err)
	}

	if err := l.auditLogRepo.Create(ctx, buildUpdateCompanyAuditLog(d.GetOperator(), before, after)); err != nil {
		l.logger.Error("UpdateCompany: Failed to create audit log", zap.Error(err))
	}

	return after, nil
}

// DeleteCompany soft-deletes a tenant. Its bills are retained.
func (l *CompanyLogic) DeleteCompany(ctx context.Context, id primitive.ObjectID, operator *models.User) error {
	before, err := l.companyRepo.GetCompanyByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return ErrCompanyNotFound
		}
		return fmt.Errorf("failed to get company: %w", err)
	}

	if err := l.companyRepo.SoftDeleteCompany(ctx, id); err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return ErrCompanyNotFound
		}
		return fmt.Errorf("failed to delete company: %w", err)
	}

	if err := l.auditLogRepo.Create(ctx, buildDeleteCompanyAuditLog(operator, before)); err != nil {
		l.logger.Error("DeleteCompany: Failed to create audit log", zap.Error(err))
	}

	return nil
}
