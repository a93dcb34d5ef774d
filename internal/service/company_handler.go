package service

import (
	"encoding/json"
	"net/http"

	"github.com/programmerrush/api-bills/internal/dao/fields"
	"github.com/programmerrush/api-bills/internal/dto"
	"github.com/programmerrush/api-bills/internal/logic"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CompanyHandler serves the tenant management API.
type CompanyHandler struct {
	companyLogic *logic.CompanyLogic
	logger       *zap.Logger
}

func NewCompanyHandler(companyLogic *logic.CompanyLogic, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{
		companyLogic: companyLogic,
		logger:       logger.Named("CompanyHandler"),
	}
}

type createCompanyBody struct {
	Name               string `json:"name"`
	Address            string `json:"address"`
	Email              string `json:"email"`
	ContactPersonName  string `json:"contact_person_name"`
	ContactPersonPhone string `json:"contact_person_phone"`
}

// CreateCompany handles POST /api/v1/company.
func (h *CompanyHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var body createCompanyBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteHttpError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Name == "" {
		WriteHttpError(w, http.StatusBadRequest, "Company name is required")
		return
	}
	if body.Email == "" {
		WriteHttpError(w, http.StatusBadRequest, "Company email is required")
		return
	}

	d := dto.NewCreateCompanyRequest(body.Name, body.Address, body.Email, body.ContactPersonName, body.ContactPersonPhone, UserFromContext(r.Context()))
	company, err := h.companyLogic.CreateCompany(r.Context(), d)
	if err != nil {
		WriteLogicError(w, err)
		return
	}

	WriteHttpJSON(w, http.StatusCreated, map[string]interface{}{"company": company})
}

// ListCompanies handles GET /api/v1/company.
func (h *CompanyHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companyLogic.ListCompanies(r.Context())
	if err != nil {
		WriteLogicError(w, err)
		return
	}

	WriteHttpJSON(w, http.StatusOK, map[string]interface{}{"companies": companies})
}

// GetCompany handles GET /api/v1/company/{companyId}.
func (h *CompanyHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathCompanyID(w, r)
	if !ok {
		return
	}
	h.getCompany(w, r, companyID)
}

// GetMyCompany handles GET /api/v1/company/my. The company comes from the
// caller's token claims.
func (h *CompanyHandler) GetMyCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := claimsCompanyID(w, r)
	if !ok {
		return
	}
	h.getCompany(w, r, companyID)
}

func (h *CompanyHandler) getCompany(w http.ResponseWriter, r *http.Request, companyID primitive.ObjectID) {
	company, err := h.companyLogic.GetCompany(r.Context(), companyID)
	if err != nil {
		WriteLogicError(w, err)
		return
	}
	WriteHttpJSON(w, http.StatusOK, map[string]interface{}{"company": company})
}

type updateCompanyBody struct {
	Name               *string `json:"name"`
	Address            *string `json:"address"`
	Email              *string `json:"email"`
	ContactPersonName  *string `json:"contact_person_name"`
	ContactPersonPhone *string `json:"contact_person_phone"`
	ElectricityRate    *string `json:"electricityRate"`
	BillingCycleDate   *string `json:"billingCycleDate"`
	ShiftAFrom         *string `json:"shiftAFrom"`
	ShiftATo           *string `json:"shiftATo"`
	ShiftBFrom         *string `json:"shiftBFrom"`
	ShiftBTo           *string `json:"shiftBTo"`
	ShiftCFrom         *string `json:"shiftCFrom"`
	ShiftCTo           *string `json:"shiftCTo"`
	IsActive           *bool   `json:"isActive"`
	IsPaymentDelay     *bool   `json:"isPaymentDelay"`
}

// UpdateCompany handles PUT /api/v1/company/{companyId}.
func (h *CompanyHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathCompanyID(w, r)
	if !ok {
		return
	}
	h.updateCompany(w, r, companyID)
}

// UpdateMyCompany handles PUT /api/v1/company/my.
func (h *CompanyHandler) UpdateMyCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := claimsCompanyID(w, r)
	if !ok {
		return
	}
	h.updateCompany(w, r, companyID)
}

func (h *CompanyHandler) updateCompany(w http.ResponseWriter, r *http.Request, companyID primitive.ObjectID) {
	var body updateCompanyBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteHttpError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	d := dto.NewUpdateCompanyRequest(companyID, UserFromContext(r.Context()))
	setString := func(field string, v *string) {
		if v != nil {
			d.Set(field, *v)
		}
	}
	setString(fields.FieldCompanyName, body.Name)
	setString("address", body.Address)
	setString(fields.FieldCompanyEmail, body.Email)
	setString("contact_person_name", body.ContactPersonName)
	setString("contact_person_phone", body.ContactPersonPhone)
	setString("electricityRate", body.ElectricityRate)
	setString("billingCycleDate", body.BillingCycleDate)
	setString("shiftAFrom", body.ShiftAFrom)
	setString("shiftATo", body.ShiftATo)
	setString("shiftBFrom", body.ShiftBFrom)
	setString("shiftBTo", body.ShiftBTo)
	setString("shiftCFrom", body.ShiftCFrom)
	setString("shiftCTo", body.ShiftCTo)
	if body.IsActive != nil {
		d.Set(fields.FieldCompanyIsActive, *body.IsActive)
	}
	if body.IsPaymentDelay != nil {
		d.Set(fields.FieldCompanyIsPaymentDelay, *body.IsPaymentDelay)
	}

	company, err := h.companyLogic.UpdateCompany(r.Context(), d)
	if err != nil {
		WriteLogicError(w, err)
		return
	}

	WriteHttpJSON(w, http.StatusOK, map[string]interface{}{"company": company})
}

// DeleteCompany handles DELETE /api/v1/company/{companyId}. Companies are
// soft deleted; their bills are kept.
func (h *CompanyHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathCompanyID(w, r)
	if !ok {
		return
	}

	if err := h.companyLogic.DeleteCompany(r.Context(), companyID, UserFromContext(r.Context())); err != nil {
		WriteLogicError(w, err)
		return
	}

	WriteHttpJSON(w, http.StatusOK, map[string]interface{}{"companyId": companyID.Hex()})
}

func claimsCompanyID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	user := UserFromContext(r.Context())
	if user == nil || user.Company.IsZero() {
		WriteHttpError(w, http.StatusForbidden, "No company bound to this account")
		return primitive.NilObjectID, false
	}
	return user.Company, true
}
