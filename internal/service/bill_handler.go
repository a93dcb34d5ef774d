package service

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/programmerrush/api-bills/internal/constants"
	"github.com/programmerrush/api-bills/internal/dto"
	"github.com/programmerrush/api-bills/internal/logic"
	"github.com/programmerrush/api-bills/pkg/pagination"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// BillHandler serves the CRUD side of the bill API. Period resolution and
// the case views live in BillCaseHandler.
type BillHandler struct {
	billLogic *logic.BillLogic
	logger    *zap.Logger
}

func NewBillHandler(billLogic *logic.BillLogic, logger *zap.Logger) *BillHandler {
	return &BillHandler{
		billLogic: billLogic,
		logger:    logger.Named("BillHandler"),
	}
}

type createBillBody struct {
	JSONObj       bson.M   `json:"jsonObj"`
	PaymentStatus string   `json:"paymentStatus"`
	Amount        *float64 `json:"amount"`
	Meta          bson.M   `json:"meta"`
}

// CreateBill handles POST /api/v1/bill/{companyId}.
func (h *BillHandler) CreateBill(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathCompanyID(w, r)
	if !ok {
		return
	}

	var body createBillBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteHttpError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.PaymentStatus != "" && constants.ParsePaymentStatus(body.PaymentStatus) == constants.PaymentStatusUnknown {
		WriteHttpError(w, http.StatusBadRequest, "Invalid paymentStatus")
		return
	}

	d := dto.NewCreateBillRequest(companyID, body.JSONObj, body.PaymentStatus, body.Amount, body.Meta, UserFromContext(r.Context()))
	billID, err := h.billLogic.CreateBill(r.Context(), d)
	if err != nil {
		WriteLogicError(w, err)
		return
	}

	WriteHttpJSON(w, http.StatusCreated, map[string]interface{}{"billId": billID.Hex()})
}

// ListBills handles GET /api/v1/bill/{companyId}. Supports page/page_size
// pagination and an optional RFC 3339 start_date/end_date range on created_at.
func (h *BillHandler) ListBills(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathCompanyID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))
	pageReq := pagination.NewPageRequest(page, pageSize)

	var startDate, endDate *time.Time
	if s := q.Get("start_date"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			WriteHttpError(w, http.StatusBadRequest, "Invalid start_date, expected RFC 3339")
			return
		}
		startDate = &t
	}
	if s := q.Get("end_date"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			WriteHttpError(w, http.StatusBadRequest, "Invalid end_date, expected RFC 3339")
			return
		}
		endDate = &t
	}

	bills, total, err := h.billLogic.GetHistoricalBills(r.Context(), companyID, startDate, endDate, pageReq)
	if err != nil {
		WriteLogicError(w, err)
		return
	}

	WriteHttpJSON(w, http.StatusOK, pagination.NewPageResult(bills, total, pageReq))
}

// GetBill handles GET /api/v1/bill/{companyId}/{billId}.
func (h *BillHandler) GetBill(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathCompanyID(w, r)
	if !ok {
		return
	}
	billID, ok := pathBillID(w, r)
	if !ok {
		return
	}

	bill, err := h.billLogic.GetBill(r.Context(), companyID, billID)
	if err != nil {
		WriteLogicError(w, err)
		return
	}

	WriteHttpJSON(w, http.StatusOK, map[string]interface{}{"bill": bill})
}

type updateBillPaymentBody struct {
	PaymentStatus *string  `json:"paymentStatus"`
	Paid          *bool    `json:"paid"`
	PaymentDate   *string  `json:"paymentDate"`
	Amount        *float64 `json:"amount"`
	Meta          *bson.M  `json:"meta"`
}

// UpdateBillPayment handles PUT /api/v1/bill/{companyId}/{billId}/payment.
// Absent fields are left unchanged; paymentDate "" clears the date.
func (h *BillHandler) UpdateBillPayment(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathCompanyID(w, r)
	if !ok {
		return
	}
	billID, ok := pathBillID(w, r)
	if !ok {
		return
	}

	var body updateBillPaymentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteHttpError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	d := dto.NewUpdateBillPaymentRequest(companyID, billID, UserFromContext(r.Context()))
	if body.PaymentStatus != nil {
		if constants.ParsePaymentStatus(*body.PaymentStatus) == constants.PaymentStatusUnknown {
			WriteHttpError(w, http.StatusBadRequest, "Invalid paymentStatus")
			return
		}
		d.WithPaymentStatus(*body.PaymentStatus)
	}
	if body.Paid != nil {
		d.WithPaid(*body.Paid)
	}
	if body.PaymentDate != nil {
		if *body.PaymentDate == "" {
			d.WithPaymentDate(nil)
		} else {
			t, err := time.Parse(time.RFC3339, *body.PaymentDate)
			if err != nil {
				WriteHttpError(w, http.StatusBadRequest, "Invalid paymentDate, expected RFC 3339")
				return
			}
			d.WithPaymentDate(&t)
		}
	}
	if body.Amount != nil {
		d.WithAmount(body.Amount)
	}
	if body.Meta != nil {
		d.WithMeta(*body.Meta)
	}

	bill, err := h.billLogic.UpdateBillPayment(r.Context(), d)
	if err != nil {
		WriteLogicError(w, err)
		return
	}

	WriteHttpJSON(w, http.StatusOK, map[string]interface{}{"bill": bill})
}

// DeleteBill handles DELETE /api/v1/bill/{companyId}/{billId}.
func (h *BillHandler) DeleteBill(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathCompanyID(w, r)
	if !ok {
		return
	}
	billID, ok := pathBillID(w, r)
	if !ok {
		return
	}

	deletedID, err := h.billLogic.DeleteBill(r.Context(), companyID, billID, UserFromContext(r.Context()))
	if err != nil {
		WriteLogicError(w, err)
		return
	}

	WriteHttpJSON(w, http.StatusOK, map[string]interface{}{"billId": deletedID.Hex()})
}

// GetBillParams handles GET /api/v1/bill/{companyId}/params. It returns the
// distinct top-level jsonObj keys the company's bills have carried, so the
// frontend can build filter dropdowns without hardcoding the parser's schema.
func (h *BillHandler) GetBillParams(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathCompanyID(w, r)
	if !ok {
		return
	}

	params, err := h.billLogic.GetBillParams(r.Context(), companyID)
	if err != nil {
		WriteLogicError(w, err)
		return
	}

	WriteHttpJSON(w, http.StatusOK, map[string]interface{}{"params": params})
}

func pathBillID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	billID, err := primitive.ObjectIDFromHex(r.PathValue("billId"))
	if err != nil {
		WriteHttpError(w, http.StatusBadRequest, "Invalid billId format")
		return primitive.NilObjectID, false
	}
	return billID, true
}
