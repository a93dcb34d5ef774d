package service

import (
	"net/http"
	"strconv"

	"github.com/programmerrush/api-bills/internal/constants"
	"github.com/programmerrush/api-bills/internal/logic"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// BillCaseHandler serves the derived-metrics endpoints: the raw period
// resolution, the single-month case view, and the yearly aggregation.
type BillCaseHandler struct {
	billLogic *logic.BillLogic
	logger    *zap.Logger
}

func NewBillCaseHandler(billLogic *logic.BillLogic, logger *zap.Logger) *BillCaseHandler {
	return &BillCaseHandler{
		billLogic: billLogic,
		logger:    logger.Named("BillCaseHandler"),
	}
}

// GetBillOpen handles GET /api/v1/bill/{companyId}/open/{year}/{month}.
func (h *BillCaseHandler) GetBillOpen(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathCompanyID(w, r)
	if !ok {
		return
	}
	year, month, ok := pathYearMonth(w, r)
	if !ok {
		return
	}

	bill, err := h.billLogic.ResolveOpenBill(r.Context(), companyID, year, month)
	if err != nil {
		WriteLogicError(w, err)
		return
	}

	WriteHttpJSON(w, http.StatusOK, map[string]interface{}{"bill": bill})
}

// GetBillCaseDetails handles
// GET /api/v1/bill/{companyId}/open/{year}/{month}/case/{caseId}.
func (h *BillCaseHandler) GetBillCaseDetails(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathCompanyID(w, r)
	if !ok {
		return
	}
	year, month, ok := pathYearMonth(w, r)
	if !ok {
		return
	}
	billCase, ok := pathCase(w, r)
	if !ok {
		return
	}

	data, err := h.billLogic.GetCaseMetrics(r.Context(), companyID, year, month, billCase)
	if err != nil {
		WriteLogicError(w, err)
		return
	}

	WriteHttpJSON(w, http.StatusOK, map[string]interface{}{
		"companyId": companyID.Hex(),
		"year":      year,
		"month":     month,
		"caseId":    int(billCase),
		"data":      data,
	})
}

// GetBillYearlyCase handles
// GET /api/v1/bill/{companyId}/open/{year}/case/{caseId}. Months without a
// bill are null-filled rows, so this endpoint never returns 404.
func (h *BillCaseHandler) GetBillYearlyCase(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathCompanyID(w, r)
	if !ok {
		return
	}
	year, ok := pathYear(w, r)
	if !ok {
		return
	}
	billCase, ok := pathCase(w, r)
	if !ok {
		return
	}

	data, err := h.billLogic.AggregateYear(r.Context(), companyID, year, billCase)
	if err != nil {
		WriteLogicError(w, err)
		return
	}

	WriteHttpJSON(w, http.StatusOK, map[string]interface{}{
		"companyId": companyID.Hex(),
		"year":      year,
		"caseId":    int(billCase),
		"data":      data,
	})
}

// --- path parameter helpers ---

func pathCompanyID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	companyID, err := primitive.ObjectIDFromHex(r.PathValue("companyId"))
	if err != nil {
		WriteHttpError(w, http.StatusBadRequest, "Invalid companyId format")
		return primitive.NilObjectID, false
	}
	return companyID, true
}

func pathYear(w http.ResponseWriter, r *http.Request) (int, bool) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		WriteHttpError(w, http.StatusBadRequest, "Invalid year")
		return 0, false
	}
	return year, true
}

func pathYearMonth(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	year, ok := pathYear(w, r)
	if !ok {
		return 0, 0, false
	}
	month, err := strconv.Atoi(r.PathValue("month"))
	if err != nil || month < 1 || month > 12 {
		WriteHttpError(w, http.StatusBadRequest, "Invalid month")
		return 0, 0, false
	}
	return year, month, true
}

func pathCase(w http.ResponseWriter, r *http.Request) (constants.BillCase, bool) {
	c, err := strconv.Atoi(r.PathValue("caseId"))
	if err != nil {
		WriteHttpError(w, http.StatusBadRequest, "Invalid caseId. Use 1-6.")
		return 0, false
	}
	billCase := constants.BillCase(c)
	if !billCase.Valid() {
		WriteHttpError(w, http.StatusBadRequest, "Invalid caseId. Use 1-6.")
		return 0, false
	}
	return billCase, true
}
