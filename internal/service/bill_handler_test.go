package service

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/programmerrush/api-bills/internal/constants"
	"github.com/programmerrush/api-bills/internal/dao/mongodb"
	"github.com/programmerrush/api-bills/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newBillRequest(t *testing.T, method, body string, pathValues map[string]string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}
	operator := &models.User{
		UserID: primitive.NewObjectID(),
		Name:   "Asha",
		Email:  "asha@example.com",
		Role:   constants.RoleAccounts,
	}
	return req.WithContext(ContextWithUser(req.Context(), operator))
}

func TestBillHandler_CreateBill(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Success", func(t *testing.T) {
		billLogic, m := newTestBillLogic(t)
		h := NewBillHandler(billLogic, logger)

		companyID := primitive.NewObjectID()
		m.companyRepo.On("GetCompanyByID", mock.Anything, companyID).
			Return(&models.Company{ID: companyID, Name: "Phoenix Textiles"}, nil).Once()
		m.billRepo.On("CreateBill", mock.Anything, mock.AnythingOfType("*models.Bill")).
			Return(primitive.NewObjectID(), nil).Once()
		m.outboxRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.OutboxMessage")).Return(nil).Once()
		m.auditLogRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.AuditLog")).Return(nil).Once()

		body := `{"jsonObj": {"fields": {"billed_pf": 0.98}}, "paymentStatus": "pending"}`
		req := newBillRequest(t, http.MethodPost, body, map[string]string{"companyId": companyID.Hex()})
		rec := httptest.NewRecorder()
		h.CreateBill(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeBody(t, rec)
		billID, ok := resp["billId"].(string)
		require.True(t, ok)
		_, err := primitive.ObjectIDFromHex(billID)
		assert.NoError(t, err)
		m.billRepo.AssertExpectations(t)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		billLogic, m := newTestBillLogic(t)
		h := NewBillHandler(billLogic, logger)

		req := newBillRequest(t, http.MethodPost, "{not json", map[string]string{"companyId": primitive.NewObjectID().Hex()})
		rec := httptest.NewRecorder()
		h.CreateBill(rec, req)

		requireErrorEnvelope(t, rec, http.StatusBadRequest, "Invalid request body")
		m.billRepo.AssertNotCalled(t, "CreateBill", mock.Anything, mock.Anything)
	})

	t.Run("InvalidPaymentStatus", func(t *testing.T) {
		billLogic, m := newTestBillLogic(t)
		h := NewBillHandler(billLogic, logger)

		body := `{"jsonObj": {"fields": {}}, "paymentStatus": "settled"}`
		req := newBillRequest(t, http.MethodPost, body, map[string]string{"companyId": primitive.NewObjectID().Hex()})
		rec := httptest.NewRecorder()
		h.CreateBill(rec, req)

		requireErrorEnvelope(t, rec, http.StatusBadRequest, "Invalid paymentStatus")
		m.billRepo.AssertNotCalled(t, "CreateBill", mock.Anything, mock.Anything)
	})

	t.Run("MissingJSONObj", func(t *testing.T) {
		billLogic, _ := newTestBillLogic(t)
		h := NewBillHandler(billLogic, logger)

		req := newBillRequest(t, http.MethodPost, `{}`, map[string]string{"companyId": primitive.NewObjectID().Hex()})
		rec := httptest.NewRecorder()
		h.CreateBill(rec, req)

		requireErrorEnvelope(t, rec, http.StatusBadRequest, "jsonObj is required")
	})

	t.Run("CompanyNotFound", func(t *testing.T) {
		billLogic, m := newTestBillLogic(t)
		h := NewBillHandler(billLogic, logger)

		companyID := primitive.NewObjectID()
		m.companyRepo.On("GetCompanyByID", mock.Anything, companyID).Return(nil, mongodb.ErrNotFound).Once()

		body := `{"jsonObj": {"fields": {}}}`
		req := newBillRequest(t, http.MethodPost, body, map[string]string{"companyId": companyID.Hex()})
		rec := httptest.NewRecorder()
		h.CreateBill(rec, req)

		requireErrorEnvelope(t, rec, http.StatusNotFound, "company not found")
	})
}

func TestBillHandler_ListBills(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Success", func(t *testing.T) {
		billLogic, m := newTestBillLogic(t)
		h := NewBillHandler(billLogic, logger)

		companyID := primitive.NewObjectID()
		bills := []*models.Bill{{ID: primitive.NewObjectID(), Company: companyID}}
		m.billRepo.On("GetBillsByCompany", mock.Anything, mock.Anything).Return(bills, int64(1), nil).Once()

		req := newBillRequest(t, http.MethodGet, "", map[string]string{"companyId": companyID.Hex()})
		rec := httptest.NewRecorder()
		h.ListBills(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, float64(1), body["total"])
	})

	t.Run("InvalidStartDate", func(t *testing.T) {
		billLogic, m := newTestBillLogic(t)
		h := NewBillHandler(billLogic, logger)

		req := newBillRequest(t, http.MethodGet, "", map[string]string{"companyId": primitive.NewObjectID().Hex()})
		req.URL.RawQuery = "start_date=31-01-2024"
		rec := httptest.NewRecorder()
		h.ListBills(rec, req)

		requireErrorEnvelope(t, rec, http.StatusBadRequest, "Invalid start_date, expected RFC 3339")
		m.billRepo.AssertNotCalled(t, "GetBillsByCompany", mock.Anything, mock.Anything)
	})
}

func TestBillHandler_GetBill(t *testing.T) {
	logger := zap.NewNop()

	t.Run("NotFound", func(t *testing.T) {
		billLogic, m := newTestBillLogic(t)
		h := NewBillHandler(billLogic, logger)

		companyID := primitive.NewObjectID()
		billID := primitive.NewObjectID()
		m.billRepo.On("GetBillByID", mock.Anything, companyID, billID).Return(nil, mongodb.ErrNotFound).Once()

		req := newBillRequest(t, http.MethodGet, "", map[string]string{
			"companyId": companyID.Hex(), "billId": billID.Hex(),
		})
		rec := httptest.NewRecorder()
		h.GetBill(rec, req)

		requireErrorEnvelope(t, rec, http.StatusNotFound, "bill not found for the specified period")
	})

	t.Run("InvalidBillID", func(t *testing.T) {
		billLogic, _ := newTestBillLogic(t)
		h := NewBillHandler(billLogic, logger)

		req := newBillRequest(t, http.MethodGet, "", map[string]string{
			"companyId": primitive.NewObjectID().Hex(), "billId": "nope",
		})
		rec := httptest.NewRecorder()
		h.GetBill(rec, req)

		requireErrorEnvelope(t, rec, http.StatusBadRequest, "Invalid billId format")
	})
}

func TestBillHandler_UpdateBillPayment(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Success", func(t *testing.T) {
		billLogic, m := newTestBillLogic(t)
		h := NewBillHandler(billLogic, logger)

		companyID := primitive.NewObjectID()
		billID := primitive.NewObjectID()
		before := &models.Bill{ID: billID, Company: companyID, PaymentStatus: "pending"}
		after := &models.Bill{ID: billID, Company: companyID, PaymentStatus: "paid", Paid: true}

		m.billRepo.On("GetBillByID", mock.Anything, companyID, billID).Return(before, nil).Once()
		m.billRepo.On("UpdateBill", mock.Anything, companyID, billID, mock.Anything).Return(nil).Once()
		m.billRepo.On("GetBillByID", mock.Anything, companyID, billID).Return(after, nil).Once()
		m.outboxRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.OutboxMessage")).Return(nil).Once()
		m.auditLogRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.AuditLog")).Return(nil).Once()

		body := `{"paymentStatus": "paid", "paid": true}`
		req := newBillRequest(t, http.MethodPut, body, map[string]string{
			"companyId": companyID.Hex(), "billId": billID.Hex(),
		})
		rec := httptest.NewRecorder()
		h.UpdateBillPayment(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeBody(t, rec)
		got, ok := resp["bill"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "paid", got["paymentStatus"])
		m.billRepo.AssertExpectations(t)
	})

	t.Run("InvalidPaymentDate", func(t *testing.T) {
		billLogic, m := newTestBillLogic(t)
		h := NewBillHandler(billLogic, logger)

		body := `{"paymentDate": "yesterday"}`
		req := newBillRequest(t, http.MethodPut, body, map[string]string{
			"companyId": primitive.NewObjectID().Hex(), "billId": primitive.NewObjectID().Hex(),
		})
		rec := httptest.NewRecorder()
		h.UpdateBillPayment(rec, req)

		requireErrorEnvelope(t, rec, http.StatusBadRequest, "Invalid paymentDate, expected RFC 3339")
		m.billRepo.AssertNotCalled(t, "UpdateBill", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("InvalidPaymentStatus", func(t *testing.T) {
		billLogic, _ := newTestBillLogic(t)
		h := NewBillHandler(billLogic, logger)

		body := `{"paymentStatus": "settled"}`
		req := newBillRequest(t, http.MethodPut, body, map[string]string{
			"companyId": primitive.NewObjectID().Hex(), "billId": primitive.NewObjectID().Hex(),
		})
		rec := httptest.NewRecorder()
		h.UpdateBillPayment(rec, req)

		requireErrorEnvelope(t, rec, http.StatusBadRequest, "Invalid paymentStatus")
	})
}

func TestBillHandler_DeleteBill(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Success", func(t *testing.T) {
		billLogic, m := newTestBillLogic(t)
		h := NewBillHandler(billLogic, logger)

		companyID := primitive.NewObjectID()
		billID := primitive.NewObjectID()
		m.billRepo.On("DeleteBill", mock.Anything, companyID, billID).
			Return(&models.Bill{ID: billID, Company: companyID}, nil).Once()
		m.outboxRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.OutboxMessage")).Return(nil).Once()
		m.auditLogRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.AuditLog")).Return(nil).Once()

		req := newBillRequest(t, http.MethodDelete, "", map[string]string{
			"companyId": companyID.Hex(), "billId": billID.Hex(),
		})
		rec := httptest.NewRecorder()
		h.DeleteBill(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeBody(t, rec)
		assert.Equal(t, billID.Hex(), resp["billId"])
	})
}

func TestBillHandler_GetBillParams(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Success", func(t *testing.T) {
		billLogic, m := newTestBillLogic(t)
		h := NewBillHandler(billLogic, logger)

		companyID := primitive.NewObjectID()
		m.billRepo.On("DistinctLineItemKeys", mock.Anything, companyID).
			Return([]string{"fields", "bill_year"}, nil).Once()

		req := newBillRequest(t, http.MethodGet, "", map[string]string{"companyId": companyID.Hex()})
		rec := httptest.NewRecorder()
		h.GetBillParams(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeBody(t, rec)
		params, ok := resp["params"].([]interface{})
		require.True(t, ok)
		assert.ElementsMatch(t, []interface{}{"fields", "bill_year"}, params)
	})
}
