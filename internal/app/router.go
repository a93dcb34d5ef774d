package app

import (
	"net/http"

	"github.com/programmerrush/api-bills/internal/constants"
	"github.com/programmerrush/api-bills/internal/limiter"
	http_middleware "github.com/programmerrush/api-bills/internal/middleware/http"
	"github.com/programmerrush/api-bills/internal/service"
)

// billReportsPolicy is the rate-limit policy for the period-resolution and
// case endpoints. They fan out store queries, so they get a tighter budget
// than the CRUD routes.
const billReportsPolicy = "bill_reports"

// NewHttpHandlerRegister creates the registrar function for all API routes.
// It takes the handlers and middleware as dependencies and registers them on
// the mux.
func NewHttpHandlerRegister(
	authMiddleware http_middleware.AuthMiddleware,
	companyAccess http_middleware.CompanyAccessMiddleware,
	limiterManager *limiter.Manager,
	billHandler *service.BillHandler,
	billCaseHandler *service.BillCaseHandler,
	companyHandler *service.CompanyHandler,
) HttpHandlerRegister {
	return func(mux *http.ServeMux) {
		reportsLimiter := http_middleware.CreateRateLimitMiddleware(limiterManager, billReportsPolicy)
		adminOnly := http_middleware.RequireRoles(constants.RoleSuper, constants.RoleAdmin)

		// Bill CRUD, scoped to the caller's company.
		company := func(h http.HandlerFunc) http.Handler {
			return authMiddleware(companyAccess(h))
		}
		mux.Handle("POST /api/v1/bill/{companyId}", company(billHandler.CreateBill))
		mux.Handle("GET /api/v1/bill/{companyId}", company(billHandler.ListBills))
		mux.Handle("GET /api/v1/bill/{companyId}/params", company(billHandler.GetBillParams))
		mux.Handle("GET /api/v1/bill/{companyId}/{billId}", company(billHandler.GetBill))
		mux.Handle("PUT /api/v1/bill/{companyId}/{billId}/payment", company(billHandler.UpdateBillPayment))
		mux.Handle("DELETE /api/v1/bill/{companyId}/{billId}", company(billHandler.DeleteBill))

		// Period resolution and case views, rate limited per user.
		reports := func(h http.HandlerFunc) http.Handler {
			return authMiddleware(companyAccess(reportsLimiter(h)))
		}
		mux.Handle("GET /api/v1/bill/{companyId}/open/{year}/{month}", reports(billCaseHandler.GetBillOpen))
		mux.Handle("GET /api/v1/bill/{companyId}/open/{year}/{month}/case/{caseId}", reports(billCaseHandler.GetBillCaseDetails))
		mux.Handle("GET /api/v1/bill/{companyId}/open/{year}/case/{caseId}", reports(billCaseHandler.GetBillYearlyCase))

		// Company management.
		mux.Handle("GET /api/v1/company", authMiddleware(adminOnly(http.HandlerFunc(companyHandler.ListCompanies))))
		mux.Handle("POST /api/v1/company", authMiddleware(adminOnly(http.HandlerFunc(companyHandler.CreateCompany))))
		mux.Handle("GET /api/v1/company/my", authMiddleware(http.HandlerFunc(companyHandler.GetMyCompany)))
		mux.Handle("PUT /api/v1/company/my", authMiddleware(http.HandlerFunc(companyHandler.UpdateMyCompany)))
		mux.Handle("GET /api/v1/company/{companyId}", company(companyHandler.GetCompany))
		mux.Handle("PUT /api/v1/company/{companyId}", company(companyHandler.UpdateCompany))
		mux.Handle("DELETE /api/v1/company/{companyId}", authMiddleware(adminOnly(http.HandlerFunc(companyHandler.DeleteCompany))))
	}
}
