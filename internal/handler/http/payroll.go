package http

import (
	"net/http"

	"github.com/payrollweb/payroll-backend-go/internal/domain/payroll"
	"github.com/payrollweb/payroll-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	MonthlyReport(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// MonthlyReport implements PayrollHandler.
func (h *payrollHandlerImpl) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	req := payroll.SalaryReportRequest{
		Month: r.URL.Query().Get("month"),
	}

	result, err := h.payrollService.MonthlyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
