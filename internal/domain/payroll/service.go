package payroll

import "context"

// PayrollService derives pay from attendance. MonthlyReport covers all
// active employees; it is the admin-facing salary view.
type PayrollService interface {
	MonthlyReport(ctx context.Context, req SalaryReportRequest) (SalaryReportResponse, error)
}
