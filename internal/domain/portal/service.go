package portal

import "context"

// PortalService serves the employee self-service views. The acting
// principal's employee link is resolved from the request context.
type PortalService interface {
	Dashboard(ctx context.Context) (DashboardResponse, error)
	MyAttendance(ctx context.Context, month string) (MyAttendanceResponse, error)
	MySalary(ctx context.Context, month string) (MySalaryResponse, error)
}
