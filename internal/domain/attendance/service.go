package attendance

import "context"

// AttendanceService defines business logic for attendance admission.
// Record and Update enforce the one-row-per-(employee, date) invariant.
type AttendanceService interface {
	Record(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListAttendanceFilter) ([]AttendanceResponse, error)
}
