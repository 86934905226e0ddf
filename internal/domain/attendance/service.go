package attendance

import (
	"context"

	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/timegate"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Submit runs the time gate and duplicate check, then stores the daily report
	Submit(ctx context.Context, req SubmitRequest) (SubmitResponse, error)

	// GateStatus returns the current time gate decision for the submission form
	GateStatus(ctx context.Context) timegate.Result

	// SubmissionStatus combines the gate with the employee's duplicate check
	SubmissionStatus(ctx context.Context, employeeID string) (SubmissionStatusResponse, error)

	// ListByDate lists who submitted and who did not on a given date (YYYY-MM-DD)
	ListByDate(ctx context.Context, date string) (DailyResponse, error)

	// List retrieves records with filters (manager)
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// Get retrieves a single record by ID
	Get(ctx context.Context, id string) (RecordResponse, error)

	// Delete removes a record (manager)
	Delete(ctx context.Context, id string) error
}
