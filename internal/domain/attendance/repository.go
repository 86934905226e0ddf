package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create appends a new record
	Create(ctx context.Context, record Record) (Record, error)

	// GetByID retrieves a single record
	GetByID(ctx context.Context, id string) (Record, error)

	// Delete removes a record (manager action only)
	Delete(ctx context.Context, id string) error

	// ListBetween returns every record submitted in [from, to), oldest first
	ListBetween(ctx context.Context, from, to time.Time) ([]Record, error)

	// ListByEmployeeBetween returns one employee's records submitted in [from, to)
	// Used for the duplicate submission check
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Record, error)

	// List retrieves records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter) ([]Record, int64, error)
}
