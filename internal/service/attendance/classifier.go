package attendance

import (
	"time"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/calendar"
)

const (
	onTimeFrom  = 5.0
	onTimeUntil = 10.0
	lateUntil   = 17.0
)

// Classify buckets a submission by its local hour of day. Seconds are ignored, so 10:00:59
// is still on time. Invalid records stay in storage and are skipped by the statistics.
func Classify(ts time.Time) attendance.Classification {
	hour := float64(ts.Hour()) + float64(ts.Minute())/60

	switch {
	case hour >= onTimeFrom && hour <= onTimeUntil:
		return attendance.ClassOnTime
	case hour > onTimeUntil && hour <= lateUntil:
		return attendance.ClassLate
	default:
		return attendance.ClassInvalid
	}
}

// HasSubmittedToday reports whether employeeID has any record whose civil date, seen in
// today's location, equals today's. The check is advisory: two concurrent submissions can
// both pass it.
func HasSubmittedToday(employeeID string, records []attendance.Record, today time.Time) bool {
	for _, r := range records {
		if r.EmployeeID != employeeID {
			continue
		}
		if calendar.SameDate(r.SubmittedAt, today) {
			return true
		}
	}
	return false
}
