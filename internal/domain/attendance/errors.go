package attendance

import (
	"errors"

	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/timegate"
)

// Attendance domain errors
var (
	// Submission errors
	ErrSubmissionNotOpen     = errors.New(timegate.MessageBlocked)
	ErrAlreadySubmittedToday = errors.New("attendance already submitted today")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
