package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/announcement"
	"github.com/absensi-tracker/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-tracker/absensi-backend-go/internal/domain/auth"
	"github.com/absensi-tracker/absensi-backend-go/internal/domain/employee"
	"github.com/absensi-tracker/absensi-backend-go/internal/domain/holiday"
	"github.com/absensi-tracker/absensi-backend-go/internal/domain/note"
	"github.com/absensi-tracker/absensi-backend-go/internal/domain/report"
	"github.com/absensi-tracker/absensi-backend-go/internal/domain/toolbox"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidPIN):
		Unauthorized(w, "Invalid manager PIN")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrManagerRequired):
		Forbidden(w, "Manager access required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrSubmissionNotOpen):
		Forbidden(w, err.Error())
	case errors.Is(err, attendance.ErrAlreadySubmittedToday):
		Conflict(w, "Attendance already submitted today")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInitialExists):
		Conflict(w, "Employee initial already exists")
	case errors.Is(err, employee.ErrInvalidRole):
		BadRequest(w, err.Error(), nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrInvalidCalendar),
		errors.Is(err, holiday.ErrEmptyCalendarFile):
		BadRequest(w, err.Error(), nil)

	// Announcement domain errors
	case errors.Is(err, announcement.ErrAnnouncementNotFound):
		NotFound(w, "Announcement not found")
	case errors.Is(err, announcement.ErrUnknownReader):
		BadRequest(w, err.Error(), nil)

	case errors.Is(err, note.ErrNoteNotFound):
		NotFound(w, "Note not found")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidMonth),
		errors.Is(err, report.ErrUnsupportedFormat):
		BadRequest(w, err.Error(), nil)

	// Toolbox errors are all caused by input
	case errors.Is(err, toolbox.ErrUnknownCategory),
		errors.Is(err, toolbox.ErrUnknownUnit),
		errors.Is(err, toolbox.ErrDegenerateInterpolation),
		errors.Is(err, toolbox.ErrUnknownProduct),
		errors.Is(err, toolbox.ErrInvalidDensity),
		errors.Is(err, toolbox.ErrInvalidDiameter),
		errors.Is(err, toolbox.ErrResultOutOfRange),
		errors.Is(err, toolbox.ErrNoCalibrationRuns):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
