package attendance

import (
	"errors"
	"strings"

	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/timegate"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/validator"
)

// ========================================
// SUBMISSION DTOs
// ========================================

type SubmitRequest struct {
	EmployeeID         string  `json:"employee_id" validate:"required,uuid"`
	WorkLocation       string  `json:"work_location" validate:"notblank"`
	CustomWorkLocation *string `json:"custom_work_location,omitempty" validate:"omitempty,max=255"`
	HealthCondition    string  `json:"health_condition" validate:"oneof=healthy-no-symptoms has-symptoms-not-checked sick-checked-medical"`
	YesterdayWork      string  `json:"yesterday_work" validate:"notblank,max=2000"`
	TodayWork          string  `json:"today_work" validate:"notblank,max=2000"`
	TomorrowAgenda     string  `json:"tomorrow_agenda" validate:"notblank,max=2000"`
	Suggestions        string  `json:"suggestions" validate:"notblank,max=2000"`
}

// Validate checks the struct tags and that WorkLocation is one of the configured locations.
// The "Lainnya" location needs a custom location text.
func (r *SubmitRequest) Validate(workLocations []string) error {
	var errs validator.ValidationErrors

	if err := validator.Struct(r); err != nil {
		if !errors.As(err, &errs) {
			return err
		}
	}

	if !validator.IsEmpty(r.WorkLocation) && !validator.IsInSlice(r.WorkLocation, workLocations) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_location",
			Message: "work_location must be one of: " + strings.Join(workLocations, ", "),
		})
	}

	if r.WorkLocation == OtherWorkLocation && (r.CustomWorkLocation == nil || validator.IsEmpty(*r.CustomWorkLocation)) {
		errs = append(errs, validator.ValidationError{
			Field:   "custom_work_location",
			Message: "custom_work_location is required when work_location is Lainnya",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID                 string  `json:"id"`
	EmployeeID         string  `json:"employee_id"`
	EmployeeInitial    string  `json:"employee_initial"`
	EmployeeName       string  `json:"employee_name"`
	WorkLocation       string  `json:"work_location"`
	CustomWorkLocation *string `json:"custom_work_location,omitempty"`
	HealthCondition    string  `json:"health_condition"`
	YesterdayWork      string  `json:"yesterday_work"`
	TodayWork          string  `json:"today_work"`
	TomorrowAgenda     string  `json:"tomorrow_agenda"`
	Suggestions        string  `json:"suggestions"`
	Date               string  `json:"date"`
	SubmittedAt        string  `json:"submitted_at"`
	Status             string  `json:"status"`
	Classification     string  `json:"classification"`
}

type SubmitResponse struct {
	Record  RecordResponse  `json:"record"`
	Gate    timegate.Result `json:"gate"`
	Message string          `json:"message"`
}

type SubmissionStatusResponse struct {
	EmployeeID     string          `json:"employee_id"`
	Date           string          `json:"date"`
	HasSubmitted   bool            `json:"has_submitted"`
	CanSubmit      bool            `json:"can_submit"`
	Gate           timegate.Result `json:"gate"`
	TodaysRecordID *string         `json:"todays_record_id,omitempty"`
}

// ========================================
// LISTING DTOs
// ========================================

type EmployeeRef struct {
	ID       string `json:"id"`
	Initial  string `json:"initial"`
	FullName string `json:"full_name"`
}

type DailyResponse struct {
	Date         string           `json:"date"`
	Submitted    []RecordResponse `json:"submitted"`
	NotSubmitted []EmployeeRef    `json:"not_submitted"`
}

type AttendanceFilter struct {
	// Search & Filter
	EmployeeID *string `json:"employee_id,omitempty"`
	Date       *string `json:"date,omitempty"`       // YYYY-MM-DD
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status     *string `json:"status,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // submitted_at, employee_name, status
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	// Page validation
	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	// Limit validation
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil {
		validStatuses := []string{string(StatusNormal), string(StatusLate), string(StatusPending)}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: normal, late, pending",
			})
		}
	}

	dates := []struct {
		field string
		value *string
	}{
		{"date", f.Date},
		{"start_date", f.StartDate},
		{"end_date", f.EndDate},
	}
	for _, d := range dates {
		if d.value != nil && *d.value != "" {
			if _, valid := validator.IsValidDate(*d.value); !valid {
				errs = append(errs, validator.ValidationError{
					Field:   d.field,
					Message: d.field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if f.SortBy != "" {
		validSortFields := []string{"submitted_at", "employee_name", "status"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: submitted_at, employee_name, status",
			})
		}
	} else {
		f.SortBy = "submitted_at"
	}

	if f.SortOrder != "" {
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), []string{"asc", "desc"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "desc" // Newest first
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAttendanceResponse struct {
	TotalCount  int64            `json:"total_count"`
	Page        int              `json:"page"`
	Limit       int              `json:"limit"`
	TotalPages  int              `json:"total_pages"`
	Showing     string           `json:"showing"`
	Attendances []RecordResponse `json:"attendances"`
}
