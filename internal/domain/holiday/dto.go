package holiday

import (
	"errors"

	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
	EndDate    *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Name       string  `json:"name" validate:"notblank,max=255"`
	IsMultiDay bool    `json:"is_multi_day"`
	IsCustom   *bool   `json:"is_custom,omitempty"`
}

// Validate rejects malformed ranges: a multi-day holiday needs an end date on or after its
// start, and an end date is only accepted together with the multi-day flag.
func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if err := validator.Struct(r); err != nil {
		if !errors.As(err, &errs) {
			return err
		}
		return errs
	}

	hasEnd := r.EndDate != nil && *r.EndDate != ""
	switch {
	case r.IsMultiDay && !hasEnd:
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required for a multi-day holiday",
		})
	case !r.IsMultiDay && hasEnd:
		errs = append(errs, validator.ValidationError{
			Field:   "is_multi_day",
			Message: "is_multi_day must be true when end_date is set",
		})
	case hasEnd:
		start, _ := validator.IsValidDate(r.Date)
		end, _ := validator.IsValidDate(*r.EndDate)
		if end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HolidayResponse struct {
	ID         string  `json:"id"`
	Date       string  `json:"date"`
	EndDate    *string `json:"end_date,omitempty"`
	Name       string  `json:"name"`
	IsCustom   bool    `json:"is_custom"`
	IsMultiDay bool    `json:"is_multi_day"`
	CreatedAt  string  `json:"created_at"`
}

// CalendarFile is the YAML holiday calendar accepted by ImportCalendar.
//
//	holidays:
//	  - date: 2025-01-01
//	    name: Tahun Baru
//	  - date: 2025-03-31
//	    end_date: 2025-04-01
//	    name: Idul Fitri
type CalendarFile struct {
	Holidays []CalendarEntry `yaml:"holidays"`
}

type CalendarEntry struct {
	Date    string `yaml:"date"`
	EndDate string `yaml:"end_date,omitempty"`
	Name    string `yaml:"name"`
	Custom  bool   `yaml:"custom,omitempty"`
}

func (e CalendarEntry) ToRequest() CreateHolidayRequest {
	req := CreateHolidayRequest{
		Date:     e.Date,
		Name:     e.Name,
		IsCustom: &e.Custom,
	}
	if e.EndDate != "" {
		end := e.EndDate
		req.EndDate = &end
		req.IsMultiDay = true
	}
	return req
}

type ImportResult struct {
	Imported int               `json:"imported"`
	Holidays []HolidayResponse `json:"holidays"`
}
