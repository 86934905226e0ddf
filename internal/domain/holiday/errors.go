package holiday

import "errors"

var (
	ErrHolidayNotFound   = errors.New("holiday not found")
	ErrInvalidCalendar   = errors.New("invalid holiday calendar file")
	ErrEmptyCalendarFile = errors.New("holiday calendar file has no entries")
)
