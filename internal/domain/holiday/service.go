package holiday

import (
	"context"
	"io"
	"time"
)

type HolidayService interface {
	// CreateHoliday adds a holiday or holiday range (manager only)
	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)

	// DeleteHoliday removes a holiday (manager only)
	DeleteHoliday(ctx context.Context, id string) error

	// ListHolidays returns all holidays ordered by date
	ListHolidays(ctx context.Context) ([]HolidayResponse, error)

	// ListForMonth returns the holidays that touch the given month
	ListForMonth(ctx context.Context, year int, month time.Month) ([]HolidayResponse, error)

	// ImportCalendar creates every entry of a YAML holiday calendar
	ImportCalendar(ctx context.Context, r io.Reader) (ImportResult, error)
}
