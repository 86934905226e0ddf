package holiday

import (
	"time"

	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/calendar"
)

type Holiday struct {
	ID         string
	Date       time.Time
	EndDate    *time.Time
	Name       string
	IsCustom   bool
	IsMultiDay bool
	CreatedAt  time.Time
}

// Range converts the holiday into a calendar range. A row that is not flagged multi-day
// counts as its start day only, even if an end date was stored.
func (h Holiday) Range() calendar.Range {
	if !h.IsMultiDay || h.EndDate == nil {
		return calendar.Range{Start: h.Date}
	}
	return calendar.Range{Start: h.Date, End: h.EndDate}
}

func ToRanges(holidays []Holiday) []calendar.Range {
	ranges := make([]calendar.Range, 0, len(holidays))
	for _, h := range holidays {
		ranges = append(ranges, h.Range())
	}
	return ranges
}
