package attendance

import (
	"testing"
	"time"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	at := func(hour, minute, second int) time.Time {
		return time.Date(2024, 3, 4, hour, minute, second, 0, time.UTC)
	}

	tests := []struct {
		name string
		ts   time.Time
		want attendance.Classification
	}{
		{"04:54 is before the window", at(4, 54, 0), attendance.ClassInvalid},
		{"04:59:59", at(4, 59, 59), attendance.ClassInvalid},
		{"05:00 opens on time", at(5, 0, 0), attendance.ClassOnTime},
		{"08:00", at(8, 0, 0), attendance.ClassOnTime},
		{"10:00 is still on time", at(10, 0, 0), attendance.ClassOnTime},
		{"10:00:59 ignores seconds", at(10, 0, 59), attendance.ClassOnTime},
		{"10:01 is late", at(10, 1, 0), attendance.ClassLate},
		{"17:00 is late", at(17, 0, 0), attendance.ClassLate},
		{"17:01 is invalid", at(17, 1, 0), attendance.ClassInvalid},
		{"23:30", at(23, 30, 0), attendance.ClassInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.ts))
		})
	}
}

func TestClassify_UsesTimestampLocation(t *testing.T) {
	wib := time.FixedZone("WIB", 7*60*60)
	// 01:30 UTC is 08:30 in Jakarta
	ts := time.Date(2024, 3, 4, 1, 30, 0, 0, time.UTC)
	assert.Equal(t, attendance.ClassInvalid, Classify(ts))
	assert.Equal(t, attendance.ClassOnTime, Classify(ts.In(wib)))
}

func TestHasSubmittedToday(t *testing.T) {
	wib := time.FixedZone("WIB", 7*60*60)
	today := time.Date(2024, 3, 4, 9, 0, 0, 0, wib)

	records := []attendance.Record{
		{EmployeeID: "e1", SubmittedAt: time.Date(2024, 3, 3, 8, 0, 0, 0, wib)},
		{EmployeeID: "e2", SubmittedAt: time.Date(2024, 3, 4, 6, 0, 0, 0, wib)},
		// 2024-03-03 23:30 UTC is 2024-03-04 06:30 WIB
		{EmployeeID: "e3", SubmittedAt: time.Date(2024, 3, 3, 23, 30, 0, 0, time.UTC)},
	}

	assert.False(t, HasSubmittedToday("e1", records, today), "yesterday's record does not count")
	assert.True(t, HasSubmittedToday("e2", records, today))
	assert.True(t, HasSubmittedToday("e3", records, today), "civil date is taken in today's location")
	assert.False(t, HasSubmittedToday("e4", records, today))
	assert.False(t, HasSubmittedToday("e1", nil, today))
}
