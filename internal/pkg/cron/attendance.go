package cron

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-tracker/absensi-backend-go/internal/domain/holiday"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/calendar"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/sse"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/timegate"
)

type MissingSubmissionsEvent struct {
	Date      string                   `json:"date"`
	Employees []attendance.EmployeeRef `json:"employees"`
}

type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
	holidayRepo       holiday.HolidayRepository
	publisher         Publisher
	loc               *time.Location
	now               func() time.Time

	mu       sync.Mutex
	lastDate string
}

func NewAttendanceJobs(
	attendanceService attendance.AttendanceService,
	holidayRepo holiday.HolidayRepository,
	publisher Publisher,
	loc *time.Location,
) *AttendanceJobs {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceJobs{
		attendanceService: attendanceService,
		holidayRepo:       holidayRepo,
		publisher:         publisher,
		loc:               loc,
		now:               time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("missing_submissions", 1*time.Hour, j.MissingSubmissions)
}

// MissingSubmissions publishes, once per business day after the late threshold, the roster
// members who have not submitted yet.
func (j *AttendanceJobs) MissingSubmissions(ctx context.Context) error {
	now := j.now().In(j.loc)
	if now.Hour()*60+now.Minute() < timegate.LateAfter || calendar.IsWeekend(now) {
		return nil
	}

	date := now.Format("2006-01-02")

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.lastDate == date {
		return nil
	}

	today := calendar.DateOf(now)
	holidays, err := j.holidayRepo.ListOverlapping(ctx, today, today)
	if err != nil {
		return fmt.Errorf("failed to list holidays: %w", err)
	}
	if !calendar.IsBusinessDay(now, calendar.ExpandHolidays(holiday.ToRanges(holidays))) {
		slog.Info("Cron: Skipping missing submissions on holiday", "date", date)
		j.lastDate = date
		return nil
	}

	daily, err := j.attendanceService.ListByDate(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to list daily attendance: %w", err)
	}
	j.lastDate = date

	slog.Info("Cron: Missing submissions", "date", date, "count", len(daily.NotSubmitted))
	if len(daily.NotSubmitted) == 0 {
		return nil
	}

	j.publisher.Publish(sse.Event{
		Event: sse.TopicMissingSubmissions,
		Data:  MissingSubmissionsEvent{Date: date, Employees: daily.NotSubmitted},
	})
	return nil
}
