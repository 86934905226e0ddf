package report

import (
	"time"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-tracker/absensi-backend-go/internal/domain/employee"
	"github.com/absensi-tracker/absensi-backend-go/internal/domain/report"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/calendar"
	attendancesvc "github.com/absensi-tracker/absensi-backend-go/internal/service/attendance"
)

// Aggregate computes one MonthlyStat per employee, in roster order, for the given month.
//
// The reporting location is now's location and record timestamps are converted into it.
// Records classified invalid are ignored. Several records on the same day count as one
// present day, while LateCount counts records. Absences are only counted up to the
// evaluation end, so a month that has not started yet reports none.
func Aggregate(
	employees []employee.Employee,
	records []attendance.Record,
	holidays []calendar.Range,
	month time.Month,
	year int,
	now time.Time,
) []report.MonthlyStat {
	loc := now.Location()
	holidaySet := calendar.ExpandHolidays(holidays)

	first := calendar.FirstOfMonth(year, month, loc)
	last := calendar.LastOfMonth(year, month, loc)
	evalEnd := EvaluationEnd(year, month, now)

	totalBusinessDays := calendar.CountBusinessDaysIn(first, last, holidaySet)
	elapsedBusinessDays := calendar.CountBusinessDaysIn(first, evalEnd, holidaySet)

	byEmployee := make(map[string][]time.Time)
	for _, r := range records {
		local := r.SubmittedAt.In(loc)
		if local.Year() != year || local.Month() != month {
			continue
		}
		byEmployee[r.EmployeeID] = append(byEmployee[r.EmployeeID], local)
	}

	stats := make([]report.MonthlyStat, 0, len(employees))
	for _, emp := range employees {
		lateCount := 0
		workDates := make(map[string]time.Time)

		for _, ts := range byEmployee[emp.ID] {
			switch attendancesvc.Classify(ts) {
			case attendance.ClassInvalid:
				continue
			case attendance.ClassLate:
				lateCount++
			}
			d := calendar.DateOf(ts)
			if calendar.IsBusinessDay(d, holidaySet) {
				workDates[calendar.Key(d)] = d
			}
		}

		presentElapsed := 0
		for _, d := range workDates {
			if !d.After(evalEnd) {
				presentElapsed++
			}
		}

		stats = append(stats, report.MonthlyStat{
			EmployeeID:        emp.ID,
			EmployeeCode:      emp.Initial,
			FullName:          emp.FullName,
			PresentDays:       len(workDates),
			AbsentDays:        max(elapsedBusinessDays-presentElapsed, 0),
			LateCount:         lateCount,
			TotalBusinessDays: totalBusinessDays,
		})
	}

	return stats
}

// EvaluationEnd is the last day absences are counted for: today within the current month,
// the last day of a past month, and the day before the first for a month still ahead.
func EvaluationEnd(year int, month time.Month, now time.Time) time.Time {
	first := calendar.FirstOfMonth(year, month, now.Location())
	last := calendar.LastOfMonth(year, month, now.Location())
	today := calendar.DateOf(now)

	switch {
	case today.Before(first):
		return first.AddDate(0, 0, -1)
	case today.After(last):
		return last
	default:
		return today
	}
}
