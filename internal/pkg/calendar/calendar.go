package calendar

import "time"

// DateLayout is the civil-date key format used for holiday sets.
const DateLayout = "2006-01-02"

// Range is a holiday range. A nil End denotes exactly one day.
type Range struct {
	Start time.Time
	End   *time.Time
}

// DateSet is a set of civil dates keyed by DateLayout.
type DateSet map[string]struct{}

// Has reports whether t's civil date is in the set.
func (s DateSet) Has(t time.Time) bool {
	_, ok := s[Key(t)]
	return ok
}

// Key returns the civil-date key of t in t's own location.
func Key(t time.Time) string {
	return t.Format(DateLayout)
}

// DateOf truncates t to midnight of its civil date, keeping the location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// SameDate reports whether a and b share a civil date once a is viewed in b's location.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FirstOfMonth returns midnight of the first day of the month in loc.
func FirstOfMonth(year int, month time.Month, loc *time.Location) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, loc)
}

// LastOfMonth returns midnight of the last day of the month in loc.
func LastOfMonth(year int, month time.Month, loc *time.Location) time.Time {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc)
}

// ExpandHolidays flattens holiday ranges into the set of every civil date they cover.
// A range whose end precedes its start contributes only its start date.
func ExpandHolidays(ranges []Range) DateSet {
	set := make(DateSet)
	for _, r := range ranges {
		start := DateOf(r.Start)
		set[Key(start)] = struct{}{}
		if r.End == nil {
			continue
		}
		end := DateOf(*r.End)
		for d := start.AddDate(0, 0, 1); !d.After(end); d = d.AddDate(0, 0, 1) {
			set[Key(d)] = struct{}{}
		}
	}
	return set
}

// CountBusinessDays counts the days in [start, end] that are neither weekend days nor holidays.
// Both bounds are inclusive and compared as civil dates in start's location.
// An inverted range yields 0.
func CountBusinessDays(start, end time.Time, ranges []Range) int {
	return CountBusinessDaysIn(start, end, ExpandHolidays(ranges))
}

// CountBusinessDaysIn is CountBusinessDays over an already expanded holiday set.
func CountBusinessDaysIn(start, end time.Time, holidays DateSet) int {
	from := DateOf(start)
	to := DateOf(end.In(start.Location()))

	count := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if IsWeekend(d) || holidays.Has(d) {
			continue
		}
		count++
	}
	return count
}

// IsBusinessDay reports whether t is a weekday outside the holiday set.
func IsBusinessDay(t time.Time, holidays DateSet) bool {
	return !IsWeekend(t) && !holidays.Has(t)
}
