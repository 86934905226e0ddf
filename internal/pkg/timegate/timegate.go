package timegate

import "time"

// Status is the outcome of the submission time gate.
type Status string

const (
	StatusBlocked Status = "blocked"
	StatusNormal  Status = "normal"
	StatusLate    Status = "late"
)

const (
	// OpensAt is the start of the submission window, in minutes since local midnight.
	OpensAt = 5 * 60
	// LateAfter is the first minute at which a submission counts as late.
	LateAfter = 10 * 60
)

const (
	MessageBlocked = "Attendance is not open yet, please wait until 05:00 (on time until 10:00)"
	MessageNormal  = "Attendance recorded. Don't forget to submit again tomorrow"
	MessageLate    = "Attendance recorded late for today"
)

// Result is the gate decision for a single submission attempt.
type Result struct {
	Status  Status `json:"status"`
	Allowed bool   `json:"allowed"`
	Message string `json:"message"`
}

// CheckGate decides whether a submission at now is blocked, on time or late.
// The decision uses the wall clock of now's location and keeps no state between calls.
func CheckGate(now time.Time) Result {
	minutes := now.Hour()*60 + now.Minute()

	switch {
	case minutes < OpensAt:
		return Result{Status: StatusBlocked, Allowed: false, Message: MessageBlocked}
	case minutes < LateAfter:
		return Result{Status: StatusNormal, Allowed: true, Message: MessageNormal}
	default:
		return Result{Status: StatusLate, Allowed: true, Message: MessageLate}
	}
}
