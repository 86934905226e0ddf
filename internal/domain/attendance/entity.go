package attendance

import (
	"time"
)

type HealthCondition string

const (
	HealthyNoSymptoms     HealthCondition = "healthy-no-symptoms"
	HasSymptomsNotChecked HealthCondition = "has-symptoms-not-checked"
	SickCheckedMedical    HealthCondition = "sick-checked-medical"
)

// OtherWorkLocation is the free-text work location; the record carries the text in CustomWorkLocation.
const OtherWorkLocation = "Lainnya"

// DefaultWorkLocations is used when WORK_LOCATIONS is not configured.
var DefaultWorkLocations = []string{
	"Kantor Ciwastra",
	"Kantor Tebet",
	"Kantor Balikpapan",
	"Ditmet Bandung",
	"Tempat Tinggal",
	OtherWorkLocation,
}

// Status is the gate outcome stored with a record at submission time.
type Status string

const (
	StatusNormal  Status = "normal"
	StatusLate    Status = "late"
	StatusPending Status = "pending"
)

// Classification is derived from the submission timestamp and drives the monthly statistics.
type Classification string

const (
	ClassOnTime  Classification = "ontime"
	ClassLate    Classification = "late"
	ClassInvalid Classification = "invalid"
)

// Record is a daily attendance report. It is never mutated after creation.
type Record struct {
	ID                 string
	EmployeeID         string
	EmployeeInitial    string
	EmployeeName       string
	WorkLocation       string
	CustomWorkLocation *string
	HealthCondition    HealthCondition
	YesterdayWork      string
	TodayWork          string
	TomorrowAgenda     string
	Suggestions        string
	SubmittedAt        time.Time
	Status             Status
	CreatedAt          time.Time
}
