package employee

import (
	"time"
)

type Employee struct {
	ID                 string
	Initial            string
	FullName           string
	Role               Role
	JobTitle           *string
	EmergencyContact   *EmergencyContact
	MCUDate            *time.Time
	SafetyCertificates []SafetyCertificate
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type Role string

const (
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

type SafetyCertificate struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	ExpirationDate time.Time `json:"expiration_date"`
}

// MCUValidity is how long a medical check-up stays valid: eleven 30-day months.
const MCUValidity = 11 * 30 * 24 * time.Hour

// IsMCUExpired reports whether the medical check-up taken at mcuDate is no longer valid at now.
// An employee without a recorded check-up is not reported.
func IsMCUExpired(mcuDate *time.Time, now time.Time) bool {
	if mcuDate == nil {
		return false
	}
	return now.Sub(*mcuDate) >= MCUValidity
}

// IsExpired reports whether the certificate expired before the civil date of now.
func (c SafetyCertificate) IsExpired(now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	ey, em, ed := c.ExpirationDate.Date()
	expires := time.Date(ey, em, ed, 0, 0, 0, 0, now.Location())
	return expires.Before(today)
}
