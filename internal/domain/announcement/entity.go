package announcement

import "time"

type Announcement struct {
	ID             string
	Title          string
	Message        string
	CreatedAt      time.Time
	AcknowledgedBy []string
}

// HasAcknowledged reports whether name is already in the acknowledgement list.
func (a Announcement) HasAcknowledged(name string) bool {
	for _, n := range a.AcknowledgedBy {
		if n == name {
			return true
		}
	}
	return false
}
