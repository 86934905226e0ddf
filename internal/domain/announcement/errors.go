package announcement

import "errors"

var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrUnknownReader        = errors.New("name is not on the employee roster")
)
