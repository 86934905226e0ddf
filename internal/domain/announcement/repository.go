package announcement

import "context"

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement Announcement) (Announcement, error)
	GetByID(ctx context.Context, id string) (Announcement, error)
	Delete(ctx context.Context, id string) error
	// List returns announcements newest first
	List(ctx context.Context) ([]Announcement, error)
	// AddAcknowledgement appends name once; it returns the updated announcement
	AddAcknowledgement(ctx context.Context, id string, name string) (Announcement, error)
}
