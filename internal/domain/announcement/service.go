package announcement

import "context"

type AnnouncementService interface {
	Create(ctx context.Context, req CreateAnnouncementRequest) (AnnouncementResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]AnnouncementResponse, error)
	// Acknowledge records that name has read the announcement; repeating it is a no-op
	Acknowledge(ctx context.Context, req AcknowledgeRequest) (AnnouncementResponse, error)
	// ReadStatus splits the roster into who has and has not acknowledged
	ReadStatus(ctx context.Context, id string) (ReadStatusResponse, error)
}
