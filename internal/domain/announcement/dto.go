package announcement

import "github.com/absensi-tracker/absensi-backend-go/internal/pkg/validator"

type CreateAnnouncementRequest struct {
	Title   string `json:"title" validate:"notblank,max=255"`
	Message string `json:"message" validate:"notblank,max=5000"`
}

func (r *CreateAnnouncementRequest) Validate() error {
	return validator.Struct(r)
}

type AcknowledgeRequest struct {
	ID   string `json:"-"`
	Name string `json:"name" validate:"notblank,max=255"`
}

func (r *AcknowledgeRequest) Validate() error {
	return validator.Struct(r)
}

type AnnouncementResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Message        string   `json:"message"`
	CreatedAt      string   `json:"created_at"`
	AcknowledgedBy []string `json:"acknowledged_by"`
}

type ReadStatusResponse struct {
	AnnouncementID  string   `json:"announcement_id"`
	Title           string   `json:"title"`
	Acknowledged    []string `json:"acknowledged"`
	NotAcknowledged []string `json:"not_acknowledged"`
}
