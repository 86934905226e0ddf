package announcement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/announcement"
	"github.com/absensi-tracker/absensi-backend-go/internal/domain/employee"
	"github.com/google/uuid"
)

type AnnouncementServiceImpl struct {
	announcementRepo announcement.AnnouncementRepository
	employeeRepo     employee.EmployeeRepository
}

func NewAnnouncementService(
	announcementRepo announcement.AnnouncementRepository,
	employeeRepo employee.EmployeeRepository,
) announcement.AnnouncementService {
	return &AnnouncementServiceImpl{
		announcementRepo: announcementRepo,
		employeeRepo:     employeeRepo,
	}
}

func mapAnnouncementToResponse(a announcement.Announcement) announcement.AnnouncementResponse {
	acknowledged := a.AcknowledgedBy
	if acknowledged == nil {
		acknowledged = []string{}
	}
	return announcement.AnnouncementResponse{
		ID:             a.ID,
		Title:          a.Title,
		Message:        a.Message,
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
		AcknowledgedBy: acknowledged,
	}
}

// Create implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Create(ctx context.Context, req announcement.CreateAnnouncementRequest) (announcement.AnnouncementResponse, error) {
	if err := req.Validate(); err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	created, err := s.announcementRepo.Create(ctx, announcement.Announcement{
		ID:             uuid.NewString(),
		Title:          strings.TrimSpace(req.Title),
		Message:        strings.TrimSpace(req.Message),
		AcknowledgedBy: []string{},
	})
	if err != nil {
		return announcement.AnnouncementResponse{}, fmt.Errorf("failed to create announcement: %w", err)
	}

	slog.Info("announcement created", "announcement_id", created.ID)
	return mapAnnouncementToResponse(created), nil
}

// Delete implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.announcementRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, announcement.ErrAnnouncementNotFound) {
			return announcement.ErrAnnouncementNotFound
		}
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	return nil
}

// List implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) List(ctx context.Context) ([]announcement.AnnouncementResponse, error) {
	announcements, err := s.announcementRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}

	responses := make([]announcement.AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		responses = append(responses, mapAnnouncementToResponse(a))
	}
	return responses, nil
}

// Acknowledge implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Acknowledge(ctx context.Context, req announcement.AcknowledgeRequest) (announcement.AnnouncementResponse, error) {
	if err := req.Validate(); err != nil {
		return announcement.AnnouncementResponse{}, err
	}
	name := strings.TrimSpace(req.Name)

	current, err := s.announcementRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, announcement.ErrAnnouncementNotFound) {
			return announcement.AnnouncementResponse{}, announcement.ErrAnnouncementNotFound
		}
		return announcement.AnnouncementResponse{}, fmt.Errorf("failed to get announcement: %w", err)
	}
	if current.HasAcknowledged(name) {
		return mapAnnouncementToResponse(current), nil
	}

	roster, err := s.employeeRepo.List(ctx)
	if err != nil {
		return announcement.AnnouncementResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}
	known := false
	for _, emp := range roster {
		if emp.FullName == name {
			known = true
			break
		}
	}
	if !known {
		return announcement.AnnouncementResponse{}, announcement.ErrUnknownReader
	}

	updated, err := s.announcementRepo.AddAcknowledgement(ctx, req.ID, name)
	if err != nil {
		if errors.Is(err, announcement.ErrAnnouncementNotFound) {
			return announcement.AnnouncementResponse{}, announcement.ErrAnnouncementNotFound
		}
		return announcement.AnnouncementResponse{}, fmt.Errorf("failed to acknowledge announcement: %w", err)
	}

	return mapAnnouncementToResponse(updated), nil
}

// ReadStatus implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) ReadStatus(ctx context.Context, id string) (announcement.ReadStatusResponse, error) {
	a, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, announcement.ErrAnnouncementNotFound) {
			return announcement.ReadStatusResponse{}, announcement.ErrAnnouncementNotFound
		}
		return announcement.ReadStatusResponse{}, fmt.Errorf("failed to get announcement: %w", err)
	}

	roster, err := s.employeeRepo.List(ctx)
	if err != nil {
		return announcement.ReadStatusResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := announcement.ReadStatusResponse{
		AnnouncementID:  a.ID,
		Title:           a.Title,
		Acknowledged:    make([]string, 0, len(a.AcknowledgedBy)),
		NotAcknowledged: make([]string, 0),
	}
	resp.Acknowledged = append(resp.Acknowledged, a.AcknowledgedBy...)
	for _, emp := range roster {
		if !a.HasAcknowledged(emp.FullName) {
			resp.NotAcknowledged = append(resp.NotAcknowledged, emp.FullName)
		}
	}

	return resp, nil
}
