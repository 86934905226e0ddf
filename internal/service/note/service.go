package note

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/note"
	"github.com/google/uuid"
)

type NoteServiceImpl struct {
	noteRepo note.NoteRepository
}

func NewNoteService(noteRepo note.NoteRepository) note.NoteService {
	return &NoteServiceImpl{noteRepo: noteRepo}
}

func mapNoteToResponse(n note.Note) note.NoteResponse {
	return note.NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
		UpdatedAt: n.UpdatedAt.Format(time.RFC3339),
	}
}

// Create implements note.NoteService.
func (s *NoteServiceImpl) Create(ctx context.Context, req note.CreateNoteRequest) (note.NoteResponse, error) {
	if err := req.Validate(); err != nil {
		return note.NoteResponse{}, err
	}

	created, err := s.noteRepo.Create(ctx, note.Note{
		ID:      uuid.NewString(),
		Title:   strings.TrimSpace(req.Title),
		Content: req.Content,
	})
	if err != nil {
		return note.NoteResponse{}, fmt.Errorf("failed to create note: %w", err)
	}
	return mapNoteToResponse(created), nil
}

// Update implements note.NoteService.
func (s *NoteServiceImpl) Update(ctx context.Context, req note.UpdateNoteRequest) (note.NoteResponse, error) {
	if err := req.Validate(); err != nil {
		return note.NoteResponse{}, err
	}

	existing, err := s.noteRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, note.ErrNoteNotFound) {
			return note.NoteResponse{}, note.ErrNoteNotFound
		}
		return note.NoteResponse{}, fmt.Errorf("failed to get note: %w", err)
	}

	if req.Title != nil {
		existing.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		existing.Content = *req.Content
	}

	if err := s.noteRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, note.ErrNoteNotFound) {
			return note.NoteResponse{}, note.ErrNoteNotFound
		}
		return note.NoteResponse{}, fmt.Errorf("failed to update note: %w", err)
	}

	return s.Get(ctx, existing.ID)
}

// Delete implements note.NoteService.
func (s *NoteServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.noteRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, note.ErrNoteNotFound) {
			return note.ErrNoteNotFound
		}
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

// Get implements note.NoteService.
func (s *NoteServiceImpl) Get(ctx context.Context, id string) (note.NoteResponse, error) {
	n, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, note.ErrNoteNotFound) {
			return note.NoteResponse{}, note.ErrNoteNotFound
		}
		return note.NoteResponse{}, fmt.Errorf("failed to get note: %w", err)
	}
	return mapNoteToResponse(n), nil
}

// List implements note.NoteService.
func (s *NoteServiceImpl) List(ctx context.Context) ([]note.NoteResponse, error) {
	notes, err := s.noteRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	responses := make([]note.NoteResponse, 0, len(notes))
	for _, n := range notes {
		responses = append(responses, mapNoteToResponse(n))
	}
	return responses, nil
}
