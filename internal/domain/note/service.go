package note

import "context"

type NoteService interface {
	Create(ctx context.Context, req CreateNoteRequest) (NoteResponse, error)
	Update(ctx context.Context, req UpdateNoteRequest) (NoteResponse, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (NoteResponse, error)
	List(ctx context.Context) ([]NoteResponse, error)
}
