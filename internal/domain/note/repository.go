package note

import "context"

type NoteRepository interface {
	Create(ctx context.Context, note Note) (Note, error)
	GetByID(ctx context.Context, id string) (Note, error)
	Update(ctx context.Context, note Note) error
	Delete(ctx context.Context, id string) error
	// List returns notes most recently updated first
	List(ctx context.Context) ([]Note, error)
}
