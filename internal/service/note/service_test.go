package note

import (
	"context"
	"testing"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNoteRepository struct {
	notes map[string]note.Note
}

func (f *fakeNoteRepository) Create(ctx context.Context, n note.Note) (note.Note, error) {
	f.notes[n.ID] = n
	return n, nil
}

func (f *fakeNoteRepository) GetByID(ctx context.Context, id string) (note.Note, error) {
	n, ok := f.notes[id]
	if !ok {
		return note.Note{}, note.ErrNoteNotFound
	}
	return n, nil
}

func (f *fakeNoteRepository) Update(ctx context.Context, n note.Note) error {
	if _, ok := f.notes[n.ID]; !ok {
		return note.ErrNoteNotFound
	}
	f.notes[n.ID] = n
	return nil
}

func (f *fakeNoteRepository) Delete(ctx context.Context, id string) error {
	if _, ok := f.notes[id]; !ok {
		return note.ErrNoteNotFound
	}
	delete(f.notes, id)
	return nil
}

func (f *fakeNoteRepository) List(ctx context.Context) ([]note.Note, error) {
	out := make([]note.Note, 0, len(f.notes))
	for _, n := range f.notes {
		out = append(out, n)
	}
	return out, nil
}

func TestNoteLifecycle(t *testing.T) {
	repo := &fakeNoteRepository{notes: map[string]note.Note{}}
	svc := NewNoteService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, note.CreateNoteRequest{Title: "Prover checklist", Content: "- seals\n- temp probe"})
	require.NoError(t, err)

	content := "- seals\n- temp probe\n- pressure gauge"
	updated, err := svc.Update(ctx, note.UpdateNoteRequest{ID: created.ID, Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "Prover checklist", updated.Title)
	assert.Equal(t, content, updated.Content)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, note.ErrNoteNotFound)
}

func TestNoteValidation(t *testing.T) {
	svc := NewNoteService(&fakeNoteRepository{notes: map[string]note.Note{}})
	ctx := context.Background()

	_, err := svc.Create(ctx, note.CreateNoteRequest{Title: "  "})
	assert.Error(t, err)

	_, err = svc.Update(ctx, note.UpdateNoteRequest{ID: "n1"})
	assert.Error(t, err, "an update needs at least one field")

	title := "x"
	_, err = svc.Update(ctx, note.UpdateNoteRequest{ID: "missing", Title: &title})
	assert.ErrorIs(t, err, note.ErrNoteNotFound)
}
