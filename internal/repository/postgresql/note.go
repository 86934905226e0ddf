package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/note"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type noteRepository struct {
	db *database.DB
}

func NewNoteRepository(db *database.DB) note.NoteRepository {
	return &noteRepository{db: db}
}

// Create implements note.NoteRepository.
func (r *noteRepository) Create(ctx context.Context, n note.Note) (note.Note, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notes (id, title, content)
		VALUES ($1, $2, $3)
		RETURNING id, title, content, created_at, updated_at`

	var created note.Note
	err := q.QueryRow(ctx, query, n.ID, n.Title, n.Content).Scan(
		&created.ID, &created.Title, &created.Content, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return note.Note{}, fmt.Errorf("failed to create note: %w", err)
	}
	return created, nil
}

// GetByID implements note.NoteRepository.
func (r *noteRepository) GetByID(ctx context.Context, id string) (note.Note, error) {
	q := GetQuerier(ctx, r.db)

	var n note.Note
	err := q.QueryRow(ctx, `SELECT id, title, content, created_at, updated_at FROM notes WHERE id = $1`, id).Scan(
		&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return note.Note{}, note.ErrNoteNotFound
		}
		return note.Note{}, fmt.Errorf("failed to get note: %w", err)
	}
	return n, nil
}

// Update implements note.NoteRepository.
func (r *noteRepository) Update(ctx context.Context, n note.Note) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE notes SET title = $2, content = $3, updated_at = NOW() WHERE id = $1`,
		n.ID, n.Title, n.Content,
	)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return note.ErrNoteNotFound
	}
	return nil
}

// Delete implements note.NoteRepository.
func (r *noteRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return note.ErrNoteNotFound
	}
	return nil
}

// List implements note.NoteRepository.
func (r *noteRepository) List(ctx context.Context) ([]note.Note, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, title, content, created_at, updated_at FROM notes ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]note.Note, 0)
	for rows.Next() {
		var n note.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return notes, nil
}
