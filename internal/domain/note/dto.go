package note

import (
	"errors"

	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/validator"
)

type CreateNoteRequest struct {
	Title   string `json:"title" validate:"notblank,max=255"`
	Content string `json:"content" validate:"max=20000"`
}

func (r *CreateNoteRequest) Validate() error {
	return validator.Struct(r)
}

type UpdateNoteRequest struct {
	ID      string  `json:"-"`
	Title   *string `json:"title,omitempty" validate:"omitempty,notblank,max=255"`
	Content *string `json:"content,omitempty" validate:"omitempty,max=20000"`
}

func (r *UpdateNoteRequest) Validate() error {
	var errs validator.ValidationErrors

	if err := validator.Struct(r); err != nil {
		if !errors.As(err, &errs) {
			return err
		}
	}

	if r.Title == nil && r.Content == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title or content must be provided",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type NoteResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
