package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, holiday Holiday) (Holiday, error)
	GetByID(ctx context.Context, id string) (Holiday, error)
	Delete(ctx context.Context, id string) error
	// List returns every holiday ordered by start date
	List(ctx context.Context) ([]Holiday, error)
	// ListOverlapping returns holidays whose range touches [from, to]
	ListOverlapping(ctx context.Context, from, to time.Time) ([]Holiday, error)
}
