package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/announcement"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const announcementColumns = `id, title, message, created_at, acknowledged_by`

type announcementRepository struct {
	db *database.DB
}

func NewAnnouncementRepository(db *database.DB) announcement.AnnouncementRepository {
	return &announcementRepository{db: db}
}

func scanAnnouncement(row pgx.Row) (announcement.Announcement, error) {
	var a announcement.Announcement
	err := row.Scan(&a.ID, &a.Title, &a.Message, &a.CreatedAt, &a.AcknowledgedBy)
	if a.AcknowledgedBy == nil {
		a.AcknowledgedBy = []string{}
	}
	return a, err
}

// Create implements announcement.AnnouncementRepository.
func (r *announcementRepository) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO announcements (id, title, message)
		VALUES ($1, $2, $3)
		RETURNING ` + announcementColumns

	created, err := scanAnnouncement(q.QueryRow(ctx, query, a.ID, a.Title, a.Message))
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("failed to create announcement: %w", err)
	}
	return created, nil
}

// GetByID implements announcement.AnnouncementRepository.
func (r *announcementRepository) GetByID(ctx context.Context, id string) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAnnouncement(q.QueryRow(ctx, `SELECT `+announcementColumns+` FROM announcements WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return announcement.Announcement{}, announcement.ErrAnnouncementNotFound
		}
		return announcement.Announcement{}, fmt.Errorf("failed to get announcement: %w", err)
	}
	return a, nil
}

// Delete implements announcement.AnnouncementRepository.
func (r *announcementRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return announcement.ErrAnnouncementNotFound
	}
	return nil
}

// List implements announcement.AnnouncementRepository.
func (r *announcementRepository) List(ctx context.Context) ([]announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+announcementColumns+` FROM announcements ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer rows.Close()

	announcements := make([]announcement.Announcement, 0)
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		announcements = append(announcements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return announcements, nil
}

// AddAcknowledgement implements announcement.AnnouncementRepository.
func (r *announcementRepository) AddAcknowledgement(ctx context.Context, id string, name string) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE announcements
		SET acknowledged_by = array_append(acknowledged_by, $2::text)
		WHERE id = $1 AND NOT ($2::text = ANY(acknowledged_by))
		RETURNING ` + announcementColumns

	a, err := scanAnnouncement(q.QueryRow(ctx, query, id, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Already acknowledged, or the announcement does not exist
			return r.GetByID(ctx, id)
		}
		return announcement.Announcement{}, fmt.Errorf("failed to acknowledge announcement: %w", err)
	}
	return a, nil
}
