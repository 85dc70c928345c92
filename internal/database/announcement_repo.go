package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/domain/contract"
	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/domain/entity"
)

type announcementRepository struct {
	db *sql.DB
}

func newAnnouncementRepository(db *sql.DB) contract.AnnouncementRepo {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(announcement *entity.Announcement) error {
	query := `
		INSERT INTO announcements (event_id, phase, title, fired_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		announcement.EventID,
		announcement.Phase,
		announcement.Title,
		announcement.FiredAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	announcement.ID = id
	return nil
}

func (r *announcementRepository) GetLastByEvent(eventID entity.EventID) (*entity.Announcement, error) {
	announcement := &entity.Announcement{}
	query := `
		SELECT id, event_id, phase, title, fired_at, created_at
		FROM announcements
		WHERE event_id = ?
		ORDER BY fired_at DESC, id DESC
		LIMIT 1
	`

	err := r.db.QueryRow(query, eventID).Scan(
		&announcement.ID,
		&announcement.EventID,
		&announcement.Phase,
		&announcement.Title,
		&announcement.FiredAt,
		&announcement.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last announcement: %w", err)
	}

	return announcement, nil
}

func (r *announcementRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	query := `DELETE FROM announcements WHERE fired_at < ?`

	result, err := r.db.Exec(query, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to prune announcements: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return deleted, nil
}
