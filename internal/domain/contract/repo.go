package contract

import (
	"time"

	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	Announcement() AnnouncementRepo
}

// AnnouncementRepo defines the contract for the announcement delivery log
type AnnouncementRepo interface {
	Create(announcement *entity.Announcement) error
	GetLastByEvent(eventID entity.EventID) (*entity.Announcement, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
}
