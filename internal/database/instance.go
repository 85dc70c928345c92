package database

import (
	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	announcementRepo contract.AnnouncementRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	return &instance{
		announcementRepo: newAnnouncementRepository(db.conn),
	}
}

// Announcement returns the announcement repository
func (i *instance) Announcement() contract.AnnouncementRepo {
	return i.announcementRepo
}
