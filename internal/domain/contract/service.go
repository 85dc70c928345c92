package contract

import (
	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/domain/entity"
)

// EventService backs the two inbound admin operations.
type EventService interface {
	// Toggle parses and applies an enable/disable request. It returns the
	// resulting state, domain.ErrUnknownEvent for an unrecognized event id
	// and domain.ErrInvalidState for a state other than on/off; on error
	// the toggle store is left untouched.
	Toggle(eventID, state string) (bool, error)

	// Status returns a snapshot of every event in fixed display order.
	Status() []entity.EventStatus
}
