package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/domain/entity"
)

// Known event identifiers. These are the values exposed in the slash
// command choices, so they must stay stable.
const (
	EventLoki      entity.EventID = "loki"
	EventYmirCup   entity.EventID = "ymircup"
	EventGrowthHot entity.EventID = "growthhot"
)

// EventDisplayOrder is the fixed order used by the status command.
var EventDisplayOrder = []entity.EventID{EventLoki, EventYmirCup, EventGrowthHot}

// EventNames maps event identifiers to their display names.
var EventNames = map[entity.EventID]string{
	EventLoki:      "Phantom of Loki",
	EventYmirCup:   "YMIR Cup",
	EventGrowthHot: "Growth Hot Time",
}

// EventIcons maps event identifiers to the emoji used in status output.
var EventIcons = map[entity.EventID]string{
	EventLoki:      "🧊",
	EventYmirCup:   "🏆",
	EventGrowthHot: "📈",
}

// Embed colors for the two notification phases.
const (
	ColorReminder = 0x3498DB
	ColorStart    = 0xE74C3C
)

// ReminderLeadMinutes is how long before an event's start time its
// reminder fires.
const ReminderLeadMinutes = 10

// EmbedFooter is attached to every outbound embed.
const EmbedFooter = "Legend of YMIR • Server Time (UTC+8)"

var (
	ErrUnknownEvent = errors.New("unknown event")
	ErrInvalidState = errors.New("state must be on or off")
)

// ParseEventID validates a raw event identifier from a command request.
func ParseEventID(raw string) (entity.EventID, error) {
	id := entity.EventID(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := EventNames[id]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEvent, raw)
	}
	return id, nil
}

// ParseState converts an on/off command argument to a boolean.
func ParseState(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidState, raw)
	}
}
