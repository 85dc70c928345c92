package entity

import (
	"fmt"
	"time"
)

// EventID identifies a schedulable in-game event.
type EventID string

// Phase distinguishes the two notifications an event produces per start time.
type Phase string

const (
	PhaseReminder Phase = "reminder"
	PhaseStart    Phase = "start"
)

// ClockTime is a wall-clock time of day in the shifted server frame.
type ClockTime struct {
	Hour   int
	Minute int
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Minus returns the clock time the given number of minutes earlier,
// borrowing from the hour when needed. Wrapping past midnight is the
// caller's problem; rule validation rejects rules that would need it.
func (c ClockTime) Minus(minutes int) ClockTime {
	total := c.Hour*60 + c.Minute - minutes
	for total < 0 {
		total += 24 * 60
	}
	return ClockTime{Hour: total / 60, Minute: total % 60}
}

// Matches reports whether the tick's hour and minute equal this clock time.
func (c ClockTime) Matches(t Tick) bool {
	return t.Hour == c.Hour && t.Minute == c.Minute
}

// Tick is one minute-granularity observation of server time. Weekday uses
// Go's convention (Sunday = 0), which is also the convention of the game's
// published schedule.
type Tick struct {
	Weekday time.Weekday
	Hour    int
	Minute  int
}

// IsWeekend reports whether the tick falls on Saturday or Sunday.
func (t Tick) IsWeekend() bool {
	return t.Weekday == time.Saturday || t.Weekday == time.Sunday
}

// Content is the rendered title and body of one notification.
type Content struct {
	Title string
	Body  string
}

// EventRule is the static schedule definition for one event.
type EventRule struct {
	ID EventID

	// ActiveDays restricts the rule to the listed weekdays. A nil or empty
	// slice means the event runs every day.
	ActiveDays []time.Weekday

	// StartTimes lists the event's daily start times. A reminder fires a
	// fixed lead time before each of them.
	StartTimes []ClockTime

	Reminder Content
	Start    Content

	// Weekend variants override the base content on Saturday and Sunday
	// when set. Only Growth Hot Time uses them.
	WeekendReminder *Content
	WeekendStart    *Content
}

// AppliesOn reports whether the rule is active on the given weekday.
func (r EventRule) AppliesOn(d time.Weekday) bool {
	if len(r.ActiveDays) == 0 {
		return true
	}
	for _, day := range r.ActiveDays {
		if day == d {
			return true
		}
	}
	return false
}

// ContentFor selects the message content for a phase, using the weekend
// variant when one is defined and the tick falls on a weekend.
func (r EventRule) ContentFor(phase Phase, weekend bool) Content {
	switch phase {
	case PhaseStart:
		if weekend && r.WeekendStart != nil {
			return *r.WeekendStart
		}
		return r.Start
	default:
		if weekend && r.WeekendReminder != nil {
			return *r.WeekendReminder
		}
		return r.Reminder
	}
}

// Notification is the scheduler's only output: one message to deliver to
// the configured channel.
type Notification struct {
	Event EventID
	Phase Phase
	Title string
	Body  string
	Color int
	At    ClockTime
}

// Announcement is one row of the delivery log: a notification that was
// actually sent.
type Announcement struct {
	ID        int64     `db:"id"`
	EventID   string    `db:"event_id"`
	Phase     string    `db:"phase"`
	Title     string    `db:"title"`
	FiredAt   time.Time `db:"fired_at"`
	CreatedAt time.Time `db:"created_at"`
}

// EventStatus is one row of the status snapshot shown by the status command.
type EventStatus struct {
	ID      EventID
	Name    string
	Icon    string
	Enabled bool

	// NextStart is the next scheduled start occurrence in server time.
	// Zero when the rule has no upcoming occurrence.
	NextStart time.Time

	// LastAnnounced is the fired time of the most recent delivered
	// announcement for this event, nil when the log has none.
	LastAnnounced *time.Time
}
