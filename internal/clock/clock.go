// Package clock supplies server time in the game's fixed UTC+8 frame.
// The shift is applied here, once, so everything downstream compares a
// single normalized (weekday, hour, minute) tuple and never touches the
// host timezone.
package clock

import (
	"time"

	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/domain/entity"
)

// ServerOffsetHours is the game server's fixed offset from UTC.
const ServerOffsetHours = 8

// Clock provides the current server time. It exists as an interface so
// the scheduler and event service can be tested against arbitrary times.
type Clock interface {
	// Now returns the current instant in the server timezone.
	Now() time.Time

	// Tick returns the current minute-granularity tick in the server
	// timezone.
	Tick() entity.Tick
}

// ServerClock is the production Clock, backed by the system time.
type ServerClock struct {
	loc *time.Location
}

// NewServerClock returns a clock pinned to UTC+8 regardless of the
// process's local timezone configuration.
func NewServerClock() *ServerClock {
	return &ServerClock{
		loc: time.FixedZone("UTC+8", ServerOffsetHours*60*60),
	}
}

// Location returns the server timezone.
func (c *ServerClock) Location() *time.Location {
	return c.loc
}

func (c *ServerClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *ServerClock) Tick() entity.Tick {
	return TickOf(c.Now())
}

// TickOf decomposes an instant into its tick in the instant's own location.
func TickOf(t time.Time) entity.Tick {
	return entity.Tick{
		Weekday: t.Weekday(),
		Hour:    t.Hour(),
		Minute:  t.Minute(),
	}
}
