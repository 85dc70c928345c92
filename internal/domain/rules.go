package domain

import (
	"fmt"
	"time"

	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/domain/entity"
)

// defaultRules is the static schedule for the three announced events.
// All times are in the shifted UTC+8 server frame.
var defaultRules = mustRules([]entity.EventRule{
	{
		ID:         EventLoki,
		ActiveDays: []time.Weekday{time.Tuesday, time.Thursday, time.Saturday},
		StartTimes: []entity.ClockTime{
			{Hour: 12, Minute: 0},
			{Hour: 22, Minute: 0},
		},
		Reminder: entity.Content{
			Title: "🧊 Phantom of Loki",
			Body:  "⏰ **10 MINUTES LEFT**\nPrepare your team and supplies!",
		},
		Start: entity.Content{
			Title: "🔥 PHANTOM OF LOKI HAS SPAWNED!",
			Body:  "⚔️ Click the boss icon to teleport.\n🎁 Hit at least once for rewards!",
		},
	},
	{
		ID:         EventYmirCup,
		ActiveDays: []time.Weekday{time.Friday},
		StartTimes: []entity.ClockTime{
			{Hour: 20, Minute: 0},
		},
		Reminder: entity.Content{
			Title: "🏆 YMIR Cup",
			Body:  "⏰ **10 MINUTES LEFT**\nTop clans prepare for battle!",
		},
		Start: entity.Content{
			Title: "🏆 YMIR CUP HAS STARTED!",
			Body:  "🔥 Inter-server battle begins now!",
		},
	},
	{
		ID: EventGrowthHot, // every day
		StartTimes: []entity.ClockTime{
			{Hour: 20, Minute: 0},
		},
		Reminder: entity.Content{
			Title: "📈 Growth Hot Time Incoming",
			Body: "⚔️ **WEEKDAY BUFFS**\nHunting EXP +20% for:\n" +
				"• Crossroads of Ragnarok: + PvP DEF +50%\n" +
				"• Hall of Valkyrie (Normal)",
		},
		Start: entity.Content{
			Title: "📈 GROWTH HOT TIME HAS STARTED!",
			Body:  "🔥 EXP & bonuses active until **24:00**!",
		},
		WeekendReminder: &entity.Content{
			Title: "📈 Growth Hot Time Incoming",
			Body: "🔥 **WEEKEND BUFFS**\n" +
				"• Glasir Forest: EXP +40%\n" +
				"• Hermod's Crossroads: EXP +40%\n" +
				"• Crossroads of Ragnarok: EXP +20% / PvP DEF +50%\n" +
				"• Hall of Valkyrie (Inter) +20%",
		},
		WeekendStart: &entity.Content{
			Title: "📈 GROWTH HOT TIME HAS STARTED!",
			Body:  "🔥 Weekend EXP & bonuses active until **24:00**!",
		},
	},
})

// DefaultRules returns the validated rule table. Callers must not mutate
// the returned slice.
func DefaultRules() []entity.EventRule {
	return defaultRules
}

// ValidateRules checks a rule table for definition mistakes: unknown ids,
// duplicate rules, out-of-range times or weekdays, and start times too
// close to midnight for the reminder to land on the same day.
func ValidateRules(rules []entity.EventRule) error {
	seen := make(map[entity.EventID]bool)
	for _, rule := range rules {
		if _, ok := EventNames[rule.ID]; !ok {
			return fmt.Errorf("rule %q: %w", rule.ID, ErrUnknownEvent)
		}
		if seen[rule.ID] {
			return fmt.Errorf("rule %q: duplicate rule", rule.ID)
		}
		seen[rule.ID] = true

		if len(rule.StartTimes) == 0 {
			return fmt.Errorf("rule %q: no start times", rule.ID)
		}
		for _, day := range rule.ActiveDays {
			if day < time.Sunday || day > time.Saturday {
				return fmt.Errorf("rule %q: invalid weekday %d", rule.ID, day)
			}
		}
		for i, start := range rule.StartTimes {
			if start.Hour < 0 || start.Hour > 23 || start.Minute < 0 || start.Minute > 59 {
				return fmt.Errorf("rule %q: invalid start time %s", rule.ID, start)
			}
			// Start times must be ascending so next-occurrence walks can
			// take the first future candidate of a day.
			if i > 0 {
				prev := rule.StartTimes[i-1]
				if prev.Hour*60+prev.Minute >= start.Hour*60+start.Minute {
					return fmt.Errorf("rule %q: start times not ascending at %s", rule.ID, start)
				}
			}
			// The reminder must land on the same calendar day as the
			// start, otherwise the day-of-week filter would apply to
			// the wrong day.
			if start.Hour*60+start.Minute < ReminderLeadMinutes {
				return fmt.Errorf("rule %q: start time %s leaves no room for a same-day reminder", rule.ID, start)
			}
		}
		if rule.Reminder.Title == "" || rule.Start.Title == "" {
			return fmt.Errorf("rule %q: missing content", rule.ID)
		}
	}
	return nil
}

func mustRules(rules []entity.EventRule) []entity.EventRule {
	if err := ValidateRules(rules); err != nil {
		panic(err)
	}
	return rules
}
