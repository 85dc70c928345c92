package service

import (
	"log"
	"time"

	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/clock"
	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/domain"
	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/domain/contract"
	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/domain/entity"
	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/toggles"
)

// eventService implements contract.EventService on top of the toggle
// store, the rule table and the announcement log.
type eventService struct {
	rules []entity.EventRule
	store *toggles.Store
	dm    contract.DataManager
	clk   clock.Clock
}

func newEvents(rules []entity.EventRule, store *toggles.Store, dm contract.DataManager, clk clock.Clock) *eventService {
	return &eventService{
		rules: rules,
		store: store,
		dm:    dm,
		clk:   clk,
	}
}

// Toggle applies an admin enable/disable request. The store is only
// mutated after both arguments validate.
func (s *eventService) Toggle(eventID, state string) (bool, error) {
	id, err := domain.ParseEventID(eventID)
	if err != nil {
		return false, err
	}

	enabled, err := domain.ParseState(state)
	if err != nil {
		return false, err
	}

	s.store.Set(id, enabled)
	return enabled, nil
}

// Status returns one row per known event in fixed display order. A failed
// log lookup degrades that row's LastAnnounced to nil instead of failing
// the whole snapshot.
func (s *eventService) Status() []entity.EventStatus {
	now := s.clk.Now()

	out := make([]entity.EventStatus, 0, len(domain.EventDisplayOrder))
	for _, id := range domain.EventDisplayOrder {
		status := entity.EventStatus{
			ID:      id,
			Name:    domain.EventNames[id],
			Icon:    domain.EventIcons[id],
			Enabled: s.store.Get(id),
		}

		if rule, ok := s.ruleFor(id); ok {
			status.NextStart = nextOccurrence(rule, now)
		}

		last, err := s.dm.Announcement().GetLastByEvent(id)
		if err != nil {
			log.Printf("Failed to read announcement log for %s: %v", id, err)
		} else if last != nil {
			firedAt := last.FiredAt.In(now.Location())
			status.LastAnnounced = &firedAt
		}

		out = append(out, status)
	}
	return out
}

func (s *eventService) ruleFor(id entity.EventID) (entity.EventRule, bool) {
	for _, rule := range s.rules {
		if rule.ID == id {
			return rule, true
		}
	}
	return entity.EventRule{}, false
}

// nextOccurrence finds the earliest start instant strictly after now.
// It walks up to a full week of days, so any rule with at least one
// active day always resolves.
func nextOccurrence(rule entity.EventRule, now time.Time) time.Time {
	for i := 0; i <= 7; i++ {
		day := now.AddDate(0, 0, i)
		if !rule.AppliesOn(day.Weekday()) {
			continue
		}
		for _, start := range rule.StartTimes {
			candidate := time.Date(day.Year(), day.Month(), day.Day(), start.Hour, start.Minute, 0, 0, now.Location())
			if candidate.After(now) {
				return candidate
			}
		}
	}
	return time.Time{}
}
