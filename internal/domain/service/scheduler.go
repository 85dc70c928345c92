package service

import (
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/clock"
	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/domain"
	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/domain/contract"
	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/domain/entity"
	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/toggles"
)

// scheduler drives the once-per-minute evaluation of the rule table and
// delivers whatever notifications the current minute produces.
type scheduler struct {
	rules     []entity.EventRule
	store     *toggles.Store
	clk       clock.Clock
	session   contract.DiscordSession
	dm        contract.DataManager
	channelID string
	rolePing  string
	stopChan  chan struct{}
	running   bool
}

func newScheduler(rules []entity.EventRule, store *toggles.Store, clk clock.Clock, session contract.DiscordSession, dm contract.DataManager, channelID, rolePing string) *scheduler {
	return &scheduler{
		rules:     rules,
		store:     store,
		clk:       clk,
		session:   session,
		dm:        dm,
		channelID: channelID,
		rolePing:  rolePing,
		stopChan:  make(chan struct{}),
	}
}

func (s *scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	log.Println("Scheduler starting...")
	go s.mainLoop()
}

func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	log.Println("Scheduler stopping...")
	close(s.stopChan)
	s.running = false
}

func (s *scheduler) mainLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	// Guard against ticker jitter landing two firings inside the same
	// wall-clock minute. Matching is exact equality on (hour, minute), so
	// a minute whose firing is skipped entirely is lost for the day; there
	// is no backfill.
	var lastMinute string

	for {
		select {
		case <-ticker.C:
			tick := s.clk.Tick()
			minute := fmt.Sprintf("%d %02d:%02d", tick.Weekday, tick.Hour, tick.Minute)
			if minute == lastMinute {
				continue
			}
			lastMinute = minute
			s.runTick(tick)

		case <-s.stopChan:
			return
		}
	}
}

// runTick delivers every notification the tick produces. A delivery
// failure is logged and must not stop the remaining notifications.
func (s *scheduler) runTick(tick entity.Tick) {
	for _, notification := range evaluateTick(s.rules, tick, s.store.Get) {
		if err := s.deliver(notification); err != nil {
			log.Printf("Failed to deliver %s %s notification: %v", notification.Event, notification.Phase, err)
			continue
		}
		s.record(notification)
	}
}

// evaluateTick is the scheduling core: a pure function from (rules, tick,
// toggle state) to the set of notifications that fire this minute.
func evaluateTick(rules []entity.EventRule, tick entity.Tick, enabled func(entity.EventID) bool) []entity.Notification {
	var out []entity.Notification

	for _, rule := range rules {
		if !enabled(rule.ID) {
			continue
		}
		if !rule.AppliesOn(tick.Weekday) {
			continue
		}

		weekend := tick.IsWeekend()
		for _, start := range rule.StartTimes {
			reminder := start.Minus(domain.ReminderLeadMinutes)
			if reminder.Matches(tick) {
				content := rule.ContentFor(entity.PhaseReminder, weekend)
				out = append(out, entity.Notification{
					Event: rule.ID,
					Phase: entity.PhaseReminder,
					Title: content.Title,
					Body:  content.Body,
					Color: domain.ColorReminder,
					At:    reminder,
				})
			}
			if start.Matches(tick) {
				content := rule.ContentFor(entity.PhaseStart, weekend)
				out = append(out, entity.Notification{
					Event: rule.ID,
					Phase: entity.PhaseStart,
					Title: content.Title,
					Body:  content.Body,
					Color: domain.ColorStart,
					At:    start,
				})
			}
		}
	}

	return out
}

func (s *scheduler) deliver(notification entity.Notification) error {
	embed := &discordgo.MessageEmbed{
		Title:       notification.Title,
		Description: notification.Body,
		Color:       notification.Color,
		Footer:      &discordgo.MessageEmbedFooter{Text: domain.EmbedFooter},
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	_, err := s.session.ChannelMessageSendComplex(s.channelID, &discordgo.MessageSend{
		Content: s.rolePing,
		Embeds:  []*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		return fmt.Errorf("failed to send Discord message: %w", err)
	}

	log.Printf("Announced %s %s for %s", notification.Event, notification.Phase, notification.At)
	return nil
}

// record appends the delivered notification to the announcement log.
// The log is informational, so a failed insert only logs.
func (s *scheduler) record(notification entity.Notification) {
	announcement := &entity.Announcement{
		EventID: string(notification.Event),
		Phase:   string(notification.Phase),
		Title:   notification.Title,
		FiredAt: s.clk.Now(),
	}
	if err := s.dm.Announcement().Create(announcement); err != nil {
		log.Printf("Failed to record announcement for %s: %v", notification.Event, err)
	}
}
