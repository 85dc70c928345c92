package service

import (
	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/clock"
	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/domain"
	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/domain/contract"
	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/toggles"
)

type Instance struct {
	Events    *eventService
	Scheduler *scheduler
}

// NewInstance wires the event service and the scheduler around one shared
// toggle store and the validated default rule table.
func NewInstance(dm contract.DataManager, session contract.DiscordSession, clk clock.Clock, channelID, rolePing string) *Instance {
	rules := domain.DefaultRules()
	store := toggles.New(domain.EventDisplayOrder...)

	return &Instance{
		Events:    newEvents(rules, store, dm, clk),
		Scheduler: newScheduler(rules, store, clk, session, dm, channelID, rolePing),
	}
}
