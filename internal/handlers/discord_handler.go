package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/domain"
	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/domain/contract"
)

const commandName = "event"

// DiscordHandler serves the /event slash command: the bot's only inbound
// surface, restricted to administrators.
type DiscordHandler struct {
	session contract.DiscordSession
	events  contract.EventService
}

func New(session contract.DiscordSession, events contract.EventService) *DiscordHandler {
	return &DiscordHandler{
		session: session,
		events:  events,
	}
}

// Commands returns the slash command definitions registered at startup.
func Commands() []*discordgo.ApplicationCommand {
	eventChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.EventDisplayOrder))
	for _, id := range domain.EventDisplayOrder {
		eventChoices = append(eventChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  domain.EventNames[id],
			Value: string(id),
		})
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        commandName,
			Description: "Admin controls for Legend of YMIR events",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "toggle",
					Description: "Enable or disable an event",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "event",
							Description: "Which event to toggle",
							Required:    true,
							Choices:     eventChoices,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "state",
							Description: "Turn the event ON or OFF",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "ON", Value: "on"},
								{Name: "OFF", Value: "off"},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "View current event status",
				},
			},
		},
	}
}

// RegisterCommands overwrites the application's global slash commands.
func (h *DiscordHandler) RegisterCommands(appID string) error {
	if _, err := h.session.ApplicationCommandBulkOverwrite(appID, "", Commands()); err != nil {
		return fmt.Errorf("failed to register slash commands: %w", err)
	}
	return nil
}

// HandleInteraction is attached to the session with AddHandler.
func (h *DiscordHandler) HandleInteraction(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	if data.Name != commandName {
		return
	}

	if !isAdministrator(i) {
		h.respondText(i.Interaction, "❌ Admin only.", true)
		return
	}

	if len(data.Options) == 0 {
		h.respondText(i.Interaction, "❌ Unknown subcommand.", true)
		return
	}

	sub := data.Options[0]
	switch sub.Name {
	case "toggle":
		h.handleToggle(i.Interaction, sub)
	case "status":
		h.handleStatus(i.Interaction)
	default:
		h.respondText(i.Interaction, "❌ Unknown subcommand.", true)
	}
}

// isAdministrator checks the invoking member's resolved permission bits.
// Interactions without a member (DMs) are never administrators.
func isAdministrator(i *discordgo.InteractionCreate) bool {
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionAdministrator != 0
}

func (h *DiscordHandler) handleToggle(interaction *discordgo.Interaction, sub *discordgo.ApplicationCommandInteractionDataOption) {
	var eventID, state string
	for _, opt := range sub.Options {
		switch opt.Name {
		case "event":
			eventID = opt.StringValue()
		case "state":
			state = opt.StringValue()
		}
	}

	enabled, err := h.events.Toggle(eventID, state)
	if errors.Is(err, domain.ErrUnknownEvent) || errors.Is(err, domain.ErrInvalidState) {
		h.respondText(interaction, fmt.Sprintf("❌ %v", err), true)
		return
	}
	if err != nil {
		h.respondText(interaction, "❌ Something went wrong.", true)
		return
	}

	stateWord := "OFF"
	if enabled {
		stateWord = "ON"
	}

	// Already validated by Toggle.
	id, _ := domain.ParseEventID(eventID)
	h.respondText(interaction, fmt.Sprintf("✅ **%s** is now **%s**", domain.EventNames[id], stateWord), false)
}

func (h *DiscordHandler) handleStatus(interaction *discordgo.Interaction) {
	statuses := h.events.Status()

	var b strings.Builder
	for _, status := range statuses {
		state := "🔴 DISABLED"
		if status.Enabled {
			state = "🟢 ENABLED"
		}
		fmt.Fprintf(&b, "%s %s: %s\n", status.Icon, status.Name, state)
		if !status.NextStart.IsZero() {
			fmt.Fprintf(&b, "> Next start: %s\n", status.NextStart.Format("Mon 15:04"))
		}
		if status.LastAnnounced != nil {
			fmt.Fprintf(&b, "> Last announced: %s\n", status.LastAnnounced.Format("Mon 02 Jan 15:04"))
		}
	}

	embed := &discordgo.MessageEmbed{
		Title:       "📊 Event Status",
		Description: strings.TrimRight(b.String(), "\n"),
		Color:       domain.ColorReminder,
		Footer:      &discordgo.MessageEmbedFooter{Text: domain.EmbedFooter},
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	h.respond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

func (h *DiscordHandler) respondText(interaction *discordgo.Interaction, content string, ephemeral bool) {
	data := &discordgo.InteractionResponseData{Content: content}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	h.respond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// respond delivers the reply; a failure here is local to this one request.
func (h *DiscordHandler) respond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) {
	if err := h.session.InteractionRespond(interaction, resp); err != nil {
		log.Printf("Failed to respond to interaction: %v", err)
	}
}
