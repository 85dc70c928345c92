package handlers

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/domain"
	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/domain/entity"
	"github.com/nerlpattackers/ymir-discord-bot-clean/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerMocks struct {
	session *mocks.MockDiscordSession
	events  *mocks.MockEventService
}

func newHandlerTest(t *testing.T) (m handlerMocks, handler *DiscordHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = handlerMocks{
		session: mocks.NewMockDiscordSession(ctrl),
		events:  mocks.NewMockEventService(ctrl),
	}
	handler = New(m.session, m.events)

	return
}

func commandInteraction(sub string, opts []*discordgo.ApplicationCommandInteractionDataOption, perms int64) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: "event",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{
						Name:    sub,
						Type:    discordgo.ApplicationCommandOptionSubCommand,
						Options: opts,
					},
				},
			},
			Member: &discordgo.Member{Permissions: perms},
		},
	}
}

func toggleOptions(event, state string) []*discordgo.ApplicationCommandInteractionDataOption {
	return []*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "event", Type: discordgo.ApplicationCommandOptionString, Value: event},
		{Name: "state", Type: discordgo.ApplicationCommandOptionString, Value: state},
	}
}

func captureResponse(m handlerMocks, dst **discordgo.InteractionResponse) *gomock.Call {
	return m.session.EXPECT().
		InteractionRespond(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
			*dst = resp
			return nil
		})
}

func TestHandleInteraction_DeniesNonAdministrator(t *testing.T) {
	m, handler, ctrl := newHandlerTest(t)
	defer ctrl.Finish()

	var resp *discordgo.InteractionResponse
	captureResponse(m, &resp)

	// No Toggle expectation: the store must not be touched.
	handler.HandleInteraction(nil, commandInteraction("toggle", toggleOptions("loki", "off"), 0))

	require.NotNil(t, resp)
	assert.Equal(t, "❌ Admin only.", resp.Data.Content)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, resp.Data.Flags)
}

func TestHandleInteraction_DeniesWithoutMember(t *testing.T) {
	m, handler, ctrl := newHandlerTest(t)
	defer ctrl.Finish()

	var resp *discordgo.InteractionResponse
	captureResponse(m, &resp)

	i := commandInteraction("status", nil, discordgo.PermissionAdministrator)
	i.Member = nil
	handler.HandleInteraction(nil, i)

	require.NotNil(t, resp)
	assert.Equal(t, "❌ Admin only.", resp.Data.Content)
}

func TestHandleInteraction_Toggle(t *testing.T) {
	t.Run("Should confirm a successful toggle in channel", func(t *testing.T) {
		m, handler, ctrl := newHandlerTest(t)
		defer ctrl.Finish()

		m.events.EXPECT().Toggle("loki", "off").Return(false, nil)

		var resp *discordgo.InteractionResponse
		captureResponse(m, &resp)

		handler.HandleInteraction(nil, commandInteraction("toggle", toggleOptions("loki", "off"), discordgo.PermissionAdministrator))

		require.NotNil(t, resp)
		assert.Equal(t, "✅ **Phantom of Loki** is now **OFF**", resp.Data.Content)
		assert.Zero(t, resp.Data.Flags, "confirmation should be visible to the channel")
	})

	t.Run("Should surface a validation error ephemerally", func(t *testing.T) {
		m, handler, ctrl := newHandlerTest(t)
		defer ctrl.Finish()

		m.events.EXPECT().Toggle("serverbattle", "on").Return(false, domain.ErrUnknownEvent)

		var resp *discordgo.InteractionResponse
		captureResponse(m, &resp)

		handler.HandleInteraction(nil, commandInteraction("toggle", toggleOptions("serverbattle", "on"), discordgo.PermissionAdministrator))

		require.NotNil(t, resp)
		assert.Contains(t, resp.Data.Content, "unknown event")
		assert.Equal(t, discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	})

	t.Run("Should surface a malformed state ephemerally", func(t *testing.T) {
		m, handler, ctrl := newHandlerTest(t)
		defer ctrl.Finish()

		m.events.EXPECT().Toggle("loki", "banana").Return(false, domain.ErrInvalidState)

		var resp *discordgo.InteractionResponse
		captureResponse(m, &resp)

		handler.HandleInteraction(nil, commandInteraction("toggle", toggleOptions("loki", "banana"), discordgo.PermissionAdministrator))

		require.NotNil(t, resp)
		assert.Contains(t, resp.Data.Content, "state must be on or off")
		assert.Equal(t, discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	})
}

func TestHandleInteraction_Status(t *testing.T) {
	m, handler, ctrl := newHandlerTest(t)
	defer ctrl.Finish()

	lastAnnounced := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)
	m.events.EXPECT().Status().Return([]entity.EventStatus{
		{ID: domain.EventLoki, Name: "Phantom of Loki", Icon: "🧊", Enabled: true, NextStart: time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)},
		{ID: domain.EventYmirCup, Name: "YMIR Cup", Icon: "🏆", Enabled: false},
		{ID: domain.EventGrowthHot, Name: "Growth Hot Time", Icon: "📈", Enabled: true, LastAnnounced: &lastAnnounced},
	})

	var resp *discordgo.InteractionResponse
	captureResponse(m, &resp)

	handler.HandleInteraction(nil, commandInteraction("status", nil, discordgo.PermissionAdministrator))

	require.NotNil(t, resp)
	require.Len(t, resp.Data.Embeds, 1)

	embed := resp.Data.Embeds[0]
	assert.Equal(t, "📊 Event Status", embed.Title)
	assert.Contains(t, embed.Description, "🧊 Phantom of Loki: 🟢 ENABLED")
	assert.Contains(t, embed.Description, "🏆 YMIR Cup: 🔴 DISABLED")
	assert.Contains(t, embed.Description, "📈 Growth Hot Time: 🟢 ENABLED")
	assert.Contains(t, embed.Description, "Next start: Tue 12:00")
	assert.Contains(t, embed.Description, "Last announced: Mon 01 Jan 20:00")
	require.NotNil(t, embed.Footer)
	assert.Equal(t, domain.EmbedFooter, embed.Footer.Text)
}

func TestHandleInteraction_IgnoresOtherInteractions(t *testing.T) {
	_, handler, ctrl := newHandlerTest(t)
	defer ctrl.Finish()

	// Neither service nor session may be called.
	handler.HandleInteraction(nil, &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{Type: discordgo.InteractionPing},
	})

	handler.HandleInteraction(nil, &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{Name: "unrelated"},
			Member: &discordgo.Member{
				Permissions: discordgo.PermissionAdministrator,
			},
		},
	})
}

func TestRegisterCommands(t *testing.T) {
	m, handler, ctrl := newHandlerTest(t)
	defer ctrl.Finish()

	m.session.EXPECT().
		ApplicationCommandBulkOverwrite("app-1", "", gomock.Any()).
		DoAndReturn(func(_, _ string, commands []*discordgo.ApplicationCommand, _ ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
			require.Len(t, commands, 1)
			assert.Equal(t, "event", commands[0].Name)
			require.Len(t, commands[0].Options, 2)
			assert.Equal(t, "toggle", commands[0].Options[0].Name)
			assert.Equal(t, "status", commands[0].Options[1].Name)
			return commands, nil
		})

	require.NoError(t, handler.RegisterCommands("app-1"))
}
