package contract

import "github.com/bwmarrin/discordgo"

// DiscordSession defines the interface for Discord operations
// This allows mocking in tests while keeping the real implementation simple
type DiscordSession interface {
	// ChannelMessageSendComplex sends a message with embeds to a channel
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)

	// InteractionRespond replies to a slash command interaction
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error

	// ApplicationCommandBulkOverwrite registers the application's slash commands
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}
