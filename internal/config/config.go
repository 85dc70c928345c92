package config

import (
	"fmt"
	"os"
)

type Config struct {
	DiscordToken string
	DiscordAppID string
	ChannelID    string
	RoleID       string
	DatabasePath string
}

func Load() *Config {
	return &Config{
		DiscordToken: getEnv("DISCORD_TOKEN", ""),
		DiscordAppID: getEnv("DISCORD_APP_ID", ""),
		ChannelID:    getEnv("CHANNEL_ID", ""),
		RoleID:       getEnv("ROLE_ID", ""),
		DatabasePath: getEnv("DATABASE_PATH", "./events.db"),
	}
}

// RoleMention renders the configured role as Discord mention text, or
// empty when no role is configured.
func (c *Config) RoleMention() string {
	if c.RoleID == "" {
		return ""
	}
	return fmt.Sprintf("<@&%s>", c.RoleID)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
