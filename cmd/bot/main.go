package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/clock"
	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/config"
	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/database"
	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/domain/service"
	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/handlers"
	"github.com/nerlpattackers/ymir-discord-bot-clean/migrator/sqlite"
)

// announcementRetention bounds how far back the delivery log is kept.
const announcementRetention = 30 * 24 * time.Hour

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()
	if cfg.DiscordToken == "" {
		log.Fatal("DISCORD_TOKEN is required")
	}
	if cfg.ChannelID == "" {
		log.Fatal("CHANNEL_ID is required")
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	dm := database.NewInstance(db)

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds
	// Bound outbound calls so a stuck delivery cannot starve later ticks.
	session.Client.Timeout = 10 * time.Second

	clk := clock.NewServerClock()
	services := service.NewInstance(dm, session, clk, cfg.ChannelID, cfg.RoleMention())

	handler := handlers.New(session, services.Events)
	session.AddHandler(handler.HandleInteraction)

	if err := session.Open(); err != nil {
		log.Fatalf("Failed to connect to Discord gateway: %v", err)
	}
	defer session.Close()

	// The target channel must resolve at boot; anything later is a
	// per-tick delivery failure instead.
	if _, err := session.Channel(cfg.ChannelID); err != nil {
		log.Fatalf("Configured channel %s is unavailable: %v", cfg.ChannelID, err)
	}

	if err := handler.RegisterCommands(cfg.DiscordAppID); err != nil {
		log.Fatalf("Failed to register commands: %v", err)
	}
	log.Println("Slash commands registered")

	if _, err := session.ChannelMessageSend(cfg.ChannelID, "✅ **Legend of YMIR Event Bot is ONLINE**"); err != nil {
		log.Printf("Failed to send online message: %v", err)
	}

	if deleted, err := dm.Announcement().DeleteOlderThan(time.Now().Add(-announcementRetention)); err != nil {
		log.Printf("Failed to prune announcement log: %v", err)
	} else if deleted > 0 {
		log.Printf("Pruned %d old announcement log rows", deleted)
	}

	services.Scheduler.Start()
	defer services.Scheduler.Stop()

	log.Println("Bot is running. Press Ctrl+C to exit.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
}
