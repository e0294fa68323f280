// Package bot owns the Discord session and everything handlers need to do
// their work. Handlers receive the Bot explicitly instead of reaching for
// globals.
package bot

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"

	"trial-bot/commands"
	"trial-bot/guilds"
	"trial-bot/model"
)

type Bot struct {
	Session            *discordgo.Session
	Config             *model.Config
	DB                 *sqlx.DB
	CommandHandlers    map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)
	RegisteredCommands []*discordgo.ApplicationCommand
}

func New(cfg *model.Config, db *sqlx.DB) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent
	dg.StateEnabled = false

	return &Bot{
		Session: dg,
		Config:  cfg,
		DB:      db,
	}, nil
}

// Open connects the gateway and registers the slash commands on every
// configured guild.
func (b *Bot) Open() error {
	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("failed to open gateway connection: %w", err)
	}
	return b.syncCommands()
}

func (b *Bot) syncCommands() error {
	cmds := commands.GenerateCommands()
	for _, guildID := range guilds.GuildIDs() {
		registered, err := b.Session.ApplicationCommandBulkOverwrite(b.Config.AppID, guildID, cmds)
		if err != nil {
			return fmt.Errorf("failed to register commands on guild %s: %w", guildID, err)
		}
		b.RegisteredCommands = append(b.RegisteredCommands, registered...)
		log.Printf("Registered %d commands on guild %s", len(registered), guildID)
	}
	return nil
}

// Close shuts the gateway and database down.
func (b *Bot) Close() {
	log.Println("Gracefully shutting down.")
	if err := b.Session.Close(); err != nil {
		log.Printf("Error closing session: %v", err)
	}
	if err := b.DB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}
