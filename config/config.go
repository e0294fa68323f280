// Package config loads process configuration from the environment.
package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"trial-bot/model"
)

// Load loads the configuration from environment variables.
func Load() (*model.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: .env file not found, relying on environment variables")
	}

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		log.Fatal("Error: BOT_TOKEN environment variable not set")
	}

	appID := os.Getenv("APP_ID")
	if appID == "" {
		log.Fatal("Error: APP_ID environment variable not set")
	}

	logChannelID := os.Getenv("LOG_CHANNEL_ID")
	if logChannelID == "" {
		log.Println("Warning: LOG_CHANNEL_ID not set, startup logging will be disabled")
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "data/trials.db"
	}

	cfg := &model.Config{
		BotToken:             token,
		AppID:                appID,
		LogChannelID:         logChannelID,
		DatabasePath:         dbPath,
		OwnerUserIDs:         splitList(os.Getenv("OWNER_USER_IDS")),
		GuildMessageDisabled: splitList(os.Getenv("GUILD_MESSAGE_DISABLED")),
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
