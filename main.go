package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"trial-bot/bot"
	"trial-bot/config"
	"trial-bot/guilds"
	"trial-bot/handlers"
	"trial-bot/utils/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	if err := guilds.Validate(); err != nil {
		log.Fatalf("Error validating guild tables: %v", err)
	}

	db, err := database.Init(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	b, err := bot.New(cfg, db)
	if err != nil {
		log.Fatalf("Error creating bot: %v", err)
	}

	handlers.Register(b)

	if err := b.Open(); err != nil {
		log.Fatalf("Error connecting to Discord: %v", err)
	}
	defer b.Close()

	log.Println("Bot is running. Press CTRL-C to exit.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
}
