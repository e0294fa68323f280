package handlers

import (
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"trial-bot/bot"
	"trial-bot/utils/database"
)

// handleMessageCreate reposts stored messages when their trigger word is
// said on its own. Anything longer than a single word is never a trigger.
func handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate, b *bot.Bot) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}
	for _, disabled := range b.Config.GuildMessageDisabled {
		if m.GuildID == disabled {
			return
		}
	}

	word := strings.ToLower(strings.TrimSpace(m.Content))
	if word == "" || strings.ContainsAny(word, " \n\t") {
		return
	}

	shortcut, err := database.FindShortcut(b.DB, m.GuildID, word)
	if err != nil {
		log.Printf("Error looking up shortcut %q: %v", word, err)
		return
	}
	if shortcut == nil {
		return
	}

	source, err := s.ChannelMessage(shortcut.MessageChannelID, shortcut.MessageMessageID)
	if err != nil {
		log.Printf("Error fetching shortcut source message: %v", err)
		return
	}

	_, err = s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Content: source.Content,
		Embeds:  source.Embeds,
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Parse: []discordgo.AllowedMentionType{},
		},
	})
	if err != nil {
		log.Printf("Error reposting shortcut %q: %v", word, err)
	}
}
