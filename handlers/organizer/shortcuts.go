// Package organizer implements the organizer tier's utility commands.
package organizer

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"trial-bot/bot"
	"trial-bot/guilds"
	"trial-bot/model"
	"trial-bot/utils"
	"trial-bot/utils/database"
)

func authorize(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) (*guilds.Profile, bool) {
	p, ok := guilds.Resolve(i.GuildID)
	if !ok {
		utils.SendErrorResponse(s, i, "This guild is not configured.")
		return nil, false
	}
	userID := utils.MemberID(i)
	if !utils.IsOwner(b.Config, userID) && !utils.HasAnyRole(i.Member, p.Roles.RejectTier()) {
		utils.SendDeniedResponse(s, i, b.Config, "You are not allowed to manage message shortcuts.")
		return nil, false
	}
	return p, true
}

func HandleManageMessageShortcut(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if _, ok := authorize(s, i, b); !ok {
		return
	}

	data := i.ApplicationCommandData()
	var action, word, link string
	for _, opt := range data.Options {
		switch opt.Name {
		case "action":
			action = opt.StringValue()
		case "shortcut":
			word = strings.ToLower(strings.TrimSpace(opt.StringValue()))
		case "message_link":
			link = opt.StringValue()
		}
	}

	switch action {
	case "add":
		if word == "" || link == "" {
			utils.SendErrorResponse(s, i, "Adding needs both a shortcut and a message link.")
			return
		}
		msgGuild, msgChannel, msgID, err := utils.ParseMessageLink(link)
		if err != nil {
			utils.SendErrorResponse(s, i, err.Error())
			return
		}
		// Make sure the message actually exists before binding a word to it.
		if _, err := s.ChannelMessage(msgChannel, msgID); err != nil {
			utils.SendErrorResponse(s, i, "That message could not be fetched.")
			return
		}
		err = database.AddShortcut(b.DB, model.MessageShortcut{
			GuildID:          i.GuildID,
			Shortcut:         word,
			MessageGuildID:   msgGuild,
			MessageChannelID: msgChannel,
			MessageMessageID: msgID,
		})
		if err != nil {
			log.Printf("Error adding shortcut: %v", err)
			utils.SendErrorResponse(s, i, "Failed to add the shortcut, the word may already be taken.")
			return
		}
		utils.SendSimpleResponse(s, i, fmt.Sprintf("Bound `%s` to %s.", word, link))

	case "remove":
		if word == "" {
			utils.SendErrorResponse(s, i, "Removing needs the shortcut word.")
			return
		}
		removed, err := database.DeleteShortcutByName(b.DB, i.GuildID, word)
		if err != nil {
			log.Printf("Error removing shortcut: %v", err)
			utils.SendErrorResponse(s, i, "Failed to remove the shortcut.")
			return
		}
		if !removed {
			utils.SendErrorResponse(s, i, fmt.Sprintf("No shortcut `%s` exists.", word))
			return
		}
		utils.SendSimpleResponse(s, i, fmt.Sprintf("Removed `%s`.", word))

	case "remove-message":
		if link == "" {
			utils.SendErrorResponse(s, i, "Removing by message needs the message link.")
			return
		}
		_, _, msgID, err := utils.ParseMessageLink(link)
		if err != nil {
			utils.SendErrorResponse(s, i, err.Error())
			return
		}
		n, err := database.DeleteShortcutsByMessage(b.DB, i.GuildID, msgID)
		if err != nil {
			log.Printf("Error removing shortcuts: %v", err)
			utils.SendErrorResponse(s, i, "Failed to remove the shortcuts.")
			return
		}
		utils.SendSimpleResponse(s, i, fmt.Sprintf("Removed %d shortcuts of that message.", n))

	default:
		utils.SendErrorResponse(s, i, "Unknown action.")
	}
}

func HandleListMessageShortcut(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if _, ok := authorize(s, i, b); !ok {
		return
	}

	shortcuts, err := database.ListShortcuts(b.DB, i.GuildID)
	if err != nil {
		log.Printf("Error listing shortcuts: %v", err)
		utils.SendErrorResponse(s, i, "Failed to list shortcuts.")
		return
	}
	if len(shortcuts) == 0 {
		utils.SendSimpleResponse(s, i, "No shortcuts registered in this guild.")
		return
	}

	var b2 strings.Builder
	for _, sc := range shortcuts {
		fmt.Fprintf(&b2, "`%s` → %s\n",
			sc.Shortcut, utils.MessageLink(sc.MessageGuildID, sc.MessageChannelID, sc.MessageMessageID))
	}
	utils.SendSimpleResponse(s, i, b2.String())
}
