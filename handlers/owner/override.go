// Package owner implements commands restricted to the configured owners.
package owner

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"trial-bot/bot"
	"trial-bot/guilds"
	"trial-bot/utils"
	"trial-bot/utils/database"
)

func authorize(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) bool {
	userID := utils.MemberID(i)
	if utils.IsOwner(b.Config, userID) {
		return true
	}
	if p, ok := guilds.Resolve(i.GuildID); ok {
		if utils.HasRole(i.Member, p.Roles.Owner) || utils.HasRole(i.Member, p.Roles.Admin) {
			return true
		}
	}
	utils.SendDeniedResponse(s, i, b.Config, "You are not allowed to manage overrides.")
	return false
}

func HandleGrant(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !authorize(s, i, b) {
		return
	}
	data := i.ApplicationCommandData()
	user := data.Options[0].UserValue(s)
	feature := data.Options[1].StringValue()

	if err := database.AddOverride(b.DB, user.ID, feature); err != nil {
		log.Printf("Error granting override: %v", err)
		utils.SendErrorResponse(s, i, "Failed to store the override.")
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("Granted the %s override to <@%s>.", feature, user.ID))
}

func HandleRevoke(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !authorize(s, i, b) {
		return
	}
	data := i.ApplicationCommandData()
	user := data.Options[0].UserValue(s)
	feature := data.Options[1].StringValue()

	removed, err := database.RemoveOverride(b.DB, user.ID, feature)
	if err != nil {
		log.Printf("Error revoking override: %v", err)
		utils.SendErrorResponse(s, i, "Failed to remove the override.")
		return
	}
	if !removed {
		utils.SendErrorResponse(s, i, fmt.Sprintf("<@%s> holds no %s override.", user.ID, feature))
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("Revoked the %s override from <@%s>.", feature, user.ID))
}
