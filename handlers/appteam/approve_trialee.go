// Package appteam implements the application team's commands.
package appteam

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"trial-bot/bot"
	"trial-bot/guilds"
	"trial-bot/utils"
)

func HandleApproveTrialee(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	p, ok := guilds.Resolve(i.GuildID)
	if !ok {
		utils.SendErrorResponse(s, i, "This guild is not configured for trials.")
		return
	}
	userID := utils.MemberID(i)
	allowed := utils.IsOwner(b.Config, userID) ||
		utils.HasRole(i.Member, p.Roles.ApplicationTeam) ||
		utils.HasAnyRole(i.Member, p.Roles.HostTier())
	if !allowed {
		utils.SendDeniedResponse(s, i, b.Config, "You are not allowed to approve trialees.")
		return
	}

	applicant := i.ApplicationCommandData().Options[0].UserValue(s)
	member, err := s.GuildMember(i.GuildID, applicant.ID)
	if err != nil {
		log.Printf("Error fetching member %s: %v", applicant.ID, err)
		utils.SendErrorResponse(s, i, "Could not retrieve member details.")
		return
	}
	if utils.HasRole(member, p.Roles.Trialee) {
		utils.SendErrorResponse(s, i, "That member is already a trialee.")
		return
	}

	if err := s.GuildMemberRoleAdd(i.GuildID, applicant.ID, p.Roles.Trialee.ID()); err != nil {
		log.Printf("Error granting trialee role to %s: %v", applicant.ID, err)
		utils.SendErrorResponse(s, i, "Failed to grant the trialee role.")
		return
	}

	utils.AnnounceRoleGrant(s, p.Channels.BotRoleLog, applicant.ID, p.Roles.Trialee.ID(),
		fmt.Sprintf("Welcome <@%s>, approved as trialee by <@%s>!", applicant.ID, userID))
	utils.SendSimpleResponse(s, i, fmt.Sprintf("Approved <@%s> as trialee.", applicant.ID))
}
