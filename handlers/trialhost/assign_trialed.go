package trialhost

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"trial-bot/bot"
	"trial-bot/guilds"
	"trial-bot/utils"
)

// PromoteTrialee performs the role consequences of earning a real tag: the
// tag itself, trialee and probation status removed, seven-man membership
// granted. Each change is best effort.
func PromoteTrialee(s *discordgo.Session, guildID string, p *guilds.Profile, userID, tagRoleID string) {
	if err := s.GuildMemberRoleAdd(guildID, userID, tagRoleID); err != nil {
		log.Printf("Error granting tag role to %s: %v", userID, err)
	}
	if err := s.GuildMemberRoleRemove(guildID, userID, p.Roles.Trialee.ID()); err != nil {
		log.Printf("Error removing trialee role from %s: %v", userID, err)
	}
	if err := s.GuildMemberRoleRemove(guildID, userID, p.Roles.TrialTeamProbation.ID()); err != nil {
		log.Printf("Error removing probation role from %s: %v", userID, err)
	}
	if err := s.GuildMemberRoleAdd(guildID, userID, p.Roles.SevenMan.ID()); err != nil {
		log.Printf("Error granting seven-man role to %s: %v", userID, err)
	}
}

func HandleAssignTrialed(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	p, ok := guilds.Resolve(i.GuildID)
	if !ok {
		utils.SendErrorResponse(s, i, "This guild is not configured for trials.")
		return
	}
	userID := utils.MemberID(i)
	if !utils.CanHost(b.DB, b.Config, p, i.Member, userID) {
		utils.SendDeniedResponse(s, i, b.Config, "You are not allowed to assign trialed roles.")
		return
	}

	opts := optionMap(i)
	member := opts["member"].UserValue(s)
	tagKey := guilds.TagKey(opts["role"].StringValue())
	tagRef, ok := p.Roles.Tags[tagKey]
	if !ok {
		utils.SendErrorResponse(s, i, "Unknown trial role.")
		return
	}

	PromoteTrialee(s, i.GuildID, p, member.ID, tagRef.ID())

	utils.AnnounceRoleGrant(s, p.Channels.AchievementsAndLogs, member.ID, tagRef.ID(),
		fmt.Sprintf("<@%s> has been awarded the %s tag by <@%s>!", member.ID, tagRef.Mention(), userID))
	utils.SendSimpleResponse(s, i, fmt.Sprintf("Granted %s to <@%s>.", tagKey.Label(), member.ID))
}
