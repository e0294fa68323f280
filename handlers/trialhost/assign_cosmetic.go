package trialhost

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"trial-bot/bot"
	"trial-bot/guilds"
	"trial-bot/utils"
)

// cosmeticPlan decides the role changes for granting target to a member
// holding the given role ids. Within an ordered hierarchy a grant removes
// every lower entry the member holds, and a member already at or above the
// target gets nothing.
func cosmeticPlan(roles guilds.Roles, memberRoleIDs []string, target guilds.CosmeticKey) (add string, remove []string, err error) {
	targetRef, ok := roles.Cosmetics[target]
	if !ok {
		return "", nil, fmt.Errorf("unknown cosmetic role %s", target)
	}
	name, index, ordered := guilds.HierarchyOf(target)
	if !ordered {
		for _, id := range memberRoleIDs {
			if id == targetRef.ID() {
				return "", nil, fmt.Errorf("member already holds %s", target)
			}
		}
		return targetRef.ID(), nil, nil
	}

	for pos, key := range guilds.Hierarchies[name] {
		ref := roles.Cosmetics[key]
		held := false
		for _, id := range memberRoleIDs {
			if id == ref.ID() {
				held = true
				break
			}
		}
		if !held {
			continue
		}
		if pos >= index {
			return "", nil, fmt.Errorf("member already holds %s or higher", target)
		}
		remove = append(remove, ref.ID())
	}
	return targetRef.ID(), remove, nil
}

func HandleAssignCosmetic(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	p, ok := guilds.Resolve(i.GuildID)
	if !ok {
		utils.SendErrorResponse(s, i, "This guild is not configured for trials.")
		return
	}
	userID := utils.MemberID(i)
	if !utils.CanHost(b.DB, b.Config, p, i.Member, userID) {
		utils.SendDeniedResponse(s, i, b.Config, "You are not allowed to assign achievement roles.")
		return
	}

	opts := optionMap(i)
	user := opts["member"].UserValue(s)
	key := guilds.CosmeticKey(opts["role"].StringValue())

	member, err := s.GuildMember(i.GuildID, user.ID)
	if err != nil {
		log.Printf("Error fetching member %s: %v", user.ID, err)
		utils.SendErrorResponse(s, i, "Could not retrieve member details.")
		return
	}

	add, remove, err := cosmeticPlan(p.Roles, member.Roles, key)
	if err != nil {
		utils.SendErrorResponse(s, i, err.Error())
		return
	}

	if err := s.GuildMemberRoleAdd(i.GuildID, user.ID, add); err != nil {
		log.Printf("Error granting cosmetic %s to %s: %v", key, user.ID, err)
		utils.SendErrorResponse(s, i, "Failed to grant the role.")
		return
	}
	for _, roleID := range remove {
		if err := s.GuildMemberRoleRemove(i.GuildID, user.ID, roleID); err != nil {
			log.Printf("Error removing superseded role %s from %s: %v", roleID, user.ID, err)
		}
	}

	label := key.Label()
	utils.AnnounceRoleGrant(s, p.Channels.AchievementsAndLogs, user.ID, add,
		fmt.Sprintf("<@%s> has earned %s!", user.ID, label))
	utils.SendSimpleResponse(s, i, fmt.Sprintf("Granted %s to <@%s>.", label, user.ID))
}
