package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"trial-bot/bot"
	"trial-bot/guilds"
	"trial-bot/utils"
)

// Role buttons carry their whole behavior in the custom id:
//
//	<roleID>[;<requirement>...]
//
// The first segment is the role the button toggles. Further segments are
// alternative eligibility checks; meeting any one of them unlocks the
// button. An all-digit segment means "holds this role id", anything else
// names a cosmetic key and means "holds it or a higher entry of its
// hierarchy". Buttons are placed by hand on guild messages, so the bot
// never needs a registry of them.

type requirement struct {
	roleID   string
	cosmetic guilds.CosmeticKey
}

type roleButton struct {
	roleID       string
	requirements []requirement
}

func isSnowflake(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func knownCosmetic(key guilds.CosmeticKey) bool {
	for _, opt := range guilds.CosmeticOptions {
		if opt.Key == key {
			return true
		}
	}
	return false
}

// parseRoleButton decodes a role-button custom id. Custom ids that do not
// fit the grammar are not role buttons.
func parseRoleButton(customID string) (*roleButton, error) {
	segments := strings.Split(customID, ";")
	if !isSnowflake(segments[0]) {
		return nil, fmt.Errorf("%q is not a role button", customID)
	}
	button := &roleButton{roleID: segments[0]}
	for _, seg := range segments[1:] {
		if seg == "" {
			return nil, fmt.Errorf("empty requirement in %q", customID)
		}
		if isSnowflake(seg) {
			button.requirements = append(button.requirements, requirement{roleID: seg})
			continue
		}
		key := guilds.CosmeticKey(seg)
		if !knownCosmetic(key) {
			return nil, fmt.Errorf("unknown requirement %q", seg)
		}
		button.requirements = append(button.requirements, requirement{cosmetic: key})
	}
	return button, nil
}

// satisfiedBy checks one gate against a member's role ids.
func (r requirement) satisfiedBy(roles guilds.Roles, memberRoles []string) bool {
	if r.roleID != "" {
		for _, id := range memberRoles {
			if id == r.roleID {
				return true
			}
		}
		return false
	}

	name, index, ordered := guilds.HierarchyOf(r.cosmetic)
	if !ordered {
		ref := roles.Cosmetics[r.cosmetic]
		for _, id := range memberRoles {
			if id == ref.ID() {
				return true
			}
		}
		return false
	}
	for pos, key := range guilds.Hierarchies[name] {
		if pos < index {
			continue
		}
		ref := roles.Cosmetics[key]
		for _, id := range memberRoles {
			if id == ref.ID() {
				return true
			}
		}
	}
	return false
}

// A button with several requirements is open to anyone meeting at least one
// of them. A button with none is open to everyone.
func (b *roleButton) satisfiedBy(roles guilds.Roles, memberRoles []string) bool {
	if len(b.requirements) == 0 {
		return true
	}
	for _, req := range b.requirements {
		if req.satisfiedBy(roles, memberRoles) {
			return true
		}
	}
	return false
}

// handleRoleButton toggles a self-service role. Reports whether the custom
// id was a role button at all.
func handleRoleButton(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, customID string) bool {
	button, err := parseRoleButton(customID)
	if err != nil {
		return false
	}
	p, ok := guilds.Resolve(i.GuildID)
	if !ok {
		return false
	}
	userID := utils.MemberID(i)

	if utils.HasRoleID(i.Member, button.roleID) {
		if err := s.GuildMemberRoleRemove(i.GuildID, userID, button.roleID); err != nil {
			log.Printf("Error removing role %s from %s: %v", button.roleID, userID, err)
			utils.SendErrorResponse(s, i, "Failed to remove the role.")
			return true
		}
		utils.SendSimpleResponse(s, i, fmt.Sprintf("Removed <@&%s>.", button.roleID))
		return true
	}

	if !button.satisfiedBy(p.Roles, i.Member.Roles) {
		utils.SendErrorResponse(s, i, "You do not meet the requirements for this role.")
		return true
	}
	if err := s.GuildMemberRoleAdd(i.GuildID, userID, button.roleID); err != nil {
		log.Printf("Error granting role %s to %s: %v", button.roleID, userID, err)
		utils.SendErrorResponse(s, i, "Failed to grant the role.")
		return true
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("Added <@&%s>.", button.roleID))
	return true
}
