package utils

import (
	"github.com/bwmarrin/discordgo"

	"trial-bot/guilds"
)

// contains checks if a slice of strings contains an element.
func contains(slice []string, item string) bool {
	for _, a := range slice {
		if a == item {
			return true
		}
	}
	return false
}

// HasRoleID checks if a member holds the given role id.
func HasRoleID(member *discordgo.Member, roleID string) bool {
	if member == nil {
		return false
	}
	return contains(member.Roles, roleID)
}

// HasRole checks if a member holds the given role.
func HasRole(member *discordgo.Member, ref guilds.RoleRef) bool {
	return HasRoleID(member, ref.ID())
}

// HasAnyRole checks if a member holds at least one of the given roles.
func HasAnyRole(member *discordgo.Member, refs []guilds.RoleRef) bool {
	for _, ref := range refs {
		if HasRole(member, ref) {
			return true
		}
	}
	return false
}

// MemberID returns the acting user's id for either guild or DM interactions.
func MemberID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
