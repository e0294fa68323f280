// Package commands declares the slash commands the bot registers per guild.
package commands

import (
	"github.com/bwmarrin/discordgo"

	"trial-bot/commands/defs"
)

// GenerateCommands returns every command to register. Commands are
// registered per configured guild, never globally, so a misconfigured
// guild cannot see them.
func GenerateCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		defs.StartTrial,
		defs.SetTrialMember,
		defs.ChangeTrialCard,
		defs.AssignTrialed,
		defs.AssignCosmetic,
		defs.ApproveTrialee,
		defs.TrialLeaderboard,
		defs.TrialTeamActivity,
		defs.Grant,
		defs.Revoke,
		defs.ManageMessageShortcut,
		defs.ListMessageShortcut,
		defs.Stats,
	}
}
