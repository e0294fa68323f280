// Package handlers wires Discord gateway events to the feature handlers.
package handlers

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"trial-bot/bot"
	"trial-bot/handlers/appteam"
	"trial-bot/handlers/organizer"
	"trial-bot/handlers/owner"
	"trial-bot/handlers/trialhost"
	"trial-bot/handlers/trialteam"
)

func Register(b *bot.Bot) {
	b.CommandHandlers = commandHandlers(b)
	addHandlers(b)
}

func commandHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	wrap := func(h func(*discordgo.Session, *discordgo.InteractionCreate, *bot.Bot)) func(*discordgo.Session, *discordgo.InteractionCreate) {
		return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			h(s, i, b)
		}
	}
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"start-trial":             wrap(trialhost.HandleStartTrial),
		"set-trial-member":        wrap(trialhost.HandleSetTrialMember),
		"change-trial-card":       wrap(trialhost.HandleChangeTrialCard),
		"assign-trialed":          wrap(trialhost.HandleAssignTrialed),
		"assign-cosmetic":         wrap(trialhost.HandleAssignCosmetic),
		"approve-trialee":         wrap(appteam.HandleApproveTrialee),
		"trial-leaderboard":       wrap(trialteam.HandleTrialLeaderboard),
		"trial-team-activity":     wrap(trialteam.HandleTrialTeamActivity),
		"grant":                   wrap(owner.HandleGrant),
		"revoke":                  wrap(owner.HandleRevoke),
		"manage-message-shortcut": wrap(organizer.HandleManageMessageShortcut),
		"list-message-shortcut":   wrap(organizer.HandleListMessageShortcut),
		"stats":                   wrap(handleStats),
	}
}

func addHandlers(b *bot.Bot) {
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
		if b.Config.LogChannelID != "" {
			if _, err := s.ChannelMessageSend(b.Config.LogChannelID, "Bot has started."); err != nil {
				log.Printf("Failed to send startup log: %v", err)
			}
		}
	})
	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		handleInteractionCreate(s, i, b)
	})
	b.Session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		handleMessageCreate(s, m, b)
	})
}
