package defs

import (
	"github.com/bwmarrin/discordgo"

	"trial-bot/guilds"
	"trial-bot/trialcard"
)

func tagChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(guilds.TagOptions))
	for _, opt := range guilds.TagOptions {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  opt.Label,
			Value: string(opt.Key),
		})
	}
	return choices
}

func slotChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, trialcard.TeamSize)
	for _, name := range trialcard.SlotNames {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  name,
			Value: name,
		})
	}
	return choices
}

var StartTrial = &discordgo.ApplicationCommand{
	Name:        "start-trial",
	Description: "Post a new trial card for a trialee",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "trialee",
			Description: "The member being trialed",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "role",
			Description: "The tag the trialee is trying to earn",
			Required:    true,
			Choices:     tagChoices(),
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "type",
			Description: "Mock trials have no role consequences",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "Mock Trial", Value: "mock"},
				{Name: "Real Trial", Value: "real"},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "region",
			Description: "Region the trial runs in",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "North America", Value: "na"},
				{Name: "Europe", Value: "eu"},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "time",
			Description: "Game time as YYYY-MM-DD HH:MM, defaults to tonight",
			Required:    false,
		},
	},
}

var SetTrialMember = &discordgo.ApplicationCommand{
	Name:        "set-trial-member",
	Description: "Force a roster slot on a trial card",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "message_link",
			Description: "Link to the trial card message",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "slot",
			Description: "Roster slot to set",
			Required:    true,
			Choices:     slotChoices(),
		},
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "member",
			Description: "Member to place in the slot, omit to clear it",
			Required:    false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "note",
			Description: "Note shown next to the member",
			Required:    false,
		},
	},
}

var ChangeTrialCard = &discordgo.ApplicationCommand{
	Name:        "change-trial-card",
	Description: "Change the host, tag or time of an open trial",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "message_link",
			Description: "Link to the trial card message",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "host",
			Description: "New host",
			Required:    false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "role",
			Description: "New tag under trial",
			Required:    false,
			Choices:     tagChoices(),
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "time",
			Description: "New game time as YYYY-MM-DD HH:MM",
			Required:    false,
		},
	},
}
