package defs

import (
	"github.com/bwmarrin/discordgo"

	"trial-bot/guilds"
)

func cosmeticChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(guilds.CosmeticOptions))
	for _, opt := range guilds.CosmeticOptions {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  opt.Label,
			Value: string(opt.Key),
		})
	}
	return choices
}

var AssignTrialed = &discordgo.ApplicationCommand{
	Name:        "assign-trialed",
	Description: "Grant a trialed tag directly and announce it",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "member",
			Description: "Member receiving the tag",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "role",
			Description: "Tag to grant",
			Required:    true,
			Choices:     tagChoices(),
		},
	},
}

var AssignCosmetic = &discordgo.ApplicationCommand{
	Name:        "assign-cosmetic",
	Description: "Grant an achievement role and announce it",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "member",
			Description: "Member receiving the role",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "role",
			Description: "Achievement role to grant",
			Required:    true,
			Choices:     cosmeticChoices(),
		},
	},
}

var ApproveTrialee = &discordgo.ApplicationCommand{
	Name:        "approve-trialee",
	Description: "Approve an applicant as trialee",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "member",
			Description: "Applicant to approve",
			Required:    true,
		},
	},
}
