package defs

import "github.com/bwmarrin/discordgo"

// Override features mirror the permission tiers that gate trial actions.
var featureChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "Host trials", Value: "host"},
	{Name: "Join rosters", Value: "roster"},
	{Name: "Resolve trials", Value: "resolve"},
	{Name: "Reject role grants", Value: "reject"},
}

var Grant = &discordgo.ApplicationCommand{
	Name:        "grant",
	Description: "Grant a user a feature override",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User receiving the override",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "feature",
			Description: "Feature to unlock",
			Required:    true,
			Choices:     featureChoices,
		},
	},
}

var Revoke = &discordgo.ApplicationCommand{
	Name:        "revoke",
	Description: "Revoke a user's feature override",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User losing the override",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "feature",
			Description: "Feature to lock again",
			Required:    true,
			Choices:     featureChoices,
		},
	},
}
