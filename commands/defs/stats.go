package defs

import "github.com/bwmarrin/discordgo"

var TrialLeaderboard = &discordgo.ApplicationCommand{
	Name:        "trial-leaderboard",
	Description: "Show who hosted and joined the most trials",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "period",
			Description: "Time window, defaults to all time",
			Required:    false,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "Last 30 days", Value: "30"},
				{Name: "Last 90 days", Value: "90"},
				{Name: "Last year", Value: "365"},
				{Name: "All time", Value: "0"},
			},
		},
	},
}

var TrialTeamActivity = &discordgo.ApplicationCommand{
	Name:        "trial-team-activity",
	Description: "List trial team members with no recorded trials since a date",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "since",
			Description: "Cutoff date as YYYY-MM-DD, defaults to 90 days ago",
			Required:    false,
		},
	},
}

var Stats = &discordgo.ApplicationCommand{
	Name:        "stats",
	Description: "Show bot and host statistics",
}
