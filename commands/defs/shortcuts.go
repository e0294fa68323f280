package defs

import "github.com/bwmarrin/discordgo"

var ManageMessageShortcut = &discordgo.ApplicationCommand{
	Name:        "manage-message-shortcut",
	Description: "Bind a trigger word to a message the bot reposts",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "action",
			Description: "What to do",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "Add shortcut", Value: "add"},
				{Name: "Remove shortcut", Value: "remove"},
				{Name: "Remove all shortcuts of a message", Value: "remove-message"},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "shortcut",
			Description: "Trigger word, required for add and remove",
			Required:    false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "message_link",
			Description: "Link to the source message, required for add and remove-message",
			Required:    false,
		},
	},
}

var ListMessageShortcut = &discordgo.ApplicationCommand{
	Name:        "list-message-shortcut",
	Description: "List this guild's message shortcuts",
}
