package handlers

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"trial-bot/bot"
	"trial-bot/handlers/trialmsg"
)

func handleInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if h, ok := b.CommandHandlers[i.ApplicationCommandData().Name]; ok {
			h(s, i)
		}

	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		if slot, ok := trialmsg.SlotFromCustomID(customID); ok {
			handleSlotSelect(s, i, b, slot)
			return
		}
		switch {
		case customID == trialmsg.CustomIDStart:
			handleStartTrial(s, i, b)
		case customID == trialmsg.CustomIDDisband:
			handleDisbandTrial(s, i, b)
		case customID == trialmsg.CustomIDPass:
			handleResolveButton(s, i, b, true)
		case customID == trialmsg.CustomIDFail:
			handleResolveButton(s, i, b, false)
		case strings.HasPrefix(customID, "rejectRoleAssign:"):
			handleRejectRoleAssign(s, i, b, customID)
		default:
			// Anything else may be a hand-placed role button.
			handleRoleButton(s, i, b, customID)
		}

	case discordgo.InteractionModalSubmit:
		if strings.HasPrefix(i.ModalSubmitData().CustomID, "resolveTrial:") {
			handleResolveModal(s, i, b)
		}
	}
}
