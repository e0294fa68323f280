package trialhost

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"trial-bot/bot"
	"trial-bot/guilds"
	"trial-bot/handlers/trialmsg"
	"trial-bot/trialcard"
	"trial-bot/utils"
)

func HandleChangeTrialCard(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	p, ok := guilds.Resolve(i.GuildID)
	if !ok {
		utils.SendErrorResponse(s, i, "This guild is not configured for trials.")
		return
	}

	opts := optionMap(i)
	msg, card, unlock, err := fetchOwnCard(s, i, b, p, opts["message_link"].StringValue())
	if err != nil {
		utils.SendErrorResponse(s, i, err.Error())
		return
	}
	defer unlock()

	changed := false
	if opt, ok := opts["host"]; ok {
		if err := card.SetHost(opt.UserValue(s).ID); err != nil {
			utils.SendErrorResponse(s, i, err.Error())
			return
		}
		changed = true
	}
	if opt, ok := opts["role"]; ok {
		tagRef, ok := p.Roles.Tags[guilds.TagKey(opt.StringValue())]
		if !ok {
			utils.SendErrorResponse(s, i, "Unknown trial role.")
			return
		}
		if err := card.SetTag(tagRef.ID()); err != nil {
			utils.SendErrorResponse(s, i, err.Error())
			return
		}
		changed = true
	}
	if opt, ok := opts["time"]; ok {
		parsed, err := trialcard.ParseGameTime(opt.StringValue())
		if err != nil {
			utils.SendErrorResponse(s, i, err.Error())
			return
		}
		if err := card.Reschedule(trialcard.FormatGameTime(parsed), parsed.Unix()); err != nil {
			utils.SendErrorResponse(s, i, err.Error())
			return
		}
		changed = true
	}
	if !changed {
		utils.SendErrorResponse(s, i, "Give at least one of host, role or time.")
		return
	}

	if err := trialmsg.Apply(s, p, msg, card); err != nil {
		log.Printf("Error updating trial card: %v", err)
		utils.SendErrorResponse(s, i, "Failed to update the trial card.")
		return
	}
	utils.SendSimpleResponse(s, i, "Trial card updated.")
}
