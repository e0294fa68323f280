// Package trialhost implements the commands of the trial host tier:
// creating cards, editing rosters and granting tags directly.
package trialhost

import (
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"trial-bot/bot"
	"trial-bot/guilds"
	"trial-bot/handlers/trialmsg"
	"trial-bot/trialcard"
	"trial-bot/utils"
)

func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func HandleStartTrial(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	p, ok := guilds.Resolve(i.GuildID)
	if !ok {
		utils.SendErrorResponse(s, i, "This guild is not configured for trials.")
		return
	}
	userID := utils.MemberID(i)
	if !utils.CanHost(b.DB, b.Config, p, i.Member, userID) {
		utils.SendDeniedResponse(s, i, b.Config, "You are not allowed to host trials.")
		return
	}

	opts := optionMap(i)
	trialee := opts["trialee"].UserValue(s)
	tagKey := guilds.TagKey(opts["role"].StringValue())
	tagRef, ok := p.Roles.Tags[tagKey]
	if !ok {
		utils.SendErrorResponse(s, i, "Unknown trial role.")
		return
	}

	kind := trialcard.KindMock
	if opts["type"].StringValue() == "real" {
		kind = trialcard.KindReal
	}
	region := trialcard.RegionNA
	if opts["region"].StringValue() == "eu" {
		region = trialcard.RegionEU
	}

	gameTime := trialcard.DefaultTime(region, time.Now())
	if opt, ok := opts["time"]; ok {
		parsed, err := trialcard.ParseGameTime(opt.StringValue())
		if err != nil {
			utils.SendErrorResponse(s, i, err.Error())
			return
		}
		gameTime = parsed
	}

	card := trialcard.New(userID, trialee.ID, tagRef.ID(), kind, region, gameTime, tagKey.Slot())

	channelID := trialmsg.ChannelFor(p, kind, region)
	msg, err := s.ChannelMessageSendComplex(channelID, trialmsg.Build(p, card))
	if err != nil {
		log.Printf("Error posting trial card: %v", err)
		utils.SendErrorResponse(s, i, "Failed to post the trial card.")
		return
	}

	utils.SendSimpleResponse(s, i, fmt.Sprintf("Trial card posted: %s", trialmsg.Link(i.GuildID, msg)))
}
