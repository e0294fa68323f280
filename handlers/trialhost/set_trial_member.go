package trialhost

import (
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"trial-bot/bot"
	"trial-bot/guilds"
	"trial-bot/handlers/trialmsg"
	"trial-bot/trialcard"
	"trial-bot/utils"
)

// fetchOwnCard loads a card through a message link option and checks the
// caller may manage it. The returned unlock must be called after the final
// message edit.
func fetchOwnCard(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, p *guilds.Profile, link string) (*discordgo.Message, *trialcard.Card, func(), error) {
	linkGuild, channelID, messageID, err := utils.ParseMessageLink(link)
	if err != nil {
		return nil, nil, nil, err
	}
	if linkGuild != i.GuildID {
		return nil, nil, nil, errors.New("that message is not in this guild")
	}

	unlock := utils.LockMessage(messageID)
	msg, card, err := trialmsg.Fetch(s, channelID, messageID)
	if err != nil {
		unlock()
		if errors.Is(err, trialcard.ErrNotTrialCard) {
			return nil, nil, nil, errors.New("that message is not a trial card")
		}
		return nil, nil, nil, err
	}

	userID := utils.MemberID(i)
	if card.Host != userID && !utils.CanHost(b.DB, b.Config, p, i.Member, userID) {
		unlock()
		utils.AuditDenial(s, b.Config, i.GuildID, userID, "only the host may manage this trial")
		return nil, nil, nil, errors.New("only the host may manage this trial")
	}
	return msg, card, unlock, nil
}

func HandleSetTrialMember(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
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

	slot := opts["slot"].StringValue()
	memberID, note := "", ""
	if opt, ok := opts["member"]; ok {
		memberID = opt.UserValue(s).ID
	}
	if opt, ok := opts["note"]; ok {
		note = opt.StringValue()
	}

	if err := card.SetSlot(slot, memberID, note); err != nil {
		utils.SendErrorResponse(s, i, err.Error())
		return
	}
	if err := trialmsg.Apply(s, p, msg, card); err != nil {
		log.Printf("Error updating trial card: %v", err)
		utils.SendErrorResponse(s, i, "Failed to update the trial card.")
		return
	}

	if memberID == "" {
		utils.SendSimpleResponse(s, i, fmt.Sprintf("Cleared the %s slot.", slot))
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("Placed <@%s> in the %s slot.", memberID, slot))
}
