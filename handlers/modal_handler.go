package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"trial-bot/bot"
	"trial-bot/guilds"
	"trial-bot/handlers/trialhost"
	"trial-bot/handlers/trialmsg"
	"trial-bot/model"
	"trial-bot/trialcard"
	"trial-bot/utils"
	"trial-bot/utils/database"
)

func modalInput(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, row := range data.Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range actionsRow.Components {
			if input, ok := comp.(*discordgo.TextInput); ok && input.CustomID == customID {
				return input.Value
			}
		}
	}
	return ""
}

// handleResolveModal finishes a trial. The whole decode, transition,
// persist and rewrite cycle runs under the message lock, so a second
// submit for the same card fails the transition and changes nothing.
func handleResolveModal(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	data := i.ModalSubmitData()
	parts := strings.Split(data.CustomID, ":")
	if len(parts) != 3 {
		utils.SendErrorResponse(s, i, "Malformed resolution modal.")
		return
	}
	passed := parts[1] == "pass"
	messageID := parts[2]

	p, ok := guilds.Resolve(i.GuildID)
	if !ok {
		utils.SendErrorResponse(s, i, "This guild is not configured for trials.")
		return
	}

	// Everything past this point hits the API and the database, so
	// acknowledge before the deadline and finish through follow-ups.
	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("Error deferring resolution: %v", err)
		return
	}

	unlock := utils.LockMessage(messageID)
	defer unlock()

	msg, card, err := trialmsg.Fetch(s, i.ChannelID, messageID)
	if err != nil {
		log.Printf("Error reading trial card: %v", err)
		utils.SendFollowUpError(s, i.Interaction, "Failed to read the trial card.")
		return
	}

	userID := utils.MemberID(i)
	if card.Host != userID && !utils.CanResolve(b.DB, b.Config, p, i.Member, userID) {
		utils.SendDeniedFollowUp(s, i, b.Config, "You are not allowed to resolve this trial.")
		return
	}

	if err := card.Resolve(passed, time.Now().Unix()); err != nil {
		if errors.Is(err, trialcard.ErrTrialClosed) {
			utils.SendFollowUpError(s, i.Interaction, "This trial has already been resolved.")
			return
		}
		utils.SendFollowUpError(s, i.Interaction, err.Error())
		return
	}

	link := trialmsg.Link(i.GuildID, msg)
	if err := recordTrial(b, p, card, link); err != nil {
		log.Printf("Error recording trial: %v", err)
	}
	if passed && card.Kind == trialcard.KindReal {
		trialhost.PromoteTrialee(s, i.GuildID, p, card.Trialee, card.RoleID)
		utils.AnnounceRoleGrant(s, p.Channels.BotRoleLog, card.Trialee, card.RoleID,
			fmt.Sprintf("<@%s> earned <@&%s> by passing their trial, hosted by <@%s>. %s",
				card.Trialee, card.RoleID, card.Host, link))
	}
	postResult(s, p, card, link, modalInput(data, "evidence"), modalInput(data, "comment"))

	if err := trialmsg.Apply(s, p, msg, card); err != nil {
		log.Printf("Error rewriting trial card: %v", err)
		utils.SendFollowUpError(s, i.Interaction, "The result was recorded but the card could not be updated.")
		return
	}
	utils.SendFollowUp(s, i.Interaction, "Trial resolved.")
}

func recordTrial(b *bot.Bot, p *guilds.Profile, card *trialcard.Card, link string) error {
	role := card.RoleID
	if key, ok := p.Roles.TagByRoleID(card.RoleID); ok {
		role = string(key)
	}
	record := model.TrialRecord{
		Trialee:   card.Trialee,
		Host:      card.Host,
		Role:      role,
		Link:      link,
		CreatedAt: card.ClosedAt,
	}
	var participants []model.TrialParticipationRecord
	for _, part := range card.Participants() {
		participants = append(participants, model.TrialParticipationRecord{
			Participant: part.UserID,
			Role:        part.Slot,
		})
	}
	_, err := database.AddTrialRecord(b.DB, record, participants)
	return err
}

func resultContent(card *trialcard.Card, link, evidence, comment string) string {
	verdict := "failed their trial"
	switch {
	case card.State == trialcard.StatePassed && card.Kind == trialcard.KindReal:
		verdict = fmt.Sprintf("passed their trial and earned <@&%s>", card.RoleID)
	case card.State == trialcard.StatePassed:
		verdict = fmt.Sprintf("is ready for their <@&%s> trial", card.RoleID)
	case card.Kind == trialcard.KindMock:
		verdict = "is not yet ready for their trial"
	}

	content := fmt.Sprintf("<@%s> %s! %s", card.Trialee, verdict, link)
	if evidence != "" {
		content += "\n" + evidence
	}
	if comment != "" {
		content += "\n> " + comment
	}
	return content
}

func postResult(s *discordgo.Session, p *guilds.Profile, card *trialcard.Card, link, evidence, comment string) {
	content := resultContent(card, link, evidence, comment)
	if _, err := s.ChannelMessageSend(trialmsg.ResultChannel(p, card.Kind), content); err != nil {
		log.Printf("Error posting trial result: %v", err)
	}
}
