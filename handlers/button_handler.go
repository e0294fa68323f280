package handlers

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"trial-bot/bot"
	"trial-bot/guilds"
	"trial-bot/handlers/trialmsg"
	"trial-bot/trialcard"
	"trial-bot/utils"
)

// respondCardUpdate rewrites the card message as the interaction response,
// so the edit and the acknowledgement are one API call.
func respondCardUpdate(s *discordgo.Session, i *discordgo.InteractionCreate, p *guilds.Profile, card *trialcard.Card) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{trialmsg.Embed(p, card)},
			Components: trialmsg.Components(card),
		},
	})
	if err != nil {
		log.Printf("Error updating trial card: %v", err)
	}
}

// fetchLockedCard re-reads the card from the API under the message lock.
// The interaction's message snapshot may predate another press.
func fetchLockedCard(s *discordgo.Session, i *discordgo.InteractionCreate) (*trialcard.Card, func(), error) {
	unlock := utils.LockMessage(i.Message.ID)
	_, card, err := trialmsg.Fetch(s, i.ChannelID, i.Message.ID)
	if err != nil {
		unlock()
		return nil, nil, err
	}
	return card, unlock, nil
}

func isHostOrElevated(b *bot.Bot, p *guilds.Profile, i *discordgo.InteractionCreate, card *trialcard.Card) bool {
	userID := utils.MemberID(i)
	return card.Host == userID || utils.CanHost(b.DB, b.Config, p, i.Member, userID)
}

func handleSlotSelect(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, slotName string) {
	p, ok := guilds.Resolve(i.GuildID)
	if !ok {
		utils.SendErrorResponse(s, i, "This guild is not configured for trials.")
		return
	}
	userID := utils.MemberID(i)
	if !utils.CanRoster(b.DB, p, i.Member, userID) {
		utils.SendDeniedResponse(s, i, b.Config, "Only the trial team can join rosters.")
		return
	}

	card, unlock, err := fetchLockedCard(s, i)
	if err != nil {
		log.Printf("Error reading trial card: %v", err)
		utils.SendErrorResponse(s, i, "Failed to read the trial card.")
		return
	}
	defer unlock()

	// Pressing the own slot again leaves the roster.
	if idx, signed := card.SlotOf(userID); signed && trialcard.SlotNames[idx] == slotName {
		if err := card.UnassignSelf(userID); err != nil {
			utils.SendErrorResponse(s, i, err.Error())
			return
		}
		respondCardUpdate(s, i, p, card)
		return
	}

	note := ""
	if utils.HasRole(i.Member, p.Roles.TrialTeamProbation) && !utils.HasRole(i.Member, p.Roles.TrialTeam) {
		note = trialcard.NoteProbation
	}
	if err := card.AssignSelf(userID, slotName, note); err != nil {
		utils.SendErrorResponse(s, i, err.Error())
		return
	}
	respondCardUpdate(s, i, p, card)
}

func handleStartTrial(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	p, ok := guilds.Resolve(i.GuildID)
	if !ok {
		utils.SendErrorResponse(s, i, "This guild is not configured for trials.")
		return
	}

	card, unlock, err := fetchLockedCard(s, i)
	if err != nil {
		log.Printf("Error reading trial card: %v", err)
		utils.SendErrorResponse(s, i, "Failed to read the trial card.")
		return
	}
	defer unlock()

	if !isHostOrElevated(b, p, i, card) {
		utils.SendDeniedResponse(s, i, b.Config, "Only the host may start this trial.")
		return
	}
	if err := card.Start(time.Now().Unix()); err != nil {
		utils.SendErrorResponse(s, i, err.Error())
		return
	}
	respondCardUpdate(s, i, p, card)
}

func handleDisbandTrial(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	p, ok := guilds.Resolve(i.GuildID)
	if !ok {
		utils.SendErrorResponse(s, i, "This guild is not configured for trials.")
		return
	}

	card, unlock, err := fetchLockedCard(s, i)
	if err != nil {
		log.Printf("Error reading trial card: %v", err)
		utils.SendErrorResponse(s, i, "Failed to read the trial card.")
		return
	}
	defer unlock()

	if !isHostOrElevated(b, p, i, card) {
		utils.SendDeniedResponse(s, i, b.Config, "Only the host may disband this trial.")
		return
	}
	if err := card.Disband(time.Now().Unix()); err != nil {
		utils.SendErrorResponse(s, i, err.Error())
		return
	}
	respondCardUpdate(s, i, p, card)
}

// handleResolveButton opens the resolution modal. The card itself is only
// touched on submit.
func handleResolveButton(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, passed bool) {
	p, ok := guilds.Resolve(i.GuildID)
	if !ok {
		utils.SendErrorResponse(s, i, "This guild is not configured for trials.")
		return
	}

	card, err := trialmsg.Decode(i.Message)
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to read the trial card.")
		return
	}
	userID := utils.MemberID(i)
	if card.Host != userID && !utils.CanResolve(b.DB, b.Config, p, i.Member, userID) {
		utils.SendDeniedResponse(s, i, b.Config, "You are not allowed to resolve this trial.")
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: resolveModalData(passed, i.Message.ID),
	})
	if err != nil {
		log.Printf("Error opening resolution modal: %v", err)
	}
}

func resolveModalData(passed bool, messageID string) *discordgo.InteractionResponseData {
	verdict, title := "fail", "Fail Trialee"
	if passed {
		verdict, title = "pass", "Pass Trialee"
	}
	return &discordgo.InteractionResponseData{
		CustomID: fmt.Sprintf("resolveTrial:%s:%s", verdict, messageID),
		Title:    title,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:    "evidence",
					Label:       "Evidence URL",
					Style:       discordgo.TextInputShort,
					Placeholder: "Optional link to a recording or screenshot",
					Required:    false,
					MaxLength:   200,
				},
			}},
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:    "comment",
					Label:       "Comment",
					Style:       discordgo.TextInputParagraph,
					Placeholder: "Optional remarks for the result post",
					Required:    false,
					MaxLength:   500,
				},
			}},
		},
	}
}

func handleRejectRoleAssign(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, customID string) {
	parts := strings.Split(customID, ":")
	if len(parts) != 3 {
		utils.SendErrorResponse(s, i, "Malformed reject button.")
		return
	}
	targetID, roleID := parts[1], parts[2]

	p, ok := guilds.Resolve(i.GuildID)
	if !ok {
		utils.SendErrorResponse(s, i, "This guild is not configured.")
		return
	}
	userID := utils.MemberID(i)
	if !utils.CanReject(b.DB, b.Config, p, i.Member, userID) {
		utils.SendDeniedResponse(s, i, b.Config, "You are not allowed to reject role grants.")
		return
	}

	if err := s.GuildMemberRoleRemove(i.GuildID, targetID, roleID); err != nil {
		log.Printf("Error removing rejected role %s from %s: %v", roleID, targetID, err)
		utils.SendErrorResponse(s, i, "Failed to remove the role.")
		return
	}
	// The announcement may already be gone, which is fine.
	if err := s.ChannelMessageDelete(i.ChannelID, i.Message.ID); err != nil {
		log.Printf("Error deleting grant announcement: %v", err)
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("Rejected the grant, removed <@&%s> from <@%s>.", roleID, targetID))
}
