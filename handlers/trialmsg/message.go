// Package trialmsg turns trial cards into complete Discord messages and
// back. The message is the card's only storage, so Build and Fetch are the
// two halves of every card mutation.
package trialmsg

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"trial-bot/guilds"
	"trial-bot/trialcard"
	"trial-bot/utils"
)

// Component custom ids. The slot ids are "select" + slot name.
const (
	CustomIDStart   = "startTrial"
	CustomIDDisband = "disbandTrial"
	CustomIDPass    = "passTrialee"
	CustomIDFail    = "failTrialee"

	slotPrefix = "select"
)

// SlotFromCustomID returns the roster slot a select button refers to.
func SlotFromCustomID(customID string) (string, bool) {
	if len(customID) <= len(slotPrefix) || customID[:len(slotPrefix)] != slotPrefix {
		return "", false
	}
	name := customID[len(slotPrefix):]
	if _, ok := trialcard.SlotIndex(name); !ok {
		return "", false
	}
	return name, true
}

func embedColor(state trialcard.State) int {
	switch state {
	case trialcard.StateStarted:
		return 0xe67e22
	case trialcard.StatePassed:
		return 0x2ecc71
	case trialcard.StateFailed:
		return 0xe74c3c
	case trialcard.StateDisbanded:
		return 0x95a5a6
	}
	return 0x3498db
}

// Embed renders the card embed.
func Embed(p *guilds.Profile, c *trialcard.Card) *discordgo.MessageEmbed {
	title := c.Kind.String()
	if key, ok := p.Roles.TagByRoleID(c.RoleID); ok {
		title = fmt.Sprintf("%s: %s", c.Kind, key.Label())
	}
	description, fields, footer := trialcard.Render(c)
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Fields:      fields,
		Color:       embedColor(c.State),
		Footer:      &discordgo.MessageEmbedFooter{Text: footer},
	}
}

// Components renders the button rows matching the card's state. Terminal
// cards carry no components at all.
func Components(c *trialcard.Card) []discordgo.MessageComponent {
	switch c.State {
	case trialcard.StateOpen:
		return openComponents()
	case trialcard.StateStarted:
		return []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "Pass", Style: discordgo.SuccessButton, CustomID: CustomIDPass},
				discordgo.Button{Label: "Fail", Style: discordgo.DangerButton, CustomID: CustomIDFail},
				discordgo.Button{Label: "Disband", Style: discordgo.SecondaryButton, CustomID: CustomIDDisband},
			}},
		}
	}
	return nil
}

func openComponents() []discordgo.MessageComponent {
	slotRow := func(from, to int) discordgo.ActionsRow {
		var buttons []discordgo.MessageComponent
		for _, name := range trialcard.SlotNames[from:to] {
			buttons = append(buttons, discordgo.Button{
				Label:    name,
				Style:    discordgo.SecondaryButton,
				CustomID: slotPrefix + name,
			})
		}
		return discordgo.ActionsRow{Components: buttons}
	}
	return []discordgo.MessageComponent{
		slotRow(0, 5),
		slotRow(5, trialcard.TeamSize),
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "Start Trial", Style: discordgo.SuccessButton, CustomID: CustomIDStart},
			discordgo.Button{Label: "Disband", Style: discordgo.DangerButton, CustomID: CustomIDDisband},
		}},
	}
}

// Build assembles the full message for a card.
func Build(p *guilds.Profile, c *trialcard.Card) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{Embed(p, c)},
		Components: Components(c),
	}
}

// Decode recovers the card from a posted message.
func Decode(msg *discordgo.Message) (*trialcard.Card, error) {
	if msg == nil || len(msg.Embeds) == 0 {
		return nil, trialcard.ErrNotTrialCard
	}
	embed := msg.Embeds[0]
	return trialcard.Parse(embed.Description, embed.Fields)
}

// Fetch loads a message and decodes its card.
func Fetch(s *discordgo.Session, channelID, messageID string) (*discordgo.Message, *trialcard.Card, error) {
	msg, err := s.ChannelMessage(channelID, messageID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch trial message: %w", err)
	}
	card, err := Decode(msg)
	if err != nil {
		return nil, nil, err
	}
	return msg, card, nil
}

// Apply writes the card back onto its message, embed and components both.
func Apply(s *discordgo.Session, p *guilds.Profile, msg *discordgo.Message, c *trialcard.Card) error {
	embeds := []*discordgo.MessageEmbed{Embed(p, c)}
	components := Components(c)
	_, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    msg.ChannelID,
		ID:         msg.ID,
		Embeds:     &embeds,
		Components: &components,
	})
	if err != nil {
		return fmt.Errorf("failed to edit trial message: %w", err)
	}
	return nil
}

// ChannelFor picks the guild channel a new card is posted into.
func ChannelFor(p *guilds.Profile, kind trialcard.Kind, region trialcard.Region) string {
	switch {
	case kind == trialcard.KindMock && region == trialcard.RegionNA:
		return p.Channels.NAMock
	case kind == trialcard.KindMock:
		return p.Channels.EUMock
	case region == trialcard.RegionNA:
		return p.Channels.NATrial
	default:
		return p.Channels.EUTrial
	}
}

// ResultChannel picks the channel trial outcomes are announced in.
func ResultChannel(p *guilds.Profile, kind trialcard.Kind) string {
	if kind == trialcard.KindMock {
		return p.Channels.MockResult
	}
	return p.Channels.TrialResult
}

// Link returns the canonical message link of a posted card.
func Link(guildID string, msg *discordgo.Message) string {
	return utils.MessageLink(guildID, msg.ChannelID, msg.ID)
}
