package handlers

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"

	"trial-bot/trialcard"
)

func textInputIDs(data *discordgo.InteractionResponseData) []string {
	var ids []string
	for _, row := range data.Components {
		actionsRow, ok := row.(discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range actionsRow.Components {
			if input, ok := comp.(discordgo.TextInput); ok {
				ids = append(ids, input.CustomID)
			}
		}
	}
	return ids
}

func TestResolveModalData(t *testing.T) {
	data := resolveModalData(true, "555")
	if data.CustomID != "resolveTrial:pass:555" {
		t.Errorf("CustomID = %q", data.CustomID)
	}
	ids := textInputIDs(data)
	if len(ids) != 2 || ids[0] != "evidence" || ids[1] != "comment" {
		t.Errorf("inputs = %v, want [evidence comment]", ids)
	}

	data = resolveModalData(false, "555")
	if data.CustomID != "resolveTrial:fail:555" {
		t.Errorf("CustomID = %q", data.CustomID)
	}
}

func TestResultContent(t *testing.T) {
	card := &trialcard.Card{
		State:   trialcard.StatePassed,
		Kind:    trialcard.KindReal,
		Trialee: "200",
		RoleID:  "300",
	}
	link := "https://discord.com/channels/1/2/3"

	content := resultContent(card, link, "", "")
	if !strings.Contains(content, "passed their trial and earned <@&300>") {
		t.Errorf("real pass verdict missing: %q", content)
	}
	if strings.Contains(content, "\n") {
		t.Errorf("no extras given, want a single line: %q", content)
	}

	content = resultContent(card, link, "https://example.com/recording", "well played")
	if !strings.Contains(content, "\nhttps://example.com/recording") {
		t.Errorf("evidence url missing: %q", content)
	}
	if !strings.Contains(content, "\n> well played") {
		t.Errorf("comment missing: %q", content)
	}

	card.Kind = trialcard.KindMock
	if !strings.Contains(resultContent(card, link, "", ""), "is ready for their <@&300> trial") {
		t.Error("mock pass verdict missing")
	}
	card.State = trialcard.StateFailed
	if !strings.Contains(resultContent(card, link, "", ""), "is not yet ready for their trial") {
		t.Error("mock fail verdict missing")
	}
	card.Kind = trialcard.KindReal
	if !strings.Contains(resultContent(card, link, "", ""), "failed their trial") {
		t.Error("real fail verdict missing")
	}
}
