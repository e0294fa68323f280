package trialcard

import (
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
)

func sampleCard() *Card {
	gameTime := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)
	return New("100", "200", "555", KindMock, RegionNA, gameTime, "Base")
}

func TestRenderParseRoundTrip(t *testing.T) {
	c := sampleCard()
	c.Slots[1] = Slot{UserID: "301"}
	c.Slots[5] = Slot{UserID: "302", Note: NoteProbation}

	desc, fields, footer := Render(c)
	got, err := Parse(desc, fields)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if *got != *c {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, c)
	}
	if footer != "3/7 Players" {
		t.Errorf("footer = %q, want %q", footer, "3/7 Players")
	}
}

func TestRenderParseRoundTripTerminal(t *testing.T) {
	for _, tc := range []struct {
		name   string
		kind   Kind
		state  State
		phrase string
	}{
		{"mock pass", KindMock, StatePassed, "is ready for trial"},
		{"mock fail", KindMock, StateFailed, "is not ready for trial"},
		{"real pass", KindReal, StatePassed, "successfully passed"},
		{"real fail", KindReal, StateFailed, "failed"},
		{"disband", KindReal, StateDisbanded, "Trial disbanded"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := sampleCard()
			c.Kind = tc.kind
			for i := range c.Slots {
				if c.Slots[i].Empty() {
					c.Slots[i] = Slot{UserID: "90" + string(rune('0'+i))}
				}
			}
			if tc.state != StateDisbanded {
				if err := c.Start(1666000000); err != nil {
					t.Fatalf("Start: %v", err)
				}
				if err := c.Resolve(tc.state == StatePassed, 1666003600); err != nil {
					t.Fatalf("Resolve: %v", err)
				}
			} else {
				if err := c.Disband(1666003600); err != nil {
					t.Fatalf("Disband: %v", err)
				}
			}

			desc, fields, _ := Render(c)
			if !strings.Contains(desc, tc.phrase) {
				t.Errorf("description missing %q:\n%s", tc.phrase, desc)
			}
			got, err := Parse(desc, fields)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if *got != *c {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, c)
			}
		})
	}
}

func TestRenderIsStable(t *testing.T) {
	c := sampleCard()
	d1, _, f1 := Render(c)
	d2, _, f2 := Render(c)
	if d1 != d2 || f1 != f2 {
		t.Error("Render is not deterministic for an unchanged card")
	}

	got, err := Parse(d1, renderFields(c))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	d3, _, _ := Render(got)
	if d3 != d1 {
		t.Errorf("re-render after parse changed bytes:\n got %q\nwant %q", d3, d1)
	}
}

func renderFields(c *Card) []*discordgo.MessageEmbedField {
	_, fields, _ := Render(c)
	return fields
}

func TestParseRejectsForeignEmbed(t *testing.T) {
	_, err := Parse("Weekly clan announcements.", nil)
	if err != ErrNotTrialCard {
		t.Errorf("err = %v, want ErrNotTrialCard", err)
	}

	_, err = Parse("> **General**\nno host here", renderFields(sampleCard()))
	if err != ErrNotTrialCard {
		t.Errorf("err = %v, want ErrNotTrialCard", err)
	}
}

func TestParseLegacyStateInference(t *testing.T) {
	for _, tc := range []struct {
		name string
		line string
		want State
	}{
		{"open", "", StateOpen},
		{"started", "⬥ Trial started <t:1666000000:R>.\n", StateStarted},
		{"mock pass", "⬥ <@200> is ready for trial <t:1666000000:R>!\n", StatePassed},
		{"mock fail", "⬥ <@200> is not ready for trial <t:1666000000:R>!\n", StateFailed},
		{"real pass", "⬥ <@200> successfully passed <t:1666000000:R>!\n", StatePassed},
		{"real fail", "⬥ <@200> failed <t:1666000000:R>!\n", StateFailed},
		{"disband", "⬥ Trial disbanded <t:1666000000:R>.\n", StateDisbanded},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := sampleCard()
			desc, _, _ := Render(c)
			// Simulate a pre-marker card: drop the Status line and splice
			// the narrative in before the Team header.
			desc = statusRe.ReplaceAllString(desc, "")
			desc = strings.Replace(desc, "> **Team**", "> **Moderation**\n\n"+tc.line+"\n> **Team**", 1)

			got, err := Parse(desc, renderFields(c))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got.State != tc.want {
				t.Errorf("State = %v, want %v", got.State, tc.want)
			}
		})
	}
}

func TestParseFailSoftOnDamagedFields(t *testing.T) {
	c := sampleCard()
	desc, fields, _ := Render(c)
	fields[2].Value = "somebody edited this"

	got, err := Parse(desc, fields)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !got.Slots[2].Empty() {
		t.Errorf("damaged slot parsed as %+v, want empty", got.Slots[2])
	}
	if got.Host != "100" || got.Trialee != "200" {
		t.Error("damaged slot corrupted unrelated fields")
	}
}

func TestNewPrefillsTrialeeSlot(t *testing.T) {
	c := sampleCard()
	if c.Slots[0].UserID != "200" || c.Slots[0].Note != NoteTrialee {
		t.Errorf("Base slot = %+v, want trialee pre-fill", c.Slots[0])
	}
	if got := c.FilledCount(); got != 1 {
		t.Errorf("FilledCount = %d, want 1", got)
	}
	_, fields, footer := Render(c)
	if fields[0].Value != "<@200> (Trialee)" {
		t.Errorf("Base field = %q", fields[0].Value)
	}
	if footer != "1/7 Players" {
		t.Errorf("footer = %q, want 1/7 Players", footer)
	}
}

func TestParticipantsExcludesTrialee(t *testing.T) {
	c := sampleCard()
	c.Slots[3] = Slot{UserID: "301"}
	c.Slots[4] = Slot{UserID: "302", Note: NoteProbation}

	got := c.Participants()
	want := []Participation{{UserID: "301", Slot: "Cruor"}, {UserID: "302", Slot: "Fumus"}}
	if len(got) != len(want) {
		t.Fatalf("Participants = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Participants[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
