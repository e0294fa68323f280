package trialcard

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// EmptyMarker is the literal value of an unfilled roster field.
const EmptyMarker = "`Empty`"

// ErrNotTrialCard is returned by Parse for any message that does not carry
// the trial-card grammar. Callers must treat it as "ignore this message".
var ErrNotTrialCard = errors.New("not a trial card")

// Description grammar. The narrative is a de facto wire format: old cards in
// a channel's history are decoded with the live parser, so these patterns
// must stay byte-compatible within one deployment.
var (
	statusRe       = regexp.MustCompile("`Status:` `(\\w+)`")
	hostRe         = regexp.MustCompile("`Host:` <@(\\d+)>")
	typeRe         = regexp.MustCompile("`Type:` (Mock|Real) Trial")
	gameTimeRe     = regexp.MustCompile("`Game Time:` `(\\d{4}-\\d{2}-\\d{2} \\d{2}:\\d{2})`")
	localTimeRe    = regexp.MustCompile("`Local Time:` <t:(\\d+):f>")
	relativeTimeRe = regexp.MustCompile("`Relative Time:` <t:(\\d+):R>")
	worldRe        = regexp.MustCompile("`World:` ([^\\n]+)")
	trialeeRe      = regexp.MustCompile("`Discord:` <@(\\d+)>")
	tagRe          = regexp.MustCompile("`Tag:` <@&(\\d+)>")
	startedAtRe    = regexp.MustCompile(`Trial started <t:(\d+):R>`)
	closedAtRe     = regexp.MustCompile(`<t:(\d+):R>[.!]\s*$`)
	slotValueRe    = regexp.MustCompile(`^<@(\d+)>(?: \((.+)\))?$`)
)

// Render encodes a card into the description, roster fields and footer of
// its message embed. It is a pure function: the same card always renders to
// byte-identical output.
func Render(c *Card) (description string, fields []*discordgo.MessageEmbedField, footer string) {
	var b strings.Builder
	b.WriteString("> **General**\n\n")
	fmt.Fprintf(&b, "`Status:` `%s`\n", c.State)
	fmt.Fprintf(&b, "`Host:` <@%s>\n", c.Host)
	fmt.Fprintf(&b, "`Type:` %s\n", c.Kind)
	fmt.Fprintf(&b, "`Game Time:` `%s`\n", c.GameTime)
	fmt.Fprintf(&b, "`Local Time:` <t:%d:f>\n", c.Unix)
	fmt.Fprintf(&b, "`Relative Time:` <t:%d:R>\n", c.Unix)
	fmt.Fprintf(&b, "`World:` %s\n\n", c.Region)
	b.WriteString("> **Trialee**\n\n")
	fmt.Fprintf(&b, "`Discord:` <@%s>\n", c.Trialee)
	fmt.Fprintf(&b, "`Tag:` <@&%s>\n\n", c.RoleID)

	if c.StartedAt > 0 || c.State.Terminal() {
		b.WriteString("> **Moderation**\n\n")
		if c.StartedAt > 0 {
			fmt.Fprintf(&b, "⬥ Trial started <t:%d:R>.\n", c.StartedAt)
		}
		switch c.State {
		case StatePassed, StateFailed:
			fmt.Fprintf(&b, "⬥ <@%s> %s <t:%d:R>!\n", c.Trialee, resultPhrase(c.State, c.Kind), c.ClosedAt)
		case StateDisbanded:
			fmt.Fprintf(&b, "⬥ Trial disbanded <t:%d:R>.\n", c.ClosedAt)
		}
		b.WriteString("\n")
	}
	b.WriteString("> **Team**")

	fields = make([]*discordgo.MessageEmbedField, TeamSize)
	for i, slot := range c.Slots {
		fields[i] = &discordgo.MessageEmbedField{
			Name:   SlotNames[i],
			Value:  renderSlot(slot),
			Inline: true,
		}
	}
	footer = fmt.Sprintf("%d/%d Players", c.FilledCount(), TeamSize)
	return b.String(), fields, footer
}

func renderSlot(s Slot) string {
	if s.Empty() {
		return EmptyMarker
	}
	if s.Note != "" {
		return fmt.Sprintf("<@%s> (%s)", s.UserID, s.Note)
	}
	return fmt.Sprintf("<@%s>", s.UserID)
}

// resultPhrase is the human narrative for a resolved trial. Mock outcomes
// speak of trial readiness since no tag changes hands.
func resultPhrase(s State, k Kind) string {
	switch {
	case s == StatePassed && k == KindReal:
		return "successfully passed"
	case s == StatePassed:
		return "is ready for trial"
	case k == KindReal:
		return "failed"
	default:
		return "is not ready for trial"
	}
}

// Parse decodes a message embed back into a card. Every extraction is
// fail-soft: a missing key leaves the zero value, and callers must check
// the fields they require before acting. Only a message that lacks the
// card grammar entirely yields ErrNotTrialCard.
func Parse(description string, fields []*discordgo.MessageEmbedField) (*Card, error) {
	if !strings.Contains(description, "> **General**") || !hostRe.MatchString(description) {
		return nil, ErrNotTrialCard
	}
	if len(fields) != TeamSize {
		return nil, ErrNotTrialCard
	}

	c := &Card{}
	c.Host = firstGroup(hostRe, description)
	c.Trialee = firstGroup(trialeeRe, description)
	c.RoleID = firstGroup(tagRe, description)
	if firstGroup(typeRe, description) == "Real" {
		c.Kind = KindReal
	}
	if strings.TrimSpace(firstGroup(worldRe, description)) == RegionEU.String() {
		c.Region = RegionEU
	}
	c.GameTime = firstGroup(gameTimeRe, description)
	c.Unix = parseUnix(firstGroup(localTimeRe, description))
	if c.Unix == 0 {
		c.Unix = parseUnix(firstGroup(relativeTimeRe, description))
	}
	c.StartedAt = parseUnix(firstGroup(startedAtRe, description))
	c.State = parseState(description)
	if c.State.Terminal() {
		c.ClosedAt = closedAt(description)
	}

	for i, f := range fields {
		c.Slots[i] = parseSlot(f.Value)
	}
	return c, nil
}

// parseState prefers the always-present Status marker. Cards rendered
// before the marker existed fall back to inference from the narrative
// prose, which is how the protocol originally encoded lifecycle.
func parseState(description string) State {
	if m := statusRe.FindStringSubmatch(description); m != nil {
		switch m[1] {
		case "Started":
			return StateStarted
		case "Disbanded":
			return StateDisbanded
		case "Passed":
			return StatePassed
		case "Failed":
			return StateFailed
		}
		return StateOpen
	}
	switch {
	case strings.Contains(description, "Trial disbanded"):
		return StateDisbanded
	// "is not ready for trial" contains "ready for trial": check failure first.
	case strings.Contains(description, "is not ready for trial"),
		strings.Contains(description, "failed <t:"):
		return StateFailed
	case strings.Contains(description, "successfully passed"),
		strings.Contains(description, "is ready for trial"):
		return StatePassed
	case strings.Contains(description, "Trial started"):
		return StateStarted
	}
	return StateOpen
}

// closedAt pulls the timestamp of the terminal narrative line, the last
// relative timestamp before the Team header.
func closedAt(description string) int64 {
	head := description
	if i := strings.Index(description, "> **Team**"); i >= 0 {
		head = description[:i]
	}
	lines := strings.Split(strings.TrimSpace(head), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if m := closedAtRe.FindStringSubmatch(lines[i]); m != nil {
			return parseUnix(m[1])
		}
	}
	return 0
}

func parseSlot(value string) Slot {
	if value == EmptyMarker {
		return Slot{}
	}
	m := slotValueRe.FindStringSubmatch(value)
	if m == nil {
		return Slot{}
	}
	return Slot{UserID: m[1], Note: m[2]}
}

func firstGroup(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

func parseUnix(s string) int64 {
	var n int64
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int64(r-'0')
	}
	return n
}
