package trialteam

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"trial-bot/bot"
	"trial-bot/guilds"
	"trial-bot/utils"
	"trial-bot/utils/database"
)

const defaultActivityWindow = 90 * 24 * time.Hour

// teamMembers pages through the guild member list and keeps everyone on the
// trial team, probation included.
func teamMembers(s *discordgo.Session, guildID string, p *guilds.Profile) ([]*discordgo.Member, error) {
	var out []*discordgo.Member
	after := ""
	for {
		page, err := s.GuildMembers(guildID, after, 1000)
		if err != nil {
			return nil, fmt.Errorf("failed to list guild members: %w", err)
		}
		if len(page) == 0 {
			return out, nil
		}
		for _, m := range page {
			if utils.HasRole(m, p.Roles.TrialTeam) || utils.HasRole(m, p.Roles.TrialTeamProbation) {
				out = append(out, m)
			}
		}
		after = page[len(page)-1].User.ID
	}
}

func HandleTrialTeamActivity(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	p, ok := guilds.Resolve(i.GuildID)
	if !ok {
		utils.SendErrorResponse(s, i, "This guild is not configured for trials.")
		return
	}

	cutoff := time.Now().Add(-defaultActivityWindow)
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name != "since" {
			continue
		}
		parsed, err := time.Parse("2006-01-02", opt.StringValue())
		if err != nil {
			utils.SendErrorResponse(s, i, "Give the cutoff as YYYY-MM-DD.")
			return
		}
		cutoff = parsed
	}

	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}

	team, err := teamMembers(s, i.GuildID, p)
	if err != nil {
		log.Printf("Error listing trial team: %v", err)
		utils.SendFollowUpError(s, i.Interaction, "Failed to list the trial team.")
		return
	}
	activity, err := database.GetLastActivity(b.DB)
	if err != nil {
		log.Printf("Error reading trial activity: %v", err)
		utils.SendFollowUpError(s, i.Interaction, "Failed to read trial records.")
		return
	}
	lastActive := make(map[string]int64, len(activity))
	for _, row := range activity {
		lastActive[row.UserID] = row.LastActive
	}

	var lines []string
	for _, m := range team {
		last, ok := lastActive[m.User.ID]
		switch {
		case !ok:
			lines = append(lines, fmt.Sprintf("<@%s> — no recorded trials", m.User.ID))
		case last < cutoff.Unix():
			lines = append(lines, fmt.Sprintf("<@%s> — last trial <t:%d:R>", m.User.ID, last))
		}
	}

	if len(lines) == 0 {
		utils.SendFollowUp(s, i.Interaction, fmt.Sprintf("Every trial team member has been active since %s.", cutoff.Format("2006-01-02")))
		return
	}
	utils.SendFollowUp(s, i.Interaction, fmt.Sprintf(
		"Trial team members inactive since %s:\n%s", cutoff.Format("2006-01-02"), strings.Join(lines, "\n")))
}
