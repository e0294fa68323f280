// Package trialteam implements the reporting commands of the trial team.
package trialteam

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"trial-bot/bot"
	"trial-bot/utils"
	"trial-bot/utils/database"
)

const leaderboardSize = 10

func formatRows(rows []database.LeaderboardRow) string {
	if len(rows) == 0 {
		return "No trials recorded."
	}
	var b strings.Builder
	for n, row := range rows {
		fmt.Fprintf(&b, "%d. <@%s> — %d\n", n+1, row.UserID, row.Count)
	}
	return b.String()
}

func HandleTrialLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	var since int64
	periodLabel := "All time"
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name != "period" {
			continue
		}
		days, err := strconv.Atoi(opt.StringValue())
		if err == nil && days > 0 {
			since = time.Now().AddDate(0, 0, -days).Unix()
			periodLabel = fmt.Sprintf("Last %d days", days)
		}
	}

	hosted, err := database.GetHostedCounts(b.DB, since, leaderboardSize)
	if err != nil {
		log.Printf("Error building leaderboard: %v", err)
		utils.SendErrorResponse(s, i, "Failed to read trial records.")
		return
	}
	played, err := database.GetParticipationCounts(b.DB, since, leaderboardSize)
	if err != nil {
		log.Printf("Error building leaderboard: %v", err)
		utils.SendErrorResponse(s, i, "Failed to read trial records.")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: "Trial Leaderboard",
		Color: 0xf1c40f,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Hosted", Value: formatRows(hosted), Inline: true},
			{Name: "Participated", Value: formatRows(played), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: periodLabel},
	}
	utils.SendEmbedResponse(s, i, embed, false)
}
