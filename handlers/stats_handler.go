package handlers

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"trial-bot/bot"
	"trial-bot/guilds"
	"trial-bot/utils"
)

func handleStats(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	cpuCount, _ := cpu.Counts(true)
	cpuPercent, _ := cpu.Percent(0, false)
	vm, _ := mem.VirtualMemory()
	hostInfo, _ := host.Info()

	var dbSize int64
	if info, err := os.Stat(b.Config.DatabasePath); err == nil {
		dbSize = info.Size() / 1024
	}

	var trials int
	if err := b.DB.Get(&trials, "SELECT COUNT(*) FROM trials"); err != nil {
		trials = 0
	}

	cpuUsage := "n/a"
	if len(cpuPercent) > 0 {
		cpuUsage = fmt.Sprintf("%.1f%%", cpuPercent[0])
	}

	embed := &discordgo.MessageEmbed{
		Title: "Bot Statistics",
		Color: 0x5865F2,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "💻 OS", Value: fmt.Sprintf("%s %s", hostInfo.Platform, hostInfo.PlatformVersion), Inline: true},
			{Name: "🐹 Go", Value: runtime.Version(), Inline: true},
			{Name: "🔼 CPUs", Value: fmt.Sprintf("%d", cpuCount), Inline: true},
			{Name: "🔥 CPU usage", Value: cpuUsage, Inline: true},
			{Name: "🧠 Memory", Value: fmt.Sprintf("%.1f%% (%d MB / %d MB)", vm.UsedPercent, vm.Used/1024/1024, vm.Total/1024/1024), Inline: true},
			{Name: "🚀 Goroutines", Value: fmt.Sprintf("%d", runtime.NumGoroutine()), Inline: true},
			{Name: "🗃️ Database", Value: fmt.Sprintf("%d KB", dbSize), Inline: true},
			{Name: "📜 Recorded trials", Value: fmt.Sprintf("%d", trials), Inline: true},
			{Name: "⏱️ Gateway latency", Value: s.HeartbeatLatency().String(), Inline: true},
			{Name: "🌍 Guilds", Value: fmt.Sprintf("%d", len(guilds.GuildIDs())), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("As of %s", time.Now().Format("15:04")),
		},
	}
	utils.SendEmbedResponse(s, i, embed, true)
}
