package model

// Config holds process-level configuration loaded from the environment.
type Config struct {
	BotToken     string
	AppID        string
	LogChannelID string
	DatabasePath string
	// OwnerUserIDs may use owner-gated commands regardless of guild roles.
	OwnerUserIDs []string
	// GuildMessageDisabled lists guilds where the message listener is off.
	GuildMessageDisabled []string
}
