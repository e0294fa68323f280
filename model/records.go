package model

// TrialRecord is the persisted outcome of a resolved trial. Written once at
// resolution (or by bulk import), never updated.
type TrialRecord struct {
	ID        int64  `db:"trial_id"`
	Trialee   string `db:"trialee"`
	Host      string `db:"host"`
	Role      string `db:"role"`
	Link      string `db:"link"`
	CreatedAt int64  `db:"created_at"`
}

// TrialParticipationRecord is one roster member of a resolved trial.
type TrialParticipationRecord struct {
	ID          int64  `db:"participation_id"`
	TrialID     int64  `db:"trial_id"`
	Participant string `db:"participant"`
	Role        string `db:"role"`
	CreatedAt   int64  `db:"created_at"`
}

// OverrideGrant lets a user act as if they held the role gating `feature`.
type OverrideGrant struct {
	ID        int64  `db:"override_id"`
	User      string `db:"user"`
	Feature   string `db:"feature"`
	CreatedAt int64  `db:"created_at"`
}

// MessageShortcut maps a chat trigger word to a stored message reference.
type MessageShortcut struct {
	ID               int64  `db:"shortcut_id"`
	GuildID          string `db:"guild_id"`
	Shortcut         string `db:"shortcut"`
	MessageGuildID   string `db:"message_guild_id"`
	MessageChannelID string `db:"message_channel_id"`
	MessageMessageID string `db:"message_message_id"`
	CreatedAt        int64  `db:"created_at"`
}
