package utils

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"

	"trial-bot/guilds"
	"trial-bot/model"
	"trial-bot/utils/database"
)

// Override feature names. These are the values the grant command stores.
const (
	FeatureHost    = "host"
	FeatureRoster  = "roster"
	FeatureResolve = "resolve"
	FeatureReject  = "reject"
)

// IsOwner checks the process-level owner list.
func IsOwner(cfg *model.Config, userID string) bool {
	return contains(cfg.OwnerUserIDs, userID)
}

func hasOverride(db *sqlx.DB, userID, feature string) bool {
	ok, err := database.HasOverride(db, userID, feature)
	if err != nil {
		log.Printf("Error checking %s override for %s: %v", feature, userID, err)
		return false
	}
	return ok
}

// CanHost checks whether a user may create trials and drive their lifecycle.
func CanHost(db *sqlx.DB, cfg *model.Config, p *guilds.Profile, member *discordgo.Member, userID string) bool {
	return IsOwner(cfg, userID) ||
		HasAnyRole(member, p.Roles.HostTier()) ||
		hasOverride(db, userID, FeatureHost)
}

// CanRoster checks whether a user may self-assign onto a trial roster.
func CanRoster(db *sqlx.DB, p *guilds.Profile, member *discordgo.Member, userID string) bool {
	return HasAnyRole(member, p.Roles.RosterTier()) ||
		hasOverride(db, userID, FeatureRoster)
}

// CanResolve checks whether a user may pass or fail a trialee.
func CanResolve(db *sqlx.DB, cfg *model.Config, p *guilds.Profile, member *discordgo.Member, userID string) bool {
	return IsOwner(cfg, userID) ||
		HasAnyRole(member, p.Roles.ResolveTier()) ||
		hasOverride(db, userID, FeatureResolve)
}

// CanReject checks whether a user may reject a role grant announcement.
func CanReject(db *sqlx.DB, cfg *model.Config, p *guilds.Profile, member *discordgo.Member, userID string) bool {
	return IsOwner(cfg, userID) ||
		HasAnyRole(member, p.Roles.RejectTier()) ||
		hasOverride(db, userID, FeatureReject)
}

// AuditDenial records an authorization refusal in the process log and, when
// a log channel is configured, posts it there too.
func AuditDenial(s *discordgo.Session, cfg *model.Config, guildID, userID, reason string) {
	log.Printf("Denied %s in guild %s: %s", userID, guildID, reason)
	if cfg.LogChannelID == "" {
		return
	}
	msg := fmt.Sprintf("⚠️ Denied <@%s>: %s", userID, reason)
	if _, err := s.ChannelMessageSend(cfg.LogChannelID, msg); err != nil {
		log.Printf("Error writing denial to log channel: %v", err)
	}
}

// SendDeniedResponse rejects an interaction for lack of permission and
// writes the refusal to the audit log.
func SendDeniedResponse(s *discordgo.Session, i *discordgo.InteractionCreate, cfg *model.Config, reason string) {
	SendErrorResponse(s, i, reason)
	AuditDenial(s, cfg, i.GuildID, MemberID(i), reason)
}

// SendDeniedFollowUp is SendDeniedResponse for already-deferred interactions.
func SendDeniedFollowUp(s *discordgo.Session, i *discordgo.InteractionCreate, cfg *model.Config, reason string) {
	SendFollowUpError(s, i.Interaction, reason)
	AuditDenial(s, cfg, i.GuildID, MemberID(i), reason)
}
