package utils

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"

	"trial-bot/guilds"
	"trial-bot/model"
	"trial-bot/utils/database"
)

func testDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.Init(":memory:")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCanRejectOverride(t *testing.T) {
	db := testDB(t)
	cfg := &model.Config{OwnerUserIDs: []string{"900"}}
	p := &guilds.Profile{Roles: guilds.Roles{Organizer: "<@&1>", Admin: "<@&2>", Owner: "<@&3>"}}
	member := &discordgo.Member{Roles: []string{"99"}}

	if CanReject(db, cfg, p, member, "100") {
		t.Error("no role and no override, want denied")
	}
	if !CanReject(db, cfg, p, member, "900") {
		t.Error("process owner, want allowed")
	}
	organizer := &discordgo.Member{Roles: []string{"1"}}
	if !CanReject(db, cfg, p, organizer, "101") {
		t.Error("organizer role, want allowed")
	}

	if err := database.AddOverride(db, "100", FeatureReject); err != nil {
		t.Fatalf("AddOverride: %v", err)
	}
	if !CanReject(db, cfg, p, member, "100") {
		t.Error("reject override granted, want allowed")
	}

	if _, err := database.RemoveOverride(db, "100", FeatureReject); err != nil {
		t.Fatalf("RemoveOverride: %v", err)
	}
	if CanReject(db, cfg, p, member, "100") {
		t.Error("override revoked, want denied again")
	}
}
