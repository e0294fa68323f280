package database

import (
	"testing"

	"github.com/jmoiron/sqlx"

	"trial-bot/model"
)

func testDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Init(":memory:")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func addTrial(t *testing.T, db *sqlx.DB, trialee, host string, createdAt int64, participants ...string) int64 {
	t.Helper()
	record := model.TrialRecord{
		Trialee:   trialee,
		Host:      host,
		Role:      "magicBase",
		Link:      "https://discord.com/channels/1/2/3",
		CreatedAt: createdAt,
	}
	var rows []model.TrialParticipationRecord
	for _, p := range participants {
		rows = append(rows, model.TrialParticipationRecord{Participant: p, Role: "Free"})
	}
	id, err := AddTrialRecord(db, record, rows)
	if err != nil {
		t.Fatalf("AddTrialRecord: %v", err)
	}
	return id
}

func TestAddTrialRecord(t *testing.T) {
	db := testDB(t)
	id := addTrial(t, db, "200", "100", 1666000000, "301", "302")
	if id == 0 {
		t.Fatal("trial id is zero")
	}

	records, err := GetTrialRecordsByTrialee(db, "200")
	if err != nil {
		t.Fatalf("GetTrialRecordsByTrialee: %v", err)
	}
	if len(records) != 1 || records[0].ID != id || records[0].Host != "100" {
		t.Errorf("records = %+v", records)
	}

	var participants []model.TrialParticipationRecord
	if err := db.Select(&participants, "SELECT * FROM trial_participants WHERE trial_id = ?", id); err != nil {
		t.Fatalf("select participants: %v", err)
	}
	if len(participants) != 2 {
		t.Fatalf("participants = %+v", participants)
	}
	// Participation rows inherit the trial timestamp when unset.
	if participants[0].CreatedAt != 1666000000 {
		t.Errorf("participant created_at = %d", participants[0].CreatedAt)
	}
}

func TestLeaderboardCounts(t *testing.T) {
	db := testDB(t)
	addTrial(t, db, "200", "100", 1000, "301")
	addTrial(t, db, "201", "100", 2000, "301", "302")
	addTrial(t, db, "202", "101", 3000, "302")

	hosted, err := GetHostedCounts(db, 0, 10)
	if err != nil {
		t.Fatalf("GetHostedCounts: %v", err)
	}
	want := []LeaderboardRow{{"100", 2}, {"101", 1}}
	if len(hosted) != 2 || hosted[0] != want[0] || hosted[1] != want[1] {
		t.Errorf("hosted = %+v, want %+v", hosted, want)
	}

	// A cutoff after the first trial excludes it.
	hosted, err = GetHostedCounts(db, 1500, 10)
	if err != nil {
		t.Fatalf("GetHostedCounts since: %v", err)
	}
	if len(hosted) != 2 || hosted[0].Count != 1 {
		t.Errorf("hosted since 1500 = %+v", hosted)
	}

	played, err := GetParticipationCounts(db, 0, 10)
	if err != nil {
		t.Fatalf("GetParticipationCounts: %v", err)
	}
	if len(played) != 2 || played[0] != (LeaderboardRow{"301", 2}) || played[1] != (LeaderboardRow{"302", 2}) {
		t.Errorf("played = %+v", played)
	}
}

func TestGetLastActivity(t *testing.T) {
	db := testDB(t)
	addTrial(t, db, "200", "100", 1000, "301")
	addTrial(t, db, "201", "301", 5000, "302")

	rows, err := GetLastActivity(db)
	if err != nil {
		t.Fatalf("GetLastActivity: %v", err)
	}
	byUser := map[string]int64{}
	for _, r := range rows {
		byUser[r.UserID] = r.LastActive
	}
	// Hosting counts as activity and supersedes an older participation.
	if byUser["301"] != 5000 {
		t.Errorf("301 last active = %d, want 5000", byUser["301"])
	}
	if byUser["100"] != 1000 || byUser["302"] != 5000 {
		t.Errorf("activity = %+v", byUser)
	}
}

func TestOverrides(t *testing.T) {
	db := testDB(t)

	has, err := HasOverride(db, "300", "host")
	if err != nil || has {
		t.Fatalf("HasOverride on empty db = %v, %v", has, err)
	}

	if err := AddOverride(db, "300", "host"); err != nil {
		t.Fatalf("AddOverride: %v", err)
	}
	// Duplicate grant is a no-op, not an error.
	if err := AddOverride(db, "300", "host"); err != nil {
		t.Fatalf("duplicate AddOverride: %v", err)
	}

	has, err = HasOverride(db, "300", "host")
	if err != nil || !has {
		t.Fatalf("HasOverride after grant = %v, %v", has, err)
	}

	grants, err := GetOverridesByUser(db, "300")
	if err != nil {
		t.Fatalf("GetOverridesByUser: %v", err)
	}
	if len(grants) != 1 || grants[0].Feature != "host" {
		t.Errorf("grants = %+v", grants)
	}

	removed, err := RemoveOverride(db, "300", "host")
	if err != nil || !removed {
		t.Fatalf("RemoveOverride = %v, %v", removed, err)
	}
	removed, err = RemoveOverride(db, "300", "host")
	if err != nil || removed {
		t.Fatalf("second RemoveOverride = %v, %v", removed, err)
	}
}

func TestShortcuts(t *testing.T) {
	db := testDB(t)
	shortcut := model.MessageShortcut{
		GuildID:          "1",
		Shortcut:         "rules",
		MessageGuildID:   "1",
		MessageChannelID: "10",
		MessageMessageID: "100",
	}
	if err := AddShortcut(db, shortcut); err != nil {
		t.Fatalf("AddShortcut: %v", err)
	}
	// The trigger word is unique per guild.
	if err := AddShortcut(db, shortcut); err == nil {
		t.Error("duplicate AddShortcut succeeded, want constraint error")
	}
	other := shortcut
	other.GuildID = "2"
	if err := AddShortcut(db, other); err != nil {
		t.Errorf("same word in another guild: %v", err)
	}

	found, err := FindShortcut(db, "1", "rules")
	if err != nil {
		t.Fatalf("FindShortcut: %v", err)
	}
	if found == nil || found.MessageMessageID != "100" {
		t.Errorf("found = %+v", found)
	}
	missing, err := FindShortcut(db, "1", "nope")
	if err != nil || missing != nil {
		t.Errorf("FindShortcut miss = %+v, %v", missing, err)
	}

	second := shortcut
	second.Shortcut = "guidelines"
	if err := AddShortcut(db, second); err != nil {
		t.Fatalf("AddShortcut second word: %v", err)
	}
	list, err := ListShortcuts(db, "1")
	if err != nil {
		t.Fatalf("ListShortcuts: %v", err)
	}
	if len(list) != 2 || list[0].Shortcut != "guidelines" {
		t.Errorf("list = %+v", list)
	}

	n, err := DeleteShortcutsByMessage(db, "1", "100")
	if err != nil || n != 2 {
		t.Fatalf("DeleteShortcutsByMessage = %d, %v", n, err)
	}
	deleted, err := DeleteShortcutByName(db, "1", "rules")
	if err != nil || deleted {
		t.Errorf("DeleteShortcutByName after purge = %v, %v", deleted, err)
	}
}
