package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"trial-bot/model"
)

// AddTrialRecord inserts a resolved trial and its participation rows in one
// transaction and returns the new trial id.
func AddTrialRecord(db *sqlx.DB, record model.TrialRecord, participants []model.TrialParticipationRecord) (int64, error) {
	tx, err := db.Beginx()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.NamedExec(
		`INSERT INTO trials (trialee, host, role, link, created_at)
		 VALUES (:trialee, :host, :role, :link, :created_at)`, record)
	if err != nil {
		return 0, fmt.Errorf("failed to insert trial record: %w", err)
	}
	trialID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get trial id: %w", err)
	}

	for _, p := range participants {
		p.TrialID = trialID
		if p.CreatedAt == 0 {
			p.CreatedAt = record.CreatedAt
		}
		_, err := tx.NamedExec(
			`INSERT INTO trial_participants (trial_id, participant, role, created_at)
			 VALUES (:trial_id, :participant, :role, :created_at)`, p)
		if err != nil {
			return 0, fmt.Errorf("failed to insert participation record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit trial record: %w", err)
	}
	return trialID, nil
}

// GetTrialRecordsByTrialee retrieves all recorded trials of one trialee.
func GetTrialRecordsByTrialee(db *sqlx.DB, trialee string) ([]model.TrialRecord, error) {
	var records []model.TrialRecord
	err := db.Select(&records, "SELECT * FROM trials WHERE trialee = ? ORDER BY created_at DESC", trialee)
	if err != nil {
		return nil, fmt.Errorf("failed to get trial records for trialee %s: %w", trialee, err)
	}
	return records, nil
}

// LeaderboardRow is one user's count on a leaderboard.
type LeaderboardRow struct {
	UserID string `db:"user_id"`
	Count  int    `db:"count"`
}

// GetHostedCounts returns hosted-trial counts per host since the given
// epoch, highest first. since = 0 means all time.
func GetHostedCounts(db *sqlx.DB, since int64, limit int) ([]LeaderboardRow, error) {
	var rows []LeaderboardRow
	err := db.Select(&rows,
		`SELECT host AS user_id, COUNT(*) AS count FROM trials
		 WHERE created_at >= ? GROUP BY host ORDER BY count DESC, host LIMIT ?`,
		since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get hosted counts: %w", err)
	}
	return rows, nil
}

// GetParticipationCounts returns participation counts per member since the
// given epoch, highest first. since = 0 means all time.
func GetParticipationCounts(db *sqlx.DB, since int64, limit int) ([]LeaderboardRow, error) {
	var rows []LeaderboardRow
	err := db.Select(&rows,
		`SELECT participant AS user_id, COUNT(*) AS count FROM trial_participants
		 WHERE created_at >= ? GROUP BY participant ORDER BY count DESC, participant LIMIT ?`,
		since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get participation counts: %w", err)
	}
	return rows, nil
}

// ActivityRow is one user's most recent trial activity, hosting included.
type ActivityRow struct {
	UserID     string `db:"user_id"`
	LastActive int64  `db:"last_active"`
}

// GetLastActivity returns the newest recorded activity per user across
// hosting and participation, oldest first.
func GetLastActivity(db *sqlx.DB) ([]ActivityRow, error) {
	var rows []ActivityRow
	err := db.Select(&rows,
		`SELECT user_id, MAX(last_active) AS last_active FROM (
		     SELECT host AS user_id, MAX(created_at) AS last_active FROM trials GROUP BY host
		     UNION ALL
		     SELECT participant AS user_id, MAX(created_at) AS last_active FROM trial_participants GROUP BY participant
		 ) GROUP BY user_id ORDER BY last_active`)
	if err != nil {
		return nil, fmt.Errorf("failed to get trial activity: %w", err)
	}
	return rows, nil
}
