package database

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"trial-bot/model"
)

// AddOverride grants a user a feature override. Granting an existing
// override is a no-op.
func AddOverride(db *sqlx.DB, user, feature string) error {
	_, err := db.Exec(
		`INSERT OR IGNORE INTO overrides (user, feature, created_at) VALUES (?, ?, ?)`,
		user, feature, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to add override %s for user %s: %w", feature, user, err)
	}
	return nil
}

// RemoveOverride revokes a feature override. Reports whether one existed.
func RemoveOverride(db *sqlx.DB, user, feature string) (bool, error) {
	result, err := db.Exec("DELETE FROM overrides WHERE user = ? AND feature = ?", user, feature)
	if err != nil {
		return false, fmt.Errorf("failed to remove override %s for user %s: %w", feature, user, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}
	return n > 0, nil
}

// HasOverride reports whether a user holds a feature override.
func HasOverride(db *sqlx.DB, user, feature string) (bool, error) {
	var n int
	err := db.Get(&n, "SELECT COUNT(*) FROM overrides WHERE user = ? AND feature = ?", user, feature)
	if err != nil {
		return false, fmt.Errorf("failed to check override %s for user %s: %w", feature, user, err)
	}
	return n > 0, nil
}

// GetOverridesByUser lists every override a user holds.
func GetOverridesByUser(db *sqlx.DB, user string) ([]model.OverrideGrant, error) {
	var grants []model.OverrideGrant
	err := db.Select(&grants, "SELECT * FROM overrides WHERE user = ? ORDER BY created_at", user)
	if err != nil {
		return nil, fmt.Errorf("failed to get overrides for user %s: %w", user, err)
	}
	return grants, nil
}
