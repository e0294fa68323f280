package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"trial-bot/model"
)

// AddShortcut registers a trigger word for a stored message reference.
// The word must be unused within the guild.
func AddShortcut(db *sqlx.DB, shortcut model.MessageShortcut) error {
	if shortcut.CreatedAt == 0 {
		shortcut.CreatedAt = time.Now().Unix()
	}
	_, err := db.NamedExec(
		`INSERT INTO message_shortcuts (guild_id, shortcut, message_guild_id, message_channel_id, message_message_id, created_at)
		 VALUES (:guild_id, :shortcut, :message_guild_id, :message_channel_id, :message_message_id, :created_at)`,
		shortcut)
	if err != nil {
		return fmt.Errorf("failed to add shortcut %q: %w", shortcut.Shortcut, err)
	}
	return nil
}

// FindShortcut looks a trigger word up within a guild. Returns nil when the
// word is not registered.
func FindShortcut(db *sqlx.DB, guildID, word string) (*model.MessageShortcut, error) {
	var shortcut model.MessageShortcut
	err := db.Get(&shortcut, "SELECT * FROM message_shortcuts WHERE guild_id = ? AND shortcut = ?", guildID, word)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up shortcut %q: %w", word, err)
	}
	return &shortcut, nil
}

// DeleteShortcutByName removes a trigger word. Reports whether it existed.
func DeleteShortcutByName(db *sqlx.DB, guildID, word string) (bool, error) {
	result, err := db.Exec("DELETE FROM message_shortcuts WHERE guild_id = ? AND shortcut = ?", guildID, word)
	if err != nil {
		return false, fmt.Errorf("failed to delete shortcut %q: %w", word, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}
	return n > 0, nil
}

// DeleteShortcutsByMessage removes every trigger word bound to one stored
// message and returns how many were removed.
func DeleteShortcutsByMessage(db *sqlx.DB, guildID, messageID string) (int64, error) {
	result, err := db.Exec(
		"DELETE FROM message_shortcuts WHERE guild_id = ? AND message_message_id = ?",
		guildID, messageID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete shortcuts for message %s: %w", messageID, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}
	return n, nil
}

// ListShortcuts lists a guild's trigger words alphabetically.
func ListShortcuts(db *sqlx.DB, guildID string) ([]model.MessageShortcut, error) {
	var shortcuts []model.MessageShortcut
	err := db.Select(&shortcuts, "SELECT * FROM message_shortcuts WHERE guild_id = ? ORDER BY shortcut", guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shortcuts for guild %s: %w", guildID, err)
	}
	return shortcuts, nil
}
