// Package database is the sqlite persistence layer. Live trials are never
// stored here; rows appear only when a trial resolves, an override is
// granted or a message shortcut is registered.
package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Init opens the database at dbPath and ensures every table exists.
func Init(dbPath string) (*sqlx.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	schemas := []string{
		`CREATE TABLE IF NOT EXISTS trials (
		    trial_id INTEGER PRIMARY KEY AUTOINCREMENT,
		    trialee TEXT NOT NULL,
		    host TEXT NOT NULL,
		    role TEXT NOT NULL,
		    link TEXT NOT NULL,
		    created_at INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS trial_participants (
		    participation_id INTEGER PRIMARY KEY AUTOINCREMENT,
		    trial_id INTEGER NOT NULL,
		    participant TEXT NOT NULL,
		    role TEXT NOT NULL,
		    created_at INTEGER NOT NULL,
		    FOREIGN KEY(trial_id) REFERENCES trials(trial_id)
		);`,
		`CREATE TABLE IF NOT EXISTS overrides (
		    override_id INTEGER PRIMARY KEY AUTOINCREMENT,
		    user TEXT NOT NULL,
		    feature TEXT NOT NULL,
		    created_at INTEGER NOT NULL,
		    UNIQUE(user, feature)
		);`,
		`CREATE TABLE IF NOT EXISTS message_shortcuts (
		    shortcut_id INTEGER PRIMARY KEY AUTOINCREMENT,
		    guild_id TEXT NOT NULL,
		    shortcut TEXT NOT NULL,
		    message_guild_id TEXT NOT NULL,
		    message_channel_id TEXT NOT NULL,
		    message_message_id TEXT NOT NULL,
		    created_at INTEGER NOT NULL,
		    UNIQUE(guild_id, shortcut)
		);`,
	}
	for _, schema := range schemas {
		if _, err := db.Exec(schema); err != nil {
			return nil, fmt.Errorf("failed to create table: %w", err)
		}
	}
	return db, nil
}
