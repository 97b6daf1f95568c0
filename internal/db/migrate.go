package db

import (
	"database/sql"
	"fmt"
	"strings"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		user_id           TEXT PRIMARY KEY,
		exam              TEXT NOT NULL DEFAULT '',
		exam_date         TEXT NOT NULL DEFAULT 'other',
		exam_stage        TEXT NOT NULL DEFAULT 'Prelims',
		level             TEXT NOT NULL DEFAULT '',
		subjects_weak     TEXT NOT NULL DEFAULT '[]',
		subjects_average  TEXT NOT NULL DEFAULT '[]',
		subjects_strong   TEXT NOT NULL DEFAULT '[]',
		daily_hours       INTEGER NOT NULL DEFAULT 6,
		chronotype        TEXT NOT NULL DEFAULT '',
		points            INTEGER NOT NULL DEFAULT 0,
		badges            TEXT NOT NULL DEFAULT '[]',
		tasks_completed   INTEGER NOT NULL DEFAULT 0,
		progress          TEXT NOT NULL DEFAULT '{}'
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id               TEXT PRIMARY KEY,
		user_id          TEXT NOT NULL REFERENCES profiles(user_id) ON DELETE CASCADE,
		position         INTEGER NOT NULL DEFAULT 0,
		title            TEXT NOT NULL,
		category         TEXT NOT NULL,
		duration_min     INTEGER NOT NULL DEFAULT 45,
		priority         TEXT NOT NULL DEFAULT 'normal'
		                 CHECK(priority IN ('high','normal')),
		meta_type        TEXT,
		meta_strategy    TEXT,
		meta_topic_id    TEXT,
		meta_subject_key TEXT,
		completed        INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id, position)`,

	`CREATE TABLE IF NOT EXISTS history (
		user_id    TEXT NOT NULL REFERENCES profiles(user_id) ON DELETE CASCADE,
		day        TEXT NOT NULL,
		status     TEXT NOT NULL
		           CHECK(status IN ('full','partial','missed','leave')),
		leave_type TEXT NOT NULL DEFAULT '',
		percent    INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (user_id, day)
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
