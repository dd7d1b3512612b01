package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// SQLDB is the subset of *sql.DB the stores depend on.
type SQLDB interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create tables
	schema := `
	CREATE TABLE IF NOT EXISTS school (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		timezone TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS venue (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		school_id TEXT NOT NULL,
		FOREIGN KEY (school_id) REFERENCES school(id)
	);

	CREATE TABLE IF NOT EXISTS user (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL DEFAULT '',
		school_id TEXT,
		admin INTEGER NOT NULL DEFAULT 0,
		subscribe_lesson_notifications INTEGER NOT NULL DEFAULT 1,
		unsubscribe_token TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		FOREIGN KEY (school_id) REFERENCES school(id)
	);

	CREATE TABLE IF NOT EXISTS lesson (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		summary TEXT NOT NULL DEFAULT '',
		start_time TEXT NOT NULL,
		end_time TEXT,
		venue_id TEXT NOT NULL,
		teacher_id TEXT,
		tweet_message TEXT NOT NULL DEFAULT '',
		notification_sent_at TEXT,
		created_at TEXT NOT NULL,
		FOREIGN KEY (venue_id) REFERENCES venue(id)
	);

	CREATE TABLE IF NOT EXISTS attendance (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		lesson_id TEXT NOT NULL,
		created_at TEXT NOT NULL,
		UNIQUE (user_id, lesson_id),
		FOREIGN KEY (user_id) REFERENCES user(id),
		FOREIGN KEY (lesson_id) REFERENCES lesson(id)
	);

	CREATE INDEX IF NOT EXISTS idx_lesson_start_time ON lesson(start_time);
	CREATE INDEX IF NOT EXISTS idx_user_school ON user(school_id);
	CREATE INDEX IF NOT EXISTS idx_attendance_user ON attendance(user_id);
	CREATE INDEX IF NOT EXISTS idx_attendance_lesson ON attendance(lesson_id);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// FormatTime renders an instant for storage. Times are stored as UTC
// RFC3339 strings, which keeps lexicographic and chronological order
// identical for range queries.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseStoredTime parses a stored timestamp, accepting the layouts that
// have appeared in the database over time.
func ParseStoredTime(value string) (time.Time, error) {
	if idx := strings.Index(value, " m="); idx != -1 {
		value = value[:idx]
	}
	layouts := []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02 15:04:05.999999999 -0700 MST",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported time format: %q", value)
}
