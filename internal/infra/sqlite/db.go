// Package sqlite provides the persistent progress store for Keel.
// Uses WAL mode for crash-safe writes. The engine treats this as its
// single Progress Store collaborator: load, save, delete; no queries
// leak into the application layer.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// DB wraps a SQLite connection with WAL mode and migrations.
type DB struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at dir/state.db.
// Enables WAL mode, foreign keys, and 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "state.db")
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// Connection pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is single-writer
	db.SetMaxIdleConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping() error {
	return d.db.Ping()
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		// Scalar progress state (points, level, counters)
		`CREATE TABLE IF NOT EXISTS progress (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Per-role task counts
		`CREATE TABLE IF NOT EXISTS role_tasks (
			role  TEXT PRIMARY KEY,
			count INTEGER NOT NULL DEFAULT 0
		)`,

		// Calendar days with at least one recorded activity.
		// Day is a local date "YYYY-MM-DD"; the streak walk only needs
		// membership, never the originating feature.
		`CREATE TABLE IF NOT EXISTS activity_days (
			day TEXT PRIMARY KEY
		)`,

		// Unlocked achievements
		`CREATE TABLE IF NOT EXISTS achievements (
			id          TEXT PRIMARY KEY,
			unlocked_at INTEGER NOT NULL
		)`,

		// Commitments: one active at most, unbounded terminal history
		`CREATE TABLE IF NOT EXISTS commitments (
			id           TEXT PRIMARY KEY,
			title        TEXT NOT NULL,
			description  TEXT NOT NULL DEFAULT '',
			created_at   INTEGER NOT NULL,
			deadline     INTEGER NOT NULL,
			completed    BOOLEAN NOT NULL DEFAULT 0,
			completed_at INTEGER,
			expired      BOOLEAN NOT NULL DEFAULT 0,
			notes        TEXT NOT NULL DEFAULT ''
		)`,
		// At most one non-terminal commitment may exist at any time
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_commitments_active
			ON commitments((1)) WHERE completed = 0 AND expired = 0`,
		`CREATE INDEX IF NOT EXISTS idx_commitments_created ON commitments(created_at)`,
	}

	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// ─── Progress Key-Value ─────────────────────────────────────────────────────

// SetProgress stores a scalar progress value.
func (d *DB) SetProgress(key, value string) error {
	_, err := d.db.Exec(
		`INSERT INTO progress (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		key, value,
	)
	return err
}

// GetProgress retrieves a scalar progress value by key.
// Returns "" if key not found.
func (d *DB) GetProgress(key string) (string, error) {
	var value string
	err := d.db.QueryRow(`SELECT value FROM progress WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// ─── Role Task Counts ───────────────────────────────────────────────────────

// BumpRoleTasks adjusts the task count for a role by delta, clamped at zero.
func (d *DB) BumpRoleTasks(role string, delta int) error {
	_, err := d.db.Exec(
		`INSERT INTO role_tasks (role, count) VALUES (?, MAX(0, ?))
		 ON CONFLICT(role) DO UPDATE SET count = MAX(0, count + ?)`,
		role, delta, delta,
	)
	return err
}

// RoleTaskCounts returns the per-role completed task counts.
func (d *DB) RoleTaskCounts() (map[string]int, error) {
	rows, err := d.db.Query(`SELECT role, count FROM role_tasks`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var role string
		var count int
		if err := rows.Scan(&role, &count); err != nil {
			return nil, err
		}
		counts[role] = count
	}
	return counts, rows.Err()
}

// ─── Helpers ────────────────────────────────────────────────────────────────

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}
