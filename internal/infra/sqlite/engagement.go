package sqlite

import (
	"database/sql"
	"time"

	"github.com/keel-app/keel/internal/domain"
)

// ─── Activity Days ──────────────────────────────────────────────────────────

// RecordActivityDay marks a calendar day as having activity.
// Idempotent; recording the same day twice is a no-op.
func (d *DB) RecordActivityDay(day string) error {
	_, err := d.db.Exec(`INSERT OR IGNORE INTO activity_days (day) VALUES (?)`, day)
	return err
}

// ActivityDaysSince returns every recorded day on or after the given day,
// as a membership set keyed by "YYYY-MM-DD".
func (d *DB) ActivityDaysSince(day string) (map[string]bool, error) {
	rows, err := d.db.Query(`SELECT day FROM activity_days WHERE day >= ?`, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make(map[string]bool)
	for rows.Next() {
		var dd string
		if err := rows.Scan(&dd); err != nil {
			return nil, err
		}
		days[dd] = true
	}
	return days, rows.Err()
}

// ─── Achievements ───────────────────────────────────────────────────────────

// UnlockAchievement records an achievement as unlocked.
// Returns false if already unlocked (idempotent).
func (d *DB) UnlockAchievement(id string, at time.Time) (bool, error) {
	result, err := d.db.Exec(
		`INSERT OR IGNORE INTO achievements (id, unlocked_at) VALUES (?, ?)`,
		id, at.Unix(),
	)
	if err != nil {
		return false, err
	}
	n, _ := result.RowsAffected()
	return n > 0, nil // true = newly unlocked
}

// IsAchievementUnlocked checks whether an achievement has been unlocked.
func (d *DB) IsAchievementUnlocked(id string) (bool, error) {
	var count int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM achievements WHERE id = ?`, id).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListUnlockedAchievements returns all unlocked achievements.
func (d *DB) ListUnlockedAchievements() ([]domain.UnlockedAchievement, error) {
	rows, err := d.db.Query(
		`SELECT id, unlocked_at FROM achievements ORDER BY unlocked_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var achievements []domain.UnlockedAchievement
	for rows.Next() {
		var a domain.UnlockedAchievement
		var unlockedAt int64
		if err := rows.Scan(&a.ID, &unlockedAt); err != nil {
			return nil, err
		}
		a.UnlockedAt = time.Unix(unlockedAt, 0)
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}

// UnlockedAchievementCount returns the total number of unlocked achievements.
func (d *DB) UnlockedAchievementCount() (int, error) {
	var count int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM achievements`).Scan(&count)
	return count, err
}

// ─── Commitments ────────────────────────────────────────────────────────────

// InsertCommitment creates a new commitment record.
func (d *DB) InsertCommitment(c domain.Commitment) error {
	_, err := d.db.Exec(
		`INSERT INTO commitments (id, title, description, created_at, deadline, completed, completed_at, expired, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Title, c.Description, c.CreatedAt.Unix(), c.Deadline.Unix(),
		c.Completed, nullableUnix(c.CompletedAt), c.Expired, c.Notes,
	)
	return err
}

// GetCommitment retrieves a commitment by ID. Returns nil if not found.
func (d *DB) GetCommitment(id string) (*domain.Commitment, error) {
	row := d.db.QueryRow(
		`SELECT id, title, description, created_at, deadline, completed, completed_at, expired, notes
		 FROM commitments WHERE id = ?`, id,
	)
	return scanCommitment(row)
}

// ActiveCommitment returns the single non-terminal commitment, or nil.
// The partial unique index guarantees at most one row matches.
func (d *DB) ActiveCommitment() (*domain.Commitment, error) {
	row := d.db.QueryRow(
		`SELECT id, title, description, created_at, deadline, completed, completed_at, expired, notes
		 FROM commitments WHERE completed = 0 AND expired = 0`,
	)
	return scanCommitment(row)
}

// ListCommitments returns the full commitment history, newest first.
func (d *DB) ListCommitments() ([]domain.Commitment, error) {
	rows, err := d.db.Query(
		`SELECT id, title, description, created_at, deadline, completed, completed_at, expired, notes
		 FROM commitments ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var commitments []domain.Commitment
	for rows.Next() {
		c, err := scanCommitment(rows)
		if err != nil {
			return nil, err
		}
		commitments = append(commitments, *c)
	}
	return commitments, rows.Err()
}

// MarkCommitmentCompleted sets the completed flag on an active commitment.
// Returns false if the record was already terminal or missing.
func (d *DB) MarkCommitmentCompleted(id string, at time.Time) (bool, error) {
	result, err := d.db.Exec(
		`UPDATE commitments SET completed = 1, completed_at = ?
		 WHERE id = ? AND completed = 0 AND expired = 0`,
		at.Unix(), id,
	)
	if err != nil {
		return false, err
	}
	n, _ := result.RowsAffected()
	return n > 0, nil
}

// MarkCommitmentExpired sets the expired flag and attaches the one-time
// resolution notes. Returns false if the record was already terminal.
func (d *DB) MarkCommitmentExpired(id, notes string) (bool, error) {
	result, err := d.db.Exec(
		`UPDATE commitments SET expired = 1, notes = ?
		 WHERE id = ? AND completed = 0 AND expired = 0`,
		notes, id,
	)
	if err != nil {
		return false, err
	}
	n, _ := result.RowsAffected()
	return n > 0, nil
}

// DeleteCommitment removes a commitment record entirely.
func (d *DB) DeleteCommitment(id string) error {
	result, err := d.db.Exec(`DELETE FROM commitments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return domain.ErrCommitmentNotFound
	}
	return nil
}

// ─── Helpers ────────────────────────────────────────────────────────────────

func scanCommitment(s scanner) (*domain.Commitment, error) {
	var c domain.Commitment
	var createdAt, deadline int64
	var completedAt sql.NullInt64

	err := s.Scan(&c.ID, &c.Title, &c.Description, &createdAt, &deadline,
		&c.Completed, &completedAt, &c.Expired, &c.Notes)
	if err == sql.ErrNoRows {
		return nil, nil // Not found, no error
	}
	if err != nil {
		return nil, err
	}

	c.CreatedAt = time.Unix(createdAt, 0)
	c.Deadline = time.Unix(deadline, 0)
	if completedAt.Valid {
		c.CompletedAt = time.Unix(completedAt.Int64, 0)
	}
	return &c, nil
}

func nullableUnix(t time.Time) sql.NullInt64 {
	if t.IsZero() {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.Unix(), Valid: true}
}
