// Package domain holds the pure types of the Keel engagement engine.
// No infrastructure imports; services in internal/app and the sqlite
// store both depend on this package, never the other way around.
package domain

// ─── Task Events ────────────────────────────────────────────────────────────

// Difficulty grades a completed task.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the three known grades.
func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// TaskEvent describes a single completed (or un-completed) task.
// It is transient: consumed once to compute a point delta, never stored.
// The same event attributes must be replayed to reverse an award exactly.
type TaskEvent struct {
	QuickWin   bool       `json:"quick_win"`
	Hyperfocus bool       `json:"hyperfocus"`
	Difficulty Difficulty `json:"difficulty"`
	Role       string     `json:"role,omitempty"`
}

// ─── User Progress ──────────────────────────────────────────────────────────

// UserProgress is the single live progress record for the user.
// Level is derived from TotalPoints and must never drift from it;
// the engine recomputes it on every load and write.
type UserProgress struct {
	TotalPoints    int            `json:"total_points"`
	Level          int            `json:"level"`
	TasksCompleted int            `json:"tasks_completed"`
	CurrentStreak  int            `json:"current_streak"`
	LongestStreak  int            `json:"longest_streak"`
	TasksByRole    map[string]int `json:"tasks_by_role"`
}

// LevelInfo is the derived view of the user's position in the level table.
type LevelInfo struct {
	Level           int     `json:"level"`
	ProgressPercent float64 `json:"progress_percent"`
	PointsToNext    int     `json:"points_to_next"`
}
