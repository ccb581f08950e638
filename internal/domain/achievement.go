package domain

import "time"

// ─── Achievement Types ──────────────────────────────────────────────────────

// RequirementKind selects which stat a requirement compares against.
type RequirementKind string

const (
	ReqTasks     RequirementKind = "tasks"
	ReqStreak    RequirementKind = "streak"
	ReqPoints    RequirementKind = "points"
	ReqLevel     RequirementKind = "level"
	ReqRoleTasks RequirementKind = "role_tasks"
)

// Requirement is a single "stat >= threshold" predicate.
// Role is only consulted when Kind == ReqRoleTasks.
type Requirement struct {
	Kind      RequirementKind `json:"kind"`
	Threshold int             `json:"threshold"`
	Role      string          `json:"role,omitempty"`
}

// Met evaluates the requirement against a stats snapshot.
func (r Requirement) Met(s Stats) bool {
	switch r.Kind {
	case ReqTasks:
		return s.TasksCompleted >= r.Threshold
	case ReqStreak:
		return s.CurrentStreak >= r.Threshold
	case ReqPoints:
		return s.TotalPoints >= r.Threshold
	case ReqLevel:
		return s.Level >= r.Threshold
	case ReqRoleTasks:
		return s.TasksByRole[r.Role] >= r.Threshold
	}
	return false
}

// AchievementDef defines a single achievement in the static catalogue.
// The catalogue is immutable at runtime.
type AchievementDef struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Icon          string      `json:"icon"`
	PointsAwarded int         `json:"points_awarded"`
	Requirement   Requirement `json:"requirement"`
}

// UnlockedAchievement records when an achievement was earned.
// Once unlocked it is never re-evaluated or revoked.
type UnlockedAchievement struct {
	ID         string    `json:"id"`
	UnlockedAt time.Time `json:"unlocked_at"`
}

// Stats is the snapshot fed to achievement requirements.
// Evaluation runs against the snapshot taken at the start of a pass,
// so point re-entry from unlocks cannot cascade within that pass.
type Stats struct {
	TotalPoints    int            `json:"total_points"`
	Level          int            `json:"level"`
	TasksCompleted int            `json:"tasks_completed"`
	CurrentStreak  int            `json:"current_streak"`
	LongestStreak  int            `json:"longest_streak"`
	TasksByRole    map[string]int `json:"tasks_by_role"`
}
