package engagement

import (
	"time"

	"github.com/keel-app/keel/internal/domain"
	"github.com/keel-app/keel/internal/infra/metrics"
	"github.com/keel-app/keel/internal/infra/sqlite"
)

// AchievementService evaluates the static catalogue against stat snapshots.
// Unlocks are idempotent and permanent: once recorded, a definition is never
// re-evaluated or revoked.
type AchievementService struct {
	db          *sqlite.DB
	definitions []domain.AchievementDef
}

// NewAchievementService creates an achievement service with the full catalogue.
func NewAchievementService(db *sqlite.DB) *AchievementService {
	return &AchievementService{
		db:          db,
		definitions: AllAchievements(),
	}
}

// EvaluateUnlocks tests every not-yet-unlocked definition against the given
// snapshot and records the ones that newly satisfy their requirement.
// The whole pass runs against the one snapshot passed in; reward points
// handed out afterwards cannot trigger further unlocks within this pass.
func (a *AchievementService) EvaluateUnlocks(stats domain.Stats) ([]domain.AchievementDef, error) {
	var newlyUnlocked []domain.AchievementDef

	for _, def := range a.definitions {
		unlocked, err := a.db.IsAchievementUnlocked(def.ID)
		if err != nil {
			return nil, err
		}
		if unlocked {
			continue
		}

		if def.Requirement.Met(stats) {
			isNew, err := a.db.UnlockAchievement(def.ID, time.Now())
			if err != nil {
				return nil, err
			}
			if isNew {
				newlyUnlocked = append(newlyUnlocked, def)
				metrics.AchievementsUnlocked.Inc()
			}
		}
	}

	return newlyUnlocked, nil
}

// ListUnlocked returns all achievements the user has earned.
func (a *AchievementService) ListUnlocked() ([]domain.UnlockedAchievement, error) {
	return a.db.ListUnlockedAchievements()
}

// UnlockedCount returns how many achievements are unlocked.
func (a *AchievementService) UnlockedCount() (int, error) {
	return a.db.UnlockedAchievementCount()
}

// TotalCount returns the total number of defined achievements.
func (a *AchievementService) TotalCount() int {
	return len(a.definitions)
}

// Definitions returns the full catalogue (for display).
func (a *AchievementService) Definitions() []domain.AchievementDef {
	return a.definitions
}

// ─── Achievement Catalogue ──────────────────────────────────────────────────
// Static and immutable at runtime. Keep IDs stable; the store keys
// unlock records by them.

// AllAchievements returns the full achievement catalogue.
func AllAchievements() []domain.AchievementDef {
	return []domain.AchievementDef{
		// ── Tasks ──────────────────────────────────────────────────────
		{
			ID: "first_task", Name: "First Step", Icon: "🌱", PointsAwarded: 10,
			Description: "Complete your first task",
			Requirement: domain.Requirement{Kind: domain.ReqTasks, Threshold: 1},
		},
		{
			ID: "tasks_10", Name: "Ten Down", Icon: "✅", PointsAwarded: 25,
			Description: "Complete 10 tasks",
			Requirement: domain.Requirement{Kind: domain.ReqTasks, Threshold: 10},
		},
		{
			ID: "tasks_50", Name: "Finisher", Icon: "🏁", PointsAwarded: 75,
			Description: "Complete 50 tasks",
			Requirement: domain.Requirement{Kind: domain.ReqTasks, Threshold: 50},
		},
		{
			ID: "tasks_250", Name: "Unstoppable", Icon: "🚀", PointsAwarded: 200,
			Description: "Complete 250 tasks",
			Requirement: domain.Requirement{Kind: domain.ReqTasks, Threshold: 250},
		},

		// ── Streaks ────────────────────────────────────────────────────
		{
			ID: "streak_3", Name: "Warming Up", Icon: "✨", PointsAwarded: 15,
			Description: "Three days of activity in a row",
			Requirement: domain.Requirement{Kind: domain.ReqStreak, Threshold: 3},
		},
		{
			ID: "streak_7", Name: "Week Warrior", Icon: "🔥", PointsAwarded: 50,
			Description: "Seven days of activity in a row",
			Requirement: domain.Requirement{Kind: domain.ReqStreak, Threshold: 7},
		},
		{
			ID: "streak_30", Name: "Monthly Machine", Icon: "💪", PointsAwarded: 200,
			Description: "Thirty days of activity in a row",
			Requirement: domain.Requirement{Kind: domain.ReqStreak, Threshold: 30},
		},

		// ── Points ─────────────────────────────────────────────────────
		{
			ID: "points_100", Name: "Century", Icon: "💯", PointsAwarded: 20,
			Description: "Earn 100 points",
			Requirement: domain.Requirement{Kind: domain.ReqPoints, Threshold: 100},
		},
		{
			ID: "points_500", Name: "Point Collector", Icon: "💰", PointsAwarded: 50,
			Description: "Earn 500 points",
			Requirement: domain.Requirement{Kind: domain.ReqPoints, Threshold: 500},
		},
		{
			ID: "points_2500", Name: "High Scorer", Icon: "🏆", PointsAwarded: 150,
			Description: "Earn 2,500 points",
			Requirement: domain.Requirement{Kind: domain.ReqPoints, Threshold: 2500},
		},

		// ── Levels ─────────────────────────────────────────────────────
		{
			ID: "level_5", Name: "Halfway Up", Icon: "⛰️", PointsAwarded: 100,
			Description: "Reach level 5",
			Requirement: domain.Requirement{Kind: domain.ReqLevel, Threshold: 5},
		},
		{
			ID: "level_10", Name: "Summit", Icon: "🗻", PointsAwarded: 500,
			Description: "Reach the max level",
			Requirement: domain.Requirement{Kind: domain.ReqLevel, Threshold: 10},
		},

		// ── Roles ──────────────────────────────────────────────────────
		{
			ID: "role_work_25", Name: "Career Builder", Icon: "💼", PointsAwarded: 60,
			Description: "Complete 25 work tasks",
			Requirement: domain.Requirement{Kind: domain.ReqRoleTasks, Threshold: 25, Role: "work"},
		},
		{
			ID: "role_health_25", Name: "Body Keeper", Icon: "🫀", PointsAwarded: 60,
			Description: "Complete 25 health tasks",
			Requirement: domain.Requirement{Kind: domain.ReqRoleTasks, Threshold: 25, Role: "health"},
		},
		{
			ID: "role_home_25", Name: "Home Maker", Icon: "🏡", PointsAwarded: 60,
			Description: "Complete 25 home tasks",
			Requirement: domain.Requirement{Kind: domain.ReqRoleTasks, Threshold: 25, Role: "home"},
		},
	}
}
