// Package metrics provides Prometheus metrics for the Keel engine:
// counters and gauges for scoring, streaks, achievements, and commitments.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Scoring ────────────────────────────────────────────────────────────────

// TasksCompleted counts task completions awarded through the engine.
var TasksCompleted = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "keel",
	Name:      "tasks_completed_total",
	Help:      "Total task completions awarded.",
})

// TasksRevoked counts task completions reversed.
var TasksRevoked = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "keel",
	Name:      "tasks_revoked_total",
	Help:      "Total task completions reversed.",
})

// PointsAwarded counts every point handed out (tasks, bonuses, commitments).
var PointsAwarded = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "keel",
	Name:      "points_awarded_total",
	Help:      "Total points awarded.",
})

// CurrentLevel tracks the derived level.
var CurrentLevel = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "keel",
	Name:      "level_current",
	Help:      "Current user level derived from total points.",
})

// ConsistencyHeals counts self-healed level/point drift on load.
var ConsistencyHeals = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "keel",
	Name:      "consistency_heals_total",
	Help:      "Times a stale level or negative total was repaired on load.",
})

// ─── Streaks ────────────────────────────────────────────────────────────────

// StreakDays tracks the current consecutive-day streak.
var StreakDays = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "keel",
	Name:      "streak_days_current",
	Help:      "Current consecutive-day activity streak.",
})

// ─── Achievements ───────────────────────────────────────────────────────────

// AchievementsUnlocked counts unlocked achievements.
var AchievementsUnlocked = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "keel",
	Name:      "achievements_unlocked_total",
	Help:      "Total achievements unlocked.",
})

// ─── Commitments ────────────────────────────────────────────────────────────

// CommitmentsCreated counts commitments created.
var CommitmentsCreated = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "keel",
	Name:      "commitments_created_total",
	Help:      "Total commitments created.",
})

// CommitmentsCompleted counts commitments completed (including late).
var CommitmentsCompleted = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "keel",
	Name:      "commitments_completed_total",
	Help:      "Total commitments completed.",
})

// CommitmentsExpired counts commitments resolved as expired.
var CommitmentsExpired = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "keel",
	Name:      "commitments_expired_total",
	Help:      "Total commitments resolved as expired with notes.",
})

// CommitmentsDeleted counts commitments deleted.
var CommitmentsDeleted = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "keel",
	Name:      "commitments_deleted_total",
	Help:      "Total commitments deleted.",
})

// ─── Health ─────────────────────────────────────────────────────────────────

// HealthCheckStatus reports each health check as 1 (healthy) or 0.
var HealthCheckStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "keel",
	Name:      "health_check_status",
	Help:      "Health check status: 1 healthy, 0 unhealthy.",
}, []string{"check"})
