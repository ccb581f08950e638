package engagement

import "github.com/keel-app/keel/internal/domain"

// ─── Level Ledger ───────────────────────────────────────────────────────────
// A fixed ascending threshold table. Index 0 is level 1. Reaching the end of
// the table is a valid terminal state ("max level"), not an error.

// levelThresholds[i] is the cumulative point total required for level i+1.
var levelThresholds = []int{
	0,     // Level 1
	100,   // Level 2
	250,   // Level 3
	500,   // Level 4
	1000,  // Level 5
	2000,  // Level 6
	3500,  // Level 7
	5500,  // Level 8
	8000,  // Level 9
	11000, // Level 10
}

// MaxLevel is the highest attainable level.
const MaxLevel = 10

// LevelFromPoints returns the highest level whose threshold is ≤ points.
// Monotonically non-decreasing in points; never below 1, never above MaxLevel.
func LevelFromPoints(points int) int {
	if points < 0 {
		points = 0
	}
	for i := len(levelThresholds) - 1; i >= 0; i-- {
		if points >= levelThresholds[i] {
			return i + 1
		}
	}
	return 1
}

// PointsToNextLevel returns the points remaining until the next threshold.
// Returns 0 at max level.
func PointsToNextLevel(points int) int {
	level := LevelFromPoints(points)
	if level >= MaxLevel {
		return 0
	}
	remaining := levelThresholds[level] - points
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

// ProgressToNextLevel returns 0–100: the fraction of the way through the
// current level's point band. Returns 100 at max level.
func ProgressToNextLevel(points int) float64 {
	if points < 0 {
		points = 0
	}
	level := LevelFromPoints(points)
	if level >= MaxLevel {
		return 100.0
	}
	floor := levelThresholds[level-1]
	ceiling := levelThresholds[level]
	span := ceiling - floor
	if span <= 0 {
		return 100.0
	}
	progress := float64(points-floor) / float64(span) * 100.0
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	return progress
}

// LevelInfoFor bundles the three derived level views for a point total.
func LevelInfoFor(points int) domain.LevelInfo {
	return domain.LevelInfo{
		Level:           LevelFromPoints(points),
		ProgressPercent: ProgressToNextLevel(points),
		PointsToNext:    PointsToNextLevel(points),
	}
}
