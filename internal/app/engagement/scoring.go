// Package engagement implements the Keel engagement and commitment engine:
// scoring rules, the level ledger, cross-feature streaks, achievement
// unlocks, and the 48-hour commitment workflow.
// Design rule: honor system, not anti-cheat; totals motivate, nothing more.
package engagement

import "github.com/keel-app/keel/internal/domain"

// ─── Scoring Rules ──────────────────────────────────────────────────────────
// Pure functions from a task event to a point value. The same function is
// used to award and to reverse, so a revoke with identical event attributes
// is always exact.

const (
	basePoints      = 10
	quickWinBonus   = 5
	hyperfocusBonus = 15
	mediumSurcharge = 5
	hardSurcharge   = 10
)

// ComputePoints maps a completed-task event to its point value.
// Pure and total: an unknown difficulty earns no surcharge.
func ComputePoints(event domain.TaskEvent) int {
	points := basePoints
	if event.QuickWin {
		points += quickWinBonus
	}
	if event.Hyperfocus {
		points += hyperfocusBonus
	}
	switch event.Difficulty {
	case domain.DifficultyMedium:
		points += mediumSurcharge
	case domain.DifficultyHard:
		points += hardSurcharge
	}
	return points
}

// CommitmentCompletionEvent is the synthetic event a finished commitment
// feeds through the scoring rules: a high-value task completion.
func CommitmentCompletionEvent() domain.TaskEvent {
	return domain.TaskEvent{
		Difficulty: domain.DifficultyHard,
		Hyperfocus: true,
	}
}
