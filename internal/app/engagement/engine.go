package engagement

import (
	"time"

	"github.com/keel-app/keel/internal/domain"
	"github.com/keel-app/keel/internal/infra/sqlite"
)

// Engine is the single owner of the user's engagement state. Screens and
// feature code never mutate records directly; everything goes through the
// operations below. Engine methods run on one logical thread of control;
// each mutation is a read-modify-write against the store and callers must
// not interleave two mutations without awaiting the first.
type Engine struct {
	Progress     *ProgressService
	Streak       *StreakService
	Achievements *AchievementService
	Commitments  *CommitmentService
}

// NewEngine wires the engine's services over one progress store.
func NewEngine(db *sqlite.DB) *Engine {
	return &Engine{
		Progress:     NewProgressService(db),
		Streak:       NewStreakService(db),
		Achievements: NewAchievementService(db),
		Commitments:  NewCommitmentService(db),
	}
}

// AwardTaskCompletion scores a completed task and returns the updated record.
func (e *Engine) AwardTaskCompletion(event domain.TaskEvent) (domain.UserProgress, error) {
	return e.Progress.AwardTask(event)
}

// RevokeTaskCompletion reverses a prior award with the same event attributes.
func (e *Engine) RevokeTaskCompletion(event domain.TaskEvent) (domain.UserProgress, error) {
	return e.Progress.RevokeTask(event)
}

// GetLevelInfo returns the derived level view for the current point total.
func (e *Engine) GetLevelInfo() (domain.LevelInfo, error) {
	return e.Progress.LevelInfo()
}

// RecordActivity feeds one activity timestamp into the streak calculator.
func (e *Engine) RecordActivity(ts time.Time) error {
	return e.Streak.RecordActivity(ts)
}

// GetCurrentStreak recomputes the streak against the wall clock now.
func (e *Engine) GetCurrentStreak() (int, error) {
	return e.Streak.Refresh(time.Now())
}

// EvaluateAchievements runs one evaluation pass against a stats snapshot
// taken up front, then pays out the rewards of any new unlocks. Because the
// pass compares against the initial snapshot only, reward re-entry cannot
// cascade into further unlocks within the same pass.
func (e *Engine) EvaluateAchievements() ([]domain.AchievementDef, error) {
	stats, err := e.Progress.Stats()
	if err != nil {
		return nil, err
	}

	newlyUnlocked, err := e.Achievements.EvaluateUnlocks(stats)
	if err != nil {
		return nil, err
	}

	for _, def := range newlyUnlocked {
		if _, err := e.Progress.AwardBonus(def.PointsAwarded); err != nil {
			return newlyUnlocked, err
		}
	}
	return newlyUnlocked, nil
}

// CreateCommitment starts the single active 48-hour pledge.
func (e *Engine) CreateCommitment(title, description string) (domain.Commitment, error) {
	return e.Commitments.Create(title, description)
}

// GetActiveCommitment observes the active commitment, or nil if none.
func (e *Engine) GetActiveCommitment() (*domain.CommitmentStatus, error) {
	return e.Commitments.ActiveStatus(time.Now())
}

// CompleteCommitment finishes the pledge and feeds its point award through
// the scoring rules, returning the updated progress record.
func (e *Engine) CompleteCommitment(id string) (domain.UserProgress, error) {
	_, points, err := e.Commitments.Complete(id)
	if err != nil {
		return domain.UserProgress{}, err
	}
	return e.Progress.AwardBonus(points)
}

// ResolveExpiredCommitment commits the expiry transition with the user's
// reflection notes.
func (e *Engine) ResolveExpiredCommitment(id, notes string) (domain.Commitment, error) {
	return e.Commitments.ResolveExpired(id, notes)
}

// DeleteCommitment removes a commitment record entirely.
func (e *Engine) DeleteCommitment(id string) error {
	return e.Commitments.Delete(id)
}

// Summary is the one-call snapshot the status screen polls.
type Summary struct {
	Progress     domain.UserProgress      `json:"progress"`
	LevelInfo    domain.LevelInfo         `json:"level_info"`
	Achievements int                      `json:"achievements_unlocked"`
	Total        int                      `json:"achievements_total"`
	Commitment   *domain.CommitmentStatus `json:"commitment,omitempty"`
}

// Summarize assembles the summary at the current wall clock.
func (e *Engine) Summarize() (Summary, error) {
	if _, err := e.Streak.Refresh(time.Now()); err != nil {
		return Summary{}, err
	}

	progress, err := e.Progress.Load()
	if err != nil {
		return Summary{}, err
	}
	unlocked, err := e.Achievements.UnlockedCount()
	if err != nil {
		return Summary{}, err
	}
	status, err := e.Commitments.ActiveStatus(time.Now())
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Progress:     progress,
		LevelInfo:    LevelInfoFor(progress.TotalPoints),
		Achievements: unlocked,
		Total:        e.Achievements.TotalCount(),
		Commitment:   status,
	}, nil
}
