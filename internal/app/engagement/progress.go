package engagement

import (
	"fmt"
	"strconv"

	"github.com/keel-app/keel/internal/domain"
	"github.com/keel-app/keel/internal/infra/metrics"
	"github.com/keel-app/keel/internal/infra/sqlite"
)

// ProgressService owns the single UserProgress record. All mutations go
// through its operations; no caller touches the stored record directly.
type ProgressService struct {
	db *sqlite.DB
}

// NewProgressService creates a progress service.
func NewProgressService(db *sqlite.DB) *ProgressService {
	return &ProgressService{db: db}
}

// Progress store keys for scalar state.
const (
	keyTotalPoints    = "total_points"
	keyLevel          = "level"
	keyTasksCompleted = "tasks_completed"
	keyStreakCurrent  = "streak_current"
	keyStreakLongest  = "streak_longest"
)

// Load assembles the UserProgress record from the store, self-healing any
// consistency drift: a negative total is clamped at zero and a stale level
// is recomputed from points. Drift is repaired in place, never propagated.
func (p *ProgressService) Load() (domain.UserProgress, error) {
	var up domain.UserProgress

	points, err := p.getInt(keyTotalPoints)
	if err != nil {
		return up, err
	}
	storedLevel, err := p.getInt(keyLevel)
	if err != nil {
		return up, err
	}
	tasks, err := p.getInt(keyTasksCompleted)
	if err != nil {
		return up, err
	}
	cur, err := p.getInt(keyStreakCurrent)
	if err != nil {
		return up, err
	}
	longest, err := p.getInt(keyStreakLongest)
	if err != nil {
		return up, err
	}
	roles, err := p.db.RoleTaskCounts()
	if err != nil {
		return up, fmt.Errorf("load role counts: %w", err)
	}

	if points < 0 {
		points = 0
	}
	up = domain.UserProgress{
		TotalPoints:    points,
		Level:          LevelFromPoints(points),
		TasksCompleted: tasks,
		CurrentStreak:  cur,
		LongestStreak:  longest,
		TasksByRole:    roles,
	}

	// Heal a stored level that drifted from its point total
	if storedLevel != up.Level {
		if err := p.setInt(keyLevel, up.Level); err != nil {
			return up, fmt.Errorf("heal level: %w", err)
		}
		if storedLevel != 0 { // 0 = fresh store, not drift
			metrics.ConsistencyHeals.Inc()
		}
	}

	return up, nil
}

// AwardTask applies a completed-task event: computes the delta through the
// scoring rules, bumps counters, and persists points and derived level
// together so they can never be written out of sync.
func (p *ProgressService) AwardTask(event domain.TaskEvent) (domain.UserProgress, error) {
	if !event.Difficulty.Valid() {
		return domain.UserProgress{}, domain.ErrBadDifficulty
	}

	up, err := p.Load()
	if err != nil {
		return up, err
	}

	delta := ComputePoints(event)
	up.TotalPoints += delta
	up.TasksCompleted++

	if event.Role != "" {
		if err := p.db.BumpRoleTasks(event.Role, 1); err != nil {
			return up, fmt.Errorf("bump role tasks: %w", err)
		}
		up.TasksByRole[event.Role]++
	}

	if err := p.save(&up); err != nil {
		return up, err
	}
	if err := p.setInt(keyTasksCompleted, up.TasksCompleted); err != nil {
		return up, fmt.Errorf("save tasks completed: %w", err)
	}

	metrics.TasksCompleted.Inc()
	metrics.PointsAwarded.Add(float64(delta))
	return up, nil
}

// RevokeTask reverses a prior award exactly: the same event attributes yield
// the same delta, subtracted and floored at zero.
func (p *ProgressService) RevokeTask(event domain.TaskEvent) (domain.UserProgress, error) {
	if !event.Difficulty.Valid() {
		return domain.UserProgress{}, domain.ErrBadDifficulty
	}

	up, err := p.Load()
	if err != nil {
		return up, err
	}

	delta := ComputePoints(event)
	up.TotalPoints -= delta
	if up.TotalPoints < 0 {
		up.TotalPoints = 0
	}
	if up.TasksCompleted > 0 {
		up.TasksCompleted--
	}

	if event.Role != "" {
		if err := p.db.BumpRoleTasks(event.Role, -1); err != nil {
			return up, fmt.Errorf("bump role tasks: %w", err)
		}
		if up.TasksByRole[event.Role] > 0 {
			up.TasksByRole[event.Role]--
		}
	}

	if err := p.save(&up); err != nil {
		return up, err
	}
	if err := p.setInt(keyTasksCompleted, up.TasksCompleted); err != nil {
		return up, fmt.Errorf("save tasks completed: %w", err)
	}

	metrics.TasksRevoked.Inc()
	return up, nil
}

// AwardBonus adds a flat point amount outside the task path; achievement
// rewards and commitment completions land here.
func (p *ProgressService) AwardBonus(points int) (domain.UserProgress, error) {
	up, err := p.Load()
	if err != nil {
		return up, err
	}
	if points <= 0 {
		return up, nil
	}

	up.TotalPoints += points
	if err := p.save(&up); err != nil {
		return up, err
	}

	metrics.PointsAwarded.Add(float64(points))
	return up, nil
}

// LevelInfo returns the derived level view for the current point total.
func (p *ProgressService) LevelInfo() (domain.LevelInfo, error) {
	up, err := p.Load()
	if err != nil {
		return domain.LevelInfo{}, err
	}
	return LevelInfoFor(up.TotalPoints), nil
}

// Stats takes the snapshot the achievement evaluator runs against.
func (p *ProgressService) Stats() (domain.Stats, error) {
	up, err := p.Load()
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.Stats{
		TotalPoints:    up.TotalPoints,
		Level:          up.Level,
		TasksCompleted: up.TasksCompleted,
		CurrentStreak:  up.CurrentStreak,
		LongestStreak:  up.LongestStreak,
		TasksByRole:    up.TasksByRole,
	}, nil
}

// save persists points and the level derived from them as one logical write.
func (p *ProgressService) save(up *domain.UserProgress) error {
	up.Level = LevelFromPoints(up.TotalPoints)
	if err := p.setInt(keyTotalPoints, up.TotalPoints); err != nil {
		return fmt.Errorf("save points: %w", err)
	}
	if err := p.setInt(keyLevel, up.Level); err != nil {
		return fmt.Errorf("save level: %w", err)
	}
	metrics.CurrentLevel.Set(float64(up.Level))
	return nil
}

func (p *ProgressService) getInt(key string) (int, error) {
	s, err := p.db.GetProgress(key)
	if err != nil {
		return 0, fmt.Errorf("get %s: %w", key, err)
	}
	if s == "" {
		return 0, nil
	}
	n, _ := strconv.Atoi(s)
	return n, nil
}

func (p *ProgressService) setInt(key string, value int) error {
	return p.db.SetProgress(key, strconv.Itoa(value))
}
