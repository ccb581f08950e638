package engagement

import (
	"fmt"
	"strconv"
	"time"

	"github.com/keel-app/keel/internal/infra/metrics"
	"github.com/keel-app/keel/internal/infra/sqlite"
)

// ─── Streak Calculator ──────────────────────────────────────────────────────
// One calculator for every activity-producing feature. Features contribute
// bare timestamps through RecordActivity; the calculator only sees instants,
// never their origin. The streak is always rederived from stored calendar
// days against the wall clock at observation time, so it survives arbitrary
// process suspension.

// maxStreakWalk bounds the backward day walk.
const maxStreakWalk = 365

// StreakService derives the consecutive-day activity streak.
type StreakService struct {
	db *sqlite.DB
}

// NewStreakService creates a streak service.
func NewStreakService(db *sqlite.DB) *StreakService {
	return &StreakService{db: db}
}

// RecordActivity marks the calendar day of ts as active and refreshes the
// persisted streak counters. Recording the same day twice is a no-op.
func (s *StreakService) RecordActivity(ts time.Time) error {
	if err := s.db.RecordActivityDay(dayKey(ts)); err != nil {
		return fmt.Errorf("record activity day: %w", err)
	}
	_, err := s.Refresh(ts)
	return err
}

// Current computes the streak as observed at now: walk backward from
// today's calendar day, counting days with any activity. A gap at offset
// ≥1 ends the walk; today itself (offset 0) is inspected but never breaks
// the streak; the day may simply have no activity yet.
func (s *StreakService) Current(now time.Time) (int, error) {
	horizon := dayKey(now.AddDate(0, 0, -maxStreakWalk))
	days, err := s.db.ActivityDaysSince(horizon)
	if err != nil {
		return 0, fmt.Errorf("load activity days: %w", err)
	}

	streak := 0
	for offset := 0; offset < maxStreakWalk; offset++ {
		if days[dayKey(now.AddDate(0, 0, -offset))] {
			streak++
		} else if offset >= 1 {
			break
		}
	}
	return streak, nil
}

// Longest returns the longest streak ever observed.
func (s *StreakService) Longest() (int, error) {
	v, err := s.db.GetProgress(keyStreakLongest)
	if err != nil {
		return 0, fmt.Errorf("get %s: %w", keyStreakLongest, err)
	}
	if v == "" {
		return 0, nil
	}
	n, _ := strconv.Atoi(v)
	return n, nil
}

// Refresh recomputes the current streak at now and persists it alongside
// the longest streak, which is monotonically non-decreasing.
func (s *StreakService) Refresh(now time.Time) (int, error) {
	current, err := s.Current(now)
	if err != nil {
		return 0, err
	}

	longest, err := s.Longest()
	if err != nil {
		return 0, err
	}
	if current > longest {
		longest = current
		if err := s.db.SetProgress(keyStreakLongest, strconv.Itoa(longest)); err != nil {
			return 0, fmt.Errorf("save %s: %w", keyStreakLongest, err)
		}
	}
	if err := s.db.SetProgress(keyStreakCurrent, strconv.Itoa(current)); err != nil {
		return 0, fmt.Errorf("save %s: %w", keyStreakCurrent, err)
	}

	metrics.StreakDays.Set(float64(current))
	return current, nil
}

// dayKey reduces a timestamp to its local calendar day.
func dayKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}
