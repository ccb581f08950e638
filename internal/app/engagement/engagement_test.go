package engagement

import (
	"errors"
	"testing"
	"time"

	"github.com/keel-app/keel/internal/domain"
	"github.com/keel-app/keel/internal/infra/sqlite"
)

func testDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// ─── Scoring ────────────────────────────────────────────────────────────────

func TestComputePoints(t *testing.T) {
	tests := []struct {
		name  string
		event domain.TaskEvent
		want  int
	}{
		{"base easy", domain.TaskEvent{Difficulty: domain.DifficultyEasy}, 10},
		{"medium", domain.TaskEvent{Difficulty: domain.DifficultyMedium}, 15},
		{"hard", domain.TaskEvent{Difficulty: domain.DifficultyHard}, 20},
		{"quick win", domain.TaskEvent{Difficulty: domain.DifficultyEasy, QuickWin: true}, 15},
		{"hyperfocus", domain.TaskEvent{Difficulty: domain.DifficultyEasy, Hyperfocus: true}, 25},
		{"everything", domain.TaskEvent{Difficulty: domain.DifficultyHard, QuickWin: true, Hyperfocus: true}, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputePoints(tt.event); got != tt.want {
				t.Errorf("ComputePoints() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCommitmentCompletionEvent(t *testing.T) {
	if got := ComputePoints(CommitmentCompletionEvent()); got != 35 {
		t.Errorf("commitment completion worth %d points, want 35", got)
	}
}

// ─── Levels ─────────────────────────────────────────────────────────────────

func TestLevelFromPoints(t *testing.T) {
	tests := []struct {
		points int
		want   int
	}{
		{-50, 1}, // negative totals clamp to the floor
		{0, 1},
		{99, 1},
		{100, 2},
		{249, 2},
		{250, 3},
		{500, 4},
		{1000, 5},
		{2000, 6},
		{3500, 7},
		{5500, 8},
		{8000, 9},
		{11000, 10},
		{999999, 10},
	}
	for _, tt := range tests {
		if got := LevelFromPoints(tt.points); got != tt.want {
			t.Errorf("LevelFromPoints(%d) = %d, want %d", tt.points, got, tt.want)
		}
	}
}

func TestLevelMonotonic(t *testing.T) {
	prev := 0
	for pts := 0; pts <= 12000; pts += 50 {
		level := LevelFromPoints(pts)
		if level < prev {
			t.Fatalf("level dropped from %d to %d at %d points", prev, level, pts)
		}
		prev = level
	}
}

func TestLevelInfoFor(t *testing.T) {
	info := LevelInfoFor(175) // level 2 band is 100..250
	if info.Level != 2 {
		t.Errorf("Level = %d, want 2", info.Level)
	}
	if info.PointsToNext != 75 {
		t.Errorf("PointsToNext = %d, want 75", info.PointsToNext)
	}
	if info.ProgressPercent != 50 {
		t.Errorf("ProgressPercent = %v, want 50", info.ProgressPercent)
	}

	top := LevelInfoFor(20000)
	if top.Level != MaxLevel {
		t.Errorf("Level = %d, want max %d", top.Level, MaxLevel)
	}
	if top.ProgressPercent != 100 || top.PointsToNext != 0 {
		t.Errorf("max level should report 100%% / 0 to next, got %v%% / %d",
			top.ProgressPercent, top.PointsToNext)
	}
}

func TestProgressPercentBounds(t *testing.T) {
	for pts := 0; pts <= 12000; pts += 7 {
		info := LevelInfoFor(pts)
		if info.ProgressPercent < 0 || info.ProgressPercent > 100 {
			t.Fatalf("ProgressPercent out of range at %d points: %v", pts, info.ProgressPercent)
		}
	}
}

// ─── Progress ───────────────────────────────────────────────────────────────

func TestAwardAndRevokeTask(t *testing.T) {
	svc := NewProgressService(testDB(t))

	event := domain.TaskEvent{Difficulty: domain.DifficultyHard, Hyperfocus: true, Role: "work"}
	up, err := svc.AwardTask(event)
	if err != nil {
		t.Fatalf("AwardTask: %v", err)
	}
	if up.TotalPoints != 35 || up.TasksCompleted != 1 {
		t.Errorf("after award: %d points / %d tasks, want 35 / 1", up.TotalPoints, up.TasksCompleted)
	}
	if up.TasksByRole["work"] != 1 {
		t.Errorf("work role count = %d, want 1", up.TasksByRole["work"])
	}

	// Revoking with the same attributes reverses the award exactly
	up, err = svc.RevokeTask(event)
	if err != nil {
		t.Fatalf("RevokeTask: %v", err)
	}
	if up.TotalPoints != 0 || up.TasksCompleted != 0 {
		t.Errorf("after revoke: %d points / %d tasks, want 0 / 0", up.TotalPoints, up.TasksCompleted)
	}
	if up.TasksByRole["work"] != 0 {
		t.Errorf("work role count = %d, want 0", up.TasksByRole["work"])
	}
}

func TestRevokeFloorsAtZero(t *testing.T) {
	svc := NewProgressService(testDB(t))

	if _, err := svc.AwardTask(domain.TaskEvent{Difficulty: domain.DifficultyEasy}); err != nil {
		t.Fatalf("AwardTask: %v", err)
	}

	// Revoking a bigger award than was ever granted must not go negative
	up, err := svc.RevokeTask(domain.TaskEvent{Difficulty: domain.DifficultyHard, Hyperfocus: true})
	if err != nil {
		t.Fatalf("RevokeTask: %v", err)
	}
	if up.TotalPoints != 0 {
		t.Errorf("TotalPoints = %d, want 0", up.TotalPoints)
	}
	if up.Level != 1 {
		t.Errorf("Level = %d, want 1", up.Level)
	}
}

func TestAwardTaskBadDifficulty(t *testing.T) {
	svc := NewProgressService(testDB(t))
	if _, err := svc.AwardTask(domain.TaskEvent{Difficulty: "legendary"}); !errors.Is(err, domain.ErrBadDifficulty) {
		t.Errorf("err = %v, want ErrBadDifficulty", err)
	}
}

func TestLoadHealsLevelDrift(t *testing.T) {
	db := testDB(t)
	svc := NewProgressService(db)

	// Enough points for level 3, but a stale stored level
	if err := db.SetProgress("total_points", "300"); err != nil {
		t.Fatal(err)
	}
	if err := db.SetProgress("level", "7"); err != nil {
		t.Fatal(err)
	}

	up, err := svc.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if up.Level != 3 {
		t.Errorf("Level = %d, want healed 3", up.Level)
	}
	if v, _ := db.GetProgress("level"); v != "3" {
		t.Errorf("stored level = %q, want repaired to 3", v)
	}
}

func TestLoadClampsNegativePoints(t *testing.T) {
	db := testDB(t)
	svc := NewProgressService(db)

	if err := db.SetProgress("total_points", "-40"); err != nil {
		t.Fatal(err)
	}

	up, err := svc.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if up.TotalPoints != 0 || up.Level != 1 {
		t.Errorf("got %d points level %d, want 0 points level 1", up.TotalPoints, up.Level)
	}
}

// ─── Streaks ────────────────────────────────────────────────────────────────

func TestStreakThreeDays(t *testing.T) {
	svc := NewStreakService(testDB(t))
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	for offset := 2; offset >= 0; offset-- {
		if err := svc.RecordActivity(now.AddDate(0, 0, -offset)); err != nil {
			t.Fatalf("RecordActivity: %v", err)
		}
	}

	streak, err := svc.Current(now)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if streak != 3 {
		t.Errorf("streak = %d, want 3", streak)
	}
}

func TestStreakTodayOnly(t *testing.T) {
	svc := NewStreakService(testDB(t))
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	if err := svc.RecordActivity(now); err != nil {
		t.Fatalf("RecordActivity: %v", err)
	}
	streak, err := svc.Current(now)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if streak != 1 {
		t.Errorf("streak = %d, want 1", streak)
	}
}

func TestStreakNoActivity(t *testing.T) {
	svc := NewStreakService(testDB(t))
	streak, err := svc.Current(time.Now())
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if streak != 0 {
		t.Errorf("streak = %d, want 0", streak)
	}
}

func TestStreakSurvivesQuietToday(t *testing.T) {
	svc := NewStreakService(testDB(t))
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)

	// Activity yesterday and the day before, nothing yet today
	for offset := 2; offset >= 1; offset-- {
		if err := svc.RecordActivity(now.AddDate(0, 0, -offset)); err != nil {
			t.Fatalf("RecordActivity: %v", err)
		}
	}

	streak, err := svc.Current(now)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if streak != 2 {
		t.Errorf("streak = %d, want 2 (quiet today must not break it)", streak)
	}
}

func TestStreakGapBreaks(t *testing.T) {
	svc := NewStreakService(testDB(t))
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)

	// Today active, yesterday a gap, the two days before active
	if err := svc.RecordActivity(now); err != nil {
		t.Fatal(err)
	}
	if err := svc.RecordActivity(now.AddDate(0, 0, -2)); err != nil {
		t.Fatal(err)
	}
	if err := svc.RecordActivity(now.AddDate(0, 0, -3)); err != nil {
		t.Fatal(err)
	}

	streak, err := svc.Current(now)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if streak != 1 {
		t.Errorf("streak = %d, want 1 (gap at yesterday ends the walk)", streak)
	}
}

func TestStreakSameDayIdempotent(t *testing.T) {
	svc := NewStreakService(testDB(t))
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)

	for i := 0; i < 5; i++ {
		if err := svc.RecordActivity(now.Add(time.Duration(i) * time.Hour)); err != nil {
			t.Fatalf("RecordActivity: %v", err)
		}
	}

	streak, err := svc.Current(now)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if streak != 1 {
		t.Errorf("streak = %d, want 1 (same day recorded once)", streak)
	}
}

func TestLongestStreakMonotonic(t *testing.T) {
	svc := NewStreakService(testDB(t))
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)

	for offset := 4; offset >= 0; offset-- {
		if err := svc.RecordActivity(now.AddDate(0, 0, -offset)); err != nil {
			t.Fatal(err)
		}
	}
	longest, err := svc.Longest()
	if err != nil {
		t.Fatal(err)
	}
	if longest != 5 {
		t.Errorf("longest = %d, want 5", longest)
	}

	// Much later, the current streak resets but longest stays
	later := now.AddDate(0, 0, 30)
	if _, err := svc.Refresh(later); err != nil {
		t.Fatal(err)
	}
	longest, err = svc.Longest()
	if err != nil {
		t.Fatal(err)
	}
	if longest != 5 {
		t.Errorf("longest = %d after reset, want 5", longest)
	}
	current, err := svc.Current(later)
	if err != nil {
		t.Fatal(err)
	}
	if current != 0 {
		t.Errorf("current = %d after 30 quiet days, want 0", current)
	}
}

// ─── Achievements ───────────────────────────────────────────────────────────

func TestAchievementUnlockAtThreshold(t *testing.T) {
	svc := NewAchievementService(testDB(t))

	unlocked, err := svc.EvaluateUnlocks(domain.Stats{TasksCompleted: 10, Level: 1})
	if err != nil {
		t.Fatalf("EvaluateUnlocks: %v", err)
	}

	ids := make(map[string]bool)
	for _, def := range unlocked {
		ids[def.ID] = true
	}
	if !ids["first_task"] || !ids["tasks_10"] {
		t.Errorf("expected first_task and tasks_10 in %v", ids)
	}
	if ids["tasks_50"] {
		t.Error("tasks_50 unlocked at 10 tasks")
	}
}

func TestAchievementIdempotent(t *testing.T) {
	svc := NewAchievementService(testDB(t))
	stats := domain.Stats{TasksCompleted: 1, Level: 1}

	first, err := svc.EvaluateUnlocks(stats)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 1 {
		t.Fatalf("first pass unlocked %d, want 1", len(first))
	}

	second, err := svc.EvaluateUnlocks(stats)
	if err != nil {
		t.Fatal(err)
	}
	if len(second) != 0 {
		t.Errorf("second pass unlocked %d, want 0", len(second))
	}

	count, err := svc.UnlockedCount()
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("UnlockedCount = %d, want 1", count)
	}
}

func TestAchievementSnapshotNoCascade(t *testing.T) {
	// 95 points at evaluation time: first_task unlocks and awards +10,
	// but points_100 must not fire within the same pass.
	svc := NewAchievementService(testDB(t))

	unlocked, err := svc.EvaluateUnlocks(domain.Stats{TotalPoints: 95, TasksCompleted: 1, Level: 1})
	if err != nil {
		t.Fatal(err)
	}

	for _, def := range unlocked {
		if def.ID == "points_100" {
			t.Error("points_100 unlocked from mid-pass reward points")
		}
	}
}

func TestAchievementCatalogueIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, def := range AllAchievements() {
		if seen[def.ID] {
			t.Errorf("duplicate achievement ID %q", def.ID)
		}
		seen[def.ID] = true
	}
}

// ─── Commitments ────────────────────────────────────────────────────────────

func TestCommitmentCreate(t *testing.T) {
	svc := NewCommitmentService(testDB(t))
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	c, err := svc.CreateAt("Ship the report", "the quarterly one", now)
	if err != nil {
		t.Fatalf("CreateAt: %v", err)
	}
	if c.ID == "" {
		t.Error("empty commitment ID")
	}
	if want := now.Add(48 * time.Hour); !c.Deadline.Equal(want) {
		t.Errorf("Deadline = %v, want %v", c.Deadline, want)
	}
	if !c.Active() {
		t.Error("new commitment not active")
	}
}

func TestCommitmentEmptyTitle(t *testing.T) {
	svc := NewCommitmentService(testDB(t))
	if _, err := svc.CreateAt("   ", "", time.Now()); !errors.Is(err, domain.ErrEmptyTitle) {
		t.Errorf("err = %v, want ErrEmptyTitle", err)
	}
}

func TestCommitmentSingleActive(t *testing.T) {
	svc := NewCommitmentService(testDB(t))
	now := time.Now()

	first, err := svc.CreateAt("First", "", now)
	if err != nil {
		t.Fatalf("CreateAt: %v", err)
	}

	// A second create must return the existing record untouched
	got, err := svc.CreateAt("Second", "", now.Add(time.Hour))
	if !errors.Is(err, domain.ErrActiveCommitmentExists) {
		t.Fatalf("err = %v, want ErrActiveCommitmentExists", err)
	}
	if got.ID != first.ID || got.Title != "First" {
		t.Errorf("existing commitment mutated: %+v", got)
	}
}

func TestCommitmentNearExpiry(t *testing.T) {
	svc := NewCommitmentService(testDB(t))
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	c, err := svc.CreateAt("Tight one", "", now)
	if err != nil {
		t.Fatal(err)
	}

	if c.NearExpiry(c.Deadline.Add(-6 * time.Minute)) {
		t.Error("near-expiry at 6 minutes out")
	}
	if !c.NearExpiry(c.Deadline.Add(-4 * time.Minute)) {
		t.Error("not near-expiry at 4 minutes out")
	}
	if c.NearExpiry(c.Deadline.Add(time.Second)) {
		t.Error("near-expiry past the deadline")
	}
}

func TestCommitmentExpiryPending(t *testing.T) {
	svc := NewCommitmentService(testDB(t))
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	c, err := svc.CreateAt("Slow one", "", now)
	if err != nil {
		t.Fatal(err)
	}

	before := now.Add(47*time.Hour + 59*time.Minute)
	after := now.Add(48*time.Hour + time.Minute)

	if c.ExpiryPending(before) {
		t.Error("expiry pending before the deadline")
	}
	if !c.ExpiryPending(after) {
		t.Error("not expiry pending after the deadline")
	}

	// Passing the deadline alone never flips the stored record
	stored, err := svc.Active()
	if err != nil {
		t.Fatal(err)
	}
	if stored == nil || stored.Expired {
		t.Errorf("stored record changed without resolution: %+v", stored)
	}
}

func TestCommitmentComplete(t *testing.T) {
	svc := NewCommitmentService(testDB(t))
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	c, err := svc.CreateAt("Do it", "", now)
	if err != nil {
		t.Fatal(err)
	}

	done, points, err := svc.CompleteAt(c.ID, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("CompleteAt: %v", err)
	}
	if !done.Completed || done.CompletedAt.IsZero() {
		t.Errorf("not marked completed: %+v", done)
	}
	if points != 35 {
		t.Errorf("points = %d, want 35", points)
	}

	// Terminal records reject further transitions
	if _, _, err := svc.CompleteAt(c.ID, now.Add(2*time.Hour)); !errors.Is(err, domain.ErrCommitmentTerminal) {
		t.Errorf("err = %v, want ErrCommitmentTerminal", err)
	}
}

func TestCommitmentLateCompletion(t *testing.T) {
	svc := NewCommitmentService(testDB(t))
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	c, err := svc.CreateAt("Overdue", "", now)
	if err != nil {
		t.Fatal(err)
	}

	// Past the deadline but not yet resolved: completion still wins
	done, points, err := svc.CompleteAt(c.ID, now.Add(50*time.Hour))
	if err != nil {
		t.Fatalf("late CompleteAt: %v", err)
	}
	if !done.Completed || done.Expired {
		t.Errorf("late completion mishandled: %+v", done)
	}
	if points != 35 {
		t.Errorf("points = %d, want 35", points)
	}
}

func TestCommitmentResolveExpired(t *testing.T) {
	svc := NewCommitmentService(testDB(t))
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	c, err := svc.CreateAt("Missed", "", now)
	if err != nil {
		t.Fatal(err)
	}

	// Notes are mandatory
	if _, err := svc.ResolveExpiredAt(c.ID, "  ", now.Add(49*time.Hour)); !errors.Is(err, domain.ErrNotesRequired) {
		t.Errorf("err = %v, want ErrNotesRequired", err)
	}
	// Resolution before the deadline is rejected
	if _, err := svc.ResolveExpiredAt(c.ID, "ran out of time", now.Add(time.Hour)); !errors.Is(err, domain.ErrDeadlineNotReached) {
		t.Errorf("err = %v, want ErrDeadlineNotReached", err)
	}

	resolved, err := svc.ResolveExpiredAt(c.ID, "ran out of time", now.Add(49*time.Hour))
	if err != nil {
		t.Fatalf("ResolveExpiredAt: %v", err)
	}
	if !resolved.Expired || resolved.Notes != "ran out of time" {
		t.Errorf("resolution mishandled: %+v", resolved)
	}

	// Immutable afterwards
	if _, err := svc.ResolveExpiredAt(c.ID, "again", now.Add(50*time.Hour)); !errors.Is(err, domain.ErrCommitmentTerminal) {
		t.Errorf("err = %v, want ErrCommitmentTerminal", err)
	}
	if _, _, err := svc.CompleteAt(c.ID, now.Add(50*time.Hour)); !errors.Is(err, domain.ErrCommitmentTerminal) {
		t.Errorf("err = %v, want ErrCommitmentTerminal", err)
	}
}

func TestCommitmentDelete(t *testing.T) {
	svc := NewCommitmentService(testDB(t))

	c, err := svc.Create("Abandon ship", "")
	if err != nil {
		t.Fatal(err)
	}

	// Delete needs no notes, even past the deadline
	if err := svc.Delete(c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	active, err := svc.Active()
	if err != nil {
		t.Fatal(err)
	}
	if active != nil {
		t.Errorf("active after delete: %+v", active)
	}

	if err := svc.Delete(c.ID); !errors.Is(err, domain.ErrCommitmentNotFound) {
		t.Errorf("err = %v, want ErrCommitmentNotFound", err)
	}
}

func TestCommitmentNotFound(t *testing.T) {
	svc := NewCommitmentService(testDB(t))
	if _, _, err := svc.Complete("nope"); !errors.Is(err, domain.ErrCommitmentNotFound) {
		t.Errorf("err = %v, want ErrCommitmentNotFound", err)
	}
	if _, err := svc.ResolveExpired("nope", "notes"); !errors.Is(err, domain.ErrCommitmentNotFound) {
		t.Errorf("err = %v, want ErrCommitmentNotFound", err)
	}
}

// ─── Engine ─────────────────────────────────────────────────────────────────

func TestEngineTaskFlow(t *testing.T) {
	engine := NewEngine(testDB(t))

	up, err := engine.AwardTaskCompletion(domain.TaskEvent{Difficulty: domain.DifficultyMedium, QuickWin: true})
	if err != nil {
		t.Fatalf("AwardTaskCompletion: %v", err)
	}
	if up.TotalPoints != 20 || up.TasksCompleted != 1 {
		t.Errorf("got %d points / %d tasks, want 20 / 1", up.TotalPoints, up.TasksCompleted)
	}

	unlocked, err := engine.EvaluateAchievements()
	if err != nil {
		t.Fatalf("EvaluateAchievements: %v", err)
	}
	found := false
	for _, def := range unlocked {
		if def.ID == "first_task" {
			found = true
		}
	}
	if !found {
		t.Errorf("first_task not unlocked, got %+v", unlocked)
	}

	// Achievement reward points landed on the total
	after, err := engine.Progress.Load()
	if err != nil {
		t.Fatal(err)
	}
	if after.TotalPoints != 30 {
		t.Errorf("TotalPoints = %d, want 30 (20 task + 10 reward)", after.TotalPoints)
	}
}

func TestEngineCompleteCommitmentAwardsPoints(t *testing.T) {
	engine := NewEngine(testDB(t))

	c, err := engine.CreateCommitment("Finish the thing", "")
	if err != nil {
		t.Fatalf("CreateCommitment: %v", err)
	}

	up, err := engine.CompleteCommitment(c.ID)
	if err != nil {
		t.Fatalf("CompleteCommitment: %v", err)
	}
	if up.TotalPoints != 35 {
		t.Errorf("TotalPoints = %d, want 35", up.TotalPoints)
	}
	// Commitment completion is not a task
	if up.TasksCompleted != 0 {
		t.Errorf("TasksCompleted = %d, want 0", up.TasksCompleted)
	}
}

func TestEngineSummarize(t *testing.T) {
	engine := NewEngine(testDB(t))

	if _, err := engine.AwardTaskCompletion(domain.TaskEvent{Difficulty: domain.DifficultyEasy}); err != nil {
		t.Fatal(err)
	}
	if _, err := engine.CreateCommitment("Summary check", ""); err != nil {
		t.Fatal(err)
	}

	summary, err := engine.Summarize()
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary.Progress.TotalPoints != 10 {
		t.Errorf("TotalPoints = %d, want 10", summary.Progress.TotalPoints)
	}
	if summary.Commitment == nil {
		t.Error("summary missing active commitment")
	}
	if summary.Total != len(AllAchievements()) {
		t.Errorf("Total = %d, want %d", summary.Total, len(AllAchievements()))
	}
}
