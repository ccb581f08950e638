package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/keel-app/keel/internal/domain"
)

// ─── Engine endpoints (/api/*) ───────────────────────────────────────────────
// Thin JSON glue over the engagement engine. Callers re-read after each
// mutation; every mutating handler runs as one read-modify-write and the
// engine is driven by a single logical thread of control.

// --- /api/progress ---

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := s.engine.Progress.Load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	info, err := s.engine.GetLevelInfo()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"progress":   progress,
		"level_info": info,
	})
}

// --- /api/summary ---

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.engine.Summarize()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// --- /api/tasks/complete, /api/tasks/revoke ---

// taskRequest mirrors domain.TaskEvent on the wire.
type taskRequest struct {
	QuickWin   bool   `json:"quick_win"`
	Hyperfocus bool   `json:"hyperfocus"`
	Difficulty string `json:"difficulty"`
	Role       string `json:"role,omitempty"`
}

func (t taskRequest) event() domain.TaskEvent {
	return domain.TaskEvent{
		QuickWin:   t.QuickWin,
		Hyperfocus: t.Hyperfocus,
		Difficulty: domain.Difficulty(t.Difficulty),
		Role:       t.Role,
	}
}

// handleTaskComplete awards a completed task, records the activity instant
// for the streak, and runs one achievement pass. One call covers the full
// flow a screen triggers when the user finishes a task.
func (s *Server) handleTaskComplete(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	progress, err := s.engine.AwardTaskCompletion(req.event())
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	if err := s.engine.RecordActivity(time.Now()); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	unlocked, err := s.engine.EvaluateAchievements()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Re-read: unlock rewards may have moved points and level
	progress, err = s.engine.Progress.Load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"progress":       progress,
		"newly_unlocked": unlocked,
	})
}

func (s *Server) handleTaskRevoke(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	progress, err := s.engine.RevokeTaskCompletion(req.event())
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"progress": progress,
	})
}

// --- /api/activity, /api/streak ---

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Timestamp time.Time `json:"timestamp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ts := req.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	if err := s.engine.RecordActivity(ts); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	current, err := s.engine.GetCurrentStreak()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"current_streak": current})
}

func (s *Server) handleStreak(w http.ResponseWriter, r *http.Request) {
	current, err := s.engine.GetCurrentStreak()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	longest, err := s.engine.Streak.Longest()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{
		"current_streak": current,
		"longest_streak": longest,
	})
}

// --- /api/achievements ---

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	unlocked, err := s.engine.Achievements.ListUnlocked()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"definitions": s.engine.Achievements.Definitions(),
		"unlocked":    unlocked,
	})
}

func (s *Server) handleEvaluateAchievements(w http.ResponseWriter, r *http.Request) {
	newlyUnlocked, err := s.engine.EvaluateAchievements()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"newly_unlocked": newlyUnlocked,
	})
}

// --- /api/commitment ---

type commitmentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

func (s *Server) handleActiveCommitment(w http.ResponseWriter, r *http.Request) {
	status, err := s.engine.GetActiveCommitment()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if status == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"commitment": nil})
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleCreateCommitment(w http.ResponseWriter, r *http.Request) {
	var req commitmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	commitment, err := s.engine.CreateCommitment(req.Title, req.Description)
	if errors.Is(err, domain.ErrActiveCommitmentExists) {
		// Never overwrite; hand back the existing record
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"error":      err.Error(),
			"commitment": commitment,
		})
		return
	}
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, commitment)
}

func (s *Server) handleCommitmentHistory(w http.ResponseWriter, r *http.Request) {
	history, err := s.engine.Commitments.History()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"commitments": history})
}

func (s *Server) handleCompleteCommitment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	progress, err := s.engine.CompleteCommitment(id)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"progress": progress})
}

func (s *Server) handleResolveCommitment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req struct {
		Notes string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	commitment, err := s.engine.ResolveExpiredCommitment(id, req.Notes)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, commitment)
}

func (s *Server) handleDeleteCommitment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.engine.DeleteCommitment(id); err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// statusForError maps domain sentinels to HTTP statuses.
// Everything in the taxonomy is recoverable; nothing maps to 5xx.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrCommitmentNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCommitmentTerminal),
		errors.Is(err, domain.ErrActiveCommitmentExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrEmptyTitle),
		errors.Is(err, domain.ErrNotesRequired),
		errors.Is(err, domain.ErrDeadlineNotReached),
		errors.Is(err, domain.ErrBadDifficulty):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
