package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure; no infrastructure dependency. Everything here is
// a recoverable validation failure surfaced to the caller for user-facing
// messaging; the engine has no fatal error category. Consistency problems
// (level drift, negative totals) are self-healed, never returned.

var (
	// Commitment errors
	ErrEmptyTitle             = errors.New("commitment title must not be empty")
	ErrActiveCommitmentExists = errors.New("an active commitment already exists")
	ErrCommitmentNotFound     = errors.New("commitment not found")
	ErrCommitmentTerminal     = errors.New("commitment already completed or expired")
	ErrNotesRequired          = errors.New("expiry resolution requires notes")
	ErrDeadlineNotReached     = errors.New("commitment deadline has not passed")

	// Task event errors
	ErrBadDifficulty = errors.New("unknown task difficulty")
)
