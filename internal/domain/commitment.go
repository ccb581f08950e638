package domain

import "time"

// ─── Commitment Types ───────────────────────────────────────────────────────

// CommitmentDuration is the fixed window of a pledge: 48 hours.
const CommitmentDuration = 48 * time.Hour

// NearExpiryWindow flags a commitment as almost due: ≤5 minutes remaining.
const NearExpiryWindow = 5 * time.Minute

// Commitment is a single user-created, time-boxed pledge.
// Lifecycle: created → active → {completed | expired}. Both terminal
// branches are immutable, except that Notes may be attached exactly once
// when the expiry transition is resolved.
type Commitment struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Deadline    time.Time `json:"deadline"` // CreatedAt + CommitmentDuration
	Completed   bool      `json:"completed"`
	CompletedAt time.Time `json:"completed_at,omitzero"`
	Expired     bool      `json:"expired"`
	Notes       string    `json:"notes,omitempty"` // Captured only on expiry
}

// Active reports whether the commitment is still in flight.
// A commitment past its deadline is still active until the user resolves
// it; the deadline gates the expiry transition, not this predicate.
func (c Commitment) Active() bool {
	return !c.Completed && !c.Expired
}

// Terminal reports whether the commitment reached a final state.
func (c Commitment) Terminal() bool {
	return c.Completed || c.Expired
}

// Remaining returns the time left before the deadline at the given instant.
// Always recomputed from stored wall-clock timestamps, never an accumulating
// counter, so it is correct after arbitrary suspension.
func (c Commitment) Remaining(now time.Time) time.Duration {
	return c.Deadline.Sub(now)
}

// NearExpiry reports whether the commitment is active with ≤5 minutes left.
func (c Commitment) NearExpiry(now time.Time) bool {
	if !c.Active() {
		return false
	}
	r := c.Remaining(now)
	return r > 0 && r <= NearExpiryWindow
}

// ExpiryPending reports whether the deadline has passed while the
// commitment is still active. The record stays in this state until the
// user supplies resolution notes or deletes it; nothing auto-expires.
func (c Commitment) ExpiryPending(now time.Time) bool {
	return c.Active() && !now.Before(c.Deadline)
}

// CommitmentStatus is the observed view of a commitment at one instant.
type CommitmentStatus struct {
	Commitment    Commitment    `json:"commitment"`
	Remaining     time.Duration `json:"remaining_ns"`
	NearExpiry    bool          `json:"near_expiry"`
	ExpiryPending bool          `json:"expiry_pending"`
}
