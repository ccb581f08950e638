package engagement

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/keel-app/keel/internal/domain"
	"github.com/keel-app/keel/internal/infra/metrics"
	"github.com/keel-app/keel/internal/infra/sqlite"
)

// ─── Commitment Workflow ────────────────────────────────────────────────────
// One active 48-hour pledge at a time. All time-based decisions compare
// stored wall-clock timestamps against the clock at observation; there is
// no running countdown, so a suspended process resumes with correct state.
//
// Expiry is never committed silently: a past-deadline commitment stays in
// the pending-resolution view until the user supplies reflection notes or
// deletes the record. Completion stays legal after the deadline; the
// deadline gates expiry, not late-but-honest completion.

// CommitmentService manages the pledge lifecycle.
type CommitmentService struct {
	db *sqlite.DB
}

// NewCommitmentService creates a commitment service.
func NewCommitmentService(db *sqlite.DB) *CommitmentService {
	return &CommitmentService{db: db}
}

// Create starts a new commitment with the 48-hour deadline.
func (c *CommitmentService) Create(title, description string) (domain.Commitment, error) {
	return c.CreateAt(title, description, time.Now())
}

// CreateAt creates a commitment at an explicit instant (for testability).
// If an active commitment already exists it is returned unchanged alongside
// ErrActiveCommitmentExists; never overwritten.
func (c *CommitmentService) CreateAt(title, description string, now time.Time) (domain.Commitment, error) {
	if strings.TrimSpace(title) == "" {
		return domain.Commitment{}, domain.ErrEmptyTitle
	}

	existing, err := c.db.ActiveCommitment()
	if err != nil {
		return domain.Commitment{}, fmt.Errorf("check active commitment: %w", err)
	}
	if existing != nil {
		return *existing, domain.ErrActiveCommitmentExists
	}

	commitment := domain.Commitment{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(title),
		Description: description,
		CreatedAt:   now,
		Deadline:    now.Add(domain.CommitmentDuration),
	}
	if err := c.db.InsertCommitment(commitment); err != nil {
		return domain.Commitment{}, fmt.Errorf("insert commitment: %w", err)
	}

	metrics.CommitmentsCreated.Inc()
	return commitment, nil
}

// Active returns the current non-terminal commitment, or nil if none.
func (c *CommitmentService) Active() (*domain.Commitment, error) {
	return c.db.ActiveCommitment()
}

// ActiveStatus observes the active commitment at now: remaining time,
// the near-expiry flag, and whether it is due for expiry resolution.
// Returns nil if no commitment is active.
func (c *CommitmentService) ActiveStatus(now time.Time) (*domain.CommitmentStatus, error) {
	active, err := c.db.ActiveCommitment()
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, nil
	}
	status := StatusOf(*active, now)
	return &status, nil
}

// StatusOf computes the observed view of a commitment at one instant.
func StatusOf(commitment domain.Commitment, now time.Time) domain.CommitmentStatus {
	return domain.CommitmentStatus{
		Commitment:    commitment,
		Remaining:     commitment.Remaining(now),
		NearExpiry:    commitment.NearExpiry(now),
		ExpiryPending: commitment.ExpiryPending(now),
	}
}

// Complete marks the commitment as done and returns it with the points it
// earns through the scoring rules. Terminal records are rejected; a
// completion after the deadline is accepted as late but honest.
func (c *CommitmentService) Complete(id string) (domain.Commitment, int, error) {
	return c.CompleteAt(id, time.Now())
}

// CompleteAt completes a commitment at an explicit instant.
func (c *CommitmentService) CompleteAt(id string, now time.Time) (domain.Commitment, int, error) {
	commitment, err := c.db.GetCommitment(id)
	if err != nil {
		return domain.Commitment{}, 0, fmt.Errorf("get commitment: %w", err)
	}
	if commitment == nil {
		return domain.Commitment{}, 0, domain.ErrCommitmentNotFound
	}
	if commitment.Terminal() {
		return *commitment, 0, domain.ErrCommitmentTerminal
	}

	ok, err := c.db.MarkCommitmentCompleted(id, now)
	if err != nil {
		return *commitment, 0, fmt.Errorf("mark completed: %w", err)
	}
	if !ok {
		return *commitment, 0, domain.ErrCommitmentTerminal
	}

	commitment.Completed = true
	commitment.CompletedAt = now
	metrics.CommitmentsCompleted.Inc()

	return *commitment, ComputePoints(CommitmentCompletionEvent()), nil
}

// ResolveExpired commits the expiry transition: only legal once the deadline
// has passed, and only with non-empty reflection notes. The notes attach
// exactly once; the record is immutable afterwards.
func (c *CommitmentService) ResolveExpired(id, notes string) (domain.Commitment, error) {
	return c.ResolveExpiredAt(id, notes, time.Now())
}

// ResolveExpiredAt resolves an expiry at an explicit instant.
func (c *CommitmentService) ResolveExpiredAt(id, notes string, now time.Time) (domain.Commitment, error) {
	if strings.TrimSpace(notes) == "" {
		return domain.Commitment{}, domain.ErrNotesRequired
	}

	commitment, err := c.db.GetCommitment(id)
	if err != nil {
		return domain.Commitment{}, fmt.Errorf("get commitment: %w", err)
	}
	if commitment == nil {
		return domain.Commitment{}, domain.ErrCommitmentNotFound
	}
	if commitment.Terminal() {
		return *commitment, domain.ErrCommitmentTerminal
	}
	if now.Before(commitment.Deadline) {
		return *commitment, domain.ErrDeadlineNotReached
	}

	ok, err := c.db.MarkCommitmentExpired(id, notes)
	if err != nil {
		return *commitment, fmt.Errorf("mark expired: %w", err)
	}
	if !ok {
		return *commitment, domain.ErrCommitmentTerminal
	}

	commitment.Expired = true
	commitment.Notes = notes
	metrics.CommitmentsExpired.Inc()
	return *commitment, nil
}

// Delete removes a commitment record entirely, at any point in its
// lifecycle; the one escape hatch from the notes requirement.
func (c *CommitmentService) Delete(id string) error {
	if err := c.db.DeleteCommitment(id); err != nil {
		return err
	}
	metrics.CommitmentsDeleted.Inc()
	return nil
}

// History returns the full commitment record list, newest first.
func (c *CommitmentService) History() ([]domain.Commitment, error) {
	return c.db.ListCommitments()
}
