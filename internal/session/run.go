// Package session stores the per-applicant assessment run between requests.
// A run is the only mutable state in the system; everything else is
// append-only rows.
package session

import (
	"context"
	"errors"
	"time"

	"talentscout-backend/internal/mcq"
)

const (
	StateInProgress = "in_progress"
	StateCompleted  = "completed"
)

// Run is the explicit context for one applicant's pass through the
// assessment: who they are, their question set, and how far they have got.
// It is created at intake, advanced one answer at a time, and discarded on
// reset. CandidateID never changes for the life of a run.
type Run struct {
	Token       string         `json:"token"`
	CandidateID uint           `json:"candidate_id"`
	Questions   []mcq.Question `json:"questions"`
	Index       int            `json:"index"`
	State       string         `json:"state"`
	CreatedAt   time.Time      `json:"created_at"`
}

// Current returns the question at the run cursor.
func (r *Run) Current() (mcq.Question, bool) {
	if r.State != StateInProgress || r.Index < 0 || r.Index >= len(r.Questions) {
		return mcq.Question{}, false
	}
	return r.Questions[r.Index], true
}

var ErrNotFound = errors.New("run not found")

type Store interface {
	Save(ctx context.Context, run *Run) error
	Get(ctx context.Context, token string) (*Run, error)
	Delete(ctx context.Context, token string) error
}
