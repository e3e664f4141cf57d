package reconcile

import (
	"time"

	"github.com/dutywire/rostersync/pkg/roster"
)

// Outcome records the result of reconciling a single officer record.
type Outcome struct {
	// Record identification, echoed for reporting.
	BadgeNumber string
	Email       string
	Group       roster.Group
	Assignment  string

	// UserID is the resolved directory identifier. Empty on failure
	// and in dry-run mode.
	UserID string

	// Err is the per-record failure, nil on success. In dry-run mode
	// it is always nil.
	Err error
}

// Failed reports whether the record failed to reconcile.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Report is the outcome report for one reconciliation run. It is
// ephemeral: returned to the caller and printed, never persisted.
// Outcomes preserve input order, one entry per input record.
type Report struct {
	// RunID uniquely identifies this run in logs.
	RunID string

	OrgID  string
	DryRun bool

	StartTime time.Time
	EndTime   time.Time

	Outcomes []Outcome
}

// Duration returns the wall-clock duration of the run.
func (r *Report) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// Succeeded returns the number of records that reconciled cleanly.
func (r *Report) Succeeded() int {
	return len(r.Outcomes) - r.Failed()
}

// Failed returns the number of records that failed.
func (r *Report) Failed() int {
	count := 0
	for _, outcome := range r.Outcomes {
		if outcome.Failed() {
			count++
		}
	}
	return count
}

// Failures returns the failed outcomes in input order.
func (r *Report) Failures() []Outcome {
	var failures []Outcome
	for _, outcome := range r.Outcomes {
		if outcome.Failed() {
			failures = append(failures, outcome)
		}
	}
	return failures
}
