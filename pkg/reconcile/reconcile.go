// Package reconcile implements the roster reconciliation engine: given
// validated canonical records, it idempotently drives the identity
// directory and the assignment registry toward the desired state, one
// record at a time. A record's failure is isolated to its own outcome;
// the batch always runs to completion.
package reconcile

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dutywire/rostersync/pkg/logging"
	"github.com/dutywire/rostersync/pkg/roster"
)

// Reconciler orchestrates identity and assignment reconciliation over
// a batch of records. Records are processed strictly in input order,
// identity fully before assignment within each record. The engine
// performs no retries and holds no cross-record state.
type Reconciler struct {
	identity   *Identity
	assignment *Assignment
	logger     *zerolog.Logger
}

// New creates a reconciler over the two gateways.
func New(directory DirectoryGateway, registry RegistryGateway, cfg Config, opts ...Option) *Reconciler {
	r := &Reconciler{
		identity:   NewIdentity(directory, cfg.TempPassword),
		assignment: NewAssignment(registry),
		logger:     logging.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run reconciles the batch against the external systems and returns
// the per-record outcome report. Per-record failures are recorded, not
// returned; the only error Run itself returns is context cancellation
// between records.
func (r *Reconciler) Run(ctx context.Context, orgID string, records []roster.Record, opts ...RunOption) (*Report, error) {
	options := newRunOptions(opts...)

	report := &Report{
		RunID:     uuid.NewString(),
		OrgID:     orgID,
		DryRun:    options.DryRun,
		StartTime: time.Now(),
		Outcomes:  make([]Outcome, 0, len(records)),
	}

	logger := r.logger.With().Str("run_id", report.RunID).Str("org_id", orgID).Logger()
	logger.Info().
		Int("records", len(records)).
		Bool("dry_run", options.DryRun).
		Msg("Starting roster reconciliation")

	for _, record := range records {
		if err := ctx.Err(); err != nil {
			report.EndTime = time.Now()
			return report, err
		}

		outcome := Outcome{
			BadgeNumber: record.BadgeNumber,
			Email:       record.Email,
			Group:       record.Group,
			Assignment:  record.Assignment,
		}

		logger.Info().
			Str("badge", record.BadgeNumber).
			Str("email", record.Email).
			Str("group", string(record.Group)).
			Str("assignment", record.Assignment).
			Msg("Processing officer")

		if options.DryRun {
			report.Outcomes = append(report.Outcomes, outcome)
			continue
		}

		outcome.Err = r.reconcileRecord(ctx, &outcome, record, orgID)
		if outcome.Err != nil {
			logger.Warn().
				Err(outcome.Err).
				Str("badge", record.BadgeNumber).
				Msg("Officer failed, continuing batch")
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	report.EndTime = time.Now()
	logger.Info().
		Int("succeeded", report.Succeeded()).
		Int("failed", report.Failed()).
		Dur("duration", report.Duration()).
		Msg("Roster reconciliation finished")

	return report, nil
}

// reconcileRecord runs the identity then assignment reconcilers for a
// single record.
func (r *Reconciler) reconcileRecord(ctx context.Context, outcome *Outcome, record roster.Record, orgID string) error {
	userID, err := r.identity.EnsureAccount(ctx, record, orgID)
	if err != nil {
		return err
	}
	outcome.UserID = userID

	return r.assignment.EnsureAssignment(ctx, record, orgID, userID)
}
