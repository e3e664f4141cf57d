package sync

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dutywire/rostersync/internal/cmd/application"
	"github.com/dutywire/rostersync/pkg/reconcile"
	"github.com/dutywire/rostersync/pkg/roster"
)

// ExecuteSync loads the roster at path and reconciles it. A non-nil
// error is returned when the roster cannot be loaded, the run is
// interrupted, or any record in the batch fails, so the process exits
// nonzero whenever the roster and the external systems may disagree.
func ExecuteSync(ctx context.Context, app application.Application, path string, flags *Flags, out io.Writer) error {
	records, err := roster.Load(path)
	if err != nil {
		return err
	}

	if flags.DryRun {
		fmt.Fprintf(out, "Dry run: loaded %d records for org %s, no changes will be applied\n\n", len(records), flags.OrgID)
	} else {
		fmt.Fprintf(out, "Loaded %d records for org %s\n\n", len(records), flags.OrgID)
	}

	reconciler, err := app.Reconciler()
	if err != nil {
		return err
	}

	report, err := reconciler.Run(ctx, flags.OrgID, records, reconcile.WithDryRun(flags.DryRun))
	if report != nil {
		printReport(out, report)
	}
	if err != nil {
		return err
	}

	if failed := report.Failed(); failed > 0 {
		return fmt.Errorf("%d of %d records failed", failed, len(report.Outcomes))
	}
	return nil
}

const timeRound = 10 * time.Millisecond

func printReport(out io.Writer, report *reconcile.Report) {
	for _, outcome := range report.Outcomes {
		line := fmt.Sprintf("%s <%s> group=%s", outcome.BadgeNumber, outcome.Email, outcome.Group)
		if outcome.Assignment != "" {
			line += fmt.Sprintf(" assignment=%q", outcome.Assignment)
		}
		if outcome.Failed() {
			fmt.Fprintf(out, "  ✗ %s\n      %v\n", line, outcome.Err)
			continue
		}
		fmt.Fprintf(out, "  ✓ %s\n", line)
	}

	verb := "Sync"
	if report.DryRun {
		verb = "Dry run"
	}
	fmt.Fprintf(out, "\n%s completed in %s: %d succeeded, %d failed\n",
		verb, report.Duration().Round(timeRound), report.Succeeded(), report.Failed())
}
