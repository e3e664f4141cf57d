// Package sync implements the roster sync command: load and validate a
// roster CSV, then reconcile every record against the identity
// directory and the assignment registry.
package sync

import (
	"github.com/spf13/cobra"

	"github.com/dutywire/rostersync/internal/cmd/application"
)

// Flags holds the sync command flags.
type Flags struct {
	OrgID  string
	DryRun bool
}

// NewCommand creates the sync command using app context.
func NewCommand(app application.Application) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:   "sync <roster.csv>",
		Short: "Reconcile a roster CSV against the directory and registry",
		Args:  cobra.ExactArgs(1),
		Long: `Sync brings the external systems of record in line with a roster CSV:

1. Validate every row into a canonical officer record (a single bad
   row rejects the whole file before anything is touched).
2. For each officer, ensure a directory account exists with correct
   attributes and group membership.
3. For officers with an assignment, upsert the registry entry keyed
   by org and badge number.

Records are processed in file order. A record that fails is reported
and skipped; the rest of the batch still runs.`,
		Example: `  rostersync sync roster.csv --org-id SBPD            # Reconcile the roster
  rostersync sync roster.csv --org-id SBPD --dry-run  # Report intent only`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ExecuteSync(cmd.Context(), app, args[0], flags, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&flags.OrgID, "org-id", "", "organization ID (matches the directory custom:orgID attribute)")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "validate and report intent without calling any external system")
	_ = cmd.MarkFlagRequired("org-id")

	return cmd
}
