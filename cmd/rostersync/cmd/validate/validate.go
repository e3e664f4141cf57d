// Package validate implements the roster validate command.
package validate

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dutywire/rostersync/internal/cmd/application"
	"github.com/dutywire/rostersync/pkg/roster"
)

// NewCommand creates the validate command using app context.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <roster.csv>",
		Short: "Validate a roster CSV without touching any external system",
		Args:  cobra.ExactArgs(1),
		Long: `Validate parses a roster CSV and applies the same row checks the sync
command uses: required columns present, badge number and email
non-empty, group one of the allowed values. No directory or registry
calls are made and no credentials are needed.

The whole file is rejected on the first invalid row, matching sync
behavior.`,
		Example: `  rostersync validate roster.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeValidate(args[0], cmd.OutOrStdout())
		},
	}
}

func executeValidate(path string, out io.Writer) error {
	records, err := roster.Load(path)
	if err != nil {
		return err
	}

	for _, record := range records {
		line := fmt.Sprintf("%s <%s> group=%s", record.BadgeNumber, record.Email, record.Group)
		if record.Assignment != "" {
			line += fmt.Sprintf(" assignment=%q", record.Assignment)
		}
		fmt.Fprintf(out, "  ✓ %s\n", line)
	}

	fmt.Fprintf(out, "\n%d records valid\n", len(records))
	return nil
}
