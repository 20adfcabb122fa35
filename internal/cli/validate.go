package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carbonlens/carbonlens/internal/ingest"
)

// NewValidateCmd creates the validate command. It checks that each given
// file declares the mandatory activity fields without converting anything.
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check activity files for the required fields",
		Example: `  # Validate a CSV header
  carbonlens validate activities.csv

  # Validate several files at once
  carbonlens validate january.csv february.json notes.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var invalid int
			for _, path := range args {
				if ingest.Validate(ctx, path) {
					cmd.Printf("%s: valid\n", path)
					continue
				}
				invalid++
				cmd.Printf("%s: invalid (%v)\n", path, ingest.ErrMissingFields)
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d file(s) failed validation", invalid, len(args))
			}
			return nil
		},
	}
}
