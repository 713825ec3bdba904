package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/kosakata/internal/overlap"
)

func newOverlapCommand(ctx context.Context, ws *workspace) *cobra.Command {
	var (
		inputFlag  string
		outputFlag string
	)

	cmd := &cobra.Command{
		Use:   "overlap",
		Short: "Analyze how unit vocabulary overlaps across publishers.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := firstNonEmpty(inputFlag, ws.config.Overlap.Input)
			output := firstNonEmpty(outputFlag, ws.config.Overlap.Output)

			analysis, path, err := overlap.NewRunner(ws.manager).Run(ctx, input, output)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Shared by all publishers: %d word(s)\n", analysis.AllPublishers.Count)
			fmt.Fprintf(out, "Distinct words: %d\n", len(analysis.WordPublishers))
			fmt.Fprintf(out, "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Vocabulary JSON to read (default: overlap.input from config)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Analysis JSON to write (default: overlap.output from config)")

	return cmd
}
