package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/faizmokh/kosakata/internal/vocab"
)

func newStarsCommand(ctx context.Context, ws *workspace) *cobra.Command {
	var (
		inputFlag  string
		outputFlag string
		plainFlag  bool
		stdoutFlag bool
	)

	cmd := &cobra.Command{
		Use:   "stars",
		Short: "Group a word list by star markers into a counted report.",
		Long: "stars rebuilds entries that span several lines of the word list, sorts them into " +
			"double-star, single-star and unmarked groups, and writes each group under a count header.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := firstNonEmpty(inputFlag, ws.config.Words.Input)
			output := firstNonEmpty(outputFlag, ws.config.Words.Output)

			reader := vocab.NewReader(ws.manager, ws.classifier())
			report, err := reader.Report(ctx, input)
			if err != nil {
				return err
			}

			opts := vocab.WriteOptions{Plain: plainFlag}
			if stdoutFlag {
				return vocab.WriteReport(cmd.OutOrStdout(), report, opts)
			}

			path, err := vocab.NewWriter(ws.manager).Write(ctx, output, report, opts)
			if err != nil {
				return err
			}
			printReportSummary(cmd, report, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Word list to read (default: words.input from config)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Report to write (default: words.output from config)")
	cmd.Flags().BoolVar(&plainFlag, "plain", false, "Strip Markdown emphasis from entries in the report")
	cmd.Flags().BoolVar(&stdoutFlag, "stdout", false, "Print the report instead of writing it")

	return cmd
}
