package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/faizmokh/kosakata/internal/vocab"
)

func newEntriesCommand(ctx context.Context, ws *workspace) *cobra.Command {
	var (
		inputFlag string
		classFlag string
	)

	cmd := &cobra.Command{
		Use:   "entries",
		Short: "List the reconstructed entries of a word list.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			class, filtered, err := parseClassFlag(classFlag)
			if err != nil {
				return err
			}

			input := firstNonEmpty(inputFlag, ws.config.Words.Input)
			reader := vocab.NewReader(ws.manager, ws.classifier())

			if !filtered {
				entries, err := reader.Entries(ctx, input)
				if err != nil {
					return err
				}
				printEntries(cmd, entries)
				return nil
			}

			report, err := reader.Report(ctx, input)
			if err != nil {
				return err
			}
			printEntries(cmd, report.Group(class).Entries)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Word list to read (default: words.input from config)")
	cmd.Flags().StringVar(&classFlag, "class", "", "Only list one group (double|single|plain)")

	return cmd
}
