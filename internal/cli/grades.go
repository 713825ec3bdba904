package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/kosakata/internal/sheets"
)

func newGradesCommand(ctx context.Context, ws *workspace) *cobra.Command {
	var (
		workbookFlag string
		outputFlag   string
	)

	cmd := &cobra.Command{
		Use:   "grades",
		Short: "Extract per-grade vocabulary and communication lists from a workbook.",
		Long: "grades reads the worksheets named in grades.sections, flattens every row into a " +
			"\" | \"-joined entry, and writes one report per grade.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := firstNonEmpty(outputFlag, ws.config.Grades.Output)
			if err := sheets.CheckOutputPattern(pattern); err != nil {
				return fmt.Errorf("--output: %w", err)
			}

			workbook := firstNonEmpty(workbookFlag, ws.config.Grades.Workbook)
			layout := layoutFromConfig(ws.config.Grades.Sections)

			grades, err := sheets.Extract(ctx, ws.manager.Resolve(workbook), layout, ws.config.Grades.Exclude)
			if err != nil {
				return err
			}

			writer := sheets.NewWriter(ws.manager, pattern)
			paths, err := writer.Write(ctx, grades)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, grade := range grades {
				total := 0
				for _, block := range grade.Blocks {
					total += len(block.Entries)
				}
				fmt.Fprintf(out, "Wrote %s: %d entr%s in %d section(s) to %s\n",
					grade.Name, total, plural(total), len(grade.Blocks), paths[i])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workbookFlag, "workbook", "w", "", "Workbook to read (default: grades.workbook from config)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Report name pattern, %s is the grade (default: grades.output from config)")

	return cmd
}
