package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/kosakata/internal/config"
	"github.com/faizmokh/kosakata/internal/sheets"
	"github.com/faizmokh/kosakata/internal/vocab"
)

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func parseClassFlag(value string) (vocab.Class, bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return 0, false, nil
	case "double", "**":
		return vocab.ClassDouble, true, nil
	case "single", "*":
		return vocab.ClassSingle, true, nil
	case "plain", "none":
		return vocab.ClassPlain, true, nil
	default:
		return 0, false, fmt.Errorf("invalid class %q (expected double|single|plain)", value)
	}
}

func layoutFromConfig(sections []config.Section) []sheets.Section {
	layout := make([]sheets.Section, 0, len(sections))
	for _, section := range sections {
		layout = append(layout, sheets.Section{
			Grade: section.Grade,
			Title: section.Title,
			Sheet: section.Sheet,
		})
	}
	return layout
}

func printReportSummary(cmd *cobra.Command, report vocab.Report, path string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %d entr%s to %s\n", report.Total(), plural(report.Total()), path)
	for _, group := range report.Groups {
		fmt.Fprintf(out, "  %s: %d\n", group.Label, len(group.Entries))
	}
}

func printEntries(cmd *cobra.Command, entries []string) {
	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "(no entries)")
		return
	}
	for i, entry := range entries {
		fmt.Fprintf(out, "%d. %s\n", i+1, entry)
	}
}

func plural(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}
