package vocab

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/faizmokh/kosakata/internal/files"
)

// WriteOptions tunes how a report is rendered.
type WriteOptions struct {
	// Plain strips Markdown emphasis from entries. Grouping is unaffected.
	Plain bool
}

// Writer renders reports into files managed by files.Manager.
type Writer struct {
	manager *files.Manager
}

// NewWriter wires the dependencies required to write report files.
func NewWriter(manager *files.Manager) *Writer {
	return &Writer{manager: manager}
}

// Write replaces the named file with the rendered report and returns its path.
func (w *Writer) Write(ctx context.Context, name string, report Report, opts WriteOptions) (string, error) {
	if w == nil || w.manager == nil {
		return "", ErrNotInitialized
	}

	path, err := w.manager.WriteLines(name, FormatReport(report, opts))
	if err != nil {
		return "", err
	}

	slog.InfoContext(ctx, "wrote star report", "path", path, "entries", report.Total())
	return path, nil
}

// WriteReport renders report to out, one LF-terminated line at a time.
func WriteReport(out io.Writer, report Report, opts WriteOptions) error {
	for _, line := range FormatReport(report, opts) {
		if _, err := io.WriteString(out, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// FormatReport renders each group as a "<label> (count: <n>)" header followed
// by its entries. Groups are separated by one blank line.
func FormatReport(report Report, opts WriteOptions) []string {
	lines := make([]string, 0, report.Total()+2*len(report.Groups))
	for i, group := range report.Groups {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, groupHeader(group))
		for _, entry := range group.Entries {
			if opts.Plain {
				entry = StripEmphasis(entry)
			}
			lines = append(lines, entry)
		}
	}
	return lines
}

func groupHeader(group Group) string {
	var b strings.Builder
	b.Grow(len(group.Label) + 16)
	fmt.Fprintf(&b, "%s (count: %d)", group.Label, len(group.Entries))
	return b.String()
}
