package overlap

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/faizmokh/kosakata/internal/files"
)

// Runner ties Load, Analyze and Encode to files in the workspace.
type Runner struct {
	manager *files.Manager
	now     func() time.Time
}

// NewRunner wires a Runner using the shared files.Manager.
func NewRunner(manager *files.Manager) *Runner {
	return &Runner{manager: manager, now: time.Now}
}

// Run analyzes the input document and writes the JSON report to output. It
// returns the analysis and the written path.
func (r *Runner) Run(ctx context.Context, input, output string) (Analysis, string, error) {
	if r == nil || r.manager == nil {
		return Analysis{}, "", files.ErrNilManager
	}

	file, err := r.manager.Open(input)
	if err != nil {
		return Analysis{}, "", err
	}
	defer file.Close()

	ds, err := Load(file)
	if err != nil {
		return Analysis{}, "", fmt.Errorf("load %s: %w", input, err)
	}
	slog.DebugContext(ctx, "loaded vocabulary document", "input", input, "publishers", len(ds.Publishers), "units", len(ds.Units))

	analysis := Analyze(ds, filepath.Base(input), r.now())

	var buf bytes.Buffer
	if err := Encode(&buf, analysis); err != nil {
		return Analysis{}, "", fmt.Errorf("encode analysis: %w", err)
	}
	path, err := r.manager.WriteFile(output, buf.Bytes())
	if err != nil {
		return Analysis{}, "", err
	}

	slog.InfoContext(ctx, "wrote overlap analysis", "path", path, "shared", analysis.AllPublishers.Count, "words", len(analysis.WordPublishers))
	return analysis, path, nil
}
