package overlap

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faizmokh/kosakata/internal/files"
)

func TestRunnerRun(t *testing.T) {
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "data"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	// Leading UTF-8 byte order mark, as some editors save it.
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte(sampleDocument)...)
	if err := os.WriteFile(filepath.Join(base, "data", "vocabulary_level.json"), raw, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	mgr, err := files.NewManager(base)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	runner := NewRunner(mgr)
	runner.now = func() time.Time { return generated }

	analysis, path, err := runner.Run(context.Background(), "data/vocabulary_level.json", "data/out.json")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if analysis.AllPublishers.Count != 3 {
		t.Fatalf("shared count = %d, want 3", analysis.AllPublishers.Count)
	}
	if want := filepath.Join(base, "data", "out.json"); path != want {
		t.Fatalf("path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var decoded Analysis
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Metadata.Generated != "2025-11-11" || decoded.Metadata.Source != "vocabulary_level.json" {
		t.Fatalf("metadata = %#v", decoded.Metadata)
	}
}

func TestRunnerMissingInput(t *testing.T) {
	mgr, err := files.NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	_, _, err = NewRunner(mgr).Run(context.Background(), "missing.json", "out.json")
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Run() error = %v, want not-exist", err)
	}
}
