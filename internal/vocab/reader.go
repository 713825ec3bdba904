package vocab

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/faizmokh/kosakata/internal/files"
)

// Reader loads and classifies words files through the shared files.Manager.
type Reader struct {
	manager    *files.Manager
	classifier Classifier
}

// NewReader wires a reader using the shared files.Manager.
func NewReader(manager *files.Manager, classifier Classifier) *Reader {
	return &Reader{manager: manager, classifier: classifier}
}

// Classifier returns the classifier used by Report.
func (r *Reader) Classifier() Classifier {
	return r.classifier
}

// Entries returns the reconstructed entries of the named file.
func (r *Reader) Entries(ctx context.Context, name string) ([]string, error) {
	if r == nil || r.manager == nil {
		return nil, ErrNotInitialized
	}

	file, err := r.manager.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	entries, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	slog.DebugContext(ctx, "reconstructed entries", "file", name, "entries", len(entries))
	return entries, nil
}

// Report reads the named file and classifies its entries.
func (r *Reader) Report(ctx context.Context, name string) (Report, error) {
	entries, err := r.Entries(ctx, name)
	if err != nil {
		return Report{}, err
	}
	return r.classifier.Group(entries), nil
}
