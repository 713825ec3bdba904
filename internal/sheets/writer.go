package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/faizmokh/kosakata/internal/files"
)

// DefaultOutputPattern names a grade report; %s is replaced by the grade.
const DefaultOutputPattern = "%s_신출어휘_의사소통기능.txt"

// ErrInvalidPattern is returned for output patterns that do not name each
// grade exactly once.
var ErrInvalidPattern = errors.New("invalid output pattern")

// CheckOutputPattern accepts patterns holding exactly one %s. A literal
// percent sign is written %%; every other verb is rejected.
func CheckOutputPattern(pattern string) error {
	grades := 0
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			continue
		}
		if i+1 == len(pattern) {
			return fmt.Errorf("%w: %q ends with a lone %%", ErrInvalidPattern, pattern)
		}
		i++
		switch pattern[i] {
		case '%':
		case 's':
			grades++
		default:
			return fmt.Errorf("%w: %q uses %%%c, only %%s is allowed", ErrInvalidPattern, pattern, pattern[i])
		}
	}
	if grades != 1 {
		return fmt.Errorf("%w: %q must contain exactly one %%s, found %d", ErrInvalidPattern, pattern, grades)
	}
	return nil
}

// Writer renders one text report per grade.
type Writer struct {
	manager *files.Manager
	pattern string
}

// NewWriter wires a Writer. An empty pattern falls back to DefaultOutputPattern.
// Callers validate non-default patterns with CheckOutputPattern.
func NewWriter(manager *files.Manager, pattern string) *Writer {
	if pattern == "" {
		pattern = DefaultOutputPattern
	}
	return &Writer{manager: manager, pattern: pattern}
}

// OutputName returns the file name used for grade.
func (w *Writer) OutputName(grade string) string {
	return fmt.Sprintf(w.pattern, grade)
}

// Write writes every grade and returns the written paths in grade order.
func (w *Writer) Write(ctx context.Context, grades []Grade) ([]string, error) {
	if w == nil || w.manager == nil {
		return nil, files.ErrNilManager
	}
	if err := CheckOutputPattern(w.pattern); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(grades))
	for _, grade := range grades {
		path, err := w.manager.WriteLines(w.OutputName(grade.Name), FormatGrade(grade))
		if err != nil {
			return paths, err
		}
		slog.InfoContext(ctx, "wrote grade report", "grade", grade.Name, "path", path)
		paths = append(paths, path)
	}
	return paths, nil
}

// FormatGrade renders each block as "<title> (총 <n>항목)", its entries, and a
// trailing blank line.
func FormatGrade(grade Grade) []string {
	var lines []string
	for _, block := range grade.Blocks {
		lines = append(lines, fmt.Sprintf("%s (총 %d항목)", block.Title, len(block.Entries)))
		lines = append(lines, block.Entries...)
		lines = append(lines, "")
	}
	return lines
}
