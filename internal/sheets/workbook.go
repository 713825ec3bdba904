package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

// ErrInvalidLayout is returned for sections that cannot address a worksheet.
var ErrInvalidLayout = errors.New("invalid sheet layout")

// Extract opens the workbook at path and cleans the worksheet behind every
// section. A section pointing past the last worksheet yields an empty block.
// Grades are returned in order of first appearance in layout; a repeated
// grade/title pair replaces the earlier block in place.
func Extract(ctx context.Context, path string, layout []Section, exclude []string) ([]Grade, error) {
	for i, section := range layout {
		if section.Sheet < 0 {
			return nil, fmt.Errorf("%w: section %d has sheet %d", ErrInvalidLayout, i, section.Sheet)
		}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheetNames := f.GetSheetList()
	slog.DebugContext(ctx, "opened workbook", "path", path, "sheets", len(sheetNames))

	var grades []Grade
	for _, section := range layout {
		var entries []string
		if section.Sheet < len(sheetNames) {
			name := sheetNames[section.Sheet]
			rows, err := f.GetRows(name)
			if err != nil {
				return nil, fmt.Errorf("read sheet %q: %w", name, err)
			}
			entries = CleanRows(rows, exclude)
			slog.DebugContext(ctx, "cleaned sheet", "sheet", name, "rows", len(rows), "entries", len(entries))
		} else {
			slog.WarnContext(ctx, "workbook has no sheet for section", "grade", section.Grade, "title", section.Title, "sheet", section.Sheet)
		}
		grades = placeBlock(grades, section, entries)
	}
	return grades, nil
}

func placeBlock(grades []Grade, section Section, entries []string) []Grade {
	gi := -1
	for i := range grades {
		if grades[i].Name == section.Grade {
			gi = i
			break
		}
	}
	if gi < 0 {
		grades = append(grades, Grade{Name: section.Grade})
		gi = len(grades) - 1
	}

	blocks := grades[gi].Blocks
	for i := range blocks {
		if blocks[i].Title == section.Title {
			blocks[i].Entries = entries
			return grades
		}
	}
	grades[gi].Blocks = append(blocks, Block{Title: section.Title, Entries: entries})
	return grades
}
