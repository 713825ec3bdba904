package sheets

import "strings"

// CellSeparator joins the non-empty cells of a row into one entry.
const CellSeparator = " | "

// CleanRows flattens worksheet rows into entries. The first row with any
// non-empty cell fixes the header width: later rows contribute at most that
// many leading cell positions. Empty rows, and rows whose entry contains one of
// the exclude substrings, are dropped.
func CleanRows(rows [][]string, exclude []string) []string {
	width := headerWidth(rows)

	var cleaned []string
	for _, row := range rows {
		if width > 0 && len(row) > width {
			row = row[:width]
		}

		var values []string
		for _, cell := range row {
			if text := strings.TrimSpace(cell); text != "" {
				values = append(values, text)
			}
		}
		if len(values) == 0 {
			continue
		}

		entry := strings.Join(values, CellSeparator)
		if excluded(entry, exclude) {
			continue
		}
		cleaned = append(cleaned, entry)
	}
	return cleaned
}

func headerWidth(rows [][]string) int {
	for _, row := range rows {
		n := 0
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				n++
			}
		}
		if n > 0 {
			return n
		}
	}
	return 0
}

func excluded(entry string, keywords []string) bool {
	for _, keyword := range keywords {
		if keyword != "" && strings.Contains(entry, keyword) {
			return true
		}
	}
	return false
}
