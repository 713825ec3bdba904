package vocab

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ContinuationMarkers are the prefixes that attach a line to the entry before it.
var ContinuationMarkers = []string{"(", "/", ",", "-", "—"}

// State is the in-progress entry carried from one line to the next.
type State struct {
	partial string
	open    bool
	depth   int
}

// Partial returns the in-progress entry, if any.
func (s State) Partial() (string, bool) {
	return s.partial, s.open
}

// Depth returns the count of unmatched "(" across the in-progress entry.
func (s State) Depth() int {
	return s.depth
}

// ShouldContinue reports whether the trimmed, non-blank line extends the
// in-progress entry instead of starting a new one. Continuation is forced while
// a parenthesis is open.
func ShouldContinue(s State, line string) bool {
	if !s.open {
		return false
	}
	return s.depth > 0 || hasContinuationMarker(line)
}

// Feed advances the state by one raw line. When that line closes the
// in-progress entry, the finished entry is returned with ok set.
func (s *State) Feed(raw string) (entry string, ok bool) {
	line := strings.TrimSpace(raw)

	switch {
	case line == "":
		// An open parenthesis keeps the entry alive across blank lines.
		if s.open && s.depth <= 0 {
			return s.take()
		}
		return "", false
	case isSectionDelimiter(line):
		return s.take()
	case ShouldContinue(*s, line):
		s.partial += " " + line
		s.depth += parenBalance(line)
		return "", false
	default:
		entry, ok = s.take()
		s.partial = line
		s.open = true
		s.depth = parenBalance(line)
		return entry, ok
	}
}

// Finish flushes whatever entry is still open at end of input.
func (s *State) Finish() (string, bool) {
	return s.take()
}

func (s *State) take() (string, bool) {
	if !s.open {
		s.depth = 0
		return "", false
	}
	entry := s.partial
	*s = State{}
	return entry, true
}

// ParseEntries reassembles logical entries from physical lines. Entries keep
// the order of their first line and are never empty.
func ParseEntries(lines []string) []string {
	var (
		state   State
		entries []string
	)
	for _, line := range lines {
		if entry, ok := state.Feed(line); ok {
			entries = append(entries, entry)
		}
	}
	if entry, ok := state.Finish(); ok {
		entries = append(entries, entry)
	}
	return entries
}

// Parse reads r to the end and reassembles its entries. Any Unicode line
// boundary ends a line, with CRLF counted once.
func Parse(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return ParseEntries(SplitLines(string(data))), nil
}

// SplitLines breaks text at LF, CR, CRLF, VT, FF, the file/group/record
// separators, NEL, and the Unicode line and paragraph separators. A trailing
// boundary does not produce an empty last line.
func SplitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isLineBoundary(r) {
			i += size
			continue
		}
		lines = append(lines, text[start:i])
		i += size
		if r == '\r' && i < len(text) && text[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func isLineBoundary(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

func hasContinuationMarker(line string) bool {
	for _, marker := range ContinuationMarkers {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}

// isSectionDelimiter matches the lone capital letters that head alphabetical
// sections of a word list.
func isSectionDelimiter(line string) bool {
	if utf8.RuneCountInString(line) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(line)
	return unicode.IsLetter(r) && unicode.IsUpper(r)
}

func parenBalance(line string) int {
	return strings.Count(line, "(") - strings.Count(line, ")")
}
