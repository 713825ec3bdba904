package vocab

import "strings"

// Classifier sorts entries into emphasis groups by marker substring. The
// double marker is checked first, so "**bold**" never lands in the single
// group even though it also contains "*".
type Classifier struct {
	DoubleMarker string
	SingleMarker string

	DoubleLabel string
	SingleLabel string
	PlainLabel  string
}

// DefaultClassifier splits on Markdown bold and italic markers.
func DefaultClassifier() Classifier {
	return Classifier{
		DoubleMarker: "**",
		SingleMarker: "*",
		DoubleLabel:  "~**",
		SingleLabel:  "~*",
		PlainLabel:   "~",
	}
}

// Classify returns the Class of a single entry.
func (c Classifier) Classify(entry string) Class {
	switch {
	case containsMarker(entry, c.DoubleMarker):
		return ClassDouble
	case containsMarker(entry, c.SingleMarker):
		return ClassSingle
	default:
		return ClassPlain
	}
}

// Group partitions entries into a Report. Every entry lands in exactly one
// group and relative order is kept within each group.
func (c Classifier) Group(entries []string) Report {
	groups := make([]Group, len(Classes))
	for i, class := range Classes {
		groups[i] = Group{Class: class, Label: c.Label(class)}
	}

	for _, entry := range entries {
		class := c.Classify(entry)
		groups[class].Entries = append(groups[class].Entries, entry)
	}
	return Report{Groups: groups}
}

// Label returns the report heading for class.
func (c Classifier) Label(class Class) string {
	switch class {
	case ClassDouble:
		return c.DoubleLabel
	case ClassSingle:
		return c.SingleLabel
	default:
		return c.PlainLabel
	}
}

func containsMarker(entry, marker string) bool {
	return marker != "" && strings.Contains(entry, marker)
}
