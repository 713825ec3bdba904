package vocab

// Class expresses which emphasis group an entry falls into.
type Class uint8

const (
	// ClassDouble marks entries containing the double marker (default "**").
	ClassDouble Class = iota
	// ClassSingle marks entries containing only the single marker (default "*").
	ClassSingle
	// ClassPlain marks entries containing neither marker.
	ClassPlain
)

// Classes lists every Class in report order.
var Classes = []Class{ClassDouble, ClassSingle, ClassPlain}

func (c Class) String() string {
	switch c {
	case ClassDouble:
		return "double"
	case ClassSingle:
		return "single"
	case ClassPlain:
		return "plain"
	default:
		return "unknown"
	}
}

// Group collects the entries of one Class beneath its report label.
type Group struct {
	Class   Class
	Label   string
	Entries []string
}

// Report is the classified view of a words file. Groups always holds one
// Group per Class, in the order of Classes.
type Report struct {
	Groups []Group
}

// Total returns the number of entries across all groups.
func (r Report) Total() int {
	total := 0
	for _, group := range r.Groups {
		total += len(group.Entries)
	}
	return total
}

// Group returns the group for class, or an empty Group when absent.
func (r Report) Group(class Class) Group {
	for _, group := range r.Groups {
		if group.Class == class {
			return group
		}
	}
	return Group{Class: class}
}
