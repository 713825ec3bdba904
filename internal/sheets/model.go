package sheets

// Section places one worksheet, by zero-based position in the workbook, under
// a grade heading.
type Section struct {
	Grade string
	Title string
	Sheet int
}

// Block is a titled run of cleaned worksheet rows.
type Block struct {
	Title   string
	Entries []string
}

// Grade groups the blocks that share a grade heading, in layout order.
type Grade struct {
	Name   string
	Blocks []Block
}

// DefaultLayout maps the first four worksheets onto grade 3 and grade 4
// vocabulary and communication-function lists.
func DefaultLayout() []Section {
	return []Section{
		{Grade: "3학년", Title: "신출 어휘", Sheet: 0},
		{Grade: "3학년", Title: "의사소통 기능", Sheet: 1},
		{Grade: "4학년", Title: "신출 어휘", Sheet: 2},
		{Grade: "4학년", Title: "의사소통 기능", Sheet: 3},
	}
}

// DefaultExclude lists substrings that mark spreadsheet boilerplate rows.
func DefaultExclude() []string {
	return []string{"엑셀", "Sheet"}
}
