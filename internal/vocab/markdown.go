package vocab

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// emphasisParser understands paragraphs and emphasis only, so list markers,
// headings and the like inside an entry stay literal.
var emphasisParser = parser.NewParser(
	parser.WithBlockParsers(util.Prioritized(parser.NewParagraphParser(), 1000)),
	parser.WithInlineParsers(util.Prioritized(parser.NewEmphasisParser(), 100)),
)

// StripEmphasis removes Markdown emphasis markers from entry while keeping
// the emphasized text. Unbalanced markers are left in place.
func StripEmphasis(entry string) string {
	source := []byte(entry)
	document := emphasisParser.Parse(text.NewReader(source))

	var b strings.Builder
	b.Grow(len(entry))
	_ = ast.Walk(document, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := n.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})

	stripped := strings.TrimSpace(b.String())
	if stripped == "" {
		return entry
	}
	return stripped
}
