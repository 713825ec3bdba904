package files

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NewDecodingReader wraps r so that its contents come out as UTF-8. A UTF-8 or
// UTF-16 byte order mark selects the source encoding and is dropped; input
// without one is read as UTF-8. When normalize is set the text is also put in
// NFC form.
func NewDecodingReader(r io.Reader, normalize bool) io.Reader {
	var t transform.Transformer = unicode.BOMOverride(unicode.UTF8.NewDecoder())
	if normalize {
		t = transform.Chain(t, norm.NFC)
	}
	return transform.NewReader(r, t)
}
