package rich

import (
	"strings"

	"github.com/rjkroege/textspan/internal/utf8bytes"
)

// Span is a piece of text with uniform style. A Content is the easy way to
// build a FormatSpans: write the pieces in order and convert.
type Span struct {
	Text  string
	Style Style
}

// Content is a sequence of styled spans representing a document.
type Content []Span

// Plain creates Content from unstyled text.
func Plain(text string) Content {
	return Content{{Text: text, Style: DefaultStyle()}}
}

// Len returns total rune count.
func (c Content) Len() int {
	n := 0
	for _, s := range c {
		n += utf8bytes.RuneCount(s.Text)
	}
	return n
}

// FormatSpans returns a FormatSpans whose text is the concatenation of
// the pieces of c, with one span per piece. Empty pieces become
// zero-length spans.
func (c Content) FormatSpans() *FormatSpans[Style] {
	var sb strings.Builder
	spans := make([]TextSpan[Style], 0, len(c))
	for _, s := range c {
		sb.WriteString(s.Text)
		spans = append(spans, NewTextSpan(utf8bytes.RuneCount(s.Text), s.Style))
	}
	return NewFormatSpans(sb.String(), spans)
}

// FromFormatSpans converts fs back into Content. Empty runs are dropped
// and adjacent runs with equal styles are merged.
func FromFormatSpans(fs *FormatSpans[Style]) Content {
	var c Content
	for r := range fs.Runs() {
		if r.Text == "" {
			continue
		}
		if n := len(c); n > 0 && c[n-1].Style.Equal(*r.Format) {
			c[n-1].Text += r.Text
			continue
		}
		c = append(c, Span{Text: r.Text, Style: *r.Format})
	}
	return c
}
