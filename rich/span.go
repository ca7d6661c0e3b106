package rich

import (
	"fmt"
	"iter"

	"github.com/rjkroege/textspan/internal/utf8bytes"
)

// TextSpan is a run of Length runes sharing one format. Its position in
// the text is implicit: it starts where the previous span ended.
// A TextSpan is immutable; replace the list entry to change it.
type TextSpan[F any] struct {
	length int
	format F
}

// NewTextSpan returns a span covering length runes. Negative lengths are
// treated as 0.
func NewTextSpan[F any](length int, format F) TextSpan[F] {
	if length < 0 {
		length = 0
	}
	return TextSpan[F]{length: length, format: format}
}

// Length returns the number of runes the span covers.
func (s TextSpan[F]) Length() int { return s.length }

// Format returns the span's format payload.
func (s TextSpan[F]) Format() F { return s.format }

// FormatSpans owns a body of text and the ordered list of spans that
// partition it. The spans are expected to cover the text exactly but
// readers must not rely on that: text and spans are updated separately
// and may be out of step.
type FormatSpans[F any] struct {
	text  utf8bytes.String
	spans []TextSpan[F]
}

// NewFormatSpans returns a FormatSpans holding text and a copy of spans.
func NewFormatSpans[F any](text string, spans []TextSpan[F]) *FormatSpans[F] {
	fs := &FormatSpans[F]{}
	fs.SetText(text)
	fs.SetSpans(spans)
	return fs
}

// Text returns the full text.
func (fs *FormatSpans[F]) Text() string { return fs.text.String() }

// TextLen returns the length of the text in runes.
func (fs *FormatSpans[F]) TextLen() int { return fs.text.Nr() }

// Len returns the number of spans.
func (fs *FormatSpans[F]) Len() int { return len(fs.spans) }

// Span returns the span at index, or nil if there is none.
func (fs *FormatSpans[F]) Span(index int) *TextSpan[F] {
	if index < 0 || index >= len(fs.spans) {
		return nil
	}
	return &fs.spans[index]
}

// SetText replaces the text without touching the spans.
func (fs *FormatSpans[F]) SetText(text string) {
	fs.text.Init(text)
}

// SetSpans replaces the span list with a copy of spans without touching
// the text.
func (fs *FormatSpans[F]) SetSpans(spans []TextSpan[F]) {
	fs.spans = append([]TextSpan[F](nil), spans...)
}

// Iter returns a new iterator positioned at the first span.
func (fs *FormatSpans[F]) Iter() *SpanIter[F] {
	return &SpanIter[F]{base: fs, text: fs.text}
}

// Runs returns a single-use sequence over the runs of fs. Each call
// starts a fresh traversal.
func (fs *FormatSpans[F]) Runs() iter.Seq[Run[F]] {
	return func(yield func(Run[F]) bool) {
		it := fs.Iter()
		for {
			r, ok := it.Next()
			if !ok || !yield(r) {
				return
			}
		}
	}
}

// MismatchError reports that the span lengths do not add up to the text
// length.
type MismatchError struct {
	SpanTotal int
	TextLen   int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("rich: spans cover %d runes but text has %d", e.SpanTotal, e.TextLen)
}

// Validate returns a *MismatchError if the spans do not exactly cover the
// text. Iteration does not depend on Validate; it clamps regardless.
func (fs *FormatSpans[F]) Validate() error {
	total := 0
	for i := range fs.spans {
		total = addSat(total, fs.spans[i].length)
	}
	if n := fs.TextLen(); total != n {
		return &MismatchError{SpanTotal: total, TextLen: n}
	}
	return nil
}
