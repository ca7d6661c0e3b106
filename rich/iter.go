package rich

import (
	"math"

	"github.com/rjkroege/textspan/internal/utf8bytes"
)

// Run is one step of a span traversal: the rune range [Start, End) of the
// text, the substring it covers and the format of the span. Format points
// into the FormatSpans and is only valid while that is unchanged.
type Run[F any] struct {
	Start  int
	End    int
	Text   string
	Format *F
}

// SpanIter walks the spans of a FormatSpans in order. It is single pass
// and cannot be restarted; make a new one with FormatSpans.Iter. The
// FormatSpans must not be modified while a SpanIter over it is in use.
//
// Offsets are clamped to the text length, so spans that run past the end
// of the text produce truncated or empty runs rather than failing.
//
// Each step scans only the runes of its own run: the iterator keeps its own
// copy of the text's rune index, positioned where the previous run ended.
type SpanIter[F any] struct {
	base  *FormatSpans[F]
	text  utf8bytes.String
	start int // rune offset where the next run begins
	index int
	done  bool
}

// Next returns the next run. It returns false once every span has been
// visited.
func (it *SpanIter[F]) Next() (Run[F], bool) {
	if it.done {
		return Run[F]{}, false
	}
	span := it.base.Span(it.index)
	if span == nil {
		it.done = true
		return Run[F]{}, false
	}
	it.index = addSat(it.index, 1)

	n := it.text.Nr()
	start := min(it.start, n)
	end := min(addSat(it.start, span.length), n)
	text, err := it.text.Slice(start, end)
	if err != nil {
		it.done = true
		return Run[F]{}, false
	}
	it.start = end

	return Run[F]{
		Start:  start,
		End:    end,
		Text:   text,
		Format: &span.format,
	}, true
}

// addSat adds two non-negative ints, saturating at math.MaxInt.
func addSat(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
