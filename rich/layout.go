package rich

import (
	"github.com/rjkroege/textspan/draw"
	"github.com/rjkroege/textspan/internal/utf8bytes"
)

// Layout converts fs into a sequence of Boxes in a single pass over its
// runs. Each Box represents either a run of text, a newline, or a tab.
// Text is split on newlines and tabs, which become their own boxes. Text
// boxes are measured with font; font may be nil, leaving widths at 0.
func Layout(fs *FormatSpans[Style], font draw.Font) []Box {
	var boxes []Box

	for r := range fs.Runs() {
		if r.Text == "" {
			continue
		}
		boxes = appendRunBoxes(boxes, r)
	}

	if font != nil {
		for i := range boxes {
			boxes[i].Wid = boxWidth(&boxes[i], font)
		}
	}
	return boxes
}

// appendRunBoxes appends boxes from a single run to the slice.
// It splits the run text on newlines and tabs.
func appendRunBoxes(boxes []Box, r Run[Style]) []Box {
	text := r.Text
	style := *r.Format
	pos := r.Start

	for len(text) > 0 {
		// Find the next special character (newline or tab)
		idx := -1
		var special rune
		for i, c := range text {
			if c == '\n' || c == '\t' {
				idx = i
				special = c
				break
			}
		}

		if idx == -1 {
			// No more special characters, emit the rest as a text box
			boxes = append(boxes, Box{
				Text:  []byte(text),
				Nrune: utf8bytes.RuneCount(text),
				Start: pos,
				Style: style,
			})
			break
		}

		// Emit text before the special character (if any)
		if idx > 0 {
			prefix := text[:idx]
			n := utf8bytes.RuneCount(prefix)
			boxes = append(boxes, Box{
				Text:  []byte(prefix),
				Nrune: n,
				Start: pos,
				Style: style,
			})
			pos += n
		}

		boxes = append(boxes, Box{
			Nrune: -1,
			Bc:    special,
			Start: pos,
			Style: style,
		})
		pos++

		// Continue with the rest of the text (after the special character)
		text = text[idx+1:]
	}

	return boxes
}

// boxWidth calculates the width of a box in pixels using font metrics.
// Newline and tab boxes have no width of their own.
func boxWidth(box *Box, font draw.Font) int {
	if box.IsNewline() || box.IsTab() {
		return 0
	}
	if len(box.Text) == 0 {
		return 0
	}
	return font.BytesWidth(box.Text)
}
