package rich

import (
	"strings"
	"testing"

	"github.com/rjkroege/textspan/spantest"
)

func TestLayoutBoxes(t *testing.T) {
	tests := []struct {
		name    string
		content Content
		want    []Box
	}{
		{
			name:    "empty content",
			content: Content{},
			want:    []Box{},
		},
		{
			name:    "empty span",
			content: Content{{Text: "", Style: DefaultStyle()}},
			want:    []Box{},
		},
		{
			name:    "simple text",
			content: Plain("hello"),
			want: []Box{
				{Text: []byte("hello"), Nrune: 5, Start: 0, Style: DefaultStyle()},
			},
		},
		{
			name:    "text with newline",
			content: Plain("hello\nworld"),
			want: []Box{
				{Text: []byte("hello"), Nrune: 5, Start: 0, Style: DefaultStyle()},
				{Nrune: -1, Bc: '\n', Start: 5, Style: DefaultStyle()},
				{Text: []byte("world"), Nrune: 5, Start: 6, Style: DefaultStyle()},
			},
		},
		{
			name:    "multiple newlines",
			content: Plain("a\n\nb"),
			want: []Box{
				{Text: []byte("a"), Nrune: 1, Start: 0, Style: DefaultStyle()},
				{Nrune: -1, Bc: '\n', Start: 1, Style: DefaultStyle()},
				{Nrune: -1, Bc: '\n', Start: 2, Style: DefaultStyle()},
				{Text: []byte("b"), Nrune: 1, Start: 3, Style: DefaultStyle()},
			},
		},
		{
			name: "multiple styled spans",
			content: Content{
				{Text: "hello ", Style: DefaultStyle()},
				{Text: "world", Style: StyleBold},
			},
			want: []Box{
				{Text: []byte("hello "), Nrune: 6, Start: 0, Style: DefaultStyle()},
				{Text: []byte("world"), Nrune: 5, Start: 6, Style: StyleBold},
			},
		},
		{
			name: "styled span with newline",
			content: Content{
				{Text: "hello\n", Style: StyleBold},
				{Text: "world", Style: StyleItalic},
			},
			want: []Box{
				{Text: []byte("hello"), Nrune: 5, Start: 0, Style: StyleBold},
				{Nrune: -1, Bc: '\n', Start: 5, Style: StyleBold},
				{Text: []byte("world"), Nrune: 5, Start: 6, Style: StyleItalic},
			},
		},
		{
			name:    "unicode with newline",
			content: Plain("日本\n語"),
			want: []Box{
				{Text: []byte("日本"), Nrune: 2, Start: 0, Style: DefaultStyle()},
				{Nrune: -1, Bc: '\n', Start: 2, Style: DefaultStyle()},
				{Text: []byte("語"), Nrune: 1, Start: 3, Style: DefaultStyle()},
			},
		},
		{
			name:    "mixed tabs and newlines",
			content: Plain("a\tb\nc"),
			want: []Box{
				{Text: []byte("a"), Nrune: 1, Start: 0, Style: DefaultStyle()},
				{Nrune: -1, Bc: '\t', Start: 1, Style: DefaultStyle()},
				{Text: []byte("b"), Nrune: 1, Start: 2, Style: DefaultStyle()},
				{Nrune: -1, Bc: '\n', Start: 3, Style: DefaultStyle()},
				{Text: []byte("c"), Nrune: 1, Start: 4, Style: DefaultStyle()},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Layout(tt.content.FormatSpans(), nil)

			if len(got) != len(tt.want) {
				t.Fatalf("Layout() returned %d boxes, want %d\ngot: %v\nwant: %v",
					len(got), len(tt.want), formatBoxes(got), formatBoxes(tt.want))
			}

			for i := range got {
				if !boxesEqual(got[i], tt.want[i]) {
					t.Errorf("box[%d] = %v @%d, want %v @%d", i,
						formatBox(got[i]), got[i].Start, formatBox(tt.want[i]), tt.want[i].Start)
				}
			}
		})
	}
}

func TestLayoutClampedSpans(t *testing.T) {
	// The text was shortened without updating the spans.
	fs := Content{
		{Text: "hello ", Style: DefaultStyle()},
		{Text: "world", Style: StyleBold},
	}.FormatSpans()
	fs.SetText("hel")

	got := Layout(fs, nil)
	want := []Box{
		{Text: []byte("hel"), Nrune: 3, Start: 0, Style: DefaultStyle()},
	}
	if len(got) != len(want) {
		t.Fatalf("Layout() returned %v, want %v", formatBoxes(got), formatBoxes(want))
	}
	if !boxesEqual(got[0], want[0]) {
		t.Errorf("box[0] = %v, want %v", formatBox(got[0]), formatBox(want[0]))
	}
}

func TestLayoutWidths(t *testing.T) {
	font := spantest.NewFont(10, 14)
	fs := Plain("ab\t日本語\n").FormatSpans()

	got := Layout(fs, font)
	want := []int{20, 0, 30, 0}
	if len(got) != len(want) {
		t.Fatalf("Layout() returned %v, want %d boxes", formatBoxes(got), len(want))
	}
	for i, w := range want {
		if got[i].Wid != w {
			t.Errorf("box[%d] %v Wid = %d, want %d", i, formatBox(got[i]), got[i].Wid, w)
		}
	}
}

func TestLayoutReassemblesText(t *testing.T) {
	text := "one\ttwo\nthree 日本"
	fs := NewFormatSpans(text, []TextSpan[Style]{
		NewTextSpan(5, DefaultStyle()),
		NewTextSpan(4, StyleBold),
		NewTextSpan(100, StyleItalic),
	})

	var sb strings.Builder
	for _, b := range Layout(fs, nil) {
		if b.Nrune < 0 {
			sb.WriteRune(b.Bc)
			continue
		}
		sb.Write(b.Text)
	}
	if got := sb.String(); got != text {
		t.Errorf("reassembled boxes = %q, want %q", got, text)
	}
}

// TestLayoutRuneOffsets checks that box rune counts and starts agree with
// the run offsets, including for text that is not valid UTF-8.
func TestLayoutRuneOffsets(t *testing.T) {
	for _, text := range []string{"a\x80é\tb\n日本", "\xff\xfe\n\x80", "plain"} {
		fs := NewFormatSpans(text, []TextSpan[Style]{
			NewTextSpan(2, DefaultStyle()),
			NewTextSpan(100, StyleBold),
		})
		pos := 0
		for i, b := range Layout(fs, nil) {
			if b.Start != pos {
				t.Errorf("%q: box %d %v starts at %d, want %d", text, i, formatBox(b), b.Start, pos)
			}
			if b.Nrune < 0 {
				pos++
			} else {
				pos += b.Nrune
			}
		}
		if pos != fs.TextLen() {
			t.Errorf("%q: boxes cover %d runes, want %d", text, pos, fs.TextLen())
		}
	}
}

func TestBoxWidth(t *testing.T) {
	font := spantest.NewFont(10, 14)

	tests := []struct {
		name string
		box  Box
		want int
	}{
		{
			name: "empty text box",
			box:  Box{Text: []byte{}, Nrune: 0, Bc: 0},
			want: 0,
		},
		{
			name: "five characters",
			box:  Box{Text: []byte("hello"), Nrune: 5, Bc: 0},
			want: 50,
		},
		{
			name: "unicode characters",
			box:  Box{Text: []byte("日本語"), Nrune: 3, Bc: 0},
			want: 30,
		},
		{
			name: "newline box has zero width",
			box:  Box{Nrune: -1, Bc: '\n'},
			want: 0,
		},
		{
			name: "tab box has zero width",
			box:  Box{Nrune: -1, Bc: '\t'},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := boxWidth(&tt.box, font)
			if got != tt.want {
				t.Errorf("boxWidth() = %d, want %d", got, tt.want)
			}
		})
	}
}

// boxesEqual compares two boxes for equality, ignoring width.
func boxesEqual(a, b Box) bool {
	if string(a.Text) != string(b.Text) {
		return false
	}
	if a.Nrune != b.Nrune || a.Bc != b.Bc || a.Start != b.Start {
		return false
	}
	return a.Style.Equal(b.Style)
}

// formatBox returns a string representation of a box for debugging.
func formatBox(b Box) string {
	if b.IsNewline() {
		return "{\\n}"
	}
	if b.IsTab() {
		return "{\\t}"
	}
	return "{" + string(b.Text) + "}"
}

// formatBoxes returns a string representation of boxes for debugging.
func formatBoxes(boxes []Box) string {
	parts := make([]string, 0, len(boxes))
	for _, b := range boxes {
		parts = append(parts, formatBox(b))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
