package rich

// Box represents a positioned, styled fragment of text.
// This is the layout model - produced by walking the runs of a FormatSpans.
type Box struct {
	// Content
	Text  []byte // UTF-8 content (empty for newline/tab)
	Nrune int    // Rune count (-1 for special boxes)
	Bc    rune   // Box character: 0 for text, '\n' for newline, '\t' for tab

	// Start is the rune offset of the box in the text.
	Start int

	// Style
	Style Style

	// Layout (computed)
	Wid int // Width in pixels
}

// IsNewline returns true if this is a newline box.
func (b *Box) IsNewline() bool {
	return b.Nrune < 0 && b.Bc == '\n'
}

// IsTab returns true if this is a tab box.
func (b *Box) IsTab() bool {
	return b.Nrune < 0 && b.Bc == '\t'
}
