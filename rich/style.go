package rich

import "image/color"

// Style defines visual attributes for a span of text. It is the format
// payload used by Layout and by Content.
type Style struct {
	// Colors (nil means use default)
	Fg color.Color
	Bg color.Color

	// Font variations
	Bold   bool
	Italic bool
	Code   bool // Monospace font for code spans
	Link   bool // Hyperlink (rendered in blue by default)

	// Size multiplier (1.0 = normal body text)
	// Used for headings: H1=2.0, H2=1.5, H3=1.25, etc.
	Scale float64
}

// DefaultStyle returns the default body text style.
func DefaultStyle() Style {
	return Style{Scale: 1.0}
}

// Equal reports whether s and o render identically.
func (s Style) Equal(o Style) bool {
	return colorEqual(s.Fg, o.Fg) &&
		colorEqual(s.Bg, o.Bg) &&
		s.Bold == o.Bold &&
		s.Italic == o.Italic &&
		s.Code == o.Code &&
		s.Link == o.Link &&
		s.Scale == o.Scale
}

// colorEqual compares two colors for equality, handling nil.
func colorEqual(a, b color.Color) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

// LinkBlue is the standard blue color for hyperlinks.
var LinkBlue = color.RGBA{R: 0, G: 0, B: 238, A: 255}

// Common styles
var (
	StyleH1     = Style{Bold: true, Scale: 2.0}
	StyleH2     = Style{Bold: true, Scale: 1.5}
	StyleH3     = Style{Bold: true, Scale: 1.25}
	StyleBold   = Style{Bold: true, Scale: 1.0}
	StyleItalic = Style{Italic: true, Scale: 1.0}
	StyleCode   = Style{Code: true, Scale: 1.0}
	StyleLink   = Style{Link: true, Fg: LinkBlue, Scale: 1.0}
)
