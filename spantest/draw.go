// Package spantest contains utility functions that help with testing the
// span model and the input binding.
package spantest

import (
	"sync"
	"unicode/utf8"

	"github.com/rjkroege/textspan/draw"
)

const (
	fwidth  = 13
	fheight = 10
)

// Display is a mock draw.Display that records what was sent to it.
type Display interface {
	draw.Display

	// Snarf returns the current snarf buffer contents.
	Snarf() []byte

	// Cursors returns every cursor passed to SetCursor, in order. A nil entry
	// is a reset to the default arrow.
	Cursors() []*draw.Cursor
}

var _ = Display((*mockDisplay)(nil))

// mockDisplay implements draw.Display.
type mockDisplay struct {
	mu       sync.Mutex
	snarfbuf []byte
	cursors  []*draw.Cursor
	kbd      chan rune
}

// NewDisplay returns a mock display. Runes sent on kbd are delivered
// through the keyboard returned by InitKeyboard.
func NewDisplay(kbd chan rune) Display {
	return &mockDisplay{kbd: kbd}
}

func (d *mockDisplay) InitKeyboard() *draw.Keyboardctl {
	return &draw.Keyboardctl{C: d.kbd}
}

func (d *mockDisplay) OpenFont(name string) (draw.Font, error) { return NewFont(fwidth, fheight), nil }

// WriteSnarf writes the data to the snarf buffer.
func (d *mockDisplay) WriteSnarf(data []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.snarfbuf = make([]byte, len(data))
	copy(d.snarfbuf, data)
	return nil
}

func (d *mockDisplay) Snarf() []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snarfbuf
}

func (d *mockDisplay) SetCursor(c *draw.Cursor) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cursors = append(d.cursors, c)
	return nil
}

func (d *mockDisplay) Cursors() []*draw.Cursor {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cursors
}

var _ = draw.Font((*mockFont)(nil))

// mockFont implements draw.Font and mocks as a fixed width font.
type mockFont struct {
	width, height int
}

// NewFont returns a draw.Font that mocks a fixed-width font.
func NewFont(width, height int) draw.Font {
	return &mockFont{
		width:  width,
		height: height,
	}
}

// mockFontName is the font devdraw falls back to.
const mockFontName = "/lib/font/bit/lucsans/euro.8.font"

func (f *mockFont) Name() string             { return mockFontName }
func (f *mockFont) Height() int              { return f.height }
func (f *mockFont) BytesWidth(b []byte) int  { return f.width * utf8.RuneCount(b) }
func (f *mockFont) RunesWidth(r []rune) int  { return f.width * len(r) }
func (f *mockFont) StringWidth(s string) int { return f.width * utf8.RuneCountInString(s) }
