// Package draw is the slice of 9fans.net/go/draw used by the span model:
// font metrics for layout, and keys, cursors and the snarf buffer for the
// input binding.
package draw

import (
	draw "9fans.net/go/draw"
)

const (
	KeyCmd      = draw.KeyCmd
	KeyDown     = draw.KeyDown
	KeyEnd      = draw.KeyEnd
	KeyHome     = draw.KeyHome
	KeyInsert   = draw.KeyInsert
	KeyLeft     = draw.KeyLeft
	KeyPageDown = draw.KeyPageDown
	KeyPageUp   = draw.KeyPageUp
	KeyRight    = draw.KeyRight
	KeyUp       = draw.KeyUp
)

// Function keys and modifiers, from plan9port's keyboard.h. Function key n
// is KeyFn+n.
const (
	KeyFn    = 0xF000
	KeyAlt   = KeyFn | 0x15
	KeyShift = KeyFn | 0x16
	KeyCtl   = KeyFn | 0x17
)

// Keys delivered as plain control runes.
const (
	KeyBackspace = '\b'
	KeyTab       = '\t'
	KeyReturn    = '\n'
	KeyEscape    = '\x1b'
	KeyDelete    = '\x7f'
)

type (
	Cursor      = draw.Cursor
	drawDisplay = draw.Display
	drawFont    = draw.Font
	Keyboardctl = draw.Keyboardctl
)

var Init = draw.Init

// NewDisplay connects to devdraw and returns a Display for it.
func NewDisplay(errch chan<- error, fontname, label, winsize string) (Display, error) {
	d, err := Init(errch, fontname, label, winsize)
	if err != nil {
		return nil, err
	}
	return &displayImpl{d}, nil
}
