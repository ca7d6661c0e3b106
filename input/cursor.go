package input

import (
	"image"

	"github.com/rjkroege/textspan/draw"
)

// MouseCursor is the shape of the mouse pointer.
type MouseCursor int

const (
	CursorArrow MouseCursor = iota
	CursorHand
	CursorIBeam
	CursorGrab
)

func (c MouseCursor) String() string {
	switch c {
	case CursorArrow:
		return "Arrow"
	case CursorHand:
		return "Hand"
	case CursorIBeam:
		return "IBeam"
	case CursorGrab:
		return "Grab"
	}
	return "MouseCursor(?)"
}

// blankCursor draws nothing; it hides the pointer.
var blankCursor = draw.Cursor{}

var ibeamCursor = draw.Cursor{
	Point: image.Point{-8, -8},
	Set: [32]byte{0x0E, 0x70, 0x01, 0x80, 0x01, 0x80, 0x01, 0x80,
		0x01, 0x80, 0x01, 0x80, 0x01, 0x80, 0x01, 0x80,
		0x01, 0x80, 0x01, 0x80, 0x01, 0x80, 0x01, 0x80,
		0x01, 0x80, 0x01, 0x80, 0x0E, 0x70, 0x00, 0x00},
}

var handCursor = draw.Cursor{
	Point: image.Point{-6, 0},
	Clr: [32]byte{0x06, 0x00, 0x09, 0x00, 0x09, 0x00, 0x09, 0x00,
		0x09, 0xB0, 0x09, 0x48, 0x69, 0x24, 0x98, 0x02,
		0x88, 0x02, 0x40, 0x02, 0x20, 0x02, 0x20, 0x04,
		0x10, 0x04, 0x08, 0x08, 0x04, 0x08, 0x07, 0xF8},
	Set: [32]byte{0x00, 0x00, 0x06, 0x00, 0x06, 0x00, 0x06, 0x00,
		0x06, 0x00, 0x06, 0xB0, 0x06, 0xD8, 0x67, 0xFC,
		0x77, 0xFC, 0x3F, 0xFC, 0x1F, 0xFC, 0x1F, 0xF8,
		0x0F, 0xF8, 0x07, 0xF0, 0x03, 0xF0, 0x00, 0x00},
}

var grabCursor = draw.Cursor{
	Point: image.Point{-7, -7},
	Clr: [32]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0xFF, 0xFF, 0xF8, 0x1F, 0xF8, 0x1F, 0xF8, 0x1F,
		0xF8, 0x1F, 0xF8, 0x1F, 0xF8, 0x1F, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
	Set: [32]byte{0x00, 0x00, 0x7F, 0xFE, 0x7F, 0xFE, 0x7F, 0xFE,
		0x70, 0x0E, 0x70, 0x0E, 0x70, 0x0E, 0x70, 0x0E,
		0x70, 0x0E, 0x70, 0x0E, 0x70, 0x0E, 0x70, 0x0E,
		0x7F, 0xFE, 0x7F, 0xFE, 0x7F, 0xFE, 0x00, 0x00},
}

// devdrawCursor returns the cursor to install for shape c. A nil cursor
// restores the default arrow.
func devdrawCursor(c MouseCursor, visible bool) *draw.Cursor {
	if !visible {
		return &blankCursor
	}
	switch c {
	case CursorHand:
		return &handCursor
	case CursorIBeam:
		return &ibeamCursor
	case CursorGrab:
		return &grabCursor
	}
	return nil
}
