// Package input binds host keyboard and mouse state to a small,
// host-independent set of key codes and cursor shapes.
package input

import (
	"context"
	"log"
	"sync"
	"unicode"

	"github.com/atotto/clipboard"
	"golang.org/x/text/encoding/charmap"

	"github.com/rjkroege/textspan/draw"
)

// Backend is what the rest of the program sees of the input devices.
type Backend interface {
	IsKeyDown(k KeyCode) bool
	LastKeyCode() KeyCode
	LastKeyChar() (rune, bool)
	LastKeyASCII() (byte, bool)
	MouseVisible() bool
	HideMouse()
	ShowMouse()
	SetMouseCursor(c MouseCursor)
	SetClipboardContent(text string)
}

var _ = Backend((*Binding)(nil))

// Binding implements Backend for a devdraw display. Key events are fed to
// it with KeyDown and KeyUp, or from a keyboard channel with Run.
type Binding struct {
	display   draw.Display
	clipboard func(string) error

	mu       sync.Mutex
	keysDown map[KeyCode]bool
	lastKey  KeyCode
	lastChar rune
	hasChar  bool
	ascii    byte
	hasASCII bool
	visible  bool
	cursor   MouseCursor
}

// Option configures a Binding.
type Option func(*Binding)

// WithDisplay sets the display that receives cursor and snarf updates.
func WithDisplay(d draw.Display) Option {
	return func(b *Binding) {
		b.display = d
	}
}

// WithClipboard sets the function used to write the system clipboard.
// A nil function disables system clipboard writes.
func WithClipboard(write func(string) error) Option {
	return func(b *Binding) {
		b.clipboard = write
	}
}

// NewBinding returns a Binding with a visible arrow cursor and no keys
// down. By default clipboard writes go to the system clipboard when one
// is available.
func NewBinding(opts ...Option) *Binding {
	b := &Binding{
		keysDown: make(map[KeyCode]bool),
		visible:  true,
		cursor:   CursorArrow,
	}
	if !clipboard.Unsupported {
		b.clipboard = clipboard.WriteAll
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// KeyDown records a press of the key that produces r.
func (b *Binding) KeyDown(r rune) {
	b.mu.Lock()
	defer b.mu.Unlock()
	k := b.record(r)
	if k != KeyUnknown {
		b.keysDown[k] = true
	}
}

// KeyUp records a release of the key that produces r.
func (b *Binding) KeyUp(r rune) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.keysDown, b.record(r))
}

func (b *Binding) record(r rune) KeyCode {
	b.lastKey = KeyCodeOf(r)
	b.lastChar, b.hasChar = keyChar(r)
	b.ascii, b.hasASCII = keyASCII(r), true
	return b.lastKey
}

// Run feeds runes from kbd to the binding as a press followed by a
// release until kbd is closed or ctx is done. devdraw keyboards report
// only typed runes, so no key stays down between runes.
func (b *Binding) Run(ctx context.Context, kbd <-chan rune) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case r, ok := <-kbd:
			if !ok {
				return nil
			}
			b.KeyDown(r)
			b.KeyUp(r)
		}
	}
}

func (b *Binding) IsKeyDown(k KeyCode) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return k != KeyUnknown && b.keysDown[k]
}

func (b *Binding) LastKeyCode() KeyCode {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastKey
}

// LastKeyChar returns the character typed by the last key, if it produced
// one. Backspace and Delete report their control characters.
func (b *Binding) LastKeyChar() (rune, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastChar, b.hasChar
}

// LastKeyASCII returns the Windows-1252 code of the last key. Keys with
// no code report '?'. It returns false until a key has been seen.
func (b *Binding) LastKeyASCII() (byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ascii, b.hasASCII
}

func (b *Binding) MouseVisible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.visible
}

func (b *Binding) HideMouse() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.visible = false
	b.updateCursor()
}

func (b *Binding) ShowMouse() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.visible = true
	b.updateCursor()
}

func (b *Binding) SetMouseCursor(c MouseCursor) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursor = c
	b.updateCursor()
}

// SetClipboardContent copies text to the display snarf buffer and the
// system clipboard. Failures are logged.
func (b *Binding) SetClipboardContent(text string) {
	if b.display != nil {
		if err := b.display.WriteSnarf([]byte(text)); err != nil {
			log.Printf("input: write snarf: %v", err)
		}
	}
	if b.clipboard != nil {
		if err := b.clipboard(text); err != nil {
			log.Printf("input: write clipboard: %v", err)
		}
	}
}

// updateCursor must be called with b.mu held.
func (b *Binding) updateCursor() {
	if b.display == nil {
		return
	}
	if err := b.display.SetCursor(devdrawCursor(b.cursor, b.visible)); err != nil {
		log.Printf("input: set cursor %v: %v", b.cursor, err)
	}
}

// isSpecial reports whether r is a devdraw function key rather than text.
func isSpecial(r rune) bool {
	return r == draw.KeyDown || unicode.Is(unicode.Co, r)
}

func keyChar(r rune) (rune, bool) {
	switch {
	case isSpecial(r):
		return 0, false
	case r == draw.KeyBackspace, r == draw.KeyDelete:
		return r, true
	case unicode.IsPrint(r):
		return r, true
	}
	return 0, false
}

func keyASCII(r rune) byte {
	if isSpecial(r) {
		return '?'
	}
	if c, ok := charmap.Windows1252.EncodeRune(r); ok {
		return c
	}
	return '?'
}
