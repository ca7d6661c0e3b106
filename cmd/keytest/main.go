// Command keytest opens a devdraw window and reports each key typed into
// it as seen through the input binding. Typing 'c' copies the report of
// the previous key to the clipboard; 'h' toggles the pointer; Escape quits.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/rjkroege/textspan/draw"
	"github.com/rjkroege/textspan/input"
	"github.com/rjkroege/textspan/rich"
)

var fontname = flag.String("f", "/lib/font/bit/lucsans/euro.8.font", "font used to measure reports")

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("keytest: ")

	errch := make(chan error, 1)
	display, err := draw.NewDisplay(errch, *fontname, "keytest", "")
	if err != nil {
		log.Fatalf("can't open display: %v", err)
	}
	font, err := display.OpenFont(*fontname)
	if err != nil {
		log.Fatalf("can't open font %q: %v", *fontname, err)
	}
	b := input.NewBinding(input.WithDisplay(display))
	b.SetMouseCursor(input.CursorIBeam)

	kbd := display.InitKeyboard()

	last := ""
	for {
		select {
		case err := <-errch:
			log.Fatalf("display: %v", err)
		case r := <-kbd.C:
			b.KeyDown(r)
			b.KeyUp(r)
			switch b.LastKeyCode() {
			case input.KeyEscape:
				return
			case input.KeyC:
				b.SetClipboardContent(last)
			case input.KeyH:
				if b.MouseVisible() {
					b.HideMouse()
				} else {
					b.ShowMouse()
				}
			}
			ch, _ := b.LastKeyChar()
			a, _ := b.LastKeyASCII()
			last = fmt.Sprintf("%v char=%q ascii=%d", b.LastKeyCode(), ch, a)
			fmt.Printf("%s (%dpx)\n", last, width(last, font))
		}
	}
}

// width returns the laid out width of s in font.
func width(s string, font draw.Font) int {
	w := 0
	for _, b := range rich.Layout(rich.Plain(s).FormatSpans(), font) {
		w += b.Wid
	}
	return w
}
