package input

import (
	"fmt"

	"github.com/rjkroege/textspan/draw"
)

// KeyCode identifies a physical key independent of the host.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyBackspace
	KeyTab
	KeyReturn
	KeyShift
	KeyControl
	KeyAlt
	KeyCapsLock
	KeyEscape
	KeySpace
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeySemicolon
	KeyEquals
	KeyComma
	KeyMinus
	KeyPeriod
	KeySlash
	KeyGrave
	KeyLBracket
	KeyBackslash
	KeyRBracket
	KeyApostrophe
	KeyPgUp
	KeyPgDown
	KeyEnd
	KeyHome
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeyInsert
	KeyDelete
	KeyPause
	KeyScrollLock
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyMultiply
	KeyPlus
	KeyNumpadMinus
	KeyNumpadPeriod
	KeyNumpadSlash
	KeyCommand
)

var keyNames = [...]string{
	KeyUnknown:      "Unknown",
	KeyBackspace:    "Backspace",
	KeyTab:          "Tab",
	KeyReturn:       "Return",
	KeyShift:        "Shift",
	KeyControl:      "Control",
	KeyAlt:          "Alt",
	KeyCapsLock:     "CapsLock",
	KeyEscape:       "Escape",
	KeySpace:        "Space",
	KeySemicolon:    "Semicolon",
	KeyEquals:       "Equals",
	KeyComma:        "Comma",
	KeyMinus:        "Minus",
	KeyPeriod:       "Period",
	KeySlash:        "Slash",
	KeyGrave:        "Grave",
	KeyLBracket:     "LBracket",
	KeyBackslash:    "Backslash",
	KeyRBracket:     "RBracket",
	KeyApostrophe:   "Apostrophe",
	KeyPgUp:         "PgUp",
	KeyPgDown:       "PgDown",
	KeyEnd:          "End",
	KeyHome:         "Home",
	KeyLeft:         "Left",
	KeyUp:           "Up",
	KeyRight:        "Right",
	KeyDown:         "Down",
	KeyInsert:       "Insert",
	KeyDelete:       "Delete",
	KeyPause:        "Pause",
	KeyScrollLock:   "ScrollLock",
	KeyMultiply:     "Multiply",
	KeyPlus:         "Plus",
	KeyNumpadMinus:  "NumpadMinus",
	KeyNumpadPeriod: "NumpadPeriod",
	KeyNumpadSlash:  "NumpadSlash",
	KeyCommand:      "Command",
}

func (k KeyCode) String() string {
	switch {
	case k >= Key0 && k <= Key9:
		return fmt.Sprintf("Key%d", k-Key0)
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + k - KeyA))
	case k >= KeyF1 && k <= KeyF12:
		return fmt.Sprintf("F%d", k-KeyF1+1)
	case k >= KeyNumpad0 && k <= KeyNumpad9:
		return fmt.Sprintf("Numpad%d", k-KeyNumpad0)
	case k >= 0 && int(k) < len(keyNames):
		return keyNames[k]
	}
	return fmt.Sprintf("KeyCode(%d)", int(k))
}

// punctuation maps unshifted punctuation runes to their keys.
var punctuation = map[rune]KeyCode{
	';':  KeySemicolon,
	'=':  KeyEquals,
	',':  KeyComma,
	'-':  KeyMinus,
	'.':  KeyPeriod,
	'/':  KeySlash,
	'`':  KeyGrave,
	'[':  KeyLBracket,
	'\\': KeyBackslash,
	']':  KeyRBracket,
	'\'': KeyApostrophe,
}

// KeyCodeOf returns the key that produces r on a devdraw keyboard, or
// KeyUnknown. devdraw reports keypad keys as the runes they type, so the
// Numpad keys, Pause and ScrollLock are never returned.
func KeyCodeOf(r rune) KeyCode {
	switch {
	case r > draw.KeyFn && r <= draw.KeyFn+12:
		return KeyF1 + KeyCode(r-draw.KeyFn-1)
	case r >= 'a' && r <= 'z':
		return KeyA + KeyCode(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + KeyCode(r-'A')
	case r >= '0' && r <= '9':
		return Key0 + KeyCode(r-'0')
	}
	switch r {
	case ' ':
		return KeySpace
	case draw.KeyBackspace:
		return KeyBackspace
	case draw.KeyTab:
		return KeyTab
	case draw.KeyReturn, '\r':
		return KeyReturn
	case draw.KeyEscape:
		return KeyEscape
	case draw.KeyDelete:
		return KeyDelete
	case draw.KeyPageUp:
		return KeyPgUp
	case draw.KeyPageDown:
		return KeyPgDown
	case draw.KeyEnd:
		return KeyEnd
	case draw.KeyHome:
		return KeyHome
	case draw.KeyLeft:
		return KeyLeft
	case draw.KeyUp:
		return KeyUp
	case draw.KeyRight:
		return KeyRight
	case draw.KeyDown:
		return KeyDown
	case draw.KeyInsert:
		return KeyInsert
	case draw.KeyCmd:
		return KeyCommand
	case draw.KeyShift:
		return KeyShift
	case draw.KeyCtl:
		return KeyControl
	case draw.KeyAlt:
		return KeyAlt
	}
	if k, ok := punctuation[r]; ok {
		return k
	}
	return KeyUnknown
}
