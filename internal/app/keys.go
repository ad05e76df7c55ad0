package app

import (
	"unicode"

	"tern/internal/config"
	"tern/internal/terminal"
)

// toChord converts a decoded keypress into the chord form the keybind map
// and the rebind screen speak. Unmappable keys report false and are dropped
// by every handler.
func toChord(k terminal.Key) (config.KeyChord, bool) {
	c := config.KeyChord{Ctrl: k.Ctrl, Alt: k.Alt, Shift: k.Shift}
	switch k.Type {
	case terminal.KeyRune:
		c.Key = string(unicode.ToLower(k.Rune))
	case terminal.KeyEscape:
		c.Key = "esc"
	case terminal.KeyEnter:
		c.Key = "enter"
	case terminal.KeyTab:
		c.Key = "tab"
	case terminal.KeyBackspace:
		c.Key = "backspace"
	case terminal.KeyDelete:
		c.Key = "delete"
	case terminal.KeyUp:
		c.Key = "up"
	case terminal.KeyDown:
		c.Key = "down"
	case terminal.KeyLeft:
		c.Key = "left"
	case terminal.KeyRight:
		c.Key = "right"
	case terminal.KeyHome:
		c.Key = "home"
	case terminal.KeyEnd:
		c.Key = "end"
	case terminal.KeyPgUp:
		c.Key = "pgup"
	case terminal.KeyPgDn:
		c.Key = "pgdn"
	default:
		return config.KeyChord{}, false
	}
	return c, true
}

// isEscape reports a bare Escape press, the global return-to-menu key.
func isEscape(k terminal.Key) bool {
	return k.Type == terminal.KeyEscape && !k.Ctrl && !k.Alt && !k.Shift
}
