// Package terminal owns raw mode, the alternate screen, terminal size, and
// key-event parsing. It is the only package that touches stdin.
package terminal

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"
)

// Terminal manages raw mode, the alternate screen buffer, and dimensions.
type Terminal struct {
	oldState *term.State
	width    int
	height   int
	sigwinch chan os.Signal

	// Bytes read but not yet consumed. Paste bursts deliver several keys
	// per read; escape sequences can arrive split across reads.
	pending []byte
}

func New() (*Terminal, error) {
	t := &Terminal{}

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return nil, err
	}
	t.oldState = oldState

	// Enter alternate screen buffer, hide cursor during setup.
	os.Stdout.WriteString("\x1b[?1049h")
	os.Stdout.WriteString("\x1b[?25l")

	t.width, t.height, err = term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		t.Restore()
		return nil, err
	}

	t.sigwinch = make(chan os.Signal, 1)
	signal.Notify(t.sigwinch, syscall.SIGWINCH)

	return t, nil
}

// Size returns the current width and height.
func (t *Terminal) Size() (int, int) {
	return t.width, t.height
}

// Resize re-queries terminal dimensions. Returns true if the size changed.
func (t *Terminal) Resize() bool {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return false
	}
	changed := w != t.width || h != t.height
	t.width = w
	t.height = h
	return changed
}

// SigwinchChan returns the channel that receives SIGWINCH signals.
func (t *Terminal) SigwinchChan() <-chan os.Signal {
	return t.sigwinch
}

// Restore returns the terminal to its original state.
func (t *Terminal) Restore() {
	os.Stdout.WriteString("\x1b[?25h")
	os.Stdout.WriteString("\x1b[?1049l")
	if t.oldState != nil {
		term.Restore(int(os.Stdin.Fd()), t.oldState)
	}
	if t.sigwinch != nil {
		signal.Stop(t.sigwinch)
	}
}

// ReadKey blocks for the next keypress. One read may carry several keys (a
// paste burst) or a fragment of an escape sequence; leftover bytes stay
// pending for the next call, and fragments wait for the rest to arrive.
func (t *Terminal) ReadKey() (Key, error) {
	for {
		if len(t.pending) > 0 {
			k, n := parseOne(t.pending)
			if n > 0 {
				t.pending = t.pending[n:]
				return k, nil
			}
		}
		buf := make([]byte, 64)
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return Key{}, err
		}
		t.pending = append(t.pending, buf[:n]...)
	}
}

// Key types.
const (
	KeyRune      = iota // Printable character (possibly with Ctrl/Alt)
	KeyEscape           // Escape key (standalone)
	KeyEnter            // Enter/Return
	KeyTab              // Tab
	KeyBackspace        // Backspace
	KeyUp               // Arrow up
	KeyDown             // Arrow down
	KeyLeft             // Arrow left
	KeyRight            // Arrow right
	KeyHome             // Home
	KeyEnd              // End
	KeyDelete           // Forward delete
	KeyPgUp             // Page Up
	KeyPgDn             // Page Down
	KeyUnknown          // Unrecognised sequence
)

// Key is one decoded keypress.
type Key struct {
	Type  int
	Rune  rune
	Ctrl  bool
	Alt   bool
	Shift bool
}

// ParseKey decodes the first key in buf, ignoring trailing bytes.
func ParseKey(buf []byte) Key {
	k, _ := parseOne(buf)
	return k
}

// parseOne decodes the first key in buf and reports how many bytes it
// consumed. A zero count means the buffer ends mid-sequence and more bytes
// are needed.
func parseOne(buf []byte) (Key, int) {
	if len(buf) == 0 {
		return Key{Type: KeyUnknown}, 0
	}
	b := buf[0]

	if b == 27 {
		if len(buf) == 1 {
			return Key{Type: KeyEscape}, 1
		}
		if buf[1] == '[' {
			return parseCSI(buf)
		}
		// Alt+key arrives as ESC followed by the key's own encoding.
		k, n := parseOne(buf[1:])
		if n == 0 {
			return Key{Type: KeyEscape}, 1
		}
		k.Alt = true
		return k, n + 1
	}

	switch {
	case b == 13:
		return Key{Type: KeyEnter}, 1
	case b == 9:
		return Key{Type: KeyTab}, 1
	case b == 127 || b == 8:
		return Key{Type: KeyBackspace}, 1
	case b >= 1 && b <= 26:
		// Ctrl+letter folds onto bytes 1..26.
		return Key{Type: KeyRune, Rune: rune('a' + b - 1), Ctrl: true}, 1
	case b >= 32 && b < 127:
		return Key{Type: KeyRune, Rune: rune(b)}, 1
	case b < 0x80:
		return Key{Type: KeyUnknown}, 1
	}

	// Multi-byte UTF-8 character.
	size := utf8Size(b)
	if size == 0 {
		return Key{Type: KeyUnknown}, 1
	}
	if len(buf) < size {
		return Key{Type: KeyUnknown}, 0
	}
	r := decodeUTF8(buf[:size])
	if r >= 32 {
		return Key{Type: KeyRune, Rune: r}, size
	}
	return Key{Type: KeyUnknown}, size
}

// parseCSI decodes one ESC [ <params> <final> sequence. buf starts at the
// ESC; a missing final byte means the sequence is still arriving.
func parseCSI(buf []byte) (Key, int) {
	i := 2
	for i < len(buf) && (buf[i] == ';' || (buf[i] >= '0' && buf[i] <= '9')) {
		i++
	}
	if i >= len(buf) {
		return Key{Type: KeyUnknown}, 0
	}
	final := buf[i]
	params := string(buf[2:i])
	consumed := i + 1

	switch final {
	case 'A', 'B', 'C', 'D':
		k := arrowKey(final)
		// Modified arrows: ESC [ 1 ; <mod> where mod 2=Shift, 5=Ctrl.
		switch params {
		case "1;2":
			k.Shift = true
		case "1;5":
			k.Ctrl = true
		case "1;6":
			k.Ctrl = true
			k.Shift = true
		}
		return k, consumed
	case 'H':
		return Key{Type: KeyHome}, consumed
	case 'F':
		return Key{Type: KeyEnd}, consumed
	case '~':
		switch params {
		case "1":
			return Key{Type: KeyHome}, consumed
		case "3":
			return Key{Type: KeyDelete}, consumed
		case "4":
			return Key{Type: KeyEnd}, consumed
		case "5":
			return Key{Type: KeyPgUp}, consumed
		case "6":
			return Key{Type: KeyPgDn}, consumed
		}
	}
	return Key{Type: KeyUnknown}, consumed
}

// utf8Size returns the encoded length implied by a UTF-8 leading byte,
// 0 for an invalid one.
func utf8Size(b byte) int {
	switch {
	case b < 0xC0:
		return 0
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	case b < 0xF8:
		return 4
	}
	return 0
}

func arrowKey(b byte) Key {
	switch b {
	case 'A':
		return Key{Type: KeyUp}
	case 'B':
		return Key{Type: KeyDown}
	case 'C':
		return Key{Type: KeyRight}
	case 'D':
		return Key{Type: KeyLeft}
	}
	return Key{Type: KeyUnknown}
}

func decodeUTF8(buf []byte) rune {
	if len(buf) == 0 {
		return 0
	}
	b := buf[0]
	switch {
	case b < 0x80:
		return rune(b)
	case b < 0xC0:
		return 0xFFFD
	case b < 0xE0 && len(buf) >= 2:
		return rune(b&0x1F)<<6 | rune(buf[1]&0x3F)
	case b < 0xF0 && len(buf) >= 3:
		return rune(b&0x0F)<<12 | rune(buf[1]&0x3F)<<6 | rune(buf[2]&0x3F)
	case b < 0xF8 && len(buf) >= 4:
		return rune(b&0x07)<<18 | rune(buf[1]&0x3F)<<12 | rune(buf[2]&0x3F)<<6 | rune(buf[3]&0x3F)
	}
	return 0xFFFD
}
