package render

import (
	"fmt"
	"io"
	"strings"

	"tern/internal/config"
)

// Encode translates a frame's draw instructions into one escape-sequence
// string. Color changes are only emitted when they differ from the previous
// cell, so long same-colored runs stay cheap.
func Encode(f Frame) string {
	var buf strings.Builder
	buf.WriteString("\x1b[?25l")
	buf.WriteString("\x1b[H")

	var fg, bg config.RGB
	haveColor := false
	row, col := -1, -1
	for _, c := range f.Cells {
		if c.Row != row || c.Col != col {
			fmt.Fprintf(&buf, "\x1b[%d;%dH", c.Row+1, c.Col+1)
			row, col = c.Row, c.Col
		}
		if !haveColor || c.Fg != fg {
			fmt.Fprintf(&buf, "\x1b[38;2;%d;%d;%dm", c.Fg.R, c.Fg.G, c.Fg.B)
			fg = c.Fg
		}
		if !haveColor || c.Bg != bg {
			fmt.Fprintf(&buf, "\x1b[48;2;%d;%d;%dm", c.Bg.R, c.Bg.G, c.Bg.B)
			bg = c.Bg
		}
		haveColor = true
		buf.WriteRune(c.Ch)
		col++
	}

	buf.WriteString("\x1b[0m")
	if f.CursorVisible {
		fmt.Fprintf(&buf, "\x1b[%d;%dH", f.CursorRow+1, f.CursorCol+1)
		buf.WriteString("\x1b[?25h")
	}
	return buf.String()
}

// Flush writes one encoded frame to the terminal in a single write call.
func Flush(w io.Writer, f Frame) error {
	_, err := io.WriteString(w, Encode(f))
	return err
}
