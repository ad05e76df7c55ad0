// Package render turns a read-only snapshot of editor state into an ordered
// sequence of per-cell draw instructions. BuildFrame is a pure function of
// (snapshot, width, height): the same snapshot always yields the same cells,
// so frames can be asserted byte-for-byte in tests. Writing the cells to the
// terminal is ansi.go's job.
package render

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"tern/internal/config"
	"tern/internal/syntax"
)

// Cell is one draw instruction: put ch at (row, col) in the given colors.
// Rows and columns are 0-indexed screen coordinates.
type Cell struct {
	Row, Col int
	Ch       rune
	Fg, Bg   config.RGB
}

// Frame is the complete output for one redraw: every on-screen cell in
// row-major order plus the hardware cursor placement.
type Frame struct {
	Width, Height int
	Cells         []Cell
	CursorRow     int
	CursorCol     int
	CursorVisible bool
}

// Tab is one entry in the tab bar.
type Tab struct {
	Name  string
	Dirty bool
}

// Span is a normalized selection: start is inclusive, end exclusive, and
// start never comes after end.
type Span struct {
	StartLine, StartCol int
	EndLine, EndCol     int
}

// Contains reports whether the rune at (line, col) falls inside the span.
func (s *Span) Contains(line, col int) bool {
	if s == nil {
		return false
	}
	if line < s.StartLine || line > s.EndLine {
		return false
	}
	if line == s.StartLine && col < s.StartCol {
		return false
	}
	if line == s.EndLine && col >= s.EndCol {
		return false
	}
	return true
}

// Overlay is a modal screen drawn over the editing view. Implementations
// live in overlay.go; a nil overlay means plain editing mode.
type Overlay interface {
	draw(f *frame, s *Snapshot)
}

// Snapshot is everything BuildFrame may read. The event loop assembles one
// per frame; nothing here is mutated during rendering.
type Snapshot struct {
	Width, Height int

	Palette config.Palette

	ShowHeader      bool
	ShowTabBar      bool
	ShowStatusBar   bool
	ShowLineNumbers bool
	SyntaxHighlight bool

	Tabs      []Tab
	ActiveTab int

	Lines    []string
	Language syntax.Language
	CursorX  int
	CursorY  int
	OffsetX  int
	OffsetY  int

	Selection *Span

	StatusLeft  string
	StatusRight string
	Prompt      string // when non-empty, replaces the left status segment

	Overlay Overlay
}

// Geometry locates the text area within the screen. The event loop uses the
// same numbers to scroll the viewport before building a frame.
type Geometry struct {
	ContentTop  int
	ContentLeft int
	GutterWidth int
	TextWidth   int
	TextHeight  int
}

// Geometry computes the layout for the snapshot's toggles and size.
func (s *Snapshot) Geometry() Geometry {
	var g Geometry
	if s.ShowHeader {
		g.ContentTop++
	}
	if s.ShowTabBar && len(s.Tabs) > 1 {
		g.ContentTop++
	}
	bottom := s.Height
	if s.ShowStatusBar {
		bottom--
	}
	if s.ShowLineNumbers {
		g.GutterWidth = digits(len(s.Lines)) + 1
	}
	g.TextHeight = bottom - g.ContentTop
	if g.TextHeight < 0 {
		g.TextHeight = 0
	}
	g.TextWidth = s.Width - g.ContentLeft - g.GutterWidth
	if g.TextWidth < 0 {
		g.TextWidth = 0
	}
	return g
}

// BuildFrame produces the draw instructions for one redraw.
func BuildFrame(s *Snapshot) Frame {
	f := newFrame(s.Width, s.Height, s.Palette.UIForeground, s.Palette.UIBackground)
	g := s.Geometry()

	row := 0
	if s.ShowHeader {
		drawHeader(f, s, row)
		row++
	}
	if s.ShowTabBar && len(s.Tabs) > 1 {
		drawTabBar(f, s, row)
		row++
	}

	drawContent(f, s, g)

	if s.ShowStatusBar {
		drawStatusBar(f, s, s.Height-1)
	}

	frame := Frame{Width: s.Width, Height: s.Height, Cells: f.flatten()}
	if s.Overlay == nil {
		frame.CursorVisible = true
		frame.CursorRow = g.ContentTop + s.CursorY - s.OffsetY
		frame.CursorCol = g.ContentLeft + g.GutterWidth + cursorScreenX(s)
	} else {
		s.Overlay.draw(f, s)
		frame.Cells = f.flatten()
	}
	return frame
}

// cursorScreenX converts the rune-indexed cursor column to a screen column
// within the text area, accounting for wide runes between the horizontal
// offset and the cursor.
func cursorScreenX(s *Snapshot) int {
	if s.CursorY < 0 || s.CursorY >= len(s.Lines) {
		return 0
	}
	runes := []rune(s.Lines[s.CursorY])
	x := 0
	for i := s.OffsetX; i < s.CursorX && i < len(runes); i++ {
		x += runewidth.RuneWidth(runes[i])
	}
	return x
}

func drawHeader(f *frame, s *Snapshot, row int) {
	p := &s.Palette
	f.fillRow(row, ' ', p.HeaderFg, p.HeaderBg)
	name := "scratch"
	if s.ActiveTab >= 0 && s.ActiveTab < len(s.Tabs) {
		name = s.Tabs[s.ActiveTab].Name
		if s.Tabs[s.ActiveTab].Dirty {
			name += " *"
		}
	}
	f.text(row, 1, "tern", p.Accent, p.HeaderBg)
	f.text(row, 7, name, p.HeaderFg, p.HeaderBg)
	lang := s.Language.String()
	f.text(row, s.Width-len(lang)-1, lang, p.HeaderFg, p.HeaderBg)
}

func drawTabBar(f *frame, s *Snapshot, row int) {
	p := &s.Palette
	f.fillRow(row, ' ', p.UIForeground, p.Panel)
	col := 0
	for i, t := range s.Tabs {
		label := " " + t.Name
		if t.Dirty {
			label += "*"
		}
		label += " "
		fg, bg := p.UIForeground, p.Panel
		if i == s.ActiveTab {
			fg, bg = p.SelectionFg, p.SelectionBg
		}
		col = f.text(row, col, label, fg, bg)
		if col >= s.Width {
			break
		}
	}
}

func drawContent(f *frame, s *Snapshot, g Geometry) {
	p := &s.Palette
	for i := 0; i < g.TextHeight; i++ {
		row := g.ContentTop + i
		f.fillRow(row, ' ', p.EditorFg, p.EditorBg)
		idx := s.OffsetY + i
		if idx < 0 || idx >= len(s.Lines) {
			continue
		}
		if g.GutterWidth > 0 {
			num := fmt.Sprintf("%*d ", g.GutterWidth-1, idx+1)
			f.text(row, g.ContentLeft, num, p.LineNumberFg, p.EditorBg)
		}
		drawLine(f, s, g, row, idx)
	}
}

// drawLine tokenizes one visible line and emits its cells, clipped to the
// viewport horizontally. Token colors come from the palette; selection
// overrides them.
func drawLine(f *frame, s *Snapshot, g Geometry, row, idx int) {
	p := &s.Palette
	line := s.Lines[idx]
	runes := []rune(line)

	var tokens []syntax.Token
	if s.SyntaxHighlight {
		tokens = syntax.Tokenize(line, s.Language)
	} else {
		tokens = []syntax.Token{{Start: 0, End: len(runes), Category: syntax.Plain}}
	}

	col := g.ContentLeft + g.GutterWidth
	limit := col + g.TextWidth
	for _, tok := range tokens {
		fg := tokenColor(tok.Category, p)
		for ri := tok.Start; ri < tok.End; ri++ {
			if ri < s.OffsetX {
				continue
			}
			if col >= limit {
				return
			}
			cfg, cbg := fg, p.EditorBg
			if s.Selection.Contains(idx, ri) {
				cfg, cbg = p.SelectionFg, p.SelectionBg
			}
			f.set(row, col, runes[ri], cfg, cbg)
			w := runewidth.RuneWidth(runes[ri])
			if w == 2 && col+1 < limit {
				f.set(row, col+1, 0, cfg, cbg)
			}
			col += w
		}
	}
}

func drawStatusBar(f *frame, s *Snapshot, row int) {
	p := &s.Palette
	f.fillRow(row, ' ', p.StatusFg, p.StatusBg)
	left := s.StatusLeft
	fg := p.StatusFg
	if s.Prompt != "" {
		left = s.Prompt
		fg = p.Accent
	}
	f.text(row, 1, left, fg, p.StatusBg)
	right := s.StatusRight
	f.text(row, s.Width-len(right)-1, right, p.StatusFg, p.StatusBg)
}

func tokenColor(cat syntax.Category, p *config.Palette) config.RGB {
	switch cat {
	case syntax.Keyword:
		return p.SyntaxKeyword
	case syntax.String:
		return p.SyntaxString
	case syntax.Comment:
		return p.SyntaxComment
	case syntax.Builtin:
		return p.SyntaxBuiltin
	default:
		return p.EditorFg
	}
}

func digits(n int) int {
	if n < 10 {
		return 1
	}
	d := 0
	for n > 0 {
		d++
		n /= 10
	}
	return d
}

// frame is the mutable grid BuildFrame assembles into before flattening to
// the instruction list.
type frame struct {
	width, height int
	cells         []Cell
}

func newFrame(w, h int, fg, bg config.RGB) *frame {
	f := &frame{width: w, height: h, cells: make([]Cell, w*h)}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			f.cells[row*w+col] = Cell{Row: row, Col: col, Ch: ' ', Fg: fg, Bg: bg}
		}
	}
	return f
}

func (f *frame) set(row, col int, ch rune, fg, bg config.RGB) {
	if row < 0 || row >= f.height || col < 0 || col >= f.width {
		return
	}
	f.cells[row*f.width+col] = Cell{Row: row, Col: col, Ch: ch, Fg: fg, Bg: bg}
}

// text writes a string starting at (row, col), clipping at the right edge,
// and returns the column after the last cell written.
func (f *frame) text(row, col int, s string, fg, bg config.RGB) int {
	for _, r := range s {
		if col >= f.width {
			break
		}
		f.set(row, col, r, fg, bg)
		w := runewidth.RuneWidth(r)
		if w == 2 && col+1 < f.width {
			f.set(row, col+1, 0, fg, bg)
		}
		col += w
	}
	return col
}

func (f *frame) fillRow(row int, ch rune, fg, bg config.RGB) {
	for col := 0; col < f.width; col++ {
		f.set(row, col, ch, fg, bg)
	}
}

func (f *frame) fillRect(top, left, h, w int, ch rune, fg, bg config.RGB) {
	for row := top; row < top+h; row++ {
		for col := left; col < left+w; col++ {
			f.set(row, col, ch, fg, bg)
		}
	}
}

// flatten returns the instruction list in row-major order. Cells holding a
// zero rune are continuations of a wide rune to their left; the terminal
// covers them naturally, so no instruction is emitted for them.
func (f *frame) flatten() []Cell {
	out := make([]Cell, 0, len(f.cells))
	for _, c := range f.cells {
		if c.Ch == 0 {
			continue
		}
		out = append(out, c)
	}
	return out
}
