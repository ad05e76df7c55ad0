package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tern/internal/config"
	"tern/internal/syntax"
)

func editingSnapshot() Snapshot {
	return Snapshot{
		Width:           40,
		Height:          10,
		Palette:         config.DefaultPalette(),
		ShowHeader:      true,
		ShowStatusBar:   true,
		ShowLineNumbers: true,
		SyntaxHighlight: true,
		Tabs:            []Tab{{Name: "main.go"}},
		Lines:           []string{"package main", "", "// entry"},
		Language:        syntax.LangGo,
		StatusLeft:      "EDIT",
		StatusRight:     "Ln 1, Col 1",
	}
}

// rowText reconstructs the characters of one screen row.
func rowText(f Frame, row int) string {
	var sb strings.Builder
	for _, c := range f.Cells {
		if c.Row == row {
			sb.WriteRune(c.Ch)
		}
	}
	return sb.String()
}

func cellAt(t *testing.T, f Frame, row, col int) Cell {
	t.Helper()
	for _, c := range f.Cells {
		if c.Row == row && c.Col == col {
			return c
		}
	}
	t.Fatalf("no cell at (%d,%d)", row, col)
	return Cell{}
}

func TestGeometry(t *testing.T) {
	s := editingSnapshot()
	g := s.Geometry()
	assert.Equal(t, 1, g.ContentTop, "header only; single tab hides the tab bar")
	assert.Equal(t, 2, g.GutterWidth, "3 lines needs one digit plus a space")
	assert.Equal(t, 8, g.TextHeight, "10 rows minus header and status")
	assert.Equal(t, 38, g.TextWidth)
}

func TestGeometryTogglesOff(t *testing.T) {
	s := editingSnapshot()
	s.ShowHeader = false
	s.ShowStatusBar = false
	s.ShowLineNumbers = false
	g := s.Geometry()
	assert.Equal(t, 0, g.ContentTop)
	assert.Equal(t, 0, g.GutterWidth)
	assert.Equal(t, 10, g.TextHeight)
	assert.Equal(t, 40, g.TextWidth)
}

func TestBuildFrameDeterministic(t *testing.T) {
	s1 := editingSnapshot()
	s2 := editingSnapshot()
	f1 := BuildFrame(&s1)
	f2 := BuildFrame(&s2)
	assert.Equal(t, f1, f2, "same snapshot must yield an identical frame")
}

func TestBuildFrameEditingLayout(t *testing.T) {
	s := editingSnapshot()
	f := BuildFrame(&s)

	require.Equal(t, 40*10, len(f.Cells), "no wide runes: every cell emitted")
	assert.Contains(t, rowText(f, 0), "tern")
	assert.Contains(t, rowText(f, 0), "main.go")
	assert.Contains(t, rowText(f, 1), "1 package main")
	assert.Contains(t, rowText(f, 3), "3 // entry")
	assert.Contains(t, rowText(f, 9), "EDIT")
	assert.Contains(t, rowText(f, 9), "Ln 1, Col 1")

	// Cursor at buffer origin maps just right of the gutter.
	assert.True(t, f.CursorVisible)
	assert.Equal(t, 1, f.CursorRow)
	assert.Equal(t, 2, f.CursorCol)
}

func TestBuildFrameTokenColors(t *testing.T) {
	s := editingSnapshot()
	p := s.Palette
	f := BuildFrame(&s)

	// "package" on line 1 starts after the "1 " gutter.
	kw := cellAt(t, f, 1, 2)
	assert.Equal(t, 'p', kw.Ch)
	assert.Equal(t, p.SyntaxKeyword, kw.Fg)

	cm := cellAt(t, f, 3, 2)
	assert.Equal(t, '/', cm.Ch)
	assert.Equal(t, p.SyntaxComment, cm.Fg)

	plain := cellAt(t, f, 1, 10) // 'e' of "package" is keyword; col 10 is 'm' of main
	assert.Equal(t, 'm', plain.Ch)
	assert.Equal(t, p.EditorFg, plain.Fg)
}

func TestBuildFrameHighlightOff(t *testing.T) {
	s := editingSnapshot()
	s.SyntaxHighlight = false
	f := BuildFrame(&s)
	kw := cellAt(t, f, 1, 2)
	assert.Equal(t, s.Palette.EditorFg, kw.Fg)
}

func TestBuildFrameSelection(t *testing.T) {
	s := editingSnapshot()
	s.Selection = &Span{StartLine: 0, StartCol: 0, EndLine: 0, EndCol: 7}
	f := BuildFrame(&s)
	sel := cellAt(t, f, 1, 2)
	assert.Equal(t, s.Palette.SelectionBg, sel.Bg)
	after := cellAt(t, f, 1, 2+7)
	assert.NotEqual(t, s.Palette.SelectionBg, after.Bg)
}

func TestBuildFrameRespectsViewportOffsets(t *testing.T) {
	s := editingSnapshot()
	s.Lines = []string{"aaa", "bbb", "ccc", "ddd"}
	s.Language = syntax.LangNone
	s.OffsetY = 2
	s.CursorY = 2
	f := BuildFrame(&s)
	assert.Contains(t, rowText(f, 1), "3 ccc")
	assert.NotContains(t, rowText(f, 1), "aaa")
	assert.Equal(t, 1, f.CursorRow)
}

func TestBuildFrameClipsLongLines(t *testing.T) {
	s := editingSnapshot()
	s.Lines = []string{strings.Repeat("x", 200)}
	s.Language = syntax.LangNone
	f := BuildFrame(&s)
	for _, c := range f.Cells {
		assert.Less(t, c.Col, 40)
		assert.Less(t, c.Row, 10)
	}
}

func TestSpanContains(t *testing.T) {
	sp := &Span{StartLine: 1, StartCol: 2, EndLine: 3, EndCol: 1}
	assert.False(t, sp.Contains(1, 1))
	assert.True(t, sp.Contains(1, 2))
	assert.True(t, sp.Contains(2, 0))
	assert.True(t, sp.Contains(3, 0))
	assert.False(t, sp.Contains(3, 1))
	assert.False(t, sp.Contains(0, 5))
	var nilSpan *Span
	assert.False(t, nilSpan.Contains(0, 0))
}

func TestEncodeSingleFlushShape(t *testing.T) {
	s := editingSnapshot()
	f := BuildFrame(&s)
	out := Encode(f)
	assert.True(t, strings.HasPrefix(out, "\x1b[?25l"), "hide cursor first")
	assert.Contains(t, out, "\x1b[38;2;")
	assert.Contains(t, out, "\x1b[48;2;")
	assert.True(t, strings.HasSuffix(out, "\x1b[?25h"), "show cursor last when visible")
}

func TestMenuOverlayDrawsItems(t *testing.T) {
	s := editingSnapshot()
	s.Overlay = &MenuOverlay{
		Tabs:      []string{"tern", "file"},
		ActiveTab: 0,
		Items:     []string{"settings", "quit"},
		Selected:  1,
	}
	f := BuildFrame(&s)
	assert.False(t, f.CursorVisible, "overlays hide the hardware cursor")

	all := ""
	for row := 0; row < 10; row++ {
		all += rowText(f, row) + "\n"
	}
	assert.Contains(t, all, "settings")
	assert.Contains(t, all, "quit")
	assert.Contains(t, all, "menu")
}
