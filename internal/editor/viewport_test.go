package editor

import (
	"fmt"
	"testing"
)

func TestScrollToCursorDown(t *testing.T) {
	b := NewBuffer("")
	b.Lines = make([]string, 100)
	for i := range b.Lines {
		b.Lines[i] = fmt.Sprintf("line %d", i)
	}
	b.CursorY = 50
	b.ScrollToCursor(80, 20)
	if b.OffsetY != 31 {
		t.Errorf("offset y = %d, want 31 (cursor on the bottom visible row)", b.OffsetY)
	}
}

func TestScrollToCursorUp(t *testing.T) {
	b := NewBuffer("")
	b.Lines = make([]string, 100)
	b.OffsetY = 40
	b.CursorY = 10
	b.ScrollToCursor(80, 20)
	if b.OffsetY != 10 {
		t.Errorf("offset y = %d, want 10", b.OffsetY)
	}
}

func TestScrollToCursorHorizontal(t *testing.T) {
	b := NewBuffer("")
	b.Lines = []string{"a very long line of text that scrolls horizontally"}
	b.CursorX = 30
	b.ScrollToCursor(10, 20)
	if b.OffsetX != 21 {
		t.Errorf("offset x = %d, want 21", b.OffsetX)
	}
	b.CursorX = 5
	b.ScrollToCursor(10, 20)
	if b.OffsetX != 5 {
		t.Errorf("offset x = %d, want 5", b.OffsetX)
	}
}

func TestScrollToCursorIdempotent(t *testing.T) {
	b := NewBuffer("")
	b.Lines = make([]string, 100)
	b.CursorY = 50
	b.CursorX = 0
	b.ScrollToCursor(80, 20)
	ox, oy := b.OffsetX, b.OffsetY
	b.ScrollToCursor(80, 20)
	if b.OffsetX != ox || b.OffsetY != oy {
		t.Errorf("second call changed offsets: (%d,%d) -> (%d,%d)", ox, oy, b.OffsetX, b.OffsetY)
	}
	if b.CursorY < b.OffsetY || b.CursorY >= b.OffsetY+20 {
		t.Errorf("cursor %d outside [%d,%d)", b.CursorY, b.OffsetY, b.OffsetY+20)
	}
}

func TestScrollShortBufferStaysAtTop(t *testing.T) {
	b := NewBuffer("")
	b.Lines = []string{"a", "b", "c"}
	b.CursorY = 2
	b.ScrollToCursor(80, 20)
	if b.OffsetY != 0 {
		t.Errorf("short buffer should never scroll, offset %d", b.OffsetY)
	}
}

func TestScrollClampsNegativeOffsets(t *testing.T) {
	b := NewBuffer("")
	b.Lines = []string{""}
	b.OffsetY = 5 // stale offset after content shrank
	b.CursorY = 0
	b.ScrollToCursor(80, 20)
	if b.OffsetY != 0 || b.OffsetX != 0 {
		t.Errorf("offsets (%d,%d), want (0,0)", b.OffsetX, b.OffsetY)
	}
}
