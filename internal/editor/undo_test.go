package editor

import (
	"strings"
	"testing"
)

func TestUndoEmptyStack(t *testing.T) {
	b := NewBuffer("")
	if b.Undo() {
		t.Error("undo on an empty stack should report false")
	}
	if b.Redo() {
		t.Error("redo on an empty stack should report false")
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	type snapshot struct {
		text  string
		curY  int
		curX  int
		dirty bool
	}
	take := func(b *Buffer) snapshot {
		return snapshot{strings.Join(b.Lines, "\n"), b.CursorY, b.CursorX, b.Dirty}
	}

	cases := []struct {
		name string
		op   func(b *Buffer)
	}{
		{"insert char", func(b *Buffer) { b.InsertChar('!') }},
		{"newline", func(b *Buffer) { b.InsertNewline() }},
		{"delete backward", func(b *Buffer) { b.DeleteBackward() }},
		{"delete forward", func(b *Buffer) { b.DeleteForward() }},
		{"paste", func(b *Buffer) { b.InsertText("x\ny") }},
		{"wipe", func(b *Buffer) { b.Wipe() }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBuffer("")
			b.Lines = []string{"hello", "world"}
			b.CursorY, b.CursorX = 1, 3

			tc.op(b)
			after := take(b)

			if !b.Undo() {
				t.Fatal("undo should succeed")
			}
			if got := strings.Join(b.Lines, "\n"); got != "hello\nworld" {
				t.Fatalf("undo content: %q", got)
			}
			if b.CursorY != 1 || b.CursorX != 3 {
				t.Errorf("undo cursor: (%d,%d)", b.CursorY, b.CursorX)
			}

			if !b.Redo() {
				t.Fatal("redo should succeed")
			}
			if got := take(b); got != after {
				t.Errorf("redo mismatch: %+v vs %+v", got, after)
			}
		})
	}
}

func TestNewEditClearsRedo(t *testing.T) {
	b := NewBuffer("")
	b.InsertChar('a')
	b.InsertChar('b')
	b.Undo()
	b.InsertChar('c')
	if b.Redo() {
		t.Error("a fresh edit should clear the redo stack")
	}
	if b.Lines[0] != "ac" {
		t.Errorf("content: %q", b.Lines[0])
	}
}

func TestUndoDepthBounded(t *testing.T) {
	b := NewBuffer("")
	for i := 0; i < maxUndoDepth+50; i++ {
		b.InsertChar('x')
	}
	if b.UndoDepth() != maxUndoDepth {
		t.Errorf("undo depth %d, want %d", b.UndoDepth(), maxUndoDepth)
	}
}

func TestUndoSequenceRestoresOriginal(t *testing.T) {
	b := NewBuffer("")
	b.Lines = []string{"start"}
	b.CursorX = 5
	for _, r := range " typed" {
		b.InsertChar(r)
	}
	b.InsertNewline()
	b.InsertText("more")
	for b.Undo() {
	}
	if len(b.Lines) != 1 || b.Lines[0] != "start" {
		t.Errorf("full unwind should restore original content, got %v", b.Lines)
	}
}
