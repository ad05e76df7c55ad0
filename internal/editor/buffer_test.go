package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer("")
	if len(b.Lines) != 1 || b.Lines[0] != "" {
		t.Errorf("new buffer should have one empty line, got %v", b.Lines)
	}
	if b.Dirty {
		t.Error("new buffer should not be dirty")
	}
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.txt")
	os.WriteFile(path, []byte("hello\nworld\n"), 0644)

	b := NewBuffer(path)
	if err := b.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(b.Lines) != 2 || b.Lines[0] != "hello" || b.Lines[1] != "world" {
		t.Fatalf("unexpected content: %v", b.Lines)
	}

	b.CursorY, b.CursorX = 0, 5
	b.InsertChar('!')
	if !b.Dirty {
		t.Error("buffer should be dirty after edit")
	}

	savePath := filepath.Join(dir, "out.txt")
	if err := b.Save(savePath); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, _ := os.ReadFile(savePath)
	if string(data) != "hello!\nworld\n" {
		t.Errorf("saved content: %q", string(data))
	}
	if b.Dirty {
		t.Error("buffer should not be dirty after save")
	}
}

func TestLoadNonexistent(t *testing.T) {
	b := NewBuffer(filepath.Join(t.TempDir(), "missing.txt"))
	if err := b.Load(); err != nil {
		t.Fatalf("Load of a missing file should not error, got: %v", err)
	}
	if len(b.Lines) != 1 || b.Lines[0] != "" {
		t.Errorf("missing file should load as one empty line, got %v", b.Lines)
	}
}

func TestInsertChar(t *testing.T) {
	b := NewBuffer("")
	for _, r := range "hi" {
		b.InsertChar(r)
	}
	if b.Lines[0] != "hi" {
		t.Errorf("content: %q", b.Lines[0])
	}
	if b.CursorX != 2 {
		t.Errorf("cursor x: %d", b.CursorX)
	}
}

func TestInsertNewlineSplitsLine(t *testing.T) {
	b := NewBuffer("")
	b.Lines = []string{"hello"}
	b.CursorX = 2
	b.InsertNewline()
	if len(b.Lines) != 2 || b.Lines[0] != "he" || b.Lines[1] != "llo" {
		t.Fatalf("lines: %v", b.Lines)
	}
	if b.CursorY != 1 || b.CursorX != 0 {
		t.Errorf("cursor: (%d,%d)", b.CursorY, b.CursorX)
	}
}

func TestInsertTextMultiline(t *testing.T) {
	b := NewBuffer("")
	b.Lines = []string{"ab"}
	b.CursorX = 1
	b.InsertText("1\n2\n3")
	want := []string{"a1", "2", "3b"}
	for i, w := range want {
		if b.Lines[i] != w {
			t.Errorf("line %d: %q, want %q", i, b.Lines[i], w)
		}
	}
	if b.CursorY != 2 || b.CursorX != 1 {
		t.Errorf("cursor: (%d,%d)", b.CursorY, b.CursorX)
	}
	// The whole paste is one undo unit.
	b.Undo()
	if len(b.Lines) != 1 || b.Lines[0] != "ab" {
		t.Errorf("after undo: %v", b.Lines)
	}
}

func TestDeleteBackwardMidLine(t *testing.T) {
	b := NewBuffer("")
	b.Lines = []string{"abc"}
	b.CursorX = 2
	b.DeleteBackward()
	if b.Lines[0] != "ac" || b.CursorX != 1 {
		t.Errorf("line %q cursor %d", b.Lines[0], b.CursorX)
	}
}

func TestDeleteBackwardAtColumnZeroMerges(t *testing.T) {
	b := NewBuffer("")
	b.Lines = []string{"hello", "x"}
	b.CursorY, b.CursorX = 1, 1
	b.DeleteBackward() // remove 'x', leaving an empty last line
	b.DeleteBackward() // merge with previous line
	if len(b.Lines) != 1 || b.Lines[0] != "hello" {
		t.Fatalf("lines: %v", b.Lines)
	}
	if b.CursorY != 0 || b.CursorX != 5 {
		t.Errorf("cursor should sit at the merge point, got (%d,%d)", b.CursorY, b.CursorX)
	}

	// Undo restores both lines and the original cursor exactly.
	b.Undo()
	if len(b.Lines) != 2 || b.Lines[0] != "hello" || b.Lines[1] != "" {
		t.Fatalf("after undoing merge: %v", b.Lines)
	}
	if b.CursorY != 1 || b.CursorX != 0 {
		t.Errorf("cursor after undoing merge: (%d,%d)", b.CursorY, b.CursorX)
	}
}

func TestDeleteBackwardAtOrigin(t *testing.T) {
	b := NewBuffer("")
	b.Lines = []string{"abc"}
	b.DeleteBackward()
	if b.Lines[0] != "abc" || b.Dirty {
		t.Error("delete at buffer start should be a no-op")
	}
}

func TestDeleteForwardJoinsNextLine(t *testing.T) {
	b := NewBuffer("")
	b.Lines = []string{"ab", "cd"}
	b.CursorX = 2
	b.DeleteForward()
	if len(b.Lines) != 1 || b.Lines[0] != "abcd" {
		t.Fatalf("lines: %v", b.Lines)
	}
	if b.CursorY != 0 || b.CursorX != 2 {
		t.Errorf("cursor: (%d,%d)", b.CursorY, b.CursorX)
	}
}

func TestDeleteRangeSingleUnit(t *testing.T) {
	b := NewBuffer("")
	b.Lines = []string{"one", "two", "three"}
	removed := b.DeleteRange(0, 1, 2, 2)
	if removed != "ne\ntwo\nth" {
		t.Errorf("removed: %q", removed)
	}
	if len(b.Lines) != 1 || b.Lines[0] != "oree" {
		t.Fatalf("lines: %v", b.Lines)
	}
	b.Undo()
	if strings.Join(b.Lines, "\n") != "one\ntwo\nthree" {
		t.Errorf("after undo: %v", b.Lines)
	}
}

func TestWipe(t *testing.T) {
	b := NewBuffer("")
	b.Lines = []string{"a", "b", "c"}
	b.CursorY = 2
	b.Wipe()
	if len(b.Lines) != 1 || b.Lines[0] != "" {
		t.Fatalf("lines after wipe: %v", b.Lines)
	}
	b.Undo()
	if strings.Join(b.Lines, "\n") != "a\nb\nc" {
		t.Errorf("wipe should undo as one unit, got %v", b.Lines)
	}
}

func TestMoveCursorWrapsAtLineBoundaries(t *testing.T) {
	b := NewBuffer("")
	b.Lines = []string{"ab", "cd"}

	b.CursorY, b.CursorX = 0, 2
	b.MoveCursor(Right)
	if b.CursorY != 1 || b.CursorX != 0 {
		t.Errorf("right past line end: (%d,%d)", b.CursorY, b.CursorX)
	}

	b.MoveCursor(Left)
	if b.CursorY != 0 || b.CursorX != 2 {
		t.Errorf("left past line start: (%d,%d)", b.CursorY, b.CursorX)
	}
}

func TestMoveCursorClampsColumn(t *testing.T) {
	b := NewBuffer("")
	b.Lines = []string{"longer line", "ab"}
	b.CursorX = 10
	b.MoveCursor(Down)
	if b.CursorX != 2 {
		t.Errorf("moving onto a shorter line should clamp, got col %d", b.CursorX)
	}
}

func TestCursorInvariantUnderOperations(t *testing.T) {
	b := NewBuffer("")
	ops := []func(){
		func() { b.InsertChar('x') },
		func() { b.InsertNewline() },
		func() { b.DeleteBackward() },
		func() { b.DeleteForward() },
		func() { b.MoveCursor(Up) },
		func() { b.MoveCursor(Down) },
		func() { b.MoveCursor(Left) },
		func() { b.MoveCursor(Right) },
		func() { b.Undo() },
		func() { b.Redo() },
	}
	for i := 0; i < 500; i++ {
		ops[(i*7)%len(ops)]()
		if b.CursorY < 0 || b.CursorY >= len(b.Lines) {
			t.Fatalf("step %d: cursor line %d out of range (%d lines)", i, b.CursorY, len(b.Lines))
		}
		if b.CursorX < 0 || b.CursorX > b.LineLen(b.CursorY) {
			t.Fatalf("step %d: cursor col %d out of range", i, b.CursorX)
		}
	}
}

func TestMoveToLine(t *testing.T) {
	b := NewBuffer("")
	b.Lines = []string{"a", "b", "c"}
	b.MoveToLine(99)
	if b.CursorY != 2 {
		t.Errorf("should clamp to last line, got %d", b.CursorY)
	}
	b.MoveToLine(-5)
	if b.CursorY != 0 {
		t.Errorf("should clamp to first line, got %d", b.CursorY)
	}
}
