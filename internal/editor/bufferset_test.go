package editor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBufferSetNeverEmpty(t *testing.T) {
	s := NewBufferSet()
	if s.Len() != 1 {
		t.Fatalf("new set should hold one scratch buffer, got %d", s.Len())
	}
	s.Close()
	if s.Len() != 1 {
		t.Fatalf("closing the last buffer should reopen a scratch, got %d", s.Len())
	}
	if s.Active().Filename != "" || s.Active().Lines[0] != "" {
		t.Error("reopened buffer should be an empty scratch")
	}
}

func TestBufferSetCloseKeepsValidActive(t *testing.T) {
	s := NewBufferSet()
	s.Add(NewBuffer("a"))
	s.Add(NewBuffer("b"))
	// Active is "b" (last added); closing it must land on a valid index.
	s.Close()
	if s.ActiveIndex() != 1 || s.Active().Filename != "a" {
		t.Errorf("active after close: index %d, file %q", s.ActiveIndex(), s.Active().Filename)
	}
}

func TestBufferSetNextPrevWrap(t *testing.T) {
	s := NewBufferSet()
	s.Add(NewBuffer("a"))
	s.Add(NewBuffer("b"))

	s.Next()
	if s.ActiveIndex() != 0 {
		t.Errorf("next should wrap to 0, got %d", s.ActiveIndex())
	}
	s.Prev()
	if s.ActiveIndex() != 2 {
		t.Errorf("prev should wrap to 2, got %d", s.ActiveIndex())
	}
}

func TestBufferSetOpenDeduplicates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	os.WriteFile(path, []byte("x\n"), 0644)

	s := NewBufferSet()
	first, err := s.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.Add(NewBuffer(""))
	second, err := s.Open(path)
	if err != nil {
		t.Fatalf("Open again: %v", err)
	}
	if first != second {
		t.Error("opening the same path twice should reuse the buffer")
	}
	if s.Len() != 3 {
		t.Errorf("len %d, want 3", s.Len())
	}
	if s.Active() != first {
		t.Error("reopen should switch to the existing buffer")
	}
}
