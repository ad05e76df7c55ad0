package editor

import "path/filepath"

// BufferSet is the ordered collection of open buffers plus the active
// index. It is never observably empty: closing the last buffer immediately
// reopens an empty scratch buffer.
type BufferSet struct {
	buffers []*Buffer
	active  int
}

// NewBufferSet creates a set containing a single scratch buffer.
func NewBufferSet() *BufferSet {
	return &BufferSet{buffers: []*Buffer{NewBuffer("")}}
}

// Active returns the active buffer.
func (s *BufferSet) Active() *Buffer {
	return s.buffers[s.active]
}

// ActiveIndex returns the index of the active buffer.
func (s *BufferSet) ActiveIndex() int {
	return s.active
}

// Len returns the number of open buffers.
func (s *BufferSet) Len() int {
	return len(s.buffers)
}

// At returns the buffer at index i.
func (s *BufferSet) At(i int) *Buffer {
	return s.buffers[i]
}

// Add appends a buffer and makes it active.
func (s *BufferSet) Add(b *Buffer) {
	s.buffers = append(s.buffers, b)
	s.active = len(s.buffers) - 1
}

// Open opens a file as a new active buffer, or switches to it if a buffer
// with the same absolute path is already open.
func (s *BufferSet) Open(filename string) (*Buffer, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		abs = filename
	}
	for i, b := range s.buffers {
		if b.Filename == "" {
			continue
		}
		existing, err2 := filepath.Abs(b.Filename)
		if err2 != nil {
			existing = b.Filename
		}
		if existing == abs {
			s.active = i
			return b, nil
		}
	}
	b := NewBuffer(filename)
	if err := b.Load(); err != nil {
		return nil, err
	}
	s.Add(b)
	return b, nil
}

// Close removes the active buffer. If that was the last one, a scratch
// buffer takes its place so the set is never empty.
func (s *BufferSet) Close() {
	s.buffers = append(s.buffers[:s.active], s.buffers[s.active+1:]...)
	if len(s.buffers) == 0 {
		s.buffers = []*Buffer{NewBuffer("")}
		s.active = 0
		return
	}
	if s.active >= len(s.buffers) {
		s.active = len(s.buffers) - 1
	}
}

// Next cycles to the next buffer, wrapping around.
func (s *BufferSet) Next() {
	if len(s.buffers) > 1 {
		s.active = (s.active + 1) % len(s.buffers)
	}
}

// Prev cycles to the previous buffer, wrapping around.
func (s *BufferSet) Prev() {
	if len(s.buffers) > 1 {
		s.active--
		if s.active < 0 {
			s.active = len(s.buffers) - 1
		}
	}
}
