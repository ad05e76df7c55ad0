package editor

import (
	"os"
	"strings"
)

// Direction is a cursor movement direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Buffer holds one open document: its text as hard lines (split on \n),
// the cursor, the viewport offsets, and the undo history.
type Buffer struct {
	Lines    []string
	Filename string
	Dirty    bool

	// Cursor position in rune coordinates. Invariant:
	// 0 <= CursorY < len(Lines) and 0 <= CursorX <= LineLen(CursorY).
	CursorX int
	CursorY int

	// Top-left visible cell. Never negative.
	OffsetX int
	OffsetY int

	history UndoStack
}

// NewBuffer creates an empty buffer for the given filename ("" for scratch).
func NewBuffer(filename string) *Buffer {
	return &Buffer{
		Lines:    []string{""},
		Filename: filename,
	}
}

// Load reads the file into the buffer. A missing file leaves the buffer
// empty so new files can be created by saving.
func (b *Buffer) Load() error {
	if b.Filename == "" {
		return nil
	}
	data, err := os.ReadFile(b.Filename)
	if err != nil {
		if os.IsNotExist(err) {
			b.Lines = []string{""}
			return nil
		}
		return err
	}
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		b.Lines = []string{""}
	} else {
		b.Lines = strings.Split(text, "\n")
	}
	b.Dirty = false
	return nil
}

// Save writes the buffer to the given filename, or the current one when
// filename is empty.
func (b *Buffer) Save(filename string) error {
	if filename != "" {
		b.Filename = filename
	}
	if b.Filename == "" {
		return nil // Caller should prompt for a name first.
	}
	content := strings.Join(b.Lines, "\n") + "\n"
	if err := os.WriteFile(b.Filename, []byte(content), 0644); err != nil {
		return err
	}
	b.Dirty = false
	return nil
}

// LineLen returns the rune length of a line, 0 for out-of-range indexes.
func (b *Buffer) LineLen(line int) int {
	if line < 0 || line >= len(b.Lines) {
		return 0
	}
	return len([]rune(b.Lines[line]))
}

// LineCount returns the number of lines. Always >= 1.
func (b *Buffer) LineCount() int {
	return len(b.Lines)
}

// cursor returns the current cursor as a Position.
func (b *Buffer) cursor() Position {
	return Position{Line: b.CursorY, Col: b.CursorX}
}

func (b *Buffer) setCursor(p Position) {
	b.CursorY = p.Line
	b.CursorX = p.Col
	b.ClampCursor()
}

// ClampCursor forces the cursor back inside the buffer. Content operations
// keep the invariant themselves; this is the defensive backstop.
func (b *Buffer) ClampCursor() {
	if b.CursorY < 0 {
		b.CursorY = 0
	}
	if b.CursorY >= len(b.Lines) {
		b.CursorY = len(b.Lines) - 1
	}
	if b.CursorX < 0 {
		b.CursorX = 0
	}
	if max := b.LineLen(b.CursorY); b.CursorX > max {
		b.CursorX = max
	}
}

// InsertChar inserts a character at the cursor and advances it.
func (b *Buffer) InsertChar(ch rune) {
	before := b.cursor()
	b.insertTextAt(b.CursorY, b.CursorX, string(ch))
	b.CursorX++
	b.history.Push(EditRecord{
		Kind:   OpInsert,
		Line:   before.Line,
		Col:    before.Col,
		Text:   string(ch),
		Before: before,
		After:  b.cursor(),
	})
}

// InsertNewline splits the current line at the cursor.
func (b *Buffer) InsertNewline() {
	before := b.cursor()
	b.insertTextAt(b.CursorY, b.CursorX, "\n")
	b.CursorY++
	b.CursorX = 0
	b.history.Push(EditRecord{
		Kind:   OpInsert,
		Line:   before.Line,
		Col:    before.Col,
		Text:   "\n",
		Before: before,
		After:  b.cursor(),
	})
}

// InsertText inserts text (possibly multi-line) at the cursor as one
// undoable unit. Used by paste and tab expansion.
func (b *Buffer) InsertText(text string) {
	if text == "" {
		return
	}
	before := b.cursor()
	end := b.insertTextAt(b.CursorY, b.CursorX, text)
	b.setCursor(end)
	b.history.Push(EditRecord{
		Kind:   OpInsert,
		Line:   before.Line,
		Col:    before.Col,
		Text:   text,
		Before: before,
		After:  b.cursor(),
	})
}

// DeleteBackward deletes the character before the cursor. At column zero it
// joins with the previous line; the join undoes as a single unit.
func (b *Buffer) DeleteBackward() {
	if b.CursorX == 0 && b.CursorY == 0 {
		return
	}
	before := b.cursor()
	if b.CursorX > 0 {
		removed := b.deleteRegion(b.CursorY, b.CursorX-1, b.CursorY, b.CursorX)
		b.CursorX--
		b.history.Push(EditRecord{
			Kind:   OpDelete,
			Line:   before.Line,
			Col:    before.Col - 1,
			Text:   removed,
			Before: before,
			After:  b.cursor(),
		})
		return
	}
	prevLen := b.LineLen(b.CursorY - 1)
	b.deleteRegion(b.CursorY-1, prevLen, b.CursorY, 0)
	b.CursorY--
	b.CursorX = prevLen
	b.history.Push(EditRecord{
		Kind:   OpDelete,
		Line:   before.Line - 1,
		Col:    prevLen,
		Text:   "\n",
		Before: before,
		After:  b.cursor(),
	})
}

// DeleteForward deletes the character under the cursor. At end of line it
// joins with the next line.
func (b *Buffer) DeleteForward() {
	before := b.cursor()
	lineLen := b.LineLen(b.CursorY)
	if b.CursorX < lineLen {
		removed := b.deleteRegion(b.CursorY, b.CursorX, b.CursorY, b.CursorX+1)
		b.history.Push(EditRecord{
			Kind:   OpDelete,
			Line:   before.Line,
			Col:    before.Col,
			Text:   removed,
			Before: before,
			After:  b.cursor(),
		})
		return
	}
	if b.CursorY >= len(b.Lines)-1 {
		return
	}
	b.deleteRegion(b.CursorY, lineLen, b.CursorY+1, 0)
	b.history.Push(EditRecord{
		Kind:   OpDelete,
		Line:   before.Line,
		Col:    lineLen,
		Text:   "\n",
		Before: before,
		After:  b.cursor(),
	})
}

// DeleteRange removes the region between two positions (exclusive end) as a
// single undoable unit and leaves the cursor at the region start.
func (b *Buffer) DeleteRange(startLine, startCol, endLine, endCol int) string {
	before := b.cursor()
	removed := b.deleteRegion(startLine, startCol, endLine, endCol)
	if removed == "" {
		return ""
	}
	b.setCursor(Position{Line: startLine, Col: startCol})
	b.history.Push(EditRecord{
		Kind:   OpDelete,
		Line:   startLine,
		Col:    startCol,
		Text:   removed,
		Before: before,
		After:  b.cursor(),
	})
	return removed
}

// Wipe clears the whole buffer to one empty line as a single undoable unit.
func (b *Buffer) Wipe() {
	last := len(b.Lines) - 1
	if last == 0 && b.Lines[0] == "" {
		return
	}
	b.DeleteRange(0, 0, last, b.LineLen(last))
}

// ExtractRange returns the text between two positions without mutating.
func (b *Buffer) ExtractRange(startLine, startCol, endLine, endCol int) string {
	var sb strings.Builder
	for y := startLine; y <= endLine && y < len(b.Lines); y++ {
		runes := []rune(b.Lines[y])
		from, to := 0, len(runes)
		if y == startLine {
			from = min(startCol, len(runes))
		}
		if y == endLine {
			to = min(endCol, len(runes))
		}
		if from < to {
			sb.WriteString(string(runes[from:to]))
		}
		if y < endLine {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// MoveCursor moves one step in the given direction, clamping to content.
// Moving left past column zero or right past line end crosses to the
// adjacent line boundary.
func (b *Buffer) MoveCursor(dir Direction) {
	switch dir {
	case Left:
		if b.CursorX > 0 {
			b.CursorX--
		} else if b.CursorY > 0 {
			b.CursorY--
			b.CursorX = b.LineLen(b.CursorY)
		}
	case Right:
		if b.CursorX < b.LineLen(b.CursorY) {
			b.CursorX++
		} else if b.CursorY < len(b.Lines)-1 {
			b.CursorY++
			b.CursorX = 0
		}
	case Up:
		if b.CursorY > 0 {
			b.CursorY--
			if b.CursorX > b.LineLen(b.CursorY) {
				b.CursorX = b.LineLen(b.CursorY)
			}
		}
	case Down:
		if b.CursorY < len(b.Lines)-1 {
			b.CursorY++
			if b.CursorX > b.LineLen(b.CursorY) {
				b.CursorX = b.LineLen(b.CursorY)
			}
		}
	}
}

// MoveToStart jumps to the first line, first column.
func (b *Buffer) MoveToStart() {
	b.CursorY = 0
	b.CursorX = 0
}

// MoveToEnd jumps past the last character of the last line.
func (b *Buffer) MoveToEnd() {
	b.CursorY = len(b.Lines) - 1
	b.CursorX = b.LineLen(b.CursorY)
}

// MoveToLine jumps to the start of a 0-based line, clamped to content.
func (b *Buffer) MoveToLine(line int) {
	if line < 0 {
		line = 0
	}
	if line >= len(b.Lines) {
		line = len(b.Lines) - 1
	}
	b.CursorY = line
	b.CursorX = 0
}

// Undo reverts the most recent edit. Returns false if there is nothing to
// undo.
func (b *Buffer) Undo() bool {
	return b.history.Undo(b)
}

// Redo re-applies the most recently undone edit.
func (b *Buffer) Redo() bool {
	return b.history.Redo(b)
}

// UndoDepth reports the number of undoable edits. Used by the status bar.
func (b *Buffer) UndoDepth() int {
	return len(b.history.undo)
}

// insertTextAt splices text (possibly containing \n) into the buffer at a
// rune position and returns the position just past the inserted text.
func (b *Buffer) insertTextAt(line, col int, text string) Position {
	if line < 0 || line >= len(b.Lines) {
		return Position{Line: line, Col: col}
	}
	runes := []rune(b.Lines[line])
	if col < 0 {
		col = 0
	}
	if col > len(runes) {
		col = len(runes)
	}
	prefix := string(runes[:col])
	suffix := string(runes[col:])

	parts := strings.Split(text, "\n")
	if len(parts) == 1 {
		b.Lines[line] = prefix + text + suffix
		b.Dirty = true
		return Position{Line: line, Col: col + len([]rune(text))}
	}

	segment := make([]string, len(parts))
	segment[0] = prefix + parts[0]
	copy(segment[1:], parts[1:])
	endCol := len([]rune(parts[len(parts)-1]))
	segment[len(segment)-1] += suffix

	newLines := make([]string, 0, len(b.Lines)+len(parts)-1)
	newLines = append(newLines, b.Lines[:line]...)
	newLines = append(newLines, segment...)
	newLines = append(newLines, b.Lines[line+1:]...)
	b.Lines = newLines
	b.Dirty = true
	return Position{Line: line + len(parts) - 1, Col: endCol}
}

// deleteRegion removes the text between two rune positions (exclusive end)
// and returns what was removed. Inverse of insertTextAt.
func (b *Buffer) deleteRegion(startLine, startCol, endLine, endCol int) string {
	if startLine < 0 || startLine >= len(b.Lines) || endLine < startLine || endLine >= len(b.Lines) {
		return ""
	}
	startCol = clamp(startCol, 0, b.LineLen(startLine))
	endCol = clamp(endCol, 0, b.LineLen(endLine))
	if startLine == endLine && startCol >= endCol {
		return ""
	}
	removed := b.ExtractRange(startLine, startCol, endLine, endCol)

	startRunes := []rune(b.Lines[startLine])
	endRunes := []rune(b.Lines[endLine])
	joined := string(startRunes[:startCol]) + string(endRunes[endCol:])

	newLines := make([]string, 0, len(b.Lines)-(endLine-startLine))
	newLines = append(newLines, b.Lines[:startLine]...)
	newLines = append(newLines, joined)
	newLines = append(newLines, b.Lines[endLine+1:]...)
	b.Lines = newLines
	b.Dirty = true
	return removed
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
