package editor

// OpKind describes the kind of edit for undo purposes. Every content
// mutation is recorded as either an insertion or a deletion of a text
// region, which are exact inverses of each other.
type OpKind int

const (
	OpInsert OpKind = iota // Text was inserted at (Line, Col).
	OpDelete               // Text was removed from (Line, Col).
)

// Position is a rune-indexed location in a buffer.
type Position struct {
	Line int
	Col  int
}

// EditRecord is one undoable unit. Text may span lines (\n separated); a
// line merge is recorded as the deletion of a single "\n". Before and After
// hold the cursor around the edit so undo/redo restore it exactly.
type EditRecord struct {
	Kind   OpKind
	Line   int
	Col    int
	Text   string
	Before Position
	After  Position
}

// UndoStack holds the undo and redo histories for one buffer. Pushing a new
// edit after any undo clears the redo side.
type UndoStack struct {
	undo []EditRecord
	redo []EditRecord
}

const maxUndoDepth = 1000

// Push records a completed edit and invalidates the redo history.
func (u *UndoStack) Push(rec EditRecord) {
	if len(u.undo) >= maxUndoDepth {
		u.undo = u.undo[1:]
	}
	u.undo = append(u.undo, rec)
	u.redo = nil
}

// Undo pops one record and applies its inverse to the buffer. No-op on an
// empty stack.
func (u *UndoStack) Undo(b *Buffer) bool {
	if len(u.undo) == 0 {
		return false
	}
	rec := u.undo[len(u.undo)-1]
	u.undo = u.undo[:len(u.undo)-1]
	u.redo = append(u.redo, rec)

	switch rec.Kind {
	case OpInsert:
		end := endOfText(rec.Line, rec.Col, rec.Text)
		b.deleteRegion(rec.Line, rec.Col, end.Line, end.Col)
	case OpDelete:
		b.insertTextAt(rec.Line, rec.Col, rec.Text)
	}
	b.setCursor(rec.Before)
	return true
}

// Redo re-applies one undone record. No-op on an empty stack.
func (u *UndoStack) Redo(b *Buffer) bool {
	if len(u.redo) == 0 {
		return false
	}
	rec := u.redo[len(u.redo)-1]
	u.redo = u.redo[:len(u.redo)-1]
	u.undo = append(u.undo, rec)

	switch rec.Kind {
	case OpInsert:
		b.insertTextAt(rec.Line, rec.Col, rec.Text)
	case OpDelete:
		end := endOfText(rec.Line, rec.Col, rec.Text)
		b.deleteRegion(rec.Line, rec.Col, end.Line, end.Col)
	}
	b.setCursor(rec.After)
	return true
}

// endOfText computes where text ends when inserted at (line, col).
func endOfText(line, col int, text string) Position {
	lastBreak := -1
	breaks := 0
	runes := []rune(text)
	for i, r := range runes {
		if r == '\n' {
			breaks++
			lastBreak = i
		}
	}
	if breaks == 0 {
		return Position{Line: line, Col: col + len(runes)}
	}
	return Position{Line: line + breaks, Col: len(runes) - lastBreak - 1}
}
