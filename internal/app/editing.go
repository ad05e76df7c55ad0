package app

import (
	"strconv"
	"strings"

	"tern/internal/config"
	"tern/internal/editor"
	"tern/internal/render"
	"tern/internal/terminal"
)

// handleEditing routes a key while in editing mode. Bound chords win over
// literal insertion; unresolvable keys are dropped.
func (a *App) handleEditing(k terminal.Key) {
	b := a.buffers.Active()

	// Escape is a global accelerator: it reaches the menu even when the
	// Menu action has been rebound to another chord.
	if isEscape(k) {
		a.clearSelection()
		a.openMenu()
		return
	}

	if chord, ok := toChord(k); ok {
		if action, bound := a.cfg.Keybinds.Lookup(chord); bound {
			a.runAction(action)
			return
		}
	}

	switch k.Type {
	case terminal.KeyUp, terminal.KeyDown, terminal.KeyLeft, terminal.KeyRight:
		a.handleMovement(k, b)
	case terminal.KeyHome:
		a.clearSelection()
		b.CursorX = 0
	case terminal.KeyEnd:
		a.clearSelection()
		b.CursorX = b.LineLen(b.CursorY)
	case terminal.KeyPgUp:
		a.clearSelection()
		b.MoveToLine(b.CursorY - a.pageSize())
	case terminal.KeyPgDn:
		a.clearSelection()
		b.MoveToLine(b.CursorY + a.pageSize())
	case terminal.KeyEnter:
		a.deleteSelection(b)
		b.InsertNewline()
	case terminal.KeyTab:
		a.deleteSelection(b)
		b.InsertText(strings.Repeat(" ", a.cfg.TabSize))
	case terminal.KeyBackspace:
		if !a.deleteSelection(b) {
			b.DeleteBackward()
		}
	case terminal.KeyDelete:
		if !a.deleteSelection(b) {
			b.DeleteForward()
		}
	case terminal.KeyRune:
		if k.Ctrl || k.Alt {
			return
		}
		a.deleteSelection(b)
		b.InsertChar(k.Rune)
	}
}

// handleMovement applies arrow keys: plain arrows move and drop the
// selection, Shift grows it, Ctrl+Up/Down jump to the buffer edges.
func (a *App) handleMovement(k terminal.Key, b *editor.Buffer) {
	if k.Ctrl {
		a.clearSelection()
		switch k.Type {
		case terminal.KeyUp:
			b.MoveToStart()
		case terminal.KeyDown:
			b.MoveToEnd()
		}
		return
	}
	if k.Shift {
		a.anchorSelection(b)
	} else {
		a.clearSelection()
	}
	switch k.Type {
	case terminal.KeyUp:
		b.MoveCursor(editor.Up)
	case terminal.KeyDown:
		b.MoveCursor(editor.Down)
	case terminal.KeyLeft:
		b.MoveCursor(editor.Left)
	case terminal.KeyRight:
		b.MoveCursor(editor.Right)
	}
}

func (a *App) pageSize() int {
	h := a.height - 3
	if h < 1 {
		h = 1
	}
	return h
}

// runAction executes one bound logical command.
func (a *App) runAction(action config.Action) {
	b := a.buffers.Active()
	switch action {
	case config.ActionMenu:
		a.clearSelection()
		a.openMenu()
	case config.ActionSave:
		a.saveActive()
	case config.ActionUndo:
		if !b.Undo() {
			a.flash = "NOTHING TO UNDO"
		}
	case config.ActionRedo:
		if !b.Redo() {
			a.flash = "NOTHING TO REDO"
		}
	case config.ActionNewTab:
		a.clearSelection()
		a.buffers.Add(editor.NewBuffer(""))
	case config.ActionCloseTab:
		a.requestClose()
	case config.ActionNextTab:
		a.clearSelection()
		a.buffers.Next()
	case config.ActionPrevTab:
		a.clearSelection()
		a.buffers.Prev()
	case config.ActionSelectAll:
		a.selAnchor = &editor.Position{Line: 0, Col: 0}
		b.MoveToEnd()
	case config.ActionCopy:
		a.copySelection(b, false)
	case config.ActionCut:
		a.copySelection(b, true)
	case config.ActionPaste:
		a.paste(b)
	case config.ActionGoToLine:
		a.prompt = promptGoToLine
		a.promptText = ""
	case config.ActionWipeBuffer:
		a.setMode(ModeConfirmWipe)
	}
}

// saveActive writes the active buffer, prompting for a name first when the
// buffer is a scratch one.
func (a *App) saveActive() {
	b := a.buffers.Active()
	if b.Filename == "" {
		a.prompt = promptSaveAs
		a.promptText = ""
		return
	}
	if err := b.Save(""); err != nil {
		a.log.WithError(err).Warn("save failed")
		a.flash = "SAVE FAILED"
		return
	}
	a.flash = "SAVED " + b.Filename
}

// requestClose closes the active tab, diverting through the confirm dialog
// when unsaved changes would be lost.
func (a *App) requestClose() {
	if a.buffers.Active().Dirty {
		a.confirm.selected = 0
		a.setMode(ModeConfirmClose)
		return
	}
	a.buffers.Close()
	a.clearSelection()
}

// Selection. The anchor is fixed when Shift-movement starts; the head is
// always the live cursor.

func (a *App) anchorSelection(b *editor.Buffer) {
	if a.selAnchor == nil {
		a.selAnchor = &editor.Position{Line: b.CursorY, Col: b.CursorX}
	}
}

func (a *App) clearSelection() {
	a.selAnchor = nil
}

// selectionSpan normalizes anchor and cursor into a render span, nil when
// no selection is active or it is empty.
func (a *App) selectionSpan() *render.Span {
	if a.selAnchor == nil {
		return nil
	}
	b := a.buffers.Active()
	sl, sc := a.selAnchor.Line, a.selAnchor.Col
	el, ec := b.CursorY, b.CursorX
	if el < sl || (el == sl && ec < sc) {
		sl, sc, el, ec = el, ec, sl, sc
	}
	if sl == el && sc == ec {
		return nil
	}
	return &render.Span{StartLine: sl, StartCol: sc, EndLine: el, EndCol: ec}
}

// deleteSelection removes the selected text as one undo record. Returns
// false when nothing was selected.
func (a *App) deleteSelection(b *editor.Buffer) bool {
	span := a.selectionSpan()
	a.clearSelection()
	if span == nil {
		return false
	}
	b.DeleteRange(span.StartLine, span.StartCol, span.EndLine, span.EndCol)
	return true
}

func (a *App) copySelection(b *editor.Buffer, cut bool) {
	span := a.selectionSpan()
	if span == nil {
		a.flash = "NO SELECTION"
		return
	}
	text := b.ExtractRange(span.StartLine, span.StartCol, span.EndLine, span.EndCol)
	if notice := a.clip.Set(text); notice != "" {
		a.flash = notice
	} else if cut {
		a.flash = "CUT"
	} else {
		a.flash = "COPIED"
	}
	if cut {
		a.deleteSelection(b)
	} else {
		a.clearSelection()
	}
}

func (a *App) paste(b *editor.Buffer) {
	text, notice := a.clip.Get()
	if notice != "" {
		a.flash = notice
	}
	if text == "" {
		return
	}
	a.deleteSelection(b)
	b.InsertText(text)
}

// Prompts. SaveAs and GoToLine capture input on the status row before any
// mode dispatch; Esc cancels, Enter commits.

type promptKind int

const (
	promptNone promptKind = iota
	promptSaveAs
	promptGoToLine
)

func (a *App) promptLine() string {
	switch a.prompt {
	case promptSaveAs:
		return "save as: " + a.promptText + "_"
	case promptGoToLine:
		return "go to line: " + a.promptText + "_"
	}
	return ""
}

func (a *App) handlePrompt(k terminal.Key) {
	switch {
	case isEscape(k):
		a.prompt = promptNone
		a.promptText = ""
	case k.Type == terminal.KeyEnter:
		a.commitPrompt()
	case k.Type == terminal.KeyBackspace:
		if r := []rune(a.promptText); len(r) > 0 {
			a.promptText = string(r[:len(r)-1])
		}
	case k.Type == terminal.KeyRune && !k.Ctrl && !k.Alt:
		a.promptText += string(k.Rune)
	}
}

func (a *App) commitPrompt() {
	kind, text := a.prompt, a.promptText
	a.prompt = promptNone
	a.promptText = ""
	b := a.buffers.Active()
	switch kind {
	case promptSaveAs:
		if text == "" {
			return
		}
		if err := b.Save(text); err != nil {
			a.log.WithError(err).Warn("save failed")
			a.flash = "SAVE FAILED"
			return
		}
		a.flash = "SAVED " + b.Filename
	case promptGoToLine:
		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil || n < 1 {
			a.flash = "NOT A LINE NUMBER"
			return
		}
		b.MoveToLine(n - 1)
	}
}
