package app

import (
	"tern/internal/render"
	"tern/internal/terminal"
)

// Confirm dialogs. Wipe is a y/N check; close is a three-way No/Yes/Cancel
// cycle. Both resolve back to editing; Escape follows the global rule and
// returns to the menu, cancelling the pending action.

type confirmState struct {
	selected int
}

var closeOptions = []string{"No", "Yes", "Cancel"}

func (a *App) handleConfirmWipe(k terminal.Key) {
	if isEscape(k) {
		a.setMode(ModeMenu)
		return
	}
	if k.Type == terminal.KeyRune && (k.Rune == 'y' || k.Rune == 'Y') {
		a.buffers.Active().Wipe()
		a.clearSelection()
		a.flash = "BUFFER WIPED"
	}
	a.setMode(ModeEditing)
}

func (a *App) handleConfirmClose(k terminal.Key) {
	if isEscape(k) {
		a.setMode(ModeMenu)
		return
	}
	c := &a.confirm
	switch k.Type {
	case terminal.KeyLeft:
		c.selected = (c.selected + len(closeOptions) - 1) % len(closeOptions)
	case terminal.KeyRight:
		c.selected = (c.selected + 1) % len(closeOptions)
	case terminal.KeyRune:
		switch k.Rune {
		case 'n', 'N':
			a.resolveClose(0)
		case 'y', 'Y':
			a.resolveClose(1)
		}
	case terminal.KeyEnter:
		a.resolveClose(c.selected)
	}
}

// resolveClose applies the chosen option: 0 discards, 1 saves first,
// 2 aborts.
func (a *App) resolveClose(option int) {
	b := a.buffers.Active()
	switch option {
	case 0:
		a.buffers.Close()
		a.clearSelection()
	case 1:
		if b.Filename == "" {
			a.setMode(ModeEditing)
			a.prompt = promptSaveAs
			a.promptText = ""
			a.flash = "NAME THE BUFFER FIRST"
			return
		}
		if err := b.Save(""); err != nil {
			a.log.WithError(err).Warn("save failed")
			a.flash = "SAVE FAILED"
			a.setMode(ModeEditing)
			return
		}
		a.buffers.Close()
		a.clearSelection()
	}
	a.setMode(ModeEditing)
}

// Help mode: a scrollable reference generated from the live keybinds.

func (a *App) openHelp() {
	a.helpOffset = 0
	a.setMode(ModeHelp)
}

func (a *App) helpLines() []string {
	lines := []string{
		"arrows         move cursor",
		"shift+arrows   grow selection",
		"ctrl+up/down   jump to buffer start/end",
		"home/end       line start/end",
		"pgup/pgdn      page up/down",
		"tab            insert spaces",
		"",
	}
	return append(lines, a.bindingLines()...)
}

func (a *App) bindingLines() []string {
	var lines []string
	for _, row := range a.rebindRows() {
		if row.Chord == "" {
			continue
		}
		label := row.Chord
		for len(label) < 15 {
			label += " "
		}
		lines = append(lines, label+row.Action)
	}
	return lines
}

func (a *App) handleHelp(k terminal.Key) {
	if isEscape(k) {
		a.setMode(ModeMenu)
		return
	}
	total := len(a.helpLines())
	switch k.Type {
	case terminal.KeyUp:
		if a.helpOffset > 0 {
			a.helpOffset--
		}
	case terminal.KeyDown:
		if a.helpOffset < total-1 {
			a.helpOffset++
		}
	}
}

// overlay returns the modal screen for the current mode, nil for editing.
func (a *App) overlay() render.Overlay {
	switch a.mode {
	case ModeMenu:
		return a.menuOverlay()
	case ModeExplorer:
		return a.explorerOverlay()
	case ModeSettings:
		return a.settingsOverlay()
	case ModeHelp:
		return &render.HelpOverlay{Lines: a.helpLines(), Offset: a.helpOffset}
	case ModeColorEditor:
		return a.colorOverlay()
	case ModeKeyRebind:
		return a.rebindOverlay()
	case ModeConfirmWipe:
		return &render.ConfirmOverlay{
			Title:    "wipe buffer",
			Message:  "Erase the whole buffer? y/N",
			Options:  []string{"y", "N"},
			Selected: 1,
		}
	case ModeConfirmClose:
		return &render.ConfirmOverlay{
			Title:    "unsaved changes",
			Message:  "Save " + displayName(a.buffers.Active()) + " before closing?",
			Options:  closeOptions,
			Selected: a.confirm.selected,
		}
	}
	return nil
}
