package app

import (
	"strconv"

	"tern/internal/config"
	"tern/internal/render"
	"tern/internal/terminal"
)

// Settings mode lists the UI toggles plus entries into the color editor and
// the rebind screen. Every change is saved immediately.

type settingsState struct {
	selected int
}

func (a *App) openSettings() {
	a.setting = settingsState{}
	a.setMode(ModeSettings)
}

func (a *App) settingRows() []render.SettingRow {
	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}
	return []render.SettingRow{
		{Label: "line numbers", Value: onOff(a.cfg.ShowLineNumbers)},
		{Label: "status bar", Value: onOff(a.cfg.ShowStatusBar)},
		{Label: "header", Value: onOff(a.cfg.ShowHeader)},
		{Label: "tab bar", Value: onOff(a.cfg.ShowTabBar)},
		{Label: "syntax highlight", Value: onOff(a.cfg.SyntaxHighlight)},
		{Label: "auto save", Value: onOff(a.cfg.AutoSave)},
		{Label: "tab size", Value: strconv.Itoa(a.cfg.TabSize)},
		{Label: "colors...", Value: ""},
		{Label: "keybinds...", Value: ""},
	}
}

func (a *App) handleSettings(k terminal.Key) {
	if isEscape(k) {
		a.setMode(ModeMenu)
		return
	}
	rows := a.settingRows()
	s := &a.setting
	switch k.Type {
	case terminal.KeyUp:
		if s.selected > 0 {
			s.selected--
		}
	case terminal.KeyDown:
		if s.selected < len(rows)-1 {
			s.selected++
		}
	case terminal.KeyLeft:
		if s.selected == 6 && a.cfg.TabSize > 1 {
			a.cfg.TabSize--
			a.saveConfig()
		}
	case terminal.KeyRight:
		if s.selected == 6 && a.cfg.TabSize < 8 {
			a.cfg.TabSize++
			a.saveConfig()
		}
	case terminal.KeyEnter:
		a.applySetting(s.selected)
	}
}

func (a *App) applySetting(row int) {
	switch row {
	case 0:
		a.cfg.ShowLineNumbers = !a.cfg.ShowLineNumbers
	case 1:
		a.cfg.ShowStatusBar = !a.cfg.ShowStatusBar
	case 2:
		a.cfg.ShowHeader = !a.cfg.ShowHeader
	case 3:
		a.cfg.ShowTabBar = !a.cfg.ShowTabBar
	case 4:
		a.cfg.SyntaxHighlight = !a.cfg.SyntaxHighlight
	case 5:
		a.cfg.AutoSave = !a.cfg.AutoSave
	case 6:
		return // adjusted with Left/Right
	case 7:
		a.openColorEditor()
		return
	case 8:
		a.openRebind()
		return
	}
	a.saveConfig()
}

func (a *App) settingsOverlay() render.Overlay {
	return &render.SettingsOverlay{Rows: a.settingRows(), Selected: a.setting.selected}
}

// Color editor. Rows mirror the palette roles; Enter toggles hex editing on
// a row, Ctrl+S parses every row, swaps the live palette, and persists.

type colorRow struct {
	name    string
	hex     string
	editing bool
}

type colorState struct {
	rows     []colorRow
	selected int
	offset   int
}

func (a *App) openColorEditor() {
	roles := a.cfg.Palette.Roles()
	rows := make([]colorRow, len(roles))
	for i, r := range roles {
		rows[i] = colorRow{name: r.Name, hex: r.Value.Hex()}
	}
	a.colors = colorState{rows: rows}
	a.setMode(ModeColorEditor)
}

func (a *App) handleColorEditor(k terminal.Key) {
	c := &a.colors
	row := &c.rows[c.selected]

	if row.editing {
		switch {
		case isEscape(k):
			row.editing = false
			a.setMode(ModeMenu)
		case k.Type == terminal.KeyEnter:
			row.editing = false
		case k.Type == terminal.KeyBackspace:
			if len(row.hex) > 0 {
				row.hex = row.hex[:len(row.hex)-1]
			}
		case k.Type == terminal.KeyRune && k.Ctrl && k.Rune == 's':
			a.commitColors()
		case k.Type == terminal.KeyRune && !k.Ctrl && isHexRune(k.Rune):
			if len(row.hex) < 7 {
				row.hex += string(k.Rune)
			}
		}
		return
	}

	if isEscape(k) {
		a.setMode(ModeMenu)
		return
	}
	switch {
	case k.Type == terminal.KeyUp:
		if c.selected > 0 {
			c.selected--
		}
	case k.Type == terminal.KeyDown:
		if c.selected < len(c.rows)-1 {
			c.selected++
		}
	case k.Type == terminal.KeyEnter:
		row.hex = ""
		row.editing = true
	case k.Type == terminal.KeyRune && k.Ctrl && k.Rune == 's':
		a.commitColors()
	}
	a.scrollColors()
}

// commitColors parses every row; on full success the live palette is
// swapped and saved, otherwise the first bad row is reported and nothing
// changes.
func (a *App) commitColors() {
	parsed := make([]config.RGB, len(a.colors.rows))
	for i, row := range a.colors.rows {
		c, err := config.ParseHex(row.hex)
		if err != nil {
			a.flash = "BAD COLOR " + row.name
			return
		}
		parsed[i] = c
	}
	for i, role := range a.cfg.Palette.Roles() {
		*role.Value = parsed[i]
	}
	a.saveConfig()
	a.flash = "COLORS SAVED"
}

func (a *App) scrollColors() {
	c := &a.colors
	visible := a.height - 9
	if visible < 1 {
		visible = 1
	}
	if c.selected < c.offset {
		c.offset = c.selected
	} else if c.selected >= c.offset+visible {
		c.offset = c.selected - visible + 1
	}
	if c.offset < 0 {
		c.offset = 0
	}
}

func (a *App) colorOverlay() render.Overlay {
	rows := make([]render.ColorRow, len(a.colors.rows))
	for i, r := range a.colors.rows {
		rows[i] = render.ColorRow{Name: r.name, Hex: r.hex, Editing: r.editing}
	}
	return &render.ColorEditorOverlay{Rows: rows, Selected: a.colors.selected, Offset: a.colors.offset}
}

func isHexRune(r rune) bool {
	return r == '#' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'f') ||
		(r >= 'A' && r <= 'F')
}

// Key rebind. Enter on an action row captures the next keypress as its new
// chord; the final row resets everything to defaults after a y/N check.

type rebindState struct {
	selected     int
	capturing    bool
	pendingReset bool
}

func (a *App) openRebind() {
	a.rebind = rebindState{}
	a.setMode(ModeKeyRebind)
}

func (a *App) rebindRows() []render.RebindRow {
	actions := config.Actions()
	rows := make([]render.RebindRow, 0, len(actions)+1)
	for _, act := range actions {
		chord := "unbound"
		if c, ok := a.cfg.Keybinds.ChordFor(act); ok {
			chord = c.String()
		}
		rows = append(rows, render.RebindRow{Action: act.String(), Chord: chord})
	}
	rows = append(rows, render.RebindRow{Action: "reset to defaults", Chord: ""})
	return rows
}

func (a *App) handleRebind(k terminal.Key) {
	r := &a.rebind

	if r.pendingReset {
		r.pendingReset = false
		if k.Type == terminal.KeyRune && (k.Rune == 'y' || k.Rune == 'Y') {
			a.cfg.Keybinds = config.DefaultKeybinds()
			a.saveConfig()
			a.flash = "DEFAULT KEYBINDS RESTORED"
		}
		return
	}

	if r.capturing {
		// The capture consumes any key, Escape included, so Escape itself
		// stays bindable.
		r.capturing = false
		chord, ok := toChord(k)
		if !ok {
			a.flash = "KEY NOT BINDABLE"
			return
		}
		action := config.Actions()[r.selected]
		a.cfg.Keybinds.Bind(chord, action)
		a.saveConfig()
		a.flash = action.String() + " -> " + chord.String()
		return
	}

	if isEscape(k) {
		a.setMode(ModeMenu)
		return
	}
	rows := a.rebindRows()
	switch k.Type {
	case terminal.KeyUp:
		if r.selected > 0 {
			r.selected--
		}
	case terminal.KeyDown:
		if r.selected < len(rows)-1 {
			r.selected++
		}
	case terminal.KeyEnter:
		if r.selected == len(rows)-1 {
			r.pendingReset = true
			a.flash = "reset all keybinds? y/N"
			return
		}
		r.capturing = true
	}
}

func (a *App) rebindOverlay() render.Overlay {
	return &render.RebindOverlay{
		Rows:      a.rebindRows(),
		Selected:  a.rebind.selected,
		Capturing: a.rebind.capturing,
	}
}
