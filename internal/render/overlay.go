package render

import "tern/internal/config"

// Overlays are modal screens drawn over the editing view. Each is plain
// data assembled by the event loop; draw methods only read the snapshot.

// MenuOverlay is the top-level menu with its tab row and item list.
type MenuOverlay struct {
	Tabs      []string
	ActiveTab int
	Items     []string
	Selected  int
}

func (o *MenuOverlay) draw(f *frame, s *Snapshot) {
	p := &s.Palette
	w := 44
	h := len(o.Items) + 5
	top, left := center(s, h, w)
	panel(f, p, top, left, h, w, "menu")

	col := left + 2
	for i, tab := range o.Tabs {
		fg, bg := p.UIForeground, p.Panel
		if i == o.ActiveTab {
			fg, bg = p.SelectionFg, p.SelectionBg
		}
		col = f.text(top+2, col, " "+tab+" ", fg, bg)
	}

	for i, item := range o.Items {
		fg, bg := p.UIForeground, p.Panel
		if i == o.Selected {
			fg, bg = p.SelectionFg, p.SelectionBg
		}
		f.text(top+4+i, left+2, pad(item, w-4), fg, bg)
	}
}

// ExplorerRow is one listing entry prepared by the event loop.
type ExplorerRow struct {
	Name string
	Dir  bool
}

// ExplorerOverlay is the file browser panel.
type ExplorerOverlay struct {
	Path     string
	Rows     []ExplorerRow
	Selected int
	Offset   int
}

func (o *ExplorerOverlay) draw(f *frame, s *Snapshot) {
	p := &s.Palette
	w := s.Width / 2
	if w > 48 {
		w = 48
	}
	if w < 20 {
		w = s.Width
	}
	h := s.Height
	panel(f, p, 0, 0, h, w, "explorer")
	f.text(1, 2, truncate(o.Path, w-4), p.Accent, p.Panel)

	visible := h - 4
	for i := 0; i < visible; i++ {
		idx := o.Offset + i
		if idx >= len(o.Rows) {
			break
		}
		row := o.Rows[idx]
		label := row.Name
		if row.Dir {
			label += "/"
		}
		fg, bg := p.UIForeground, p.Panel
		if row.Dir {
			fg = p.Accent
		}
		if idx == o.Selected {
			fg, bg = p.SelectionFg, p.SelectionBg
		}
		f.text(3+i, 2, pad(truncate(label, w-4), w-4), fg, bg)
	}
}

// SettingRow is one toggleable or openable settings entry.
type SettingRow struct {
	Label string
	Value string
}

// SettingsOverlay lists UI toggles plus entries into the color editor and
// key rebind screens.
type SettingsOverlay struct {
	Rows     []SettingRow
	Selected int
}

func (o *SettingsOverlay) draw(f *frame, s *Snapshot) {
	p := &s.Palette
	w := 48
	h := len(o.Rows) + 4
	top, left := center(s, h, w)
	panel(f, p, top, left, h, w, "settings")

	for i, row := range o.Rows {
		fg, bg := p.UIForeground, p.Panel
		if i == o.Selected {
			fg, bg = p.SelectionFg, p.SelectionBg
		}
		label := pad(row.Label, w-4-len(row.Value)) + row.Value
		f.text(top+2+i, left+2, pad(label, w-4), fg, bg)
	}
}

// HelpOverlay shows the scrollable keybinding reference.
type HelpOverlay struct {
	Lines  []string
	Offset int
}

func (o *HelpOverlay) draw(f *frame, s *Snapshot) {
	p := &s.Palette
	w := 56
	h := s.Height - 4
	top, left := center(s, h, w)
	panel(f, p, top, left, h, w, "help")

	visible := h - 3
	for i := 0; i < visible; i++ {
		idx := o.Offset + i
		if idx >= len(o.Lines) {
			break
		}
		f.text(top+2+i, left+2, truncate(o.Lines[idx], w-4), p.UIForeground, p.Panel)
	}
}

// ColorRow is one palette role plus the hex text shown for it. While a row
// is being edited the hex is the in-progress input, not the stored color.
type ColorRow struct {
	Name    string
	Hex     string
	Editing bool
}

// ColorEditorOverlay lists every palette role with a live swatch.
type ColorEditorOverlay struct {
	Rows     []ColorRow
	Selected int
	Offset   int
}

func (o *ColorEditorOverlay) draw(f *frame, s *Snapshot) {
	p := &s.Palette
	w := 44
	h := s.Height - 4
	top, left := center(s, h, w)
	panel(f, p, top, left, h, w, "colors")
	f.text(top+h-2, left+2, "enter: edit   ctrl+s: save", p.Accent, p.Panel)

	visible := h - 5
	for i := 0; i < visible; i++ {
		idx := o.Offset + i
		if idx >= len(o.Rows) {
			break
		}
		row := o.Rows[idx]
		fg, bg := p.UIForeground, p.Panel
		if idx == o.Selected {
			fg, bg = p.SelectionFg, p.SelectionBg
		}
		hex := row.Hex
		if row.Editing {
			hex += "_"
		}
		label := pad(row.Name, w-15) + pad(hex, 9)
		col := f.text(top+2+i, left+2, label, fg, bg)
		if c, err := config.ParseHex(row.Hex); err == nil {
			f.text(top+2+i, col, "  ", fg, c)
		}
	}
}

// RebindRow is one action with its current chord.
type RebindRow struct {
	Action string
	Chord  string
}

// RebindOverlay lists bindable actions; Capturing means the next keypress
// becomes the selected action's chord.
type RebindOverlay struct {
	Rows      []RebindRow
	Selected  int
	Capturing bool
}

func (o *RebindOverlay) draw(f *frame, s *Snapshot) {
	p := &s.Palette
	w := 44
	h := len(o.Rows) + 5
	top, left := center(s, h, w)
	panel(f, p, top, left, h, w, "keybinds")
	hint := "enter: rebind   esc: back"
	if o.Capturing {
		hint = "press the new key..."
	}
	f.text(top+h-2, left+2, hint, p.Accent, p.Panel)

	for i, row := range o.Rows {
		fg, bg := p.UIForeground, p.Panel
		if i == o.Selected {
			fg, bg = p.SelectionFg, p.SelectionBg
		}
		label := pad(row.Action, w-4-len(row.Chord)) + row.Chord
		f.text(top+2+i, left+2, pad(label, w-4), fg, bg)
	}
}

// ConfirmOverlay is a small dialog with cycling options. It serves both the
// wipe-buffer and close-dirty-tab confirmations.
type ConfirmOverlay struct {
	Title    string
	Message  string
	Options  []string
	Selected int
}

func (o *ConfirmOverlay) draw(f *frame, s *Snapshot) {
	p := &s.Palette
	w := len(o.Message) + 6
	if w < 36 {
		w = 36
	}
	h := 7
	top, left := center(s, h, w)
	panel(f, p, top, left, h, w, o.Title)
	f.text(top+2, left+3, o.Message, p.Warning, p.Panel)

	col := left + 3
	for i, opt := range o.Options {
		fg, bg := p.UIForeground, p.Panel
		if i == o.Selected {
			fg, bg = p.SelectionFg, p.SelectionBg
		}
		col = f.text(top+4, col, " "+opt+" ", fg, bg) + 2
	}
}

// panel fills a rectangle with the panel color and writes a title row.
func panel(f *frame, p *config.Palette, top, left, h, w int, title string) {
	f.fillRect(top, left, h, w, ' ', p.UIForeground, p.Panel)
	f.text(top, left+2, " "+title+" ", p.Accent, p.Panel)
	for col := left; col < left+w; col++ {
		f.set(top+1, col, '─', p.Accent, p.Panel)
	}
}

func center(s *Snapshot, h, w int) (top, left int) {
	top = (s.Height - h) / 2
	if top < 0 {
		top = 0
	}
	left = (s.Width - w) / 2
	if left < 0 {
		left = 0
	}
	return top, left
}

func pad(s string, w int) string {
	for len([]rune(s)) < w {
		s += " "
	}
	return s
}

func truncate(s string, w int) string {
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w <= 1 {
		return string(r[:w])
	}
	return string(r[:w-1]) + "…"
}
