package app

import (
	"path/filepath"

	"tern/internal/explorer"
	"tern/internal/render"
	"tern/internal/terminal"
)

// Explorer mode browses the file system. Enter descends into directories or
// opens a file as a new buffer; Backspace ascends.

type explorerState struct {
	path     string
	entries  []explorer.Entry
	selected int
	offset   int
}

func (a *App) openExplorer() {
	path := "."
	if f := a.buffers.Active().Filename; f != "" {
		path = filepath.Dir(f)
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	a.expl = explorerState{path: path}
	a.loadExplorer()
	a.setMode(ModeExplorer)
}

func (a *App) loadExplorer() {
	entries, err := explorer.List(a.expl.path, a.ignore)
	if err != nil {
		a.log.WithError(err).Warn("explorer list failed")
		a.flash = "CANNOT READ DIRECTORY"
		entries = nil
	}
	a.expl.entries = entries
	a.expl.selected = 0
	a.expl.offset = 0
}

func (a *App) handleExplorer(k terminal.Key) {
	if isEscape(k) {
		a.setMode(ModeMenu)
		return
	}
	e := &a.expl
	switch k.Type {
	case terminal.KeyUp:
		if e.selected > 0 {
			e.selected--
		}
	case terminal.KeyDown:
		if e.selected < len(e.entries)-1 {
			e.selected++
		}
	case terminal.KeyBackspace:
		parent := filepath.Dir(e.path)
		if parent != e.path {
			e.path = parent
			a.loadExplorer()
		}
	case terminal.KeyEnter:
		a.openExplorerEntry()
	}
	a.scrollExplorer()
}

func (a *App) openExplorerEntry() {
	e := &a.expl
	if e.selected < 0 || e.selected >= len(e.entries) {
		return
	}
	entry := e.entries[e.selected]
	full := filepath.Join(e.path, entry.Name)
	if entry.Dir {
		e.path = full
		a.loadExplorer()
		return
	}
	if _, err := a.buffers.Open(full); err != nil {
		a.log.WithError(err).Warn("open failed")
		a.flash = "CANNOT OPEN " + entry.Name
		return
	}
	a.setMode(ModeEditing)
}

// scrollExplorer keeps the selected row inside the panel, mirroring the
// buffer's scroll-to-cursor rule on a single axis.
func (a *App) scrollExplorer() {
	e := &a.expl
	visible := a.height - 4
	if visible < 1 {
		visible = 1
	}
	if e.selected < e.offset {
		e.offset = e.selected
	} else if e.selected >= e.offset+visible {
		e.offset = e.selected - visible + 1
	}
	if e.offset < 0 {
		e.offset = 0
	}
}

func (a *App) explorerOverlay() render.Overlay {
	rows := make([]render.ExplorerRow, len(a.expl.entries))
	for i, e := range a.expl.entries {
		rows[i] = render.ExplorerRow{Name: e.Name, Dir: e.Dir}
	}
	return &render.ExplorerOverlay{
		Path:     a.expl.path,
		Rows:     rows,
		Selected: a.expl.selected,
		Offset:   a.expl.offset,
	}
}
