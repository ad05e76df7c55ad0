// Package app ties the editor together: it owns the mode machine, the open
// buffers, the live configuration, and the single-goroutine event loop that
// reads one key, mutates state, and flushes one frame.
package app

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"tern/internal/config"
	"tern/internal/editor"
	"tern/internal/explorer"
	"tern/internal/render"
	"tern/internal/syntax"
	"tern/internal/terminal"
)

// Mode is the exclusive interaction context. Exactly one mode is active at
// any time and every key event is routed through it.
type Mode int

const (
	ModeEditing Mode = iota
	ModeMenu
	ModeExplorer
	ModeSettings
	ModeHelp
	ModeColorEditor
	ModeKeyRebind
	ModeConfirmWipe
	ModeConfirmClose
)

func (m Mode) String() string {
	switch m {
	case ModeEditing:
		return "EDIT"
	case ModeMenu:
		return "MENU"
	case ModeExplorer:
		return "EXPLORER"
	case ModeSettings:
		return "SETTINGS"
	case ModeHelp:
		return "HELP"
	case ModeColorEditor:
		return "COLORS"
	case ModeKeyRebind:
		return "KEYBINDS"
	case ModeConfirmWipe:
		return "WIPE?"
	case ModeConfirmClose:
		return "CLOSE?"
	}
	return "?"
}

// App is the root aggregate. All mutation happens synchronously on the
// event loop goroutine; nothing here is shared.
type App struct {
	cfg *config.Config
	log *logrus.Logger

	buffers *editor.BufferSet
	mode    Mode

	width  int
	height int

	// Selection anchor; the head is always the cursor. Nil means none.
	selAnchor *editor.Position

	clip *clipboard

	prompt     promptKind
	promptText string

	flash string

	menu       menuState
	helpOffset int

	expl    explorerState
	colors  colorState
	rebind  rebindState
	setting settingsState
	confirm confirmState

	ignore *explorer.IgnoreSet

	quit bool
}

// New builds an App from loaded configuration. An empty file argument opens
// a single scratch buffer.
func New(cfg *config.Config, log *logrus.Logger, file string) (*App, error) {
	a := &App{
		cfg:     cfg,
		log:     log,
		buffers: editor.NewBufferSet(),
		mode:    ModeEditing,
		clip:    newClipboard(log),
	}
	var warnings []string
	a.ignore, warnings = explorer.CompileIgnores(cfg.ExplorerIgnore)
	for _, w := range warnings {
		log.Warn(w)
	}
	// An unreadable file is an adapter failure, not a startup failure: keep
	// the scratch buffer and surface a status flash.
	if file != "" {
		if _, err := a.buffers.Open(file); err != nil {
			log.WithError(err).Warn("open failed")
			a.flash = "CANNOT OPEN " + file
		}
	}
	return a, nil
}

// Run enters raw mode and processes events until quit. The terminal is
// always restored, even on error.
func (a *App) Run() error {
	term, err := terminal.New()
	if err != nil {
		return fmt.Errorf("terminal setup: %w", err)
	}
	defer term.Restore()
	a.width, a.height = term.Size()

	keys := make(chan terminal.Key)
	readErr := make(chan error, 1)
	go func() {
		for {
			k, err := term.ReadKey()
			if err != nil {
				readErr <- err
				return
			}
			keys <- k
		}
	}()

	for !a.quit {
		a.redraw(os.Stdout)
		select {
		case k := <-keys:
			a.handleKey(k)
		case <-term.SigwinchChan():
			if term.Resize() {
				a.width, a.height = term.Size()
			}
		case err := <-readErr:
			return err
		}
	}
	return nil
}

// handleKey routes one key event through the current mode. Unresolvable
// keys fall through every handler as no-ops.
func (a *App) handleKey(k terminal.Key) {
	a.flash = ""
	if a.prompt != promptNone {
		a.handlePrompt(k)
		return
	}
	switch a.mode {
	case ModeEditing:
		a.handleEditing(k)
	case ModeMenu:
		a.handleMenu(k)
	case ModeExplorer:
		a.handleExplorer(k)
	case ModeSettings:
		a.handleSettings(k)
	case ModeHelp:
		a.handleHelp(k)
	case ModeColorEditor:
		a.handleColorEditor(k)
	case ModeKeyRebind:
		a.handleRebind(k)
	case ModeConfirmWipe:
		a.handleConfirmWipe(k)
	case ModeConfirmClose:
		a.handleConfirmClose(k)
	}
}

// setMode performs a transition. Leaving editing mode with auto-save on
// flushes a named dirty buffer to disk.
func (a *App) setMode(m Mode) {
	if a.mode == ModeEditing && m != ModeEditing {
		a.autoSave()
	}
	a.mode = m
}

func (a *App) autoSave() {
	b := a.buffers.Active()
	if !a.cfg.AutoSave || !b.Dirty || b.Filename == "" {
		return
	}
	if err := b.Save(""); err != nil {
		a.log.WithError(err).Warn("auto-save failed")
		a.flash = "AUTO-SAVE FAILED"
	}
}

// saveConfig persists the live configuration, degrading to a flash on
// failure. Called on every committed settings, palette, or keybind change.
func (a *App) saveConfig() {
	if err := a.cfg.Save(); err != nil {
		a.log.WithError(err).Warn("config save failed")
		a.flash = "CONFIG SAVE FAILED"
	}
}

// redraw scrolls the active buffer to its cursor, builds one frame, and
// flushes it in a single write.
func (a *App) redraw(out *os.File) {
	snap := a.snapshot()
	frame := render.BuildFrame(&snap)
	if err := render.Flush(out, frame); err != nil {
		a.log.WithError(err).Warn("frame flush failed")
	}
}

// snapshot assembles the read-only state the renderer needs. The active
// buffer is scrolled here so the viewport matches the geometry the frame
// will actually use.
func (a *App) snapshot() render.Snapshot {
	b := a.buffers.Active()
	s := render.Snapshot{
		Width:           a.width,
		Height:          a.height,
		Palette:         a.cfg.Palette,
		ShowHeader:      a.cfg.ShowHeader,
		ShowTabBar:      a.cfg.ShowTabBar,
		ShowStatusBar:   a.cfg.ShowStatusBar,
		ShowLineNumbers: a.cfg.ShowLineNumbers,
		SyntaxHighlight: a.cfg.SyntaxHighlight,
		ActiveTab:       a.buffers.ActiveIndex(),
		Lines:           b.Lines,
		Language:        syntax.Detect(b.Filename),
		CursorX:         b.CursorX,
		CursorY:         b.CursorY,
		Selection:       a.selectionSpan(),
	}
	for i := 0; i < a.buffers.Len(); i++ {
		t := a.buffers.At(i)
		s.Tabs = append(s.Tabs, render.Tab{Name: displayName(t), Dirty: t.Dirty})
	}

	g := s.Geometry()
	b.ScrollToCursor(g.TextWidth, g.TextHeight)
	s.OffsetX = b.OffsetX
	s.OffsetY = b.OffsetY

	s.StatusLeft = a.statusLeft()
	s.StatusRight = fmt.Sprintf("Ln %d, Col %d", b.CursorY+1, b.CursorX+1)
	s.Prompt = a.promptLine()
	s.Overlay = a.overlay()
	return s
}

func (a *App) statusLeft() string {
	left := a.mode.String()
	if a.buffers.Active().Dirty {
		left += " *"
	}
	if a.flash != "" {
		left += "  " + a.flash
	}
	return left
}

func displayName(b *editor.Buffer) string {
	if b.Filename == "" {
		return "scratch"
	}
	return b.Filename
}
