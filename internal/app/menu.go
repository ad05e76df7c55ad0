package app

import (
	"tern/internal/editor"
	"tern/internal/render"
	"tern/internal/terminal"
)

// The menu is the top-level hub: four tabs navigated with Left/Right,
// items with Up/Down, Enter applies. Escape here is a deliberate no-op;
// leaving the menu always happens through an item.

type menuState struct {
	tab  int
	item int
}

var menuTabs = []string{"tern", "file", "edit", "view"}

func (a *App) openMenu() {
	a.menu = menuState{}
	a.setMode(ModeMenu)
}

func (a *App) menuItems() []string {
	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}
	switch a.menu.tab {
	case 0:
		return []string{"back to editor", "settings", "help", "save config + quit", "quit"}
	case 1:
		return []string{"new tab", "open file...", "close tab", "next tab", "previous tab", "save as..."}
	case 2:
		return []string{"go to line...", "wipe buffer"}
	default:
		return []string{
			"header: " + onOff(a.cfg.ShowHeader),
			"tab bar: " + onOff(a.cfg.ShowTabBar),
			"status bar: " + onOff(a.cfg.ShowStatusBar),
			"line numbers: " + onOff(a.cfg.ShowLineNumbers),
			"syntax highlight: " + onOff(a.cfg.SyntaxHighlight),
		}
	}
}

func (a *App) handleMenu(k terminal.Key) {
	if isEscape(k) {
		return // the menu is the hub; Escape has nowhere further up to go
	}
	items := a.menuItems()
	switch k.Type {
	case terminal.KeyLeft:
		a.menu.tab = (a.menu.tab + len(menuTabs) - 1) % len(menuTabs)
		a.menu.item = 0
	case terminal.KeyRight:
		a.menu.tab = (a.menu.tab + 1) % len(menuTabs)
		a.menu.item = 0
	case terminal.KeyUp:
		if a.menu.item > 0 {
			a.menu.item--
		}
	case terminal.KeyDown:
		if a.menu.item < len(items)-1 {
			a.menu.item++
		}
	case terminal.KeyEnter:
		a.applyMenuItem()
	}
}

func (a *App) applyMenuItem() {
	switch a.menu.tab {
	case 0:
		switch a.menu.item {
		case 0:
			a.setMode(ModeEditing)
		case 1:
			a.openSettings()
		case 2:
			a.openHelp()
		case 3:
			a.saveConfig()
			a.quit = true
		case 4:
			a.quit = true
		}
	case 1:
		switch a.menu.item {
		case 0:
			a.buffers.Add(editor.NewBuffer(""))
			a.setMode(ModeEditing)
		case 1:
			a.openExplorer()
		case 2:
			a.setMode(ModeEditing)
			a.requestClose()
		case 3:
			a.buffers.Next()
			a.setMode(ModeEditing)
		case 4:
			a.buffers.Prev()
			a.setMode(ModeEditing)
		case 5:
			a.setMode(ModeEditing)
			a.prompt = promptSaveAs
			a.promptText = a.buffers.Active().Filename
		}
	case 2:
		switch a.menu.item {
		case 0:
			a.setMode(ModeEditing)
			a.prompt = promptGoToLine
			a.promptText = ""
		case 1:
			a.setMode(ModeConfirmWipe)
		}
	case 3:
		switch a.menu.item {
		case 0:
			a.cfg.ShowHeader = !a.cfg.ShowHeader
		case 1:
			a.cfg.ShowTabBar = !a.cfg.ShowTabBar
		case 2:
			a.cfg.ShowStatusBar = !a.cfg.ShowStatusBar
		case 3:
			a.cfg.ShowLineNumbers = !a.cfg.ShowLineNumbers
		case 4:
			a.cfg.SyntaxHighlight = !a.cfg.SyntaxHighlight
		}
		a.saveConfig()
	}
}

func (a *App) menuOverlay() render.Overlay {
	return &render.MenuOverlay{
		Tabs:      menuTabs,
		ActiveTab: a.menu.tab,
		Items:     a.menuItems(),
		Selected:  a.menu.item,
	}
}
