package config

import (
	"fmt"
	"strings"
)

// Action is a logical editor command that a key chord can trigger while in
// editing mode.
type Action int

const (
	ActionNone Action = iota
	ActionMenu
	ActionSave
	ActionUndo
	ActionRedo
	ActionNewTab
	ActionCloseTab
	ActionNextTab
	ActionPrevTab
	ActionSelectAll
	ActionCopy
	ActionCut
	ActionPaste
	ActionGoToLine
	ActionWipeBuffer
)

var actionNames = map[Action]string{
	ActionMenu:       "Menu",
	ActionSave:       "Save",
	ActionUndo:       "Undo",
	ActionRedo:       "Redo",
	ActionNewTab:     "NewTab",
	ActionCloseTab:   "CloseTab",
	ActionNextTab:    "NextTab",
	ActionPrevTab:    "PrevTab",
	ActionSelectAll:  "SelectAll",
	ActionCopy:       "Copy",
	ActionCut:        "Cut",
	ActionPaste:      "Paste",
	ActionGoToLine:   "GoToLine",
	ActionWipeBuffer: "WipeBuffer",
}

// Actions lists every bindable action in rebind-screen order.
func Actions() []Action {
	return []Action{
		ActionMenu, ActionSave, ActionUndo, ActionRedo, ActionNewTab,
		ActionCloseTab, ActionNextTab, ActionPrevTab, ActionSelectAll,
		ActionCopy, ActionCut, ActionPaste, ActionGoToLine, ActionWipeBuffer,
	}
}

// String returns the stable name used in the config file.
func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "None"
}

// ParseAction resolves a config-file action name.
func ParseAction(s string) (Action, bool) {
	for a, name := range actionNames {
		if name == s {
			return a, true
		}
	}
	return ActionNone, false
}

// KeyChord is one physical key press with modifiers, in a form that can
// round-trip through the config file ("Ctrl+S", "Alt+Enter", "F2").
type KeyChord struct {
	Key   string // lower-case letter/digit, or a named key: enter, esc, tab, up, down, left, right, home, end, delete, backspace, pgup, pgdn
	Ctrl  bool
	Alt   bool
	Shift bool
}

// String formats the chord in config-file form.
func (c KeyChord) String() string {
	var parts []string
	if c.Ctrl {
		parts = append(parts, "Ctrl")
	}
	if c.Alt {
		parts = append(parts, "Alt")
	}
	if c.Shift {
		parts = append(parts, "Shift")
	}
	key := c.Key
	if key != "" {
		key = strings.ToUpper(key[:1]) + key[1:]
	}
	parts = append(parts, key)
	return strings.Join(parts, "+")
}

// ParseChord parses the config-file form of a chord.
func ParseChord(s string) (KeyChord, error) {
	var c KeyChord
	parts := strings.Split(s, "+")
	if len(parts) == 0 || parts[len(parts)-1] == "" {
		return c, fmt.Errorf("invalid key chord %q", s)
	}
	for _, mod := range parts[:len(parts)-1] {
		switch strings.ToLower(mod) {
		case "ctrl":
			c.Ctrl = true
		case "alt":
			c.Alt = true
		case "shift":
			c.Shift = true
		default:
			return c, fmt.Errorf("invalid modifier %q in chord %q", mod, s)
		}
	}
	c.Key = strings.ToLower(parts[len(parts)-1])
	return c, nil
}

// KeybindMap resolves chords to actions for the input dispatcher. It is
// consulted read-only during dispatch and rewritten only by the rebind
// screen.
type KeybindMap struct {
	binds map[KeyChord]Action
}

// DefaultKeybinds returns the built-in bindings.
func DefaultKeybinds() *KeybindMap {
	m := &KeybindMap{binds: make(map[KeyChord]Action)}
	m.Bind(KeyChord{Key: "esc"}, ActionMenu)
	m.Bind(KeyChord{Key: "s", Ctrl: true}, ActionSave)
	m.Bind(KeyChord{Key: "z", Ctrl: true}, ActionUndo)
	m.Bind(KeyChord{Key: "y", Ctrl: true}, ActionRedo)
	m.Bind(KeyChord{Key: "n", Ctrl: true}, ActionNewTab)
	m.Bind(KeyChord{Key: "w", Ctrl: true}, ActionCloseTab)
	m.Bind(KeyChord{Key: "t", Ctrl: true}, ActionNextTab)
	m.Bind(KeyChord{Key: "b", Ctrl: true}, ActionPrevTab)
	m.Bind(KeyChord{Key: "a", Ctrl: true}, ActionSelectAll)
	m.Bind(KeyChord{Key: "c", Ctrl: true}, ActionCopy)
	m.Bind(KeyChord{Key: "x", Ctrl: true}, ActionCut)
	m.Bind(KeyChord{Key: "v", Ctrl: true}, ActionPaste)
	m.Bind(KeyChord{Key: "g", Ctrl: true}, ActionGoToLine)
	m.Bind(KeyChord{Key: "k", Ctrl: true}, ActionWipeBuffer)
	return m
}

// Lookup resolves a chord. The second result is false for unbound chords.
func (m *KeybindMap) Lookup(c KeyChord) (Action, bool) {
	a, ok := m.binds[c]
	return a, ok
}

// Bind assigns a chord to an action, replacing any previous chord bound to
// that action so each action has exactly one trigger.
func (m *KeybindMap) Bind(c KeyChord, a Action) {
	for existing, action := range m.binds {
		if action == a {
			delete(m.binds, existing)
		}
	}
	m.binds[c] = a
}

// ChordFor returns the chord currently bound to an action, if any.
func (m *KeybindMap) ChordFor(a Action) (KeyChord, bool) {
	for c, action := range m.binds {
		if action == a {
			return c, true
		}
	}
	return KeyChord{}, false
}

// ToStringMap serializes the bindings for persistence.
func (m *KeybindMap) ToStringMap() map[string]string {
	out := make(map[string]string, len(m.binds))
	for c, a := range m.binds {
		out[c.String()] = a.String()
	}
	return out
}

// keybindsFromStringMap builds a map from persisted chord → action-name
// pairs, starting from the defaults. Malformed entries produce warnings,
// and unknown action names get a fuzzy "did you mean" suggestion.
func keybindsFromStringMap(entries map[string]string) (*KeybindMap, []string) {
	m := DefaultKeybinds()
	var warnings []string
	for chordStr, actionStr := range entries {
		chord, err := ParseChord(chordStr)
		if err != nil {
			warnings = append(warnings, err.Error())
			continue
		}
		action, ok := ParseAction(actionStr)
		if !ok {
			warnings = append(warnings, suggestAction(actionStr))
			continue
		}
		m.Bind(chord, action)
	}
	return m, warnings
}
