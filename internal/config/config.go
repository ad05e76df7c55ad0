// Package config owns the persisted editor configuration: UI toggles, the
// color palette, and the keybind map. The file format is TOML; a missing or
// malformed file falls back to built-in defaults and is never fatal.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sajari/fuzzy"
)

// File is the on-disk shape of the configuration.
type File struct {
	ShowLineNumbers bool     `toml:"show_line_numbers"`
	ShowStatusBar   bool     `toml:"show_status_bar"`
	ShowHeader      bool     `toml:"show_header"`
	ShowTabBar      bool     `toml:"show_tab_bar"`
	SyntaxHighlight bool     `toml:"syntax_highlight"`
	AutoSave        bool     `toml:"auto_save"`
	TabSize         int      `toml:"tab_size"`
	ExplorerIgnore  []string `toml:"explorer_ignore"`

	Palette  map[string]string `toml:"palette"`
	Keybinds map[string]string `toml:"keybinds"`
}

// Config is the live configuration: the decoded file plus the parsed
// palette and keybind map.
type Config struct {
	ShowLineNumbers bool
	ShowStatusBar   bool
	ShowHeader      bool
	ShowTabBar      bool
	SyntaxHighlight bool
	AutoSave        bool
	TabSize         int
	ExplorerIgnore  []string

	Palette  Palette
	Keybinds *KeybindMap

	path string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ShowLineNumbers: true,
		ShowStatusBar:   true,
		ShowHeader:      true,
		ShowTabBar:      true,
		SyntaxHighlight: true,
		AutoSave:        false,
		TabSize:         4,
		ExplorerIgnore:  []string{".git", "*.o", "*.tmp"},
		Palette:         DefaultPalette(),
		Keybinds:        DefaultKeybinds(),
	}
}

// DefaultPath returns the config file location under the user config dir.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(dir, "tern", "config.toml")
}

// Load reads the config file at path. A missing file yields the defaults
// with no warnings; a malformed file yields the defaults plus a warning.
// Bad palette or keybind entries degrade individually.
func Load(path string) (*Config, []string) {
	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, []string{fmt.Sprintf("config: %v", err)}
	}

	// Seed the decode target with the defaults: the decoder only touches
	// keys present in the document, so a partial file keeps every other
	// setting instead of zeroing it.
	f := File{
		ShowLineNumbers: cfg.ShowLineNumbers,
		ShowStatusBar:   cfg.ShowStatusBar,
		ShowHeader:      cfg.ShowHeader,
		ShowTabBar:      cfg.ShowTabBar,
		SyntaxHighlight: cfg.SyntaxHighlight,
		AutoSave:        cfg.AutoSave,
		TabSize:         cfg.TabSize,
		ExplorerIgnore:  cfg.ExplorerIgnore,
	}
	if err := toml.Unmarshal(data, &f); err != nil {
		return cfg, []string{fmt.Sprintf("config: malformed %s: %v", filepath.Base(path), err)}
	}

	cfg.ShowLineNumbers = f.ShowLineNumbers
	cfg.ShowStatusBar = f.ShowStatusBar
	cfg.ShowHeader = f.ShowHeader
	cfg.ShowTabBar = f.ShowTabBar
	cfg.SyntaxHighlight = f.SyntaxHighlight
	cfg.AutoSave = f.AutoSave
	if f.TabSize > 0 {
		cfg.TabSize = f.TabSize
	}
	if f.ExplorerIgnore != nil {
		cfg.ExplorerIgnore = f.ExplorerIgnore
	}

	var warnings []string
	var w []string
	cfg.Palette, w = paletteFromHexMap(f.Palette)
	warnings = append(warnings, w...)
	cfg.Keybinds, w = keybindsFromStringMap(f.Keybinds)
	warnings = append(warnings, w...)
	return cfg, warnings
}

// Save writes the configuration back to its file, creating the parent
// directory if needed. Called synchronously on every committed palette or
// keybind change so persisted state always matches displayed state.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return err
	}
	f := File{
		ShowLineNumbers: c.ShowLineNumbers,
		ShowStatusBar:   c.ShowStatusBar,
		ShowHeader:      c.ShowHeader,
		ShowTabBar:      c.ShowTabBar,
		SyntaxHighlight: c.SyntaxHighlight,
		AutoSave:        c.AutoSave,
		TabSize:         c.TabSize,
		ExplorerIgnore:  c.ExplorerIgnore,
		Palette:         c.Palette.ToHexMap(),
		Keybinds:        c.Keybinds.ToStringMap(),
	}
	out, err := os.Create(c.path)
	if err != nil {
		return err
	}
	defer out.Close()
	return toml.NewEncoder(out).Encode(f)
}

// suggestAction builds a warning for an unknown action name, with a fuzzy
// nearest-match suggestion when one is close enough.
func suggestAction(name string) string {
	var names []string
	for _, a := range Actions() {
		names = append(names, a.String())
	}
	if hint := nearest(name, names); hint != "" {
		return fmt.Sprintf("keybinds: unknown action %q (did you mean %q?)", name, hint)
	}
	return fmt.Sprintf("keybinds: unknown action %q", name)
}

// suggestRole builds a warning for an unknown palette role name.
func suggestRole(name string, roles []Role) string {
	var names []string
	for _, r := range roles {
		names = append(names, r.Name)
	}
	if hint := nearest(name, names); hint != "" {
		return fmt.Sprintf("palette: unknown role %q (did you mean %q?)", name, hint)
	}
	return fmt.Sprintf("palette: unknown role %q", name)
}

// nearest returns the candidate closest to name under the spellcheck
// model, or "" when nothing is close.
func nearest(name string, candidates []string) string {
	model := fuzzy.NewModel()
	model.SetDepth(2)
	lower := make([]string, len(candidates))
	for i, c := range candidates {
		lower[i] = strings.ToLower(c)
	}
	model.Train(lower)
	got := model.SpellCheck(strings.ToLower(name))
	if got == "" {
		return ""
	}
	for _, c := range candidates {
		if strings.ToLower(c) == got {
			return c
		}
	}
	return ""
}
