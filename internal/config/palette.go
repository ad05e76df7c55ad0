package config

import "fmt"

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex formats the color as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex parses a "#RRGGBB" string.
func ParseHex(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	var c RGB
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	return c, nil
}

// Palette maps every named UI and syntax role to a color. It is shared by
// the state machine and the renderer and mutated only through the color
// editor, which persists each committed change immediately.
type Palette struct {
	UIBackground RGB
	UIForeground RGB
	HeaderBg     RGB
	HeaderFg     RGB
	StatusBg     RGB
	StatusFg     RGB
	EditorBg     RGB
	EditorFg     RGB
	LineNumberFg RGB
	SelectionBg  RGB
	SelectionFg  RGB
	Panel        RGB
	Accent       RGB
	Warning      RGB

	SyntaxKeyword RGB
	SyntaxString  RGB
	SyntaxComment RGB
	SyntaxBuiltin RGB
}

// DefaultPalette returns the built-in green-on-dark theme.
func DefaultPalette() Palette {
	return Palette{
		UIBackground: RGB{0x0A, 0x0F, 0x0B},
		UIForeground: RGB{0xF2, 0xFF, 0xE9},
		HeaderBg:     RGB{0x0E, 0x3B, 0x2A},
		HeaderFg:     RGB{0x9D, 0xFF, 0xB8},
		StatusBg:     RGB{0x0E, 0x3B, 0x2A},
		StatusFg:     RGB{0xF2, 0xFF, 0xE9},
		EditorBg:     RGB{0x0A, 0x0F, 0x0B},
		EditorFg:     RGB{0xF2, 0xFF, 0xE9},
		LineNumberFg: RGB{0x1F, 0x7A, 0x4A},
		SelectionBg:  RGB{0x9D, 0xFF, 0xB8},
		SelectionFg:  RGB{0x0A, 0x0F, 0x0B},
		Panel:        RGB{0x0E, 0x3B, 0x2A},
		Accent:       RGB{0x18, 0xFF, 0x6D},
		Warning:      RGB{0xFF, 0x8C, 0x1A},

		SyntaxKeyword: RGB{0x18, 0xFF, 0x6D},
		SyntaxString:  RGB{0xFF, 0xC9, 0x66},
		SyntaxComment: RGB{0x5C, 0x8A, 0x6B},
		SyntaxBuiltin: RGB{0x66, 0xD9, 0xFF},
	}
}

// Role is one editable palette entry: a stable name plus a pointer into the
// palette so the color editor can read and write it generically.
type Role struct {
	Name  string
	Value *RGB
}

// Roles returns the palette entries in display order. The names double as
// the TOML keys.
func (p *Palette) Roles() []Role {
	return []Role{
		{"ui_background", &p.UIBackground},
		{"ui_foreground", &p.UIForeground},
		{"header_bg", &p.HeaderBg},
		{"header_fg", &p.HeaderFg},
		{"status_bar_bg", &p.StatusBg},
		{"status_bar_fg", &p.StatusFg},
		{"editor_background", &p.EditorBg},
		{"editor_foreground", &p.EditorFg},
		{"line_number_fg", &p.LineNumberFg},
		{"selection_bg", &p.SelectionBg},
		{"selection_fg", &p.SelectionFg},
		{"panel", &p.Panel},
		{"accent", &p.Accent},
		{"warning", &p.Warning},
		{"syntax_keyword", &p.SyntaxKeyword},
		{"syntax_string", &p.SyntaxString},
		{"syntax_comment", &p.SyntaxComment},
		{"syntax_builtin", &p.SyntaxBuiltin},
	}
}

// ToHexMap serializes the palette for persistence.
func (p *Palette) ToHexMap() map[string]string {
	out := make(map[string]string)
	for _, r := range p.Roles() {
		out[r.Name] = r.Value.Hex()
	}
	return out
}

// paletteFromHexMap builds a palette from role-name → hex pairs, starting
// from the defaults. Unknown names and bad hex strings are reported as
// warnings rather than errors so one bad entry never loses the theme.
func paletteFromHexMap(m map[string]string) (Palette, []string) {
	p := DefaultPalette()
	var warnings []string
	known := make(map[string]*RGB)
	for _, r := range p.Roles() {
		known[r.Name] = r.Value
	}
	for name, hex := range m {
		dst, ok := known[name]
		if !ok {
			warnings = append(warnings, suggestRole(name, p.Roles()))
			continue
		}
		c, err := ParseHex(hex)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("palette %s: %v", name, err))
			continue
		}
		*dst = c
	}
	return p, warnings
}
