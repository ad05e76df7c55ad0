package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexRoundTrip(t *testing.T) {
	c, err := ParseHex("#18FF6D")
	require.NoError(t, err)
	assert.Equal(t, RGB{0x18, 0xFF, 0x6D}, c)
	assert.Equal(t, "#18FF6D", c.Hex())
}

func TestParseHexRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "#FFF", "18FF6D", "#GGGGGG", "#18FF6D00"} {
		_, err := ParseHex(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestChordRoundTrip(t *testing.T) {
	chords := []KeyChord{
		{Key: "s", Ctrl: true},
		{Key: "esc"},
		{Key: "enter", Alt: true},
		{Key: "up", Ctrl: true, Shift: true},
		{Key: "x"},
	}
	for _, c := range chords {
		parsed, err := ParseChord(c.String())
		require.NoError(t, err, c.String())
		assert.Equal(t, c, parsed)
	}
}

func TestParseChordRejectsBadModifier(t *testing.T) {
	_, err := ParseChord("Hyper+X")
	assert.Error(t, err)
	_, err = ParseChord("Ctrl+")
	assert.Error(t, err)
}

func TestBindReplacesPreviousChord(t *testing.T) {
	m := DefaultKeybinds()
	m.Bind(KeyChord{Key: "p", Ctrl: true}, ActionSave)

	got, ok := m.Lookup(KeyChord{Key: "p", Ctrl: true})
	require.True(t, ok)
	assert.Equal(t, ActionSave, got)

	// The old Ctrl+S binding is gone: one chord per action.
	_, ok = m.Lookup(KeyChord{Key: "s", Ctrl: true})
	assert.False(t, ok)
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, warnings := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Empty(t, warnings)
	assert.Equal(t, 4, cfg.TabSize)
	assert.True(t, cfg.ShowLineNumbers)
	assert.Equal(t, DefaultPalette(), cfg.Palette)
}

func TestLoadPartialFileKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(path, []byte("tab_size = 2\n"), 0644)

	cfg, warnings := Load(path)
	assert.Empty(t, warnings)
	assert.Equal(t, 2, cfg.TabSize)
	// Every key the file does not mention keeps its default.
	assert.True(t, cfg.ShowLineNumbers)
	assert.True(t, cfg.ShowStatusBar)
	assert.True(t, cfg.ShowHeader)
	assert.True(t, cfg.ShowTabBar)
	assert.True(t, cfg.SyntaxHighlight)
	assert.False(t, cfg.AutoSave)
	assert.Equal(t, Default().ExplorerIgnore, cfg.ExplorerIgnore)
	assert.Equal(t, DefaultPalette(), cfg.Palette)
}

func TestLoadMalformedFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(path, []byte("this is { not toml"), 0644)

	cfg, warnings := Load(path)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "malformed")
	assert.Equal(t, DefaultPalette(), cfg.Palette)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := Default()
	cfg.path = path
	cfg.TabSize = 2
	cfg.ShowHeader = false
	cfg.Palette.Accent = RGB{1, 2, 3}
	cfg.Keybinds.Bind(KeyChord{Key: "q", Ctrl: true}, ActionSave)
	require.NoError(t, cfg.Save())

	loaded, warnings := Load(path)
	assert.Empty(t, warnings)
	assert.Equal(t, 2, loaded.TabSize)
	assert.False(t, loaded.ShowHeader)
	assert.Equal(t, RGB{1, 2, 3}, loaded.Palette.Accent)

	action, ok := loaded.Keybinds.Lookup(KeyChord{Key: "q", Ctrl: true})
	require.True(t, ok)
	assert.Equal(t, ActionSave, action)
}

func TestBadPaletteEntryDegradesAlone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(path, []byte("[palette]\naccent = \"nothex\"\nwarning = \"#112233\"\n"), 0644)

	cfg, warnings := Load(path)
	require.Len(t, warnings, 1)
	assert.Equal(t, DefaultPalette().Accent, cfg.Palette.Accent, "bad entry keeps its default")
	assert.Equal(t, RGB{0x11, 0x22, 0x33}, cfg.Palette.Warning, "good entry still applies")
}

func TestUnknownActionGetsSuggestion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(path, []byte("[keybinds]\n\"Ctrl+S\" = \"Svae\"\n"), 0644)

	_, warnings := Load(path)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Svae")
	assert.Contains(t, warnings[0], `did you mean "Save"`)
}

func TestUnknownRoleGetsSuggestion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(path, []byte("[palette]\naccet = \"#112233\"\n"), 0644)

	_, warnings := Load(path)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "accet")
	assert.Contains(t, warnings[0], `did you mean "accent"`)
}

func TestRolesCoverEveryField(t *testing.T) {
	p := DefaultPalette()
	roles := p.Roles()
	assert.Len(t, roles, 18)
	seen := map[string]bool{}
	for _, r := range roles {
		assert.False(t, seen[r.Name], "duplicate role %s", r.Name)
		seen[r.Name] = true
		require.NotNil(t, r.Value)
	}
}
