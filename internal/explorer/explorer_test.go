package explorer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"main.go", "README.md", "a.o", "notes.tmp", ".hidden"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	for _, name := range []string{"src", "Docs", ".git"} {
		require.NoError(t, os.Mkdir(filepath.Join(dir, name), 0755))
	}
	return dir
}

func TestListFiltersAndSorts(t *testing.T) {
	dir := populate(t)
	ignore, warnings := CompileIgnores([]string{".git", "*.o", "*.tmp"})
	assert.Empty(t, warnings)

	entries, err := List(dir, ignore)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	// Directories first, each group case-insensitive; dotfiles and ignore
	// matches are gone.
	assert.Equal(t, []string{"Docs", "src", "main.go", "README.md"}, names)
	assert.True(t, entries[0].Dir)
	assert.True(t, entries[1].Dir)
	assert.False(t, entries[2].Dir)
}

func TestDotfilesAlwaysHidden(t *testing.T) {
	ignore, _ := CompileIgnores(nil)
	assert.True(t, ignore.Match(".bashrc"))
	assert.False(t, ignore.Match("bashrc"))
}

func TestBadPatternWarnsAndSkips(t *testing.T) {
	ignore, warnings := CompileIgnores([]string{"[", "*.log"})
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "[")
	assert.True(t, ignore.Match("x.log"), "good pattern still compiled")
	assert.False(t, ignore.Match("x.txt"))
}

func TestListMissingDirectory(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "absent"), nil)
	assert.Error(t, err)
}
