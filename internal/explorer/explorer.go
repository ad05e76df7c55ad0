// Package explorer lists directory contents for the file explorer mode.
package explorer

import (
	"os"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// Entry is one row in the explorer listing.
type Entry struct {
	Name string
	Dir  bool
}

// IgnoreSet filters entries by glob pattern. Dotfiles are always hidden.
type IgnoreSet struct {
	patterns []glob.Glob
}

// CompileIgnores builds an IgnoreSet from config patterns. Patterns that do
// not compile are reported and skipped.
func CompileIgnores(patterns []string) (*IgnoreSet, []string) {
	set := &IgnoreSet{}
	var warnings []string
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			warnings = append(warnings, "explorer: bad ignore pattern "+p)
			continue
		}
		set.patterns = append(set.patterns, g)
	}
	return set, warnings
}

// Match reports whether a name is ignored.
func (s *IgnoreSet) Match(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	if s == nil {
		return false
	}
	for _, g := range s.patterns {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// List returns the visible entries of one directory, directories first,
// each group sorted case-insensitively.
func List(path string, ignore *IgnoreSet) ([]Entry, error) {
	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for _, de := range dirents {
		name := de.Name()
		if ignore.Match(name) {
			continue
		}
		entries = append(entries, Entry{Name: name, Dir: de.IsDir()})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Dir != entries[j].Dir {
			return entries[i].Dir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
	return entries, nil
}
