package lister

import (
	"strings"

	"github.com/samber/lo"
)

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// Passes reports whether name survives the hidden-file check and the
// black/white list.
func (l *Lister) Passes(name string) bool {
	if !l.cfg.ShowHidden && isHidden(name) {
		return false
	}

	match := func(r Rule) bool { return r.Match(name) }
	if l.cfg.whiteListMode() {
		return lo.ContainsBy(l.cfg.WhiteList, match)
	}
	return !lo.ContainsBy(l.cfg.BlackList, match)
}

// FilterEntries returns the entries that pass the configured rules.
// With directoriesExempt, directories skip the black/white list; the
// hidden-file check still applies to them. Symbolic links are dropped
// whenever IgnoreSymbolicLinks is set.
func (l *Lister) FilterEntries(entries []Entry, directoriesExempt bool) []Entry {
	return lo.Filter(entries, func(e Entry, _ int) bool {
		if e.IsSymlink && l.cfg.IgnoreSymbolicLinks {
			return false
		}
		if e.IsDir && directoriesExempt {
			return l.cfg.ShowHidden || !isHidden(e.Name)
		}
		return l.Passes(e.Name)
	})
}

// SortDirectoriesFirst moves directories in front of files, keeping the
// relative order inside each group. It returns entries untouched when
// SortByName is set.
func (l *Lister) SortDirectoriesFirst(entries []Entry) []Entry {
	if l.cfg.SortByName {
		return entries
	}
	dirs, files := partition(entries)
	return append(dirs, files...)
}

// partition splits entries into directories and everything else.
func partition(entries []Entry) (dirs, files []Entry) {
	dirs = lo.Filter(entries, func(e Entry, _ int) bool { return e.IsDir })
	files = lo.Filter(entries, func(e Entry, _ int) bool { return !e.IsDir })
	return dirs, files
}
