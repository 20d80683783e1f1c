package lister

import (
	"encoding/json"
	"path/filepath"

	"github.com/samber/lo"
)

// Item is one result of a listing.
type Item struct {
	Path string
	Dir  bool

	// Detail is set when the lister produces detailed output.
	Detail *Detail
	// Children holds the listing of a directory expanded by ListFilesTree.
	// It is nil for files and for directories left unexpanded.
	Children []Item
}

// Detail is the object form of an entry.
type Detail struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Dir   bool   `json:"dir"`
	Ext   string `json:"ext"`
	Full  string `json:"full"`
	Stats *Stats `json:"stats,omitempty"`
}

// Expanded reports whether the item is a directory replaced by its contents.
func (it Item) Expanded() bool {
	return it.Children != nil
}

// MarshalJSON writes an expanded directory as a nested array, a detailed
// item as an object and anything else as its path.
func (it Item) MarshalJSON() ([]byte, error) {
	switch {
	case it.Children != nil:
		return json.Marshal(it.Children)
	case it.Detail != nil:
		return json.Marshal(it.Detail)
	default:
		return json.Marshal(it.Path)
	}
}

// Finalize shapes entries into output items.
func (l *Lister) Finalize(entries []Entry) []Item {
	return lo.Map(entries, func(e Entry, _ int) Item {
		return l.finalizeEntry(e)
	})
}

func (l *Lister) finalizeEntry(e Entry) Item {
	it := Item{Path: e.Path, Dir: e.IsDir}
	if !l.cfg.Detailed {
		return it
	}

	full, err := filepath.Abs(e.Path)
	if err != nil {
		full = e.Path
	}
	d := &Detail{
		Name: e.Name,
		Path: e.Path,
		Dir:  e.IsDir,
		Ext:  filepath.Ext(e.Name),
		Full: full,
	}
	if l.cfg.Stats && e.Stats != nil {
		stats := *e.Stats
		if l.cfg.SizeFormatter != nil && stats.Err == "" {
			formatted := l.cfg.SizeFormatter(stats.Size)
			stats.FormattedSize = &formatted
		}
		d.Stats = &stats
	}
	it.Detail = d
	return it
}

// Flatten returns the paths of all non-directory items, descending into
// expanded directories depth-first.
func Flatten(items []Item) []string {
	var paths []string
	for _, it := range items {
		switch {
		case it.Children != nil:
			paths = append(paths, Flatten(it.Children)...)
		case !it.Dir:
			paths = append(paths, it.Path)
		}
	}
	return paths
}

// Paths returns the path of each top-level item.
func Paths(items []Item) []string {
	return lo.Map(items, func(it Item, _ int) string { return it.Path })
}
