// Package treeview draws listing results as a tree diagram.
package treeview

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/hayeah/dirls/lister"
)

// Diagram renders lister items below a root label.
type Diagram struct {
	Root  string
	Items []lister.Item
}

// New creates a Diagram for items listed from root.
func New(root string, items []lister.Item) *Diagram {
	return &Diagram{Root: root, Items: items}
}

// Generate writes the diagram to w. The first line is the root's absolute path.
func (d *Diagram) Generate(w io.Writer) error {
	absPath, err := filepath.Abs(d.Root)
	if err != nil {
		absPath = d.Root
	}
	if _, err := fmt.Fprintln(w, absPath); err != nil {
		return err
	}
	return d.writeItems(w, d.Root, d.Items, "")
}

func (d *Diagram) writeItems(w io.Writer, parent string, items []lister.Item, prefix string) error {
	for i, it := range items {
		isLast := i == len(items)-1

		connector := "├── "
		if isLast {
			connector = "└── "
		}

		// Add a trailing slash for directories
		displayName := label(parent, it)
		if it.Dir {
			displayName += "/"
		}
		if _, err := fmt.Fprintln(w, prefix+connector+displayName); err != nil {
			return err
		}

		if !it.Expanded() {
			continue
		}
		childPrefix := prefix + "│   "
		if isLast {
			childPrefix = prefix + "    "
		}
		if err := d.writeItems(w, it.Path, it.Children, childPrefix); err != nil {
			return err
		}
	}
	return nil
}

// label names it relative to parent, so flat listings keep the
// subdirectory part of each path.
func label(parent string, it lister.Item) string {
	rel, err := filepath.Rel(parent, it.Path)
	if err != nil {
		return filepath.Base(it.Path)
	}
	return rel
}
