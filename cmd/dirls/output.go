package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hayeah/dirls/lister"
	"github.com/hayeah/dirls/treeview"
)

// Format is an output format for listings.
type Format string

const (
	FormatLines Format = "lines"
	FormatJSON  Format = "json"
	FormatTree  Format = "tree"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatLines, FormatJSON, FormatTree:
		return f, nil
	case "":
		return FormatLines, nil
	default:
		return "", fmt.Errorf("unknown format %q, use lines, json or tree", s)
	}
}

// Printer writes listing results in one format.
type Printer struct {
	Out    io.Writer
	Format Format
}

// Print writes items listed from root. A nil listing prints nothing in
// lines and tree format, and null in json.
func (p *Printer) Print(root string, items []lister.Item) error {
	switch p.Format {
	case FormatJSON:
		enc := json.NewEncoder(p.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	case FormatTree:
		if items == nil {
			return nil
		}
		return treeview.New(root, items).Generate(p.Out)
	default:
		return p.writeLines(items)
	}
}

// writeLines prints one path per line, depth-first. Directories get a
// trailing separator; detailed stats follow the path after a tab.
func (p *Printer) writeLines(items []lister.Item) error {
	for _, it := range items {
		line := it.Path
		if it.Dir {
			line += string(filepath.Separator)
		}
		if it.Detail != nil && it.Detail.Stats != nil {
			line += "\t" + statsColumn(it.Detail.Stats)
		}
		if _, err := fmt.Fprintln(p.Out, line); err != nil {
			return err
		}
		if err := p.writeLines(it.Children); err != nil {
			return err
		}
	}
	return nil
}

func statsColumn(s *lister.Stats) string {
	switch {
	case s.Err != "":
		return s.Err
	case s.FormattedSize != nil:
		return *s.FormattedSize
	default:
		return fmt.Sprintf("%d", s.Size)
	}
}
