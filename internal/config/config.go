// Package config loads listing options from a TOML or JSONC file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dustin/go-humanize"

	"github.com/hayeah/dirls/internal/hujsonutil"
	"github.com/hayeah/dirls/lister"
)

// File is the on-disk form of lister.Config. Unset fields keep the
// value they already have.
type File struct {
	Detailed            *bool    `toml:"detailed" json:"detailed"`
	Stats               *bool    `toml:"stats" json:"stats"`
	BlackList           []string `toml:"black_list" json:"blackList"`
	WhiteList           []string `toml:"white_list" json:"whiteList"`
	FilterDirectories   *bool    `toml:"filter_directories" json:"filterDirectories"`
	IgnoreSymbolicLinks *bool    `toml:"ignore_symbolic_links" json:"ignoreSymbolicLinks"`
	SortByName          *bool    `toml:"sort_by_name" json:"sortByName"`
	ShowHidden          *bool    `toml:"show_hidden" json:"showHidden"`
	GitIgnore           *bool    `toml:"gitignore" json:"gitignore"`
	HumanSizes          *bool    `toml:"human_sizes" json:"humanSizes"`
}

// Load reads path. ".toml" files are TOML, ".json" and ".jsonc" files are
// JSON with comments.
func Load(path string) (*File, error) {
	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.DecodeFile(path, &f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown keys in config %s: %v", path, undecoded)
		}
	case ".json", ".jsonc":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := hujsonutil.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q for %s", ext, path)
	}
	return &f, nil
}

// Apply overlays the fields set in f onto cfg.
func (f *File) Apply(cfg *lister.Config) error {
	set := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	set(&cfg.Detailed, f.Detailed)
	set(&cfg.Stats, f.Stats)
	set(&cfg.FilterDirectories, f.FilterDirectories)
	set(&cfg.IgnoreSymbolicLinks, f.IgnoreSymbolicLinks)
	set(&cfg.SortByName, f.SortByName)
	set(&cfg.ShowHidden, f.ShowHidden)
	set(&cfg.GitIgnore, f.GitIgnore)

	if f.HumanSizes != nil {
		cfg.SizeFormatter = nil
		if *f.HumanSizes {
			cfg.SizeFormatter = HumanSize
		}
	}

	black, err := lister.ParseRules(f.BlackList)
	if err != nil {
		return fmt.Errorf("black_list: %w", err)
	}
	white, err := lister.ParseRules(f.WhiteList)
	if err != nil {
		return fmt.Errorf("white_list: %w", err)
	}
	cfg.BlackList = append(cfg.BlackList, black...)
	cfg.WhiteList = append(cfg.WhiteList, white...)
	return nil
}

// HumanSize formats a byte count with binary prefixes, e.g. "1.5 KiB".
func HumanSize(size int64) string {
	if size < 0 {
		return fmt.Sprintf("%d B", size)
	}
	return humanize.IBytes(uint64(size))
}
