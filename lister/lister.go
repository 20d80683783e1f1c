// Package lister lists directory contents with black/white list filtering,
// optional stat data and three output shapes: flat, one level and tree.
//
// Listing never fails. Unreadable directories contribute nothing and
// entries that cannot be stat'ed carry an error marker. A listing root that
// is not a directory yields a nil result.
package lister

import (
	"log/slog"
	"path/filepath"

	"github.com/hayeah/dirls/ignore"
)

// Unlimited disables the depth limit of ListFiles and ListFilesTree.
const Unlimited = -1

// Lister lists directories according to a fixed Config. It holds no
// mutable state, so one Lister may be shared between goroutines.
type Lister struct {
	cfg Config
}

// New builds a Lister from DefaultConfig and opts.
func New(opts ...Option) *Lister {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewFromConfig(cfg)
}

// NewFromConfig builds a Lister from cfg as given.
func NewFromConfig(cfg Config) *Lister {
	return &Lister{cfg: cfg.resolve()}
}

// Config returns a copy of the resolved configuration.
func (l *Lister) Config() Config {
	cfg := l.cfg
	cfg.BlackList = append([]Rule(nil), cfg.BlackList...)
	cfg.WhiteList = append([]Rule(nil), cfg.WhiteList...)
	return cfg
}

// IsDirectory reports whether path is a directory, following links.
// Any stat failure counts as false.
func (l *Lister) IsDirectory(path string) bool {
	fi, err := l.cfg.FS.Stat(path)
	if err != nil {
		return false
	}
	return fi.IsDir()
}

// ListFiles lists the files under dir. Directories are descended into
// while recursive is set and the depth is below maxDepth; they never
// appear in the result themselves.
func (l *Lister) ListFiles(dir string, recursive bool, maxDepth int) []Item {
	w, ok := l.begin(dir)
	if !ok {
		return nil
	}
	return l.Finalize(w.files(w.root, recursive, maxDepth, 0))
}

// ListOneDir lists the files and directories directly inside dir.
func (l *Lister) ListOneDir(dir string) []Item {
	w, ok := l.begin(dir)
	if !ok {
		return nil
	}
	return l.Finalize(w.list(w.root))
}

// ListFilesTree lists dir like ListOneDir, replacing each directory with
// its own listing until maxDepth is reached. Directories at the limit are
// left unexpanded.
func (l *Lister) ListFilesTree(dir string, maxDepth int) []Item {
	w, ok := l.begin(dir)
	if !ok {
		return nil
	}
	return w.tree(w.root, maxDepth, 0)
}

// walk is the state of one listing call.
type walk struct {
	*Lister
	root string
	ig   *ignore.Ignore
}

func (l *Lister) begin(dir string) (*walk, bool) {
	root := filepath.Clean(dir)
	if !l.IsDirectory(root) {
		l.cfg.Logger.Debug("listing root is not a directory", slog.String("path", root))
		return nil, false
	}

	w := &walk{Lister: l, root: root}
	if l.cfg.GitIgnore {
		ig, err := ignore.New(l.cfg.FS, root)
		if err != nil {
			l.cfg.Logger.Debug("gitignore rules unavailable", slog.String("path", root), slog.Any("err", err))
		} else {
			w.ig = ig
		}
	}
	return w, true
}

// read returns the filtered children of dir.
func (w *walk) read(dir string) []Entry {
	entries := w.FilterEntries(w.ReadDirectory(dir), !w.cfg.FilterDirectories)
	if w.ig == nil {
		return entries
	}

	kept := entries[:0]
	for _, e := range entries {
		ignored, err := w.ig.IsIgnored(e.Path, e.IsDir)
		if err != nil {
			w.cfg.Logger.Debug("gitignore check failed", slog.String("path", e.Path), slog.Any("err", err))
		}
		if !ignored {
			kept = append(kept, e)
		}
	}
	return kept
}

// list returns the filtered and sorted children of dir.
func (w *walk) list(dir string) []Entry {
	return w.SortDirectoriesFirst(w.read(dir))
}

func within(maxDepth, depth int) bool {
	return maxDepth == Unlimited || maxDepth > depth
}

func (w *walk) files(dir string, recursive bool, maxDepth, depth int) []Entry {
	dirs, files := partition(w.read(dir))
	if recursive && within(maxDepth, depth) {
		for _, d := range dirs {
			files = append(files, w.files(d.Path, recursive, maxDepth, depth+1)...)
		}
	}
	return files
}

func (w *walk) tree(dir string, maxDepth, depth int) []Item {
	entries := w.list(dir)
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		it := w.finalizeEntry(e)
		if e.IsDir && within(maxDepth, depth) {
			it.Children = w.tree(e.Path, maxDepth, depth+1)
		}
		items = append(items, it)
	}
	return items
}
