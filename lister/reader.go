package lister

import (
	"log/slog"
	"os"
	"path/filepath"
)

// ReadDirectory returns the immediate children of dir. An unreadable
// directory yields an empty slice.
func (l *Lister) ReadDirectory(dir string) []Entry {
	infos, err := l.cfg.FS.ReadDir(dir)
	if err != nil {
		l.cfg.Logger.Debug("skipping unreadable directory", slog.String("path", dir), slog.Any("err", err))
		return []Entry{}
	}

	entries := make([]Entry, 0, len(infos))
	for _, fi := range infos {
		e := Entry{
			Name:      fi.Name(),
			Path:      filepath.Join(dir, fi.Name()),
			IsDir:     fi.IsDir(),
			IsSymlink: fi.Mode()&os.ModeSymlink != 0,
		}
		if l.cfg.Stats {
			e.Stats = l.stat(e.Path)
		}
		entries = append(entries, e)
	}
	return entries
}

// stat follows symbolic links. Any failure is reported with the
// ErrNoPermission marker.
func (l *Lister) stat(path string) *Stats {
	fi, err := l.cfg.FS.Stat(path)
	if err != nil {
		l.cfg.Logger.Debug("stat failed", slog.String("path", path), slog.Any("err", err))
		return &Stats{Err: ErrNoPermission}
	}
	return newStats(fi)
}
