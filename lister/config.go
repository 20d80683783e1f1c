package lister

import (
	"io"
	"log/slog"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// Config holds the listing options. It is resolved once by NewFromConfig
// and never changed afterwards.
type Config struct {
	// Detailed produces objects instead of plain path strings.
	Detailed bool
	// Stats attaches filesystem stat data to detailed output. Implies Detailed.
	Stats bool

	// BlackList excludes names matching any rule. Ignored when WhiteList is non-empty.
	BlackList []Rule
	// WhiteList only lets through names matching a rule.
	WhiteList []Rule

	// FilterDirectories subjects directory names to the black/white lists.
	// Otherwise directories always pass them.
	FilterDirectories bool
	// IgnoreSymbolicLinks drops symbolic links from every listing.
	IgnoreSymbolicLinks bool
	// SortByName keeps the order returned by the filesystem instead of
	// moving directories in front of files.
	SortByName bool
	// ShowHidden lists dot-files. When false they are dropped, directories included.
	ShowHidden bool
	// GitIgnore drops entries matched by .gitignore files under the listing
	// root, as well as .git directories.
	GitIgnore bool

	// SizeFormatter, if set, renders the size reported in detailed stats.
	SizeFormatter func(size int64) string

	// FS is the filesystem listed. Defaults to the host filesystem.
	FS billy.Filesystem
	// Logger receives debug records for unreadable directories and entries.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration used by New before options apply.
func DefaultConfig() Config {
	return Config{
		IgnoreSymbolicLinks: true,
		ShowHidden:          true,
	}
}

// Option customizes a Config.
type Option func(*Config)

// WithDetailed switches to object output.
func WithDetailed(detailed bool) Option {
	return func(c *Config) { c.Detailed = detailed }
}

// WithStats attaches stat data to each detailed entry.
func WithStats(stats bool) Option {
	return func(c *Config) { c.Stats = stats }
}

// WithBlackList appends rules to the black list.
func WithBlackList(rules ...Rule) Option {
	return func(c *Config) { c.BlackList = append(c.BlackList, rules...) }
}

// WithWhiteList appends rules to the white list.
func WithWhiteList(rules ...Rule) Option {
	return func(c *Config) { c.WhiteList = append(c.WhiteList, rules...) }
}

func WithFilterDirectories(filter bool) Option {
	return func(c *Config) { c.FilterDirectories = filter }
}

func WithIgnoreSymbolicLinks(ignore bool) Option {
	return func(c *Config) { c.IgnoreSymbolicLinks = ignore }
}

func WithSortByName(byName bool) Option {
	return func(c *Config) { c.SortByName = byName }
}

func WithShowHidden(show bool) Option {
	return func(c *Config) { c.ShowHidden = show }
}

func WithGitIgnore(enabled bool) Option {
	return func(c *Config) { c.GitIgnore = enabled }
}

// WithSizeFormatter sets the formatter applied to reported sizes.
func WithSizeFormatter(f func(size int64) string) Option {
	return func(c *Config) { c.SizeFormatter = f }
}

// WithFS lists fs instead of the host filesystem.
func WithFS(fs billy.Filesystem) Option {
	return func(c *Config) { c.FS = fs }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

// resolve fills in derived values and defaults, and detaches the rule
// slices from the caller's.
func (c Config) resolve() Config {
	c.Detailed = c.Detailed || c.Stats
	c.BlackList = append([]Rule(nil), c.BlackList...)
	c.WhiteList = append([]Rule(nil), c.WhiteList...)
	if c.FS == nil {
		// an empty base resolves relative and absolute paths as the os package does
		c.FS = osfs.New("")
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// whiteListMode reports whether the white list is in effect.
func (c *Config) whiteListMode() bool {
	return len(c.WhiteList) > 0
}
