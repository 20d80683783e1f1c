package ignore

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// Ignore encapsulates gitignore pattern matching for one listing root
type Ignore struct {
	matcher  gitignore.Matcher
	rootPath string
}

// New reads the .gitignore files found under rootPath in fs.
// Directories that cannot be read are skipped along with their subtree;
// patterns from the rest of the tree still apply.
func New(fs billy.Filesystem, rootPath string) (*Ignore, error) {
	rootPath = filepath.Clean(rootPath)
	sub, err := fs.Chroot(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", rootPath, err)
	}

	patterns := readIgnoreFile(sub, nil, infoExcludeFile)
	patterns = append(patterns, readPatterns(sub, nil)...)

	return &Ignore{
		matcher:  gitignore.NewMatcher(patterns),
		rootPath: rootPath,
	}, nil
}

const (
	gitDir          = ".git"
	gitignoreFile   = ".gitignore"
	infoExcludeFile = gitDir + "/info/exclude"
)

// readPatterns collects the .gitignore patterns of dir and the directories
// below it, lowest priority first. Ignored directories are not entered.
func readPatterns(fs billy.Filesystem, dir []string) []gitignore.Pattern {
	ps := readIgnoreFile(fs, dir, gitignoreFile)

	fis, err := fs.ReadDir(fs.Join(dir...))
	if err != nil {
		return ps
	}

	for _, fi := range fis {
		if !fi.IsDir() || fi.Name() == gitDir {
			continue
		}
		path := append(append([]string(nil), dir...), fi.Name())
		if gitignore.NewMatcher(ps).Match(path, true) {
			continue
		}
		ps = append(ps, readPatterns(fs, path)...)
	}
	return ps
}

// readIgnoreFile parses one ignore file; a missing or unreadable file has
// no patterns.
func readIgnoreFile(fs billy.Filesystem, dir []string, name string) []gitignore.Pattern {
	f, err := fs.Open(fs.Join(append(append([]string(nil), dir...), name)...))
	if err != nil {
		return nil
	}
	defer f.Close()

	var ps []gitignore.Pattern
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		ps = append(ps, gitignore.ParsePattern(line, dir))
	}
	return ps
}

// IsIgnored checks if a path below the root should be ignored according to gitignore rules
func (ig *Ignore) IsIgnored(path string, isDir bool) (bool, error) {
	// Skip .git directory
	if isDir && filepath.Base(path) == ".git" {
		return true, nil
	}

	relPath, err := filepath.Rel(ig.rootPath, filepath.Clean(path))
	if err != nil {
		return false, err
	}

	// Skip the root directory
	if relPath == "." {
		return false, nil
	}
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(os.PathSeparator)) {
		return false, fmt.Errorf("%s is outside of %s", path, ig.rootPath)
	}

	parts := strings.Split(relPath, string(os.PathSeparator))
	return ig.matcher.Match(parts, isDir), nil
}
