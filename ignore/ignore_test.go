package ignore

import (
	"os"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/helper/chroot"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/hayeah/dirls/internal/assert"
)

func TestIsIgnored(t *testing.T) {
	assert := assert.New(t)

	fs := memfs.New()
	files := map[string]string{
		"/repo/.gitignore":        "*.log\nbuild/\n",
		"/repo/sub/.gitignore":    "secret.txt\n",
		"/repo/main.go":           "package main",
		"/repo/debug.log":         "",
		"/repo/build/out.bin":     "",
		"/repo/sub/secret.txt":    "",
		"/repo/sub/public.txt":    "",
		"/repo/.git/HEAD":         "ref: refs/heads/main",
		"/repo/sub/deeper/x.log":  "",
		"/repo/sub/deeper/ok.txt": "",
	}
	for path, content := range files {
		assert.NoError(util.WriteFile(fs, path, []byte(content), 0644))
	}

	ig, err := New(fs, "/repo")
	assert.NoError(err)

	cases := []struct {
		path    string
		isDir   bool
		ignored bool
	}{
		{"/repo", true, false},
		{"/repo/main.go", false, false},
		{"/repo/debug.log", false, true},
		{"/repo/build", true, true},
		{"/repo/sub/secret.txt", false, true},
		{"/repo/sub/public.txt", false, false},
		{"/repo/secret.txt", false, false},
		{"/repo/.git", true, true},
		{"/repo/sub/deeper/x.log", false, true},
		{"/repo/sub/deeper/ok.txt", false, false},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			got, err := ig.IsIgnored(tc.path, tc.isDir)
			assert.NoError(err)
			assert.Equal(tc.ignored, got)
		})
	}

	_, err = ig.IsIgnored("/elsewhere/file", false)
	assert.Error(err)
}

// lockedFS refuses to read the listed directories.
type lockedFS struct {
	billy.Filesystem
	locked map[string]bool
}

func (f lockedFS) ReadDir(path string) ([]os.FileInfo, error) {
	if f.locked[path] {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrPermission}
	}
	return f.Filesystem.ReadDir(path)
}

func (f lockedFS) Chroot(path string) (billy.Filesystem, error) {
	return chroot.New(f, path), nil
}

func TestUnreadableDirectoryKeepsOtherPatterns(t *testing.T) {
	assert := assert.New(t)

	mem := memfs.New()
	for path, content := range map[string]string{
		"/repo/.gitignore":        "*.log\n",
		"/repo/a/.gitignore":      "tmp/\n",
		"/repo/locked/.gitignore": "*.go\n",
		"/repo/locked/x.go":       "",
		"/repo/z/.gitignore":      "secret.txt\n",
		"/repo/debug.log":         "",
	} {
		assert.NoError(util.WriteFile(mem, path, []byte(content), 0644))
	}
	fs := lockedFS{Filesystem: mem, locked: map[string]bool{"/repo/locked": true}}

	ig, err := New(fs, "/repo")
	assert.NoError(err)

	cases := []struct {
		path    string
		isDir   bool
		ignored bool
	}{
		{"/repo/debug.log", false, true},
		{"/repo/a/tmp", true, true},
		{"/repo/z/secret.txt", false, true},
		{"/repo/locked", true, false},
		{"/repo/main.go", false, false},
	}
	for _, tc := range cases {
		got, err := ig.IsIgnored(tc.path, tc.isDir)
		assert.NoError(err)
		assert.Equal(tc.ignored, got, tc.path)
	}
}
