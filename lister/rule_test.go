package lister

import (
	"testing"

	"github.com/dlclark/regexp2"

	"github.com/hayeah/dirls/internal/assert"
)

func TestParseRule(t *testing.T) {
	cases := []struct {
		rule    string
		kind    RuleKind
		matches []string
		misses  []string
	}{
		{".tmp", SuffixRule, []string{"a.tmp", "B.TMP", ".tmp"}, []string{"a.tmpx", "tmp"}},
		{"", SuffixRule, []string{"anything"}, nil},
		{"/", SuffixRule, []string{"a/"}, []string{"a"}},
		{"/x", SuffixRule, []string{"a/x"}, []string{"x"}},
		{`/^\d+\.log$/`, PatternRule, []string{"123.log"}, []string{"a123.log", "123.LOG"}},
		{`/\.log$/i`, PatternRule, []string{"a.LOG", "b.log"}, []string{"log"}},
		{`/test/`, PatternRule, []string{"my_test.go", "testdata"}, []string{"main.go"}},
		{`/a/b/`, PatternRule, []string{"a/b"}, []string{"ab"}},
	}
	for _, tc := range cases {
		t.Run(tc.rule, func(t *testing.T) {
			assert := assert.New(t)
			r, err := ParseRule(tc.rule)
			assert.NoError(err)
			assert.Equal(tc.kind, r.Kind())
			for _, name := range tc.matches {
				assert.True(r.Match(name), "%q should match %q", tc.rule, name)
			}
			for _, name := range tc.misses {
				assert.False(r.Match(name), "%q should not match %q", tc.rule, name)
			}
		})
	}
}

func TestParseRuleErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseRule(`/(unclosed/`)
	assert.Error(err)

	_, err = ParseRule(`/abc/q`)
	assert.ErrorContains(err, "invalid pattern flag")

	rules, err := ParseRules([]string{".go", `/_test/`})
	assert.NoError(err)
	assert.Len(rules, 2)
	assert.Equal(".go", rules[0].String())
	assert.Equal("/_test/", rules[1].String())

	for _, text := range []string{`/^notes/i`, `/a.b/gim`, `/x/`, ".TMP"} {
		r, err := ParseRule(text)
		assert.NoError(err)
		assert.Equal(text, r.String())
	}
	ci, err := Pattern("^notes", regexp2.IgnoreCase)
	assert.NoError(err)
	assert.Equal("/^notes/i", ci.String())

	_, err = ParseRules([]string{".go", `/[/`})
	assert.Error(err)

	assert.True(MustPattern(`\.go$`).Match("main.go"))
	assert.Panics(func() { MustPattern("(") })
}

func TestPassesModes(t *testing.T) {
	assert := assert.New(t)

	black := New(WithBlackList(Suffix(".tmp")))
	assert.True(black.Passes("a.txt"))
	assert.False(black.Passes("b.tmp"))
	assert.False(black.Passes("c.TMP"))

	white := New(WithBlackList(Suffix(".txt")), WithWhiteList(Suffix(".txt")))
	assert.True(white.Passes("a.txt"))
	assert.False(white.Passes("b.tmp"))

	hidden := New(WithShowHidden(false))
	assert.False(hidden.Passes(".env"))
	assert.True(hidden.Passes("env"))

	entries := []Entry{
		{Name: ".git", IsDir: true},
		{Name: "src", IsDir: true},
		{Name: "link", IsSymlink: true},
		{Name: "a.tmp"},
	}
	strict := New(WithShowHidden(false), WithBlackList(Suffix("src"), Suffix(".tmp")))
	assert.Equal([]Entry{{Name: "src", IsDir: true}}, strict.FilterEntries(entries, true))
	assert.Empty(strict.FilterEntries(entries, false))
}

func TestSortDirectoriesFirstIsStable(t *testing.T) {
	assert := assert.New(t)
	entries := []Entry{
		{Name: "z"}, {Name: "b", IsDir: true}, {Name: "a"}, {Name: "c", IsDir: true},
	}

	got := New().SortDirectoriesFirst(entries)
	assert.Equal([]Entry{
		{Name: "b", IsDir: true}, {Name: "c", IsDir: true}, {Name: "z"}, {Name: "a"},
	}, got)
	// input untouched
	assert.Equal("z", entries[0].Name)

	assert.Equal(entries, New(WithSortByName(true)).SortDirectoriesFirst(entries))
}
