package lister

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// RuleKind tells how a Rule matches a name.
type RuleKind int

const (
	// SuffixRule matches names ending with a literal, ignoring case.
	SuffixRule RuleKind = iota
	// PatternRule matches names against a regular expression.
	PatternRule
)

// Rule is one entry of a black or white list.
type Rule struct {
	kind    RuleKind
	suffix  string // lower-cased
	source  string
	flags   string
	pattern *regexp2.Regexp
}

// Suffix returns a rule matching names that end with s, case-insensitively.
func Suffix(s string) Rule {
	return Rule{kind: SuffixRule, suffix: strings.ToLower(s), source: s}
}

// Pattern compiles expr with ECMAScript semantics. The pattern is searched
// anywhere in the name unless anchored.
func Pattern(expr string, opts regexp2.RegexOptions) (Rule, error) {
	re, err := regexp2.Compile(expr, opts|regexp2.ECMAScript)
	if err != nil {
		return Rule{}, fmt.Errorf("invalid pattern %q: %w", expr, err)
	}
	var flags string
	if opts&regexp2.IgnoreCase != 0 {
		flags += "i"
	}
	if opts&regexp2.Multiline != 0 {
		flags += "m"
	}
	return Rule{kind: PatternRule, source: expr, flags: flags, pattern: re}, nil
}

// MustPattern is like Pattern but panics on an invalid expression.
func MustPattern(expr string) Rule {
	r, err := Pattern(expr, regexp2.None)
	if err != nil {
		panic(err)
	}
	return r
}

// ParseRule turns the textual form of a rule into a Rule.
// "/expr/flags" is a pattern (flags: i, m); anything else is a suffix.
func ParseRule(s string) (Rule, error) {
	if len(s) < 2 || s[0] != '/' {
		return Suffix(s), nil
	}
	end := strings.LastIndexByte(s, '/')
	if end == 0 {
		return Suffix(s), nil
	}

	var opts regexp2.RegexOptions
	for _, f := range s[end+1:] {
		switch f {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 'g', 'u', 'y':
			// no effect on a single test
		default:
			return Rule{}, fmt.Errorf("invalid pattern flag %q in %q", f, s)
		}
	}
	r, err := Pattern(s[1:end], opts)
	if err != nil {
		return Rule{}, err
	}
	r.flags = s[end+1:]
	return r, nil
}

// ParseRules parses every element with ParseRule.
func ParseRules(ss []string) ([]Rule, error) {
	rules := make([]Rule, 0, len(ss))
	for _, s := range ss {
		r, err := ParseRule(s)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// Kind reports how the rule matches.
func (r Rule) Kind() RuleKind {
	return r.kind
}

// Match reports whether name satisfies the rule.
func (r Rule) Match(name string) bool {
	switch r.kind {
	case SuffixRule:
		return strings.HasSuffix(strings.ToLower(name), r.suffix)
	case PatternRule:
		if r.pattern == nil {
			return false
		}
		ok, err := r.pattern.MatchString(name)
		return err == nil && ok
	}
	return false
}

// String returns the rule in the form ParseRule accepts.
func (r Rule) String() string {
	if r.kind == PatternRule {
		return "/" + r.source + "/" + r.flags
	}
	return r.source
}
