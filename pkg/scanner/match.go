package scanner

import (
	"os"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/joe/filescan/pkg/errors"
	"github.com/joe/filescan/pkg/fileentry"
)

// Candidate is an eligible walk item offered to a Matcher.
type Candidate struct {
	// Path is the full path as produced by the filesystem's Join.
	Path string
	// Name is the final path component.
	Name string
	// RelativePath is the slash-separated path below the scan root.
	RelativePath string
	// Info describes the candidate, with symlinks already resolved.
	Info os.FileInfo
}

// Matcher decides whether a candidate is included in the scan results.
type Matcher interface {
	Match(c Candidate) bool
}

// MatchFunc is a predicate over the full candidate path.
type MatchFunc func(path string) bool

// Match calls f with the candidate path.
func (f MatchFunc) Match(c Candidate) bool {
	return f(c.Path)
}

// MatchAll includes every candidate.
var MatchAll Matcher = matchAll{} //nolint:gochecknoglobals // Stateless matcher value

type matchAll struct{}

func (matchAll) Match(Candidate) bool { return true }

// patternMatcher matches names that fully match any of its expressions.
type patternMatcher struct {
	exprs []*regexp.Regexp
}

// Patterns compiles filename pattern rules. A name matches when it fully
// matches at least one rule. The first malformed rule fails with
// ErrInvalidPattern naming it; nothing is returned in that case.
func Patterns(rules ...string) (Matcher, error) {
	m := &patternMatcher{exprs: make([]*regexp.Regexp, 0, len(rules))}

	for _, rule := range rules {
		// The rule must compile on its own so it cannot escape the anchoring group.
		if _, err := regexp.Compile(rule); err != nil {
			return nil, errors.InvalidPattern(rule, err)
		}

		expr, err := regexp.Compile(`^(?:` + rule + `)$`)
		if err != nil {
			return nil, errors.InvalidPattern(rule, err)
		}

		m.exprs = append(m.exprs, expr)
	}

	return m, nil
}

func (m *patternMatcher) Match(c Candidate) bool {
	for _, expr := range m.exprs {
		if expr.MatchString(c.Name) {
			return true
		}
	}

	return false
}

type globRule struct {
	pattern string
	// byPath is set when the pattern has a separator and is matched against
	// the relative path instead of the name.
	byPath bool
}

// globMatcher matches doublestar glob rules.
type globMatcher struct {
	rules []globRule
}

// Globs validates doublestar glob rules. A rule without "/" is matched
// against the name, so "*.txt" finds text files at any depth; a rule with
// "/" is matched against the path relative to the scan root.
func Globs(rules ...string) (Matcher, error) {
	m := &globMatcher{rules: make([]globRule, 0, len(rules))}

	for _, rule := range rules {
		if !doublestar.ValidatePattern(rule) {
			return nil, errors.InvalidPattern(rule, doublestar.ErrBadPattern)
		}

		m.rules = append(m.rules, globRule{pattern: rule, byPath: strings.Contains(rule, "/")})
	}

	return m, nil
}

func (m *globMatcher) Match(c Candidate) bool {
	for _, rule := range m.rules {
		target := c.Name
		if rule.byPath {
			target = c.RelativePath
		}

		// patterns were validated, so the error is always nil
		if ok, _ := doublestar.Match(rule.pattern, target); ok {
			return true
		}
	}

	return false
}

// Extensions matches candidates whose extension, as reported by
// fileentry.Extension, is one of exts. Extensions may be given with or
// without the leading dot and are compared case-sensitively.
func Extensions(exts ...string) Matcher {
	m := extMatcher{}
	for _, ext := range exts {
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		m[ext] = struct{}{}
	}

	return m
}

type extMatcher map[string]struct{}

func (m extMatcher) Match(c Candidate) bool {
	_, ok := m[fileentry.Extension(c.Name)]
	return ok
}
