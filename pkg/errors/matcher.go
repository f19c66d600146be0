package errors

import (
	stderrors "errors"
	"strings"
)

// PatternMatcher matches errors to categories.
type PatternMatcher interface {
	Match(err error) ErrorCategory
}

// NewPatternMatcher creates a new PatternMatcher with predefined kinds and patterns.
func NewPatternMatcher() PatternMatcher {
	return &patternMatcher{
		kinds: []kindRule{
			{ErrInvalidPattern, CategoryPattern},
			{ErrOutOfBounds, CategoryBounds},
			{ErrUnsupported, CategoryUnsupported},
			{ErrNotFound, CategoryPath},
		},
		patterns: []patternRule{
			{CategoryPermission, []string{
				"permission denied",
				"access denied",
				"operation not permitted",
			}},
			{CategoryPath, []string{
				"no such file or directory",
				"file not found",
				"path does not exist",
				"not a directory",
			}},
			{CategoryPattern, []string{
				"error parsing regexp",
				"syntax error in pattern",
			}},
			{CategoryIO, []string{
				"is a directory",
				"input/output error",
				"i/o failure",
				"connection lost",
			}},
		},
	}
}

type kindRule struct {
	kind     error
	category ErrorCategory
}

type patternRule struct {
	category ErrorCategory
	patterns []string
}

// patternMatcher is the concrete implementation of PatternMatcher.
// Rules are checked in order and kinds win over message patterns.
type patternMatcher struct {
	kinds    []kindRule
	patterns []patternRule
}

// Match returns the error category for err.
func (m *patternMatcher) Match(err error) ErrorCategory {
	if err == nil {
		return CategoryUnknown
	}

	for _, rule := range m.kinds {
		if stderrors.Is(err, rule.kind) {
			return rule.category
		}
	}

	return m.MatchMessage(err.Error())
}

// MatchMessage categorizes a bare error message.
func (m *patternMatcher) MatchMessage(errorMsg string) ErrorCategory {
	lowerMsg := strings.ToLower(errorMsg)

	for _, rule := range m.patterns {
		for _, pattern := range rule.patterns {
			if strings.Contains(lowerMsg, pattern) {
				return rule.category
			}
		}
	}

	return CategoryUnknown
}
