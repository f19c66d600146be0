package errors

import (
	stderrors "errors"
	"regexp"
	"strings"
)

// Enricher enriches standard errors with actionable suggestions.
type Enricher interface {
	Enrich(err error, affectedPath string) error
}

// NewEnricher creates a new Enricher with default pattern matcher and suggestion generator.
func NewEnricher() Enricher {
	return &enricher{
		matcher:   NewPatternMatcher(),
		generator: NewSuggestionGenerator(),
	}
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Compiled regexes shared across all enricher instances
	pathExtractionPatterns = []*regexp.Regexp{
		// quoted paths produced by this package's constructors
		regexp.MustCompile(`\b\w+\s+"([^"]+)":`),
		// Unix/Linux paths (absolute and relative)
		regexp.MustCompile(`\b\w+\s+([./][^\s:]+):`),
		// Windows paths with backslashes
		regexp.MustCompile(`\b\w+\s+([A-Za-z]:\\[^\s:]+):`),
		// Windows paths with forward slashes
		regexp.MustCompile(`\b\w+\s+([A-Za-z]:/[^\s:]+):`),
	}
)

// enricher is the concrete implementation of Enricher.
type enricher struct {
	matcher   PatternMatcher
	generator SuggestionGenerator
}

// Enrich takes an error and enriches it with category and actionable suggestions.
// If the error is already an ActionableError, it is returned unchanged.
// If affectedPath is empty, attempts to extract a path from the error message.
func (e *enricher) Enrich(err error, affectedPath string) error {
	if err == nil {
		return nil
	}

	var actionableErr ActionableError
	if stderrors.As(err, &actionableErr) {
		return actionableErr
	}

	errMsg := err.Error()
	category := e.categorize(err)

	// If no path provided, try to extract from error message
	if affectedPath == "" && category != CategoryPattern && category != CategoryBounds {
		affectedPath = extractPath(errMsg)
	}

	suggestions := e.generator.Generate(category, affectedPath)

	return NewActionableError(
		err,
		category,
		suggestions,
		affectedPath,
	)
}

// categorize matches err to a category. A permission denial wrapped in a
// path or io kind is reported as permission.
func (e *enricher) categorize(err error) ErrorCategory {
	category := e.matcher.Match(err)
	if category != CategoryIO && category != CategoryPath {
		return category
	}

	if m, ok := e.matcher.(*patternMatcher); ok && m.MatchMessage(err.Error()) == CategoryPermission {
		return CategoryPermission
	}

	return category
}

// extractPath attempts to extract a file path from common Go error message formats.
// Returns empty string if no path is found.
//
// Recognized formats:
//   - `failed to stat "/path/to/file": not found`
//   - "open /path/to/file: permission denied"
//   - "stat /var/log/app.log: no such file or directory"
func extractPath(errorMsg string) string {
	for _, pattern := range pathExtractionPatterns {
		if matches := pattern.FindStringSubmatch(errorMsg); len(matches) > 1 {
			path := strings.TrimSpace(matches[1])
			if path != "" {
				return path
			}
		}
	}

	return ""
}
