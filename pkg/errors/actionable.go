// Package errors defines the error kinds shared by the filescan packages and
// enriches them with actionable suggestions for display.
//
// Library code returns errors wrapping one of the kind sentinels
// (ErrNotFound, ErrIO, ErrInvalidPattern, ErrOutOfBounds, ErrUnsupported).
// Front ends pass those errors through an Enricher before showing them:
//
//	enricher := errors.NewEnricher()
//	_, err := scanner.ScanPatterns(root, &coll, rules, true)
//	if err != nil {
//	    enriched := enricher.Enrich(err, root)
//	    fmt.Println(enriched.Error())
//	    fmt.Println(errors.FormatSuggestions(enriched))
//	}
//
// The enricher extracts paths from error messages when none is given:
//
//	err := stderrors.New("open /home/user/file.txt: permission denied")
//	enriched := enricher.Enrich(err, "") // path taken from the message
package errors

import "strings"

// Exported constants.
const (
	CategoryBounds      ErrorCategory = "bounds"
	CategoryIO          ErrorCategory = "io"
	CategoryPath        ErrorCategory = "path"
	CategoryPattern     ErrorCategory = "pattern"
	CategoryPermission  ErrorCategory = "permission"
	CategoryUnknown     ErrorCategory = "unknown"
	CategoryUnsupported ErrorCategory = "unsupported"
)

// ActionableError represents an error with actionable suggestions for the user.
type ActionableError interface {
	error
	Unwrap() error
	OriginalError() string
	Category() ErrorCategory
	Suggestions() []string
	AffectedPath() string
}

// NewActionableError creates a new ActionableError with the given details.
func NewActionableError(
	cause error,
	category ErrorCategory,
	suggestions []string,
	affectedPath string,
) ActionableError {
	return &actionableError{
		cause:        cause,
		category:     category,
		suggestions:  suggestions,
		affectedPath: affectedPath,
	}
}

// ErrorCategory represents the type of error that occurred.
type ErrorCategory string

// FormatSuggestions formats the suggestions from an ActionableError as a bulleted list
// for display. Returns empty string if the error is nil or has no suggestions.
func FormatSuggestions(err error) string {
	if err == nil {
		return ""
	}

	actionable, ok := err.(ActionableError)
	if !ok {
		return ""
	}

	suggestions := actionable.Suggestions()
	if len(suggestions) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, suggestion := range suggestions {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString("  • ")
		builder.WriteString(suggestion)
	}

	return builder.String()
}

// actionableError is the concrete implementation of ActionableError.
type actionableError struct {
	cause        error
	category     ErrorCategory
	suggestions  []string
	affectedPath string
}

// AffectedPath returns the file path affected by this error.
func (e *actionableError) AffectedPath() string {
	return e.affectedPath
}

// Category returns the error category.
func (e *actionableError) Category() ErrorCategory {
	return e.category
}

// Error implements the error interface.
func (e *actionableError) Error() string {
	return e.OriginalError()
}

// OriginalError returns the original error message.
func (e *actionableError) OriginalError() string {
	if e.cause == nil {
		return ""
	}

	return e.cause.Error()
}

// Suggestions returns the list of actionable suggestions.
func (e *actionableError) Suggestions() []string {
	return e.suggestions
}

// Unwrap returns the original error so errors.Is still sees its kind.
func (e *actionableError) Unwrap() error {
	return e.cause
}
