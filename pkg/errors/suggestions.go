package errors

import "fmt"

// SuggestionGenerator generates actionable suggestions based on error category.
type SuggestionGenerator interface {
	Generate(category ErrorCategory, affectedPath string) []string
}

// NewSuggestionGenerator creates a new SuggestionGenerator.
func NewSuggestionGenerator() SuggestionGenerator {
	return &suggestionGenerator{}
}

// suggestionGenerator is the concrete implementation of SuggestionGenerator.
type suggestionGenerator struct{}

// Generate returns actionable suggestions based on the error category and affected path.
func (g *suggestionGenerator) Generate(category ErrorCategory, affectedPath string) []string {
	switch category {
	case CategoryPermission:
		return g.generatePermissionSuggestions(affectedPath)
	case CategoryPath:
		return g.generatePathSuggestions(affectedPath)
	case CategoryPattern:
		return g.generatePatternSuggestions()
	case CategoryBounds:
		return []string{"Check the collection size before indexing into it"}
	case CategoryIO:
		return g.generateIOSuggestions(affectedPath)
	case CategoryUnsupported:
		return []string{
			"This platform or filesystem does not record the requested timestamp",
			"Fall back to the modification time",
		}
	case CategoryUnknown:
		return g.generateUnknownSuggestions(affectedPath)
	default:
		return g.generateUnknownSuggestions(affectedPath)
	}
}

func (g *suggestionGenerator) generateIOSuggestions(path string) []string {
	suggestions := []string{
		"Make sure the path is a regular file when reading content",
		"Try the operation again - this may be a transient I/O error",
	}

	if path != "" {
		suggestions = append(suggestions, "Verify the path is readable: "+path)
	}

	return suggestions
}

func (g *suggestionGenerator) generatePathSuggestions(path string) []string {
	suggestions := []string{
		"Verify the path exists and is spelled correctly",
	}

	if path != "" {
		suggestions = append(suggestions, "Check if the path exists: "+path)
		suggestions = append(suggestions, "Ensure all parent directories exist for "+path)
	} else {
		suggestions = append(suggestions, "Ensure all parent directories exist")
	}

	return suggestions
}

func (g *suggestionGenerator) generatePatternSuggestions() []string {
	return []string{
		"Pattern rules are regular expressions matched against the whole file name",
		"Escape literal dots and brackets, e.g. '.*\\.txt'",
		"Use --glob for shell-style patterns such as '*.txt'",
	}
}

func (g *suggestionGenerator) generatePermissionSuggestions(path string) []string {
	suggestions := []string{
		"Ensure you have read permission for the files and directories",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Check permissions with 'ls -la %s'", path))
	} else {
		suggestions = append(suggestions, "Check permissions with 'ls -la' on the affected path")
	}

	suggestions = append(suggestions, "Try running with appropriate permissions or as a privileged user")

	return suggestions
}

func (g *suggestionGenerator) generateUnknownSuggestions(path string) []string {
	suggestions := []string{
		"Check the error message for more details",
		"Verify file and directory permissions",
	}

	if path != "" {
		suggestions = append(suggestions, "Verify the path is accessible: "+path)
	}

	return suggestions
}
