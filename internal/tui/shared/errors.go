package shared

import (
	"fmt"
	"strings"

	"github.com/joe/filescan/pkg/errors"
)

// RenderError renders err with the actionable suggestions the enricher finds
// for it. affectedPath is used when the message does not name a path.
func RenderError(err error, affectedPath string, maxWidth int) string {
	if err == nil {
		return ""
	}

	var builder strings.Builder
	enriched := errors.NewEnricher().Enrich(err, affectedPath)

	errMsg := enriched.Error()
	if maxWidth > 3 && len(errMsg) > maxWidth {
		errMsg = errMsg[:maxWidth-3] + "..."
	}

	fmt.Fprintf(&builder, "%s %s\n", ErrorSymbol(), ErrorStyle().Render(errMsg))

	// Show suggestions if available
	suggestions := errors.FormatSuggestions(enriched)
	if suggestions != "" {
		fmt.Fprintf(&builder, "  %s\n", strings.ReplaceAll(suggestions, "\n", "\n  "))
	}

	return builder.String()
}
