package shared

import "github.com/charmbracelet/lipgloss"

// Exported constants organized by category for clarity.
const (
	// ============================================================================
	// UI Layout & Display
	// ============================================================================

	// DefaultPadding is the default padding for UI elements
	DefaultPadding = 2
	// ChromeHeight is the number of lines used by the title, summary and help
	ChromeHeight = 6
	// MinListHeight is the smallest number of list rows shown
	MinListHeight = 3
	// PreviewLines is the number of content lines loaded into the preview
	PreviewLines = 200

	// ============================================================================
	// Keys & Symbols
	// ============================================================================

	// KeyCtrlC is the key binding for cancellation
	KeyCtrlC = "ctrl+c"
	// PromptArrow marks the selected list row
	PromptArrow = "▶ "
)

func AccentColor() lipgloss.Color { return lipgloss.Color(accentColorCode) }

// BoxStyle returns the style for boxes with padding
func BoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(AccentColor()).
		Padding(0, 1)
}

func DimColor() lipgloss.Color { return lipgloss.Color(dimColorCode) }

// DimStyle returns the style for dimmed text
func DimStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(DimColor())
}

func ErrorColor() lipgloss.Color { return lipgloss.Color(errorColorCode) }

// ErrorStyle returns the style for error messages
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ErrorColor()).
		Bold(true)
}

// ErrorSymbol returns the marker printed before an error
func ErrorSymbol() string {
	return ErrorStyle().Render("✗")
}

// ============================================================================
// File Item Styles (for file lists)
// ============================================================================

// FileItemStyle returns the style for normal file items
func FileItemStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(NormalColor())
}

// FileItemSelectedStyle returns the style for the selected file item
func FileItemSelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(HighlightColor()).
		Bold(true)
}

func HighlightColor() lipgloss.Color { return lipgloss.Color(highlightColorCode) }

// LabelStyle returns the style for labels
func LabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(HighlightColor()).
		Bold(true)
}

func NormalColor() lipgloss.Color { return lipgloss.Color(normalColorCode) }

// PrimaryColor returns the primary color for the UI
func PrimaryColor() lipgloss.Color { return lipgloss.Color(primaryColorCode) }

// RenderDim renders dimmed text with consistent styling
func RenderDim(text string) string {
	return DimStyle().Render(text)
}

// RenderLabel renders a label with consistent styling
func RenderLabel(text string) string {
	return LabelStyle().Render(text)
}

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle().Render(text)
}

// SpinnerStyle returns the style for the scan spinner
func SpinnerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(PrimaryColor())
}

// TitleStyle returns the style for titles
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor())
}

// unexported constants.
const (
	accentColorCode    = "62"  // Blue
	dimColorCode       = "240" // Dark gray
	errorColorCode     = "196" // Red
	highlightColorCode = "86"  // Cyan
	normalColorCode    = "252" // Light gray
	primaryColorCode   = "205" // Pink/purple
)
