package shared

import "github.com/charmbracelet/lipgloss"

// RenderTwoColumnLayout renders content in two columns with 60-40 width split.
// Columns are joined horizontally using lipgloss.
func RenderTwoColumnLayout(leftContent, rightContent string, width, height int) string {
	leftWidth := int(float64(width) * 0.6)
	rightWidth := width - leftWidth

	leftStyle := lipgloss.NewStyle().Width(leftWidth).Height(height)
	rightStyle := lipgloss.NewStyle().Width(rightWidth).Height(height)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftStyle.Render(leftContent),
		rightStyle.Render(rightContent),
	)
}

// RenderWidgetBox renders content in a titled box with borders.
// Width accounts for borders and padding.
func RenderWidgetBox(title, content string, width int) string {
	const widthOverhead = 4 // Account for borders (2) and padding (2)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor())
	boxStyle := BoxStyle().Width(max(width-widthOverhead, 1))

	return boxStyle.Render(titleStyle.Render(title) + "\n" + content)
}

// TruncatePath shortens path to width by eliding the middle.
func TruncatePath(path string, width int) string {
	const ellipsis = "..."

	runes := []rune(path)
	if width <= len(ellipsis) || len(runes) <= width {
		return path
	}

	keep := width - len(ellipsis)
	head := keep / 2
	tail := keep - head

	return string(runes[:head]) + ellipsis + string(runes[len(runes)-tail:])
}
