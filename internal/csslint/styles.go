package csslint

import "github.com/charmbracelet/lipgloss"

// Terminal styles shared by the reporters.
// Lipgloss degrades colors based on terminal capabilities.
var (
	// StyleBlue is used for file headers.
	StyleBlue = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	// StyleCyan is used for issue locations.
	StyleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleRed is used for fatal errors.
	StyleRed = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleYellow is used for warnings, counts and caret indicators.
	StyleYellow = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	// StyleGreen is used for the clean-run message.
	StyleGreen = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleGray is used for the linter name and hints.
	StyleGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
