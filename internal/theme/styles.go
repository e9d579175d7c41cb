package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Output line styles
var (
	CompareLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSecondary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	LinkStyle = lipgloss.NewStyle().
			Foreground(ColorLink).
			Underline(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	PullRequestLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

// PullRequestLine renders "PR #<n> <url>"
func PullRequestLine(number int, url string) string {
	return fmt.Sprintf("%s %s",
		PullRequestLabelStyle.Render(fmt.Sprintf("PR #%d", number)),
		LinkStyle.Render(url))
}

// CompareLine renders "Compare <url>"
func CompareLine(url string) string {
	return fmt.Sprintf("%s %s", CompareLabelStyle.Render("Compare"), LinkStyle.Render(url))
}

// WarningLine renders a warning message
func WarningLine(message string) string {
	return WarningStyle.Render(message)
}

// MutedLine renders an informational message
func MutedLine(message string) string {
	return MutedStyle.Render(message)
}

// ErrorLine renders "Error: <err>"
func ErrorLine(err error) string {
	return ErrorStyle.Render(fmt.Sprintf("Error: %v", err))
}
