package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - labels
	ColorSecondary Color = "86" // Cyan - compare label
)

// UI semantic colors
const (
	ColorError   Color = "196" // Bright red
	ColorLink    Color = "255" // White - URLs
	ColorMuted   Color = "241" // Gray - secondary text
	ColorWarning Color = "3"   // Yellow
)
