package formatter

import (
	"fmt"
	"strings"

	"github.com/averylane/shiftwise/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ShiftStatusPill returns a colored indicator for a reconstructed
// shift's status.
func ShiftStatusPill(status domain.ShiftStatus) string {
	switch status {
	case domain.ShiftComplete:
		return StyleGreen.Render("✔ Complete")
	case domain.ShiftInProgress:
		return StyleBlue.Render("● Working")
	case domain.ShiftOnBreak:
		return StyleYellow.Render("○ On Break")
	case domain.ShiftIncomplete:
		return StyleRed.Render("▲ Incomplete")
	default:
		return StyleDim.Render(string(status))
	}
}

// WorkerStatusPill returns a colored indicator for a worker's status.
func WorkerStatusPill(status domain.WorkerStatus) string {
	switch status {
	case domain.WorkerActive:
		return StyleGreen.Render("● Active")
	case domain.WorkerInactive:
		return StyleDim.Render("✖ Inactive")
	default:
		return StyleDim.Render(string(status))
	}
}

// IssueBadge marks rows with reconstruction issues.
func IssueBadge(hasIssues bool) string {
	if hasIssues {
		return StyleYellow.Render("⚠")
	}
	return ""
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
