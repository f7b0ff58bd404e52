package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/blueprint/internal/domain"
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
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SeverityColor returns the lipgloss style for a gap severity.
func SeverityColor(s domain.GapSeverity) lipgloss.Style {
	switch s {
	case domain.SeveritySevere:
		return StyleRed
	case domain.SeverityModerate:
		return StyleYellowBold
	case domain.SeverityMinor:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// SeverityIndicator returns a colored severity label such as "● SEVERE".
func SeverityIndicator(s domain.GapSeverity) string {
	switch s {
	case domain.SeveritySevere:
		return StyleRed.Render("● SEVERE")
	case domain.SeverityModerate:
		return StyleYellowBold.Render("● MODERATE")
	case domain.SeverityMinor:
		return StyleYellow.Render("● MINOR")
	default:
		return StyleGreen.Render("● OK")
	}
}

// PhaseLabel returns the display name of a phase.
func PhaseLabel(p domain.Phase) string {
	switch p {
	case domain.PhaseMVP:
		return "MVP"
	case domain.Phase2:
		return "Phase 2"
	case domain.Phase3:
		return "Phase 3"
	default:
		return string(p)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
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
