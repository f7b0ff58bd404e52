package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/blueprint/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + strings.TrimRight(content, "\n")
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(strings.TrimRight(content, "\n"))
}

// FormatHours renders an hour range such as "138-246h".
func FormatHours(h domain.HourRange) string {
	if h.Min == h.Max {
		return fmt.Sprintf("%dh", h.Min)
	}
	return fmt.Sprintf("%d-%dh", h.Min, h.Max)
}

// FormatPercent renders a percentage with no decimals.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.0f%%", pct)
}

// FormatTeamSize renders a possibly fractional head count ("2.5 people").
func FormatTeamSize(n float64) string {
	if n == float64(int(n)) {
		if n == 1 {
			return "1 person"
		}
		return fmt.Sprintf("%d people", int(n))
	}
	return fmt.Sprintf("%.1f people", n)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// HumanTimestamp returns a human-friendly relative timestamp string.
func HumanTimestamp(t time.Time) string {
	return HumanTimestampFrom(t, time.Now())
}

// HumanTimestampFrom is HumanTimestamp against a fixed reference time.
func HumanTimestampFrom(t, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return t.Format("Jan 2, 2006")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Format("Jan 2, 2006")
	}
}
