package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/blueprint/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "138-246h", FormatHours(domain.HourRange{Min: 138, Max: 246}))
	assert.Equal(t, "80h", FormatHours(domain.HourRange{Min: 80, Max: 80}))
}

func TestFormatTeamSize(t *testing.T) {
	assert.Equal(t, "1 person", FormatTeamSize(1))
	assert.Equal(t, "3 people", FormatTeamSize(3))
	assert.Equal(t, "2.5 people", FormatTeamSize(2.5))
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Just now", HumanTimestampFrom(now.Add(-20*time.Second), now))
	assert.Equal(t, "5m ago", HumanTimestampFrom(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", HumanTimestampFrom(now.Add(-3*time.Hour), now))
	assert.Equal(t, "Mar 1, 2026", HumanTimestampFrom(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), now))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"ID", "LABEL"}, [][]string{
		{"auth", "user authentication"},
		{"payments", "payment processing"},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	// The label column starts at the same offset on every data row.
	assert.Equal(t, strings.Index(lines[2], "user"), strings.Index(lines[3], "payment processing"))
}

func TestRenderTableAligned_RightAlignsNumbers(t *testing.T) {
	out := RenderTableAligned([]string{"NAME", "COUNT"}, [][]string{
		{"a", "5"},
		{"b", "120"},
	}, map[int]bool{1: true})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, lipgloss.Width(lines[2]), lipgloss.Width(lines[3]))
	assert.True(t, strings.HasSuffix(lines[2], "    5"))
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestRenderTree(t *testing.T) {
	out := RenderTree([]TreeItem{
		{Title: "MVP", Detail: "$10,000"},
		{Title: "auth", Level: 1, Detail: "30-60h"},
		{Title: "payments", Level: 1, IsLast: true, Detail: "40-80h"},
	})

	assert.Contains(t, out, "├─ auth")
	assert.Contains(t, out, "└─ payments")
	assert.Contains(t, out, "40-80h")
	assert.Empty(t, RenderTree(nil))
}

func TestRenderProgress(t *testing.T) {
	assert.Contains(t, RenderProgress(0.5, 10), " 50%")
	assert.Contains(t, RenderProgress(2, 10), "100%")
	assert.Contains(t, RenderProgress(-1, 10), "  0%")
	assert.Equal(t, 4, lipgloss.Width(RenderCompactBar(0.5, 4, true)))
}
