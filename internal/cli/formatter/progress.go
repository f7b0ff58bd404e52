package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░] 45% for a fraction in [0, 1].
// Values outside the range are clamped.
func RenderProgress(pct float64, width int) string {
	return fmt.Sprintf("[%s] %3.0f%%", RenderCompactBar(pct, width, false), clamp01(pct)*100)
}

// RenderCompactBar renders only the blocks of a bar. Colors follow the fill:
// green above two thirds, yellow above one third, red below. A dimmed bar
// is uncolored.
func RenderCompactBar(pct float64, width int, dim bool) string {
	pct = clamp01(pct)
	width = max(width, 2)

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	switch {
	case dim:
		return StyleDim.Render(bar)
	case pct < 0.33:
		return StyleRed.Render(bar)
	case pct < 0.66:
		return StyleYellow.Render(bar)
	default:
		return StyleGreen.Render(bar)
	}
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
