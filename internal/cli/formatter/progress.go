package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░]  45%.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	pct = clamp01(pct)
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderBar renders value/maxValue as a run of filled blocks, rounded to
// the nearest block. A zero maxValue renders nothing.
func RenderBar(value, maxValue float64, width int, style lipgloss.Style) string {
	n := barCells(value, maxValue, width)
	if n == 0 {
		return ""
	}
	return style.Render(strings.Repeat(filledBlock, n))
}

func barCells(value, maxValue float64, width int) int {
	if maxValue <= 0 || value <= 0 || width <= 0 {
		return 0
	}
	n := int(math.Round(clamp01(value/maxValue) * float64(width)))
	return min(n, width)
}

func clamp01(f float64) float64 {
	switch {
	case f < 0 || math.IsNaN(f):
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
