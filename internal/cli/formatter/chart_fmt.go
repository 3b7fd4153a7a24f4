package formatter

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/dmaicboard/internal/chart"
	"github.com/charmbracelet/lipgloss"
)

// seriesColors maps chart color names onto the terminal palette.
var seriesColors = map[string]lipgloss.Color{
	"orange":     ColorHeader,
	"green":      ColorGreen,
	"darkgreen":  ColorGreen,
	"royalblue":  ColorBlue,
	"lightcoral": ColorPurple,
	"darkred":    ColorRed,
}

func seriesStyle(s chart.Series) lipgloss.Style {
	c, ok := seriesColors[s.Color]
	if !ok {
		c = ColorFg
	}
	return lipgloss.NewStyle().Foreground(c)
}

// FormatChart draws a chart spec as horizontal terminal bars. Overlay
// charts get one bar per series, scaled to the largest value; stacked
// charts get one segmented bar per category, scaled to the largest stack.
func FormatChart(spec chart.Spec, width int) string {
	if width < 10 {
		width = 10
	}
	var b strings.Builder
	b.WriteString(Header(spec.Title))
	b.WriteString("\n")

	if spec.Empty() {
		note := spec.Annotation
		if note == "" {
			note = "No data"
		}
		b.WriteString(Dim(note) + "\n")
		return b.String()
	}

	labelWidth := 0
	for _, c := range spec.Categories {
		labelWidth = max(labelWidth, lipgloss.Width(c))
	}
	for _, s := range spec.Series {
		labelWidth = max(labelWidth, lipgloss.Width(s.Name)+2)
	}

	if spec.Mode == chart.BarStack {
		writeStacked(&b, spec, labelWidth, width)
	} else {
		writeOverlay(&b, spec, labelWidth, width)
	}

	legend := make([]string, len(spec.Series))
	for i, s := range spec.Series {
		legend[i] = seriesStyle(s).Render(filledBlock) + " " + s.Name
	}
	b.WriteString(Dim(spec.YTitle) + "  " + strings.Join(legend, "  ") + "\n")
	return b.String()
}

func writeOverlay(b *strings.Builder, spec chart.Spec, labelWidth, width int) {
	var top float64
	for _, s := range spec.Series {
		for _, v := range s.Values {
			top = max(top, v)
		}
	}
	for i, c := range spec.Categories {
		b.WriteString(Bold(c) + "\n")
		for _, s := range spec.Series {
			v := valueAt(s, i)
			b.WriteString(padRight("  "+Dim(s.Name), labelWidth+2))
			b.WriteString(RenderBar(v, top, width, seriesStyle(s)))
			b.WriteString(" " + formatValue(v) + "\n")
		}
	}
}

func writeStacked(b *strings.Builder, spec chart.Spec, labelWidth, width int) {
	var top float64
	for i := range spec.Categories {
		var sum float64
		for _, s := range spec.Series {
			sum += valueAt(s, i)
		}
		top = max(top, sum)
	}
	for i, c := range spec.Categories {
		b.WriteString(padRight(c, labelWidth+2))
		parts := make([]string, 0, len(spec.Series))
		for _, s := range spec.Series {
			v := valueAt(s, i)
			b.WriteString(RenderBar(v, top, width, seriesStyle(s)))
			parts = append(parts, formatValue(v))
		}
		b.WriteString(" " + Dim(strings.Join(parts, " / ")) + "\n")
	}
}

func valueAt(s chart.Series, i int) float64 {
	if i < len(s.Values) {
		return s.Values[i]
	}
	return 0
}

func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
