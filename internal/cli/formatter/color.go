package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dmaicboard/internal/domain"
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

// StatusColor returns the style used for an operational status.
func StatusColor(status domain.OperationalStatus) lipgloss.Style {
	switch status {
	case domain.StatusCompleted:
		return StyleGreen
	case domain.StatusInProgress:
		return StyleBlue
	case domain.StatusNotScheduled:
		return StyleRed
	default:
		return StyleDim
	}
}

// StatusPill returns a colored indicator such as "✔ Completed".
func StatusPill(status domain.OperationalStatus) string {
	var icon string
	switch status {
	case domain.StatusCompleted:
		icon = "✔ "
	case domain.StatusInProgress:
		icon = "● "
	case domain.StatusNotScheduled:
		icon = "○ "
	}
	return StatusColor(status).Render(icon + string(status))
}

// CompletionPill renders the completion label of a completed activity.
// Nil renders as "--".
func CompletionPill(label *domain.CompletionLabel) string {
	if label == nil {
		return Dim("--")
	}
	switch *label {
	case domain.CompletionOnTime:
		return StyleGreen.Render("● On time")
	case domain.CompletionLate:
		return StyleRed.Render("▲ Late")
	default:
		return StyleYellow.Render("? " + string(*label))
	}
}

// PhaseLabel colors known phases blue and unrecognized labels yellow.
func PhaseLabel(p domain.Phase) string {
	switch {
	case p == "":
		return Dim("(no phase)")
	case p.Known():
		return StyleBlue.Render(string(p))
	default:
		return StyleYellow.Render(string(p))
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
