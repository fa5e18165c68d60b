package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// labelWidth is the cell width of the "%3.0f%%" label plus its trailing space.
const labelWidth = len("100%") + 1

// Coverage renders how much of the full range the selection spans.
type Coverage struct {
	bar progress.Model
}

// NewCoverage creates a coverage line of the given total width in cells,
// label included.
func NewCoverage(width int) Coverage {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = max(width-labelWidth, 1)
	return Coverage{bar: bar}
}

// Ratio returns the selected share of [minimum, maximum], clamped to [0, 1].
func Ratio(lower, upper, minimum, maximum float64) float64 {
	span := maximum - minimum
	if span <= 0 || math.IsNaN(span) {
		return 0
	}
	r := (upper - lower) / span
	return math.Max(0, math.Min(1, r))
}

// View renders the bar for the given selection.
func (c Coverage) View(lower, upper, minimum, maximum float64) string {
	ratio := Ratio(lower, upper, minimum, maximum)
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%3.0f%%", ratio*100))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", c.bar.ViewAs(ratio))
}
