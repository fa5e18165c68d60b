package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/rangeslider/internal/slider"
)

func newPaintSlider(t *testing.T, width, height float64, style slider.Style) *slider.Slider {
	t.Helper()

	s, err := slider.New(slider.RangeConfig{Minimum: 0, Maximum: 100, Interval: 1, MinimumGap: 1}, style)
	require.NoError(t, err)
	s.SetBounds(slider.Bounds{Width: width, Height: height})
	return s
}

func paintedRows(s *slider.Slider) []string {
	return strings.Split(ansi.Strip(Paint(s.Display())), "\n")
}

func TestPaintSingleRow(t *testing.T) {
	t.Parallel()

	s := newPaintSlider(t, 21, 1, slider.DefaultStyle())
	s.SetValues(25, 75)

	rows := paintedRows(s)
	require.Len(t, rows, 1)
	require.Equal(t, "╶────●━━━━━━━━━●────╴", rows[0])
	require.False(t, s.NeedsDisplay())
}

func TestPaintSquareCorners(t *testing.T) {
	t.Parallel()

	style := slider.DefaultStyle()
	style.Curvaceousness = 0
	s := newPaintSlider(t, 21, 1, style)
	s.SetValues(25, 75)

	require.Equal(t, []string{"─────■━━━━━━━━━■─────"}, paintedRows(s))
}

func TestPaintOutlinedThumbs(t *testing.T) {
	t.Parallel()

	s := newPaintSlider(t, 30, 5, slider.DefaultStyle())

	rows := paintedRows(s)
	require.Len(t, rows, 5)
	require.Equal(t, strings.Repeat(" ", 30), rows[0])
	require.True(t, strings.HasPrefix(rows[1], " ╭─╮"))
	require.True(t, strings.HasSuffix(rows[1], "╭─╮ "))
	require.True(t, strings.HasPrefix(rows[2], " │ │"))
	require.Contains(t, rows[2], "━━━")
	require.True(t, strings.HasPrefix(rows[3], " ╰─╯"))
	require.Equal(t, strings.Repeat(" ", 30), rows[4])
}

func TestPaintWithoutBorderFillsThumb(t *testing.T) {
	t.Parallel()

	style := slider.DefaultStyle()
	style.ThumbBorderWidth = 0
	s := newPaintSlider(t, 30, 5, style)

	rows := paintedRows(s)
	require.NotContains(t, rows[1], "╭")
	require.NotContains(t, rows[3], "╯")
}

func TestPaintEmptyBounds(t *testing.T) {
	t.Parallel()

	s := newPaintSlider(t, 0, 0, slider.DefaultStyle())
	require.Empty(t, Paint(s.Display()))
}

func TestOverlayDarkensHexColors(t *testing.T) {
	t.Parallel()

	require.Equal(t, lipgloss.Color("#e6e6e6"), overlay("#FFFFFF"))
	require.Equal(t, lipgloss.Color("#000000"), overlay("#000000"))
	require.Equal(t, lipgloss.Color("205"), overlay("205"))
}

func TestSpans(t *testing.T) {
	t.Parallel()

	lo, hi := coverSpan(0.5, 20)
	require.Equal(t, 0, lo)
	require.Equal(t, 21, hi)

	lo, hi = coverSpan(3, 0)
	require.Equal(t, lo, hi)

	lo, hi = centerSpan(1.25, 2.5)
	require.Equal(t, 1, lo)
	require.Equal(t, 4, hi)

	lo, hi = centerSpan(5.25, 0.1)
	require.Equal(t, 5, lo)
	require.Equal(t, 6, hi)
}
