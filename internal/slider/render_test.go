package slider

import (
	"math"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestSetCurvaceousnessClamps(t *testing.T) {
	t.Parallel()

	s := newTestSlider(t)

	s.SetCurvaceousness(1.5)
	require.Equal(t, 1.0, s.Curvaceousness())

	s.SetCurvaceousness(-0.2)
	require.Equal(t, 0.0, s.Curvaceousness())

	s.SetCurvaceousness(0.4)
	require.Equal(t, 0.4, s.Curvaceousness())
}

func TestNewClampsStyle(t *testing.T) {
	t.Parallel()

	style := DefaultStyle()
	style.Curvaceousness = 3
	style.TrackHeight = -1
	s, err := New(DefaultRangeConfig(), style)
	require.NoError(t, err)
	require.Equal(t, 1.0, s.Curvaceousness())
	require.Equal(t, 0.0, s.TrackHeight())
}

func TestNonFiniteSizesBecomeZero(t *testing.T) {
	t.Parallel()

	style := DefaultStyle()
	style.TrackHeight = math.Inf(1)
	style.ThumbBorderWidth = math.NaN()
	s, err := New(DefaultRangeConfig(), style)
	require.NoError(t, err)
	require.Equal(t, 0.0, s.TrackHeight())
	require.Equal(t, 0.0, s.ThumbBorderWidth())

	s.SetTrackHeight(math.NaN())
	require.Equal(t, 0.0, s.TrackHeight())
	s.SetThumbBorderWidth(math.Inf(1))
	require.Equal(t, 0.0, s.ThumbBorderWidth())
	require.Equal(t, 0.0, s.LowerThumb().Draw().LineWidth)
}

func TestSceneGeometry(t *testing.T) {
	t.Parallel()

	s := newTestSlider(t)
	scene := s.Scene()

	require.Equal(t, Bounds{Width: 210, Height: 10}, scene.Bounds)
	require.Equal(t, Rect{X: 5, Y: 4.5, W: 200, H: 1}, scene.Track.Frame)
	require.Equal(t, 0.5, scene.Track.CornerRadius)
	require.Equal(t, Rect{X: 45, Y: 4.5, W: 120, H: 1}, scene.Track.Highlight)
	require.Equal(t, lipgloss.Color("#E6E6E6"), scene.Track.Fill)
	require.Equal(t, lipgloss.Color("#0073F0"), scene.Track.HighlightFill)

	require.Equal(t, Rect{X: 40, Y: 0, W: 10, H: 10}, scene.Lower.Frame)
	require.Equal(t, Rect{X: 42, Y: 2, W: 6, H: 6}, scene.Lower.Body)
	require.Equal(t, 3.0, scene.Lower.CornerRadius)
	require.True(t, scene.Lower.Rounded())
	require.Equal(t, Rect{X: 162, Y: 2, W: 6, H: 6}, scene.Upper.Body)
	require.Equal(t, lipgloss.Color("#808080"), scene.Upper.Stroke)
	require.Equal(t, 0.5, scene.Upper.LineWidth)
}

func TestSceneSquareCorners(t *testing.T) {
	t.Parallel()

	s := newTestSlider(t)
	s.SetCurvaceousness(0)
	scene := s.Scene()

	require.Zero(t, scene.Track.CornerRadius)
	require.Zero(t, scene.Lower.CornerRadius)
	require.False(t, scene.Lower.Rounded())
}

func TestSmallThumbInset(t *testing.T) {
	t.Parallel()

	s := newTestSlider(t)
	s.SetBounds(Bounds{Width: 101, Height: 1})
	scene := s.Scene()

	require.Equal(t, Rect{X: 20.25, Y: 0.25, W: 0.5, H: 0.5}, scene.Lower.Body)
	require.True(t, scene.Lower.Rounded())
}

func TestOverlayOnlyWhileDraggingWithHighlightEnabled(t *testing.T) {
	t.Parallel()

	s := newTestSlider(t)

	require.True(t, s.BeginTracking(Point{X: 45, Y: 5}))
	require.False(t, s.Scene().Lower.Overlay)

	s.SetHighlightThumbsOnDrag(true)
	scene := s.Scene()
	require.True(t, scene.Lower.Overlay)
	require.False(t, scene.Upper.Overlay)

	s.EndTracking()
	require.False(t, s.Scene().Lower.Overlay)
}

func TestRedrawRequestsAreCoalesced(t *testing.T) {
	t.Parallel()

	s := newTestSlider(t)
	require.True(t, s.NeedsDisplay())

	s.SetLowerValue(30)
	s.SetUpperValue(70)
	s.SetThumbTintColor(lipgloss.Color("#FF0000"))
	require.True(t, s.NeedsDisplay())

	scene := s.Display()
	require.False(t, s.NeedsDisplay())
	require.Equal(t, lipgloss.Color("#FF0000"), scene.Lower.Fill)
	require.Equal(t, Rect{X: 65, Y: 4.5, W: 80, H: 1}, scene.Track.Highlight)
}

func TestStyleSettersRequestRedraw(t *testing.T) {
	t.Parallel()

	setters := map[string]func(*Slider){
		"track tint":        func(s *Slider) { s.SetTrackTintColor(lipgloss.Color("#111111")) },
		"highlight tint":    func(s *Slider) { s.SetTrackHighlightTintColor(lipgloss.Color("#222222")) },
		"track height":      func(s *Slider) { s.SetTrackHeight(3) },
		"thumb tint":        func(s *Slider) { s.SetThumbTintColor(lipgloss.Color("#333333")) },
		"border color":      func(s *Slider) { s.SetThumbBorderColor(lipgloss.Color("#444444")) },
		"border width":      func(s *Slider) { s.SetThumbBorderWidth(2) },
		"thumb height":      func(s *Slider) { s.SetThumbHeight(7) },
		"highlight on drag": func(s *Slider) { s.SetHighlightThumbsOnDrag(true) },
		"curvaceousness":    func(s *Slider) { s.SetCurvaceousness(0.5) },
	}

	for name, set := range setters {
		s := newTestSlider(t)
		s.Display()
		set(s)
		require.True(t, s.NeedsDisplay(), name)
	}
}

func TestBorderSettersReachThumbLayers(t *testing.T) {
	t.Parallel()

	s := newTestSlider(t)
	s.SetThumbBorderColor(lipgloss.Color("#123456"))
	s.SetThumbBorderWidth(1.5)
	s.SetTrackHeight(3)

	scene := s.Scene()
	require.Equal(t, lipgloss.Color("#123456"), scene.Lower.Stroke)
	require.Equal(t, lipgloss.Color("#123456"), scene.Upper.Stroke)
	require.Equal(t, 1.5, scene.Lower.LineWidth)
	require.Equal(t, Rect{X: 5, Y: 3.5, W: 200, H: 3}, scene.Track.Frame)
	require.Equal(t, 1.5, scene.Track.CornerRadius)

	s.SetThumbHeight(7)
	require.Equal(t, 7.0, s.ThumbHeight())
}
