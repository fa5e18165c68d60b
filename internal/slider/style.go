package slider

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Style holds the visual attributes of a slider. Changing any of them only
// requests a redraw, apart from TrackHeight which moves the track frame.
type Style struct {
	TrackTintColor          lipgloss.Color
	TrackHighlightTintColor lipgloss.Color
	TrackHeight             float64
	ThumbTintColor          lipgloss.Color
	ThumbBorderColor        lipgloss.Color
	ThumbBorderWidth        float64
	ThumbHeight             float64
	HighlightThumbsOnDrag   bool
	Curvaceousness          float64
}

// DefaultStyle returns the stock palette: light grey track, blue highlight,
// white thumbs with a grey border, fully rounded corners.
func DefaultStyle() Style {
	return Style{
		TrackTintColor:          lipgloss.Color("#E6E6E6"),
		TrackHighlightTintColor: lipgloss.Color("#0073F0"),
		TrackHeight:             1,
		ThumbTintColor:          lipgloss.Color("#FFFFFF"),
		ThumbBorderColor:        lipgloss.Color("#808080"),
		ThumbBorderWidth:        0.5,
		ThumbHeight:             5,
		Curvaceousness:          1,
	}
}

// nonNegative floors v at zero and maps NaN and infinities to zero.
func nonNegative(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	return math.Max(0, v)
}

// ClampCurvaceousness bounds c to [0, 1].
func ClampCurvaceousness(c float64) float64 {
	if math.IsNaN(c) {
		return 0
	}
	return math.Max(0, math.Min(1, c))
}

// Style returns a copy of the current styling attributes.
func (s *Slider) Style() Style { return s.style }

// TrackTintColor returns the color of the unselected track.
func (s *Slider) TrackTintColor() lipgloss.Color { return s.style.TrackTintColor }

// SetTrackTintColor changes the color of the unselected track.
func (s *Slider) SetTrackTintColor(c lipgloss.Color) {
	s.style.TrackTintColor = c
	s.track.setNeedsDisplay()
}

// TrackHighlightTintColor returns the color of the selected sub-range.
func (s *Slider) TrackHighlightTintColor() lipgloss.Color { return s.style.TrackHighlightTintColor }

// SetTrackHighlightTintColor changes the color of the selected sub-range.
func (s *Slider) SetTrackHighlightTintColor(c lipgloss.Color) {
	s.style.TrackHighlightTintColor = c
	s.track.setNeedsDisplay()
}

// TrackHeight returns the track thickness in cells.
func (s *Slider) TrackHeight() float64 { return s.style.TrackHeight }

// SetTrackHeight changes the track thickness. Negative or non-finite
// heights become zero.
func (s *Slider) SetTrackHeight(h float64) {
	s.style.TrackHeight = nonNegative(h)
	s.layout()
}

// ThumbTintColor returns the thumb fill color.
func (s *Slider) ThumbTintColor() lipgloss.Color { return s.style.ThumbTintColor }

// SetThumbTintColor changes the thumb fill color.
func (s *Slider) SetThumbTintColor(c lipgloss.Color) {
	s.style.ThumbTintColor = c
	s.lowerThumb.setNeedsDisplay()
	s.upperThumb.setNeedsDisplay()
}

// ThumbBorderColor returns the thumb stroke color.
func (s *Slider) ThumbBorderColor() lipgloss.Color { return s.style.ThumbBorderColor }

// SetThumbBorderColor changes the stroke color of both thumbs.
func (s *Slider) SetThumbBorderColor(c lipgloss.Color) {
	s.style.ThumbBorderColor = c
	s.lowerThumb.setStrokeColor(c)
	s.upperThumb.setStrokeColor(c)
}

// ThumbBorderWidth returns the thumb stroke width.
func (s *Slider) ThumbBorderWidth() float64 { return s.style.ThumbBorderWidth }

// SetThumbBorderWidth changes the stroke width of both thumbs.
func (s *Slider) SetThumbBorderWidth(w float64) {
	w = nonNegative(w)
	s.style.ThumbBorderWidth = w
	s.lowerThumb.setLineWidth(w)
	s.upperThumb.setLineWidth(w)
}

// ThumbHeight returns the stored thumb height attribute.
func (s *Slider) ThumbHeight() float64 { return s.style.ThumbHeight }

// SetThumbHeight stores the thumb height attribute. Thumb frames are sized
// from the control height, so this only requests a redraw.
func (s *Slider) SetThumbHeight(h float64) {
	s.style.ThumbHeight = h
	s.lowerThumb.setNeedsDisplay()
	s.upperThumb.setNeedsDisplay()
}

// HighlightThumbsOnDrag reports whether a dragged thumb gets an overlay.
func (s *Slider) HighlightThumbsOnDrag() bool { return s.style.HighlightThumbsOnDrag }

// SetHighlightThumbsOnDrag toggles the drag overlay.
func (s *Slider) SetHighlightThumbsOnDrag(on bool) {
	s.style.HighlightThumbsOnDrag = on
	s.layout()
}

// Curvaceousness returns the corner rounding factor in [0, 1].
func (s *Slider) Curvaceousness() float64 { return s.style.Curvaceousness }

// SetCurvaceousness stores c clamped to [0, 1].
func (s *Slider) SetCurvaceousness(c float64) {
	s.style.Curvaceousness = ClampCurvaceousness(c)
	s.track.setNeedsDisplay()
	s.lowerThumb.setNeedsDisplay()
	s.upperThumb.setNeedsDisplay()
}
