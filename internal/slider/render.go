package slider

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// maxThumbInset is how far a thumb body sits inside its square frame.
const maxThumbInset = 2.0

// TrackShape describes the track and its highlighted sub-range in control
// coordinates.
type TrackShape struct {
	Frame         Rect
	CornerRadius  float64
	Fill          lipgloss.Color
	Highlight     Rect
	HighlightFill lipgloss.Color
}

// ThumbShape describes one thumb.
type ThumbShape struct {
	Frame        Rect
	Body         Rect
	CornerRadius float64
	Fill         lipgloss.Color
	Stroke       lipgloss.Color
	LineWidth    float64
	// Overlay is set while the thumb is dragged and drag highlighting is on.
	Overlay bool
}

// Rounded reports whether the corner radius reaches half the shorter side.
func (t ThumbShape) Rounded() bool {
	side := math.Min(t.Body.W, t.Body.H)
	return side > 0 && t.CornerRadius >= side/2
}

// Scene is everything a painter needs for one frame.
type Scene struct {
	Bounds Bounds
	Track  TrackShape
	Lower  ThumbShape
	Upper  ThumbShape
}

// TrackLayer draws the track. It reads styling and thumb positions through a
// non-owning pointer to the slider that owns it.
type TrackLayer struct {
	slider       *Slider
	frame        Rect
	needsDisplay bool
}

func (l *TrackLayer) setFrame(r Rect) {
	l.frame = r
	l.setNeedsDisplay()
}

func (l *TrackLayer) setNeedsDisplay() {
	l.needsDisplay = true
	l.slider.needsDisplay = true
}

// Draw returns the track shape for the current geometry.
func (l *TrackLayer) Draw() TrackShape {
	s := l.slider
	lower, upper := s.lowerPos, s.upperPos
	return TrackShape{
		Frame:         l.frame,
		CornerRadius:  l.frame.H * s.style.Curvaceousness / 2,
		Fill:          s.style.TrackTintColor,
		Highlight:     Rect{X: l.frame.X + lower, Y: l.frame.Y, W: math.Max(0, upper-lower), H: l.frame.H},
		HighlightFill: s.style.TrackHighlightTintColor,
	}
}

// ThumbLayer draws one thumb.
type ThumbLayer struct {
	slider       *Slider
	frame        Rect
	highlighted  bool
	strokeColor  lipgloss.Color
	lineWidth    float64
	needsDisplay bool
}

func (l *ThumbLayer) setFrame(r Rect) {
	l.frame = r
	l.setNeedsDisplay()
}

func (l *ThumbLayer) setNeedsDisplay() {
	l.needsDisplay = true
	l.slider.needsDisplay = true
}

func (l *ThumbLayer) setHighlighted(on bool) {
	if l.highlighted == on {
		return
	}
	l.highlighted = on
	l.setNeedsDisplay()
}

func (l *ThumbLayer) setStrokeColor(c lipgloss.Color) {
	l.strokeColor = c
	l.setNeedsDisplay()
}

func (l *ThumbLayer) setLineWidth(w float64) {
	l.lineWidth = w
	l.setNeedsDisplay()
}

// Highlighted reports whether the thumb is being dragged.
func (l *ThumbLayer) Highlighted() bool { return l.highlighted }

// Draw returns the thumb shape for the current geometry.
func (l *ThumbLayer) Draw() ThumbShape {
	s := l.slider
	inset := math.Min(maxThumbInset, math.Min(l.frame.W, l.frame.H)/4)
	body := l.frame.Inset(inset, inset)
	return ThumbShape{
		Frame:        l.frame,
		Body:         body,
		CornerRadius: body.H * s.style.Curvaceousness / 2,
		Fill:         s.style.ThumbTintColor,
		Stroke:       l.strokeColor,
		LineWidth:    l.lineWidth,
		Overlay:      l.highlighted && s.style.HighlightThumbsOnDrag,
	}
}

// NeedsDisplay reports whether a redraw has been requested since the last
// Display call.
func (s *Slider) NeedsDisplay() bool { return s.needsDisplay }

func (s *Slider) setNeedsDisplay() {
	s.track.needsDisplay = true
	s.lowerThumb.needsDisplay = true
	s.upperThumb.needsDisplay = true
	s.needsDisplay = true
}

// Scene builds the frame description without touching redraw flags.
func (s *Slider) Scene() Scene {
	return Scene{
		Bounds: s.bounds,
		Track:  s.track.Draw(),
		Lower:  s.lowerThumb.Draw(),
		Upper:  s.upperThumb.Draw(),
	}
}

// Display builds the frame description and clears all redraw requests.
func (s *Slider) Display() Scene {
	scene := s.Scene()
	s.track.needsDisplay = false
	s.lowerThumb.needsDisplay = false
	s.upperThumb.needsDisplay = false
	s.needsDisplay = false
	return scene
}
