package slider

import (
	"math"

	"github.com/shopspring/decimal"
)

// Point is a location in control-local cell coordinates.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle in control-local cell coordinates.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Contains reports whether p lies in the half-open rectangle [X, X+W) x [Y, Y+H).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// Inset shrinks the rectangle by dx on the left and right and dy on the top
// and bottom. Sizes never go negative.
func (r Rect) Inset(dx, dy float64) Rect {
	out := Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
	if out.W < 0 {
		out.X, out.W = r.X+r.W/2, 0
	}
	if out.H < 0 {
		out.Y, out.H = r.Y+r.H/2, 0
	}
	return out
}

// Bounds is the size of the control frame in cells.
type Bounds struct {
	Width  float64
	Height float64
}

// Mapper converts between value space and pixel space along a track of
// TrackWidth cells.
type Mapper struct {
	Minimum    float64
	Maximum    float64
	Interval   float64
	TrackWidth float64
}

// Range returns Maximum - Minimum.
func (m Mapper) Range() float64 { return m.Maximum - m.Minimum }

// Step is the number of cells covered by one interval.
func (m Mapper) Step() float64 {
	if m.Range() <= 0 {
		return 0
	}
	return m.TrackWidth * m.Interval / m.Range()
}

// PixelForValue maps v onto the track. An empty range maps everything to 0.
func (m Mapper) PixelForValue(v float64) float64 {
	r := m.Range()
	if r <= 0 {
		return 0
	}
	return m.TrackWidth * (v - m.Minimum) / r
}

// ValueForPixel maps a track offset back to a value snapped to the interval
// grid anchored at Minimum. Ties round half away from zero. The grid
// multiplication is carried out in decimal so that 3 steps of 0.1 yield 0.3.
func (m Mapper) ValueForPixel(x float64) float64 {
	step := m.Step()
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return m.Minimum
	}
	n := math.Round(x / step)
	v, _ := decimal.NewFromFloat(m.Minimum).
		Add(decimal.NewFromFloat(n).Mul(decimal.NewFromFloat(m.Interval))).
		Float64()
	return v
}

func (s *Slider) mapper() Mapper {
	return Mapper{
		Minimum:    s.cfg.Minimum,
		Maximum:    s.cfg.Maximum,
		Interval:   s.cfg.Interval,
		TrackWidth: s.TrackWidth(),
	}
}

// Mapper returns the value/pixel mapper for the current bounds.
func (s *Slider) Mapper() Mapper { return s.mapper() }

// Bounds returns the control frame size.
func (s *Slider) Bounds() Bounds { return s.bounds }

// SetBounds changes the control frame size and relays out everything.
func (s *Slider) SetBounds(b Bounds) {
	s.bounds = b
	s.layout()
}

// ThumbWidth is the side of a thumb's square frame: the control height.
func (s *Slider) ThumbWidth() float64 { return s.bounds.Height }

func (s *Slider) thumbOffset() float64 { return s.ThumbWidth() / 2 }

// TrackWidth is the control width minus one thumb width, floored at zero.
func (s *Slider) TrackWidth() float64 {
	return math.Max(0, s.bounds.Width-s.ThumbWidth())
}

// TrackFrame returns the track rectangle in control coordinates.
func (s *Slider) TrackFrame() Rect {
	return Rect{
		X: s.thumbOffset(),
		Y: (s.bounds.Height - s.style.TrackHeight) / 2,
		W: s.TrackWidth(),
		H: s.style.TrackHeight,
	}
}

// LowerThumbPosition is the derived pixel position of the lower thumb.
func (s *Slider) LowerThumbPosition() float64 { return s.lowerPos }

// UpperThumbPosition is the derived pixel position of the upper thumb.
func (s *Slider) UpperThumbPosition() float64 { return s.upperPos }

// LowerThumbFrame returns the lower thumb's square frame.
func (s *Slider) LowerThumbFrame() Rect { return s.lowerThumb.frame }

// UpperThumbFrame returns the upper thumb's square frame.
func (s *Slider) UpperThumbFrame() Rect { return s.upperThumb.frame }

// layout recomputes derived positions and layer frames, then requests a
// redraw of every layer.
func (s *Slider) layout() {
	m := s.mapper()
	s.lowerPos = m.PixelForValue(s.state.Lower)
	s.upperPos = m.PixelForValue(s.state.Upper)

	side := s.ThumbWidth()
	s.track.setFrame(s.TrackFrame())
	s.lowerThumb.setFrame(Rect{X: s.lowerPos, Y: 0, W: side, H: side})
	s.upperThumb.setFrame(Rect{X: s.upperPos, Y: 0, W: side, H: side})
	s.setNeedsDisplay()
}
