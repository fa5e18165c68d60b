package slider

// Slider is a dual-thumb range control. It owns its track and thumb layers;
// the layers point back at it without owning it.
type Slider struct {
	cfg    RangeConfig
	state  RangeState
	style  Style
	bounds Bounds

	lowerPos float64
	upperPos float64

	track      *TrackLayer
	lowerThumb *ThumbLayer
	upperThumb *ThumbLayer

	session      *DragSession
	notifier     Notifier
	needsDisplay bool
}

// New builds a slider spanning the whole configured range. It rejects
// configurations with minimum >= maximum, interval <= 0, a negative gap or
// any non-finite number.
// Bounds start at zero; the host sets them with SetBounds.
func New(cfg RangeConfig, style Style) (*Slider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	style.Curvaceousness = ClampCurvaceousness(style.Curvaceousness)
	style.TrackHeight = nonNegative(style.TrackHeight)
	style.ThumbBorderWidth = nonNegative(style.ThumbBorderWidth)

	s := &Slider{
		cfg:   cfg,
		state: RangeState{Lower: cfg.Minimum, Upper: cfg.Maximum},
		style: style,
	}
	s.track = &TrackLayer{slider: s}
	s.lowerThumb = &ThumbLayer{slider: s, strokeColor: style.ThumbBorderColor, lineWidth: style.ThumbBorderWidth}
	s.upperThumb = &ThumbLayer{slider: s, strokeColor: style.ThumbBorderColor, lineWidth: style.ThumbBorderWidth}
	s.layout()
	return s, nil
}

// Observe registers an observer for value-changed and interaction-ended
// events. The returned func unregisters it.
func (s *Slider) Observe(fn Observer) func() {
	return s.notifier.Observe(fn)
}

// LowerThumb returns the lower thumb layer.
func (s *Slider) LowerThumb() *ThumbLayer { return s.lowerThumb }

// UpperThumb returns the upper thumb layer.
func (s *Slider) UpperThumb() *ThumbLayer { return s.upperThumb }
