package slider

import (
	"errors"
	"math"

	slidererrors "github.com/alexisbeaulieu97/rangeslider/pkg/errors"
)

var (
	// ErrEmptyRange is returned when a write would leave minimum >= maximum.
	ErrEmptyRange = errors.New("minimum must be below maximum")
	// ErrNonPositiveInterval is returned for an interval <= 0.
	ErrNonPositiveInterval = errors.New("interval must be greater than zero")
	// ErrNegativeGap is returned for a minimum gap below zero.
	ErrNegativeGap = errors.New("minimum gap must not be negative")
	// ErrNonFinite is returned for NaN or infinite configuration numbers.
	ErrNonFinite = errors.New("value must be a finite number")
)

// RangeConfig is the value-space configuration of a slider.
type RangeConfig struct {
	Minimum    float64
	Maximum    float64
	Interval   float64
	MinimumGap float64
}

// DefaultRangeConfig returns the unit range with interval and gap of one.
func DefaultRangeConfig() RangeConfig {
	return RangeConfig{Minimum: 0, Maximum: 1, Interval: 1, MinimumGap: 1}
}

// Range returns Maximum - Minimum.
func (c RangeConfig) Range() float64 {
	return c.Maximum - c.Minimum
}

// Validate checks the configuration invariants.
func (c RangeConfig) Validate() error {
	for _, f := range []struct {
		property string
		value    float64
	}{
		{"minimumValue", c.Minimum},
		{"maximumValue", c.Maximum},
		{"interval", c.Interval},
		{"minimumGap", c.MinimumGap},
	} {
		if !isFinite(f.value) {
			return slidererrors.NewRangeError(f.property, f.value, ErrNonFinite)
		}
	}
	if !(c.Minimum < c.Maximum) {
		return slidererrors.NewRangeError("minimumValue", c.Minimum, ErrEmptyRange)
	}
	if !(c.Interval > 0) {
		return slidererrors.NewRangeError("interval", c.Interval, ErrNonPositiveInterval)
	}
	if !(c.MinimumGap >= 0) {
		return slidererrors.NewRangeError("minimumGap", c.MinimumGap, ErrNegativeGap)
	}
	return nil
}

// RangeState holds the selected bounds.
type RangeState struct {
	Lower float64
	Upper float64
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func boundValue(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// clampLower bounds v to [Minimum, upper-gap]. NaN lands on Minimum. The
// final floor at Minimum wins when upper-gap has drifted below Minimum after
// a configuration change.
func (c RangeConfig) clampLower(v, upper float64) float64 {
	if math.IsNaN(v) {
		v = c.Minimum
	}
	v = boundValue(v, c.Minimum, upper-c.MinimumGap)
	if v < c.Minimum {
		return c.Minimum
	}
	return v
}

// clampUpper bounds v to [lower+gap, Maximum]. NaN lands on Maximum.
func (c RangeConfig) clampUpper(v, lower float64) float64 {
	if math.IsNaN(v) {
		v = c.Maximum
	}
	v = boundValue(v, lower+c.MinimumGap, c.Maximum)
	if v > c.Maximum {
		return c.Maximum
	}
	return v
}

// LowerValue returns the current lower bound.
func (s *Slider) LowerValue() float64 { return s.state.Lower }

// UpperValue returns the current upper bound.
func (s *Slider) UpperValue() float64 { return s.state.Upper }

// State returns a copy of the selected bounds.
func (s *Slider) State() RangeState { return s.state }

// SetLowerValue writes the lower bound clamped to [minimum, upper-gap].
// NaN is treated as minimum.
func (s *Slider) SetLowerValue(v float64) {
	s.state.Lower = s.cfg.clampLower(v, s.state.Upper)
	s.layout()
}

// SetUpperValue writes the upper bound clamped to [lower+gap, maximum].
// NaN is treated as maximum.
func (s *Slider) SetUpperValue(v float64) {
	s.state.Upper = s.cfg.clampUpper(v, s.state.Lower)
	s.layout()
}

// SetValues writes both bounds. The bound moving away from its partner is
// written first so that any valid pair is reached from any current pair.
func (s *Slider) SetValues(lower, upper float64) {
	if lower < s.state.Lower {
		s.state.Lower = s.cfg.clampLower(lower, s.state.Upper)
		s.state.Upper = s.cfg.clampUpper(upper, s.state.Lower)
	} else {
		s.state.Upper = s.cfg.clampUpper(upper, s.state.Lower)
		s.state.Lower = s.cfg.clampLower(lower, s.state.Upper)
	}
	s.layout()
}

// Range returns maximum - minimum.
func (s *Slider) Range() float64 { return s.cfg.Range() }

// Config returns the current value-space configuration.
func (s *Slider) Config() RangeConfig { return s.cfg }

// MinimumValue returns the lowest selectable value.
func (s *Slider) MinimumValue() float64 { return s.cfg.Minimum }

// MaximumValue returns the highest selectable value.
func (s *Slider) MaximumValue() float64 { return s.cfg.Maximum }

// Interval returns the snapping granularity.
func (s *Slider) Interval() float64 { return s.cfg.Interval }

// MinimumGap returns the smallest permitted distance between the bounds.
func (s *Slider) MinimumGap() float64 { return s.cfg.MinimumGap }

// The configuration setters below never re-clamp lower/upper: values left
// outside a narrowed range stay there until the next explicit write.

// SetMinimumValue changes the minimum. It fails without side effects when
// v is not below the current maximum.
func (s *Slider) SetMinimumValue(v float64) error {
	next := s.cfg
	next.Minimum = v
	return s.applyConfig(next)
}

// SetMaximumValue changes the maximum. It fails without side effects when
// v is not above the current minimum.
func (s *Slider) SetMaximumValue(v float64) error {
	next := s.cfg
	next.Maximum = v
	if isFinite(v) && !(next.Minimum < next.Maximum) {
		return slidererrors.NewRangeError("maximumValue", v, ErrEmptyRange)
	}
	return s.applyConfig(next)
}

// SetRange changes minimum and maximum together.
func (s *Slider) SetRange(minimum, maximum float64) error {
	next := s.cfg
	next.Minimum, next.Maximum = minimum, maximum
	return s.applyConfig(next)
}

// SetInterval changes the snapping granularity.
func (s *Slider) SetInterval(v float64) error {
	next := s.cfg
	next.Interval = v
	return s.applyConfig(next)
}

// SetMinimumGap changes the smallest permitted distance between the bounds.
func (s *Slider) SetMinimumGap(v float64) error {
	next := s.cfg
	next.MinimumGap = v
	return s.applyConfig(next)
}

func (s *Slider) applyConfig(next RangeConfig) error {
	if err := next.Validate(); err != nil {
		return err
	}
	s.cfg = next
	s.layout()
	return nil
}
