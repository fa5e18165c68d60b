package config

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/rangeslider/internal/slider"
)

// Config represents a slider configuration document.
type Config struct {
	Range  RangeSettings  `yaml:"range"`
	Style  StyleSettings  `yaml:"style,omitempty"`
	Layout LayoutSettings `yaml:"layout,omitempty"`
}

// RangeSettings holds the value space. Lower and Upper default to the ends
// of the range when omitted.
type RangeSettings struct {
	Minimum    float64  `yaml:"minimum" validate:"finite"`
	Maximum    float64  `yaml:"maximum" validate:"finite,gtfield=Minimum"`
	Lower      *float64 `yaml:"lower,omitempty" validate:"omitempty,finite"`
	Upper      *float64 `yaml:"upper,omitempty" validate:"omitempty,finite"`
	Interval   float64  `yaml:"interval" validate:"finite,gt=0"`
	MinimumGap float64  `yaml:"minimum_gap,omitempty" validate:"finite,gte=0"`
}

// StyleSettings mirrors slider.Style with YAML-friendly types.
// Curvaceousness only has to be finite; the slider clamps it to [0, 1].
type StyleSettings struct {
	TrackTintColor          string  `yaml:"track_tint_color,omitempty" validate:"omitempty,hexcolor"`
	TrackHighlightTintColor string  `yaml:"track_highlight_tint_color,omitempty" validate:"omitempty,hexcolor"`
	TrackHeight             float64 `yaml:"track_height,omitempty" validate:"finite,gte=0"`
	ThumbTintColor          string  `yaml:"thumb_tint_color,omitempty" validate:"omitempty,hexcolor"`
	ThumbBorderColor        string  `yaml:"thumb_border_color,omitempty" validate:"omitempty,hexcolor"`
	ThumbBorderWidth        float64 `yaml:"thumb_border_width,omitempty" validate:"finite,gte=0"`
	ThumbHeight             float64 `yaml:"thumb_height,omitempty" validate:"finite,gte=0"`
	HighlightThumbsOnDrag   bool    `yaml:"highlight_thumbs_on_drag,omitempty"`
	Curvaceousness          float64 `yaml:"curvaceousness" validate:"finite"`
}

// LayoutSettings sizes the control in terminal cells. A zero width means
// "fit the terminal".
type LayoutSettings struct {
	Width  int `yaml:"width,omitempty" validate:"omitempty,min=3,max=1000"`
	Height int `yaml:"height,omitempty" validate:"min=1,max=50"`
}

// Default returns the configuration used when no file is given: a 0..100
// range with 20..80 selected.
func Default() *Config {
	lower, upper := 20.0, 80.0
	return &Config{
		Range: RangeSettings{
			Minimum:    0,
			Maximum:    100,
			Lower:      &lower,
			Upper:      &upper,
			Interval:   1,
			MinimumGap: 1,
		},
		Style:  DefaultStyleSettings(),
		Layout: LayoutSettings{Height: 1},
	}
}

// DefaultStyleSettings converts slider.DefaultStyle into document form.
func DefaultStyleSettings() StyleSettings {
	st := slider.DefaultStyle()
	return StyleSettings{
		TrackTintColor:          string(st.TrackTintColor),
		TrackHighlightTintColor: string(st.TrackHighlightTintColor),
		TrackHeight:             st.TrackHeight,
		ThumbTintColor:          string(st.ThumbTintColor),
		ThumbBorderColor:        string(st.ThumbBorderColor),
		ThumbBorderWidth:        st.ThumbBorderWidth,
		ThumbHeight:             st.ThumbHeight,
		HighlightThumbsOnDrag:   st.HighlightThumbsOnDrag,
		Curvaceousness:          st.Curvaceousness,
	}
}

// RangeConfig extracts the slider value-space configuration.
func (r RangeSettings) RangeConfig() slider.RangeConfig {
	return slider.RangeConfig{
		Minimum:    r.Minimum,
		Maximum:    r.Maximum,
		Interval:   r.Interval,
		MinimumGap: r.MinimumGap,
	}
}

// Selection returns the initial lower and upper bounds.
func (r RangeSettings) Selection() (float64, float64) {
	lower, upper := r.Minimum, r.Maximum
	if r.Lower != nil {
		lower = *r.Lower
	}
	if r.Upper != nil {
		upper = *r.Upper
	}
	return lower, upper
}

// SliderStyle converts the document style into slider.Style.
func (s StyleSettings) SliderStyle() slider.Style {
	return slider.Style{
		TrackTintColor:          lipgloss.Color(s.TrackTintColor),
		TrackHighlightTintColor: lipgloss.Color(s.TrackHighlightTintColor),
		TrackHeight:             s.TrackHeight,
		ThumbTintColor:          lipgloss.Color(s.ThumbTintColor),
		ThumbBorderColor:        lipgloss.Color(s.ThumbBorderColor),
		ThumbBorderWidth:        s.ThumbBorderWidth,
		ThumbHeight:             s.ThumbHeight,
		HighlightThumbsOnDrag:   s.HighlightThumbsOnDrag,
		Curvaceousness:          s.Curvaceousness,
	}
}
