package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/rangeslider/internal/slider"
)

// DefaultWidth is used when neither the document nor the terminal gives a width.
const DefaultWidth = 60

// ResolveWidth picks the control width: the configured width when set,
// otherwise the available width, otherwise DefaultWidth.
func (c *Config) ResolveWidth(available int) int {
	switch {
	case c.Layout.Width > 0:
		return c.Layout.Width
	case available > 0:
		return available
	default:
		return DefaultWidth
	}
}

// NewSlider builds a slider from the document, sized width x layout.height
// cells, with the configured selection applied.
func (c *Config) NewSlider(width int) (*slider.Slider, error) {
	s, err := slider.New(c.Range.RangeConfig(), c.Style.SliderStyle())
	if err != nil {
		return nil, fmt.Errorf("build slider: %w", err)
	}

	height := c.Layout.Height
	if height < 1 {
		height = 1
	}
	s.SetBounds(slider.Bounds{Width: float64(width), Height: float64(height)})
	s.SetValues(c.Range.Selection())
	return s, nil
}
