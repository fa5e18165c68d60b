package config

import (
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/rangeslider/internal/slider"
)

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateConfig(Default()))
}

func TestNewSliderAppliesDocument(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Layout.Height = 3
	cfg.Style.ThumbTintColor = "#ABCDEF"
	cfg.Style.Curvaceousness = 2

	s, err := cfg.NewSlider(103)
	require.NoError(t, err)

	require.Equal(t, slider.Bounds{Width: 103, Height: 3}, s.Bounds())
	require.Equal(t, 100.0, s.TrackWidth())
	require.Equal(t, 20.0, s.LowerValue())
	require.Equal(t, 80.0, s.UpperValue())
	require.Equal(t, lipgloss.Color("#ABCDEF"), s.ThumbTintColor())
	require.Equal(t, 1.0, s.Curvaceousness())
}

func TestNewSliderClampsSelection(t *testing.T) {
	t.Parallel()

	cfg, err := Parse("inline.yaml", []byte("range: {minimum: 0, maximum: 10, lower: -4, upper: 40, minimum_gap: 2}"))
	require.NoError(t, err)

	s, err := cfg.NewSlider(20)
	require.NoError(t, err)
	require.Equal(t, 0.0, s.LowerValue())
	require.Equal(t, 10.0, s.UpperValue())
}

func TestNewSliderRejectsUnvalidatedDocument(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Range.Maximum = cfg.Range.Minimum

	_, err := cfg.NewSlider(40)
	require.True(t, errors.Is(err, slider.ErrEmptyRange))
}

func TestResolveWidth(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.Equal(t, 120, cfg.ResolveWidth(120))
	require.Equal(t, DefaultWidth, cfg.ResolveWidth(0))

	cfg.Layout.Width = 30
	require.Equal(t, 30, cfg.ResolveWidth(120))
}
