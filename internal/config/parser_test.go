package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	slidererrors "github.com/alexisbeaulieu97/rangeslider/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `range:
  minimum: 0
  maximum: 10
  lower: 2
  upper: 8
  interval: 0.5
  minimum_gap: 1
style:
  track_highlight_tint_color: "#ff8800"
  curvaceousness: 0
layout:
  width: 40
  height: 3
`

	invalidYAML := `range:
  minimum: [1, 2]
`

	invertedRange := `range:
  minimum: 10
  maximum: 5
`

	badColor := `range:
  minimum: 0
  maximum: 1
style:
  thumb_tint_color: "white"
`

	cases := []struct {
		name   string
		yaml   string
		assert func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "valid configuration is parsed",
			yaml: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, 10.0, cfg.Range.Maximum)
				require.Equal(t, 0.5, cfg.Range.Interval)
				lower, upper := cfg.Range.Selection()
				require.Equal(t, 2.0, lower)
				require.Equal(t, 8.0, upper)
				require.Equal(t, "#ff8800", cfg.Style.TrackHighlightTintColor)
				require.Equal(t, "#E6E6E6", cfg.Style.TrackTintColor, "omitted style fields keep defaults")
				require.Zero(t, cfg.Style.Curvaceousness)
				require.Equal(t, LayoutSettings{Width: 40, Height: 3}, cfg.Layout)
			},
		},
		{
			name: "invalid yaml returns parse error",
			yaml: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *slidererrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name: "maximum must exceed minimum",
			yaml: invertedRange,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var validationErr *slidererrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "range.maximum", validationErr.Field)
				require.Contains(t, validationErr.Message, "greater than minimum")
			},
		},
		{
			name: "colors must be hex",
			yaml: badColor,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *slidererrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "style.thumb_tint_color", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.yaml)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseRejectsBadNumbers(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		yaml  string
		field string
	}{
		"zero interval":         {yaml: "range: {minimum: 0, maximum: 1, interval: 0}", field: "range.interval"},
		"negative gap":          {yaml: "range: {minimum: 0, maximum: 1, minimum_gap: -1}", field: "range.minimum_gap"},
		"negative border":       {yaml: "range: {minimum: 0, maximum: 1}\nstyle: {thumb_border_width: -2}", field: "style.thumb_border_width"},
		"zero height":           {yaml: "range: {minimum: 0, maximum: 1}\nlayout: {height: 0}", field: "layout.height"},
		"tiny width":            {yaml: "range: {minimum: 0, maximum: 1}\nlayout: {width: 2}", field: "layout.width"},
		"lower above upper":     {yaml: "range: {minimum: 0, maximum: 10, lower: 7, upper: 3}", field: "range.lower"},
		"infinite minimum":      {yaml: "range: {minimum: -.inf, maximum: 1}", field: "range.minimum"},
		"nan maximum":           {yaml: "range: {minimum: 0, maximum: .nan}", field: "range.maximum"},
		"infinite interval":     {yaml: "range: {minimum: 0, maximum: 10, interval: .inf}", field: "range.interval"},
		"infinite gap":          {yaml: "range: {minimum: 0, maximum: 10, minimum_gap: .inf}", field: "range.minimum_gap"},
		"nan lower":             {yaml: "range: {minimum: 0, maximum: 10, lower: .nan}", field: "range.lower"},
		"infinite upper":        {yaml: "range: {minimum: 0, maximum: 10, upper: .inf}", field: "range.upper"},
		"infinite track height": {yaml: "range: {minimum: 0, maximum: 1}\nstyle: {track_height: .inf}", field: "style.track_height"},
		"nan curvaceousness":    {yaml: "range: {minimum: 0, maximum: 1}\nstyle: {curvaceousness: .nan}", field: "style.curvaceousness"},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse("inline.yaml", []byte(tc.yaml))
			var validationErr *slidererrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestParseDefaultsSelectionToFullRange(t *testing.T) {
	t.Parallel()

	cfg, err := Parse("inline.yaml", []byte("range: {minimum: -5, maximum: 5}"))
	require.NoError(t, err)
	require.Equal(t, 1.0, cfg.Range.Interval)

	lower, upper := cfg.Range.Selection()
	require.Equal(t, -5.0, lower)
	require.Equal(t, 5.0, upper)
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *slidererrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	var validationErr *slidererrors.ValidationError
	require.ErrorAs(t, ValidateConfig(nil), &validationErr)
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "slider.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
