package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	slidererrors "github.com/alexisbeaulieu97/rangeslider/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk, validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, slidererrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates a configuration document. Omitted style and
// layout fields keep their defaults; an omitted interval is 1.
func Parse(path string, data []byte) (*Config, error) {
	cfg := Config{
		Range:  RangeSettings{Interval: 1},
		Style:  DefaultStyleSettings(),
		Layout: LayoutSettings{Height: 1},
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, slidererrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
