// Package config provides configuration loading and management.
package config

import (
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/gradecast/pkg/grading"
)

// Config represents the full configuration for gradecast.
type Config struct {
	// Display
	RefreshHz      float64 `yaml:"refresh_hz"`
	PositionPollMs int     `yaml:"position_poll_ms"`

	// Grading defaults applied at startup
	Grading GradingConfig `yaml:"grading"`

	// Demo source
	Source SourceConfig `yaml:"source"`

	// Output
	OutputPath  string `yaml:"output"`
	JPEGQuality int    `yaml:"jpeg_quality"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`

	// Logging
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"` // "console" or "json"
}

// GradingConfig represents the initial grading parameters.
type GradingConfig struct {
	RedGain     float64 `yaml:"red_gain"`
	GreenGain   float64 `yaml:"green_gain"`
	BlueGain    float64 `yaml:"blue_gain"`
	Temperature float64 `yaml:"temperature"`
}

// Parameters converts the grading section to a parameter record.
func (g GradingConfig) Parameters() grading.Parameters {
	return grading.Parameters{
		RedGain:     g.RedGain,
		GreenGain:   g.GreenGain,
		BlueGain:    g.BlueGain,
		Temperature: g.Temperature,
	}
}

// SourceConfig represents the synthetic demo source settings.
type SourceConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	FPS        float64 `yaml:"fps"`
	DurationMs int     `yaml:"duration_ms"`
	Pattern    string  `yaml:"pattern"`     // "bars" or "solid"
	SolidColor string  `yaml:"solid_color"` // hex, used by the solid pattern
}

// Defaults returns a Config with default values.
func Defaults() Config {
	p := grading.DefaultParameters()
	return Config{
		RefreshHz:      60.0,
		PositionPollMs: 100,

		Grading: GradingConfig{
			RedGain:     p.RedGain,
			GreenGain:   p.GreenGain,
			BlueGain:    p.BlueGain,
			Temperature: p.Temperature,
		},

		Source: SourceConfig{
			Width:      640,
			Height:     360,
			FPS:        30.0,
			DurationMs: 2000,
			Pattern:    "bars",
			SolidColor: "#646464",
		},

		JPEGQuality: 90,

		DebugDir: "./debug",

		LogLevel:  "info",
		LogFormat: "console",
	}
}

// LoadFromFile loads configuration from a YAML file, layered over the
// defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ParseColor parses a hex color string to color.Color.
func ParseColor(hex string) color.Color {
	if len(hex) == 0 {
		return color.Black
	}

	if hex[0] == '#' {
		hex = hex[1:]
	}

	if len(hex) != 6 {
		return color.Black
	}

	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		rgb[i] = hexValue(hex[i*2])<<4 | hexValue(hex[i*2+1])
	}

	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}
