// Package config handles application configuration management.
//
// Configuration is assembled from built-in defaults, TEXT_TO_CW_*
// environment variables, an optional YAML settings file, and finally
// command-line flags (highest precedence). Out-of-range values from
// any source are never an error; Normalize silently replaces them
// with the documented defaults.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Speed and tone limits. Values outside these ranges fall back to the
// defaults rather than erroring.
const (
	MinWPM = 1
	MaxWPM = 100

	MinToneFrequency = 60
	MaxToneFrequency = 3000

	// DefaultWPM is the default sending speed in words per minute.
	DefaultWPM = 18
	// DefaultToneFrequency is the default tone frequency in Hz.
	DefaultToneFrequency = 600
)

// Config holds all settings for one synthesis run.
type Config struct {
	// WPM is the sending speed in words per minute. It controls the
	// dit, dah and intra-character space durations.
	WPM int `yaml:"wpm"`

	// FWPM is the Farnsworth spacing speed in words per minute. It
	// controls only the inter-character and inter-word space
	// durations. Zero means "same as WPM".
	FWPM int `yaml:"fwpm"`

	// ToneFrequency is the generated tone frequency in Hz.
	ToneFrequency int `yaml:"tone"`

	// Debug enables debug logging.
	Debug bool `yaml:"debug"`
}

// Load builds a Config from the defaults, overridden by any
// TEXT_TO_CW_* environment variables that are set.
func Load() *Config {
	return &Config{
		WPM:           getEnvInt("TEXT_TO_CW_WPM", DefaultWPM),
		FWPM:          getEnvInt("TEXT_TO_CW_FWPM", 0),
		ToneFrequency: getEnvInt("TEXT_TO_CW_TONE", DefaultToneFrequency),
		Debug:         os.Getenv("TEXT_TO_CW_DEBUG") != "",
	}
}

// ApplyFile overlays settings from a YAML file onto the Config.
// Only keys present in the file are changed.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read settings file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("could not parse settings file %s: %w", path, err)
	}
	return nil
}

// Normalize applies the documented fallback rules: WPM outside
// [MinWPM, MaxWPM] becomes DefaultWPM, FWPM outside the same range
// (including the zero "unset" value) becomes WPM, and ToneFrequency
// outside [MinToneFrequency, MaxToneFrequency] becomes
// DefaultToneFrequency. Normalize never fails.
func (c *Config) Normalize() {
	if c.WPM < MinWPM || c.WPM > MaxWPM {
		c.WPM = DefaultWPM
	}
	if c.FWPM < MinWPM || c.FWPM > MaxWPM {
		c.FWPM = c.WPM
	}
	if c.ToneFrequency < MinToneFrequency || c.ToneFrequency > MaxToneFrequency {
		c.ToneFrequency = DefaultToneFrequency
	}
}

// getEnvInt returns the integer value of the environment variable key,
// or defaultValue if the variable is unset or not an integer.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
