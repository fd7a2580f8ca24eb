package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/npillmayer/gecview/client"
	"github.com/npillmayer/schuko/tracing"
)

// Config holds the settings of gecview.
type Config struct {
	Endpoint   string   `toml:"endpoint" json:"endpoint" yaml:"endpoint"`
	Timeout    Duration `toml:"timeout" json:"timeout" yaml:"timeout"`
	UserAgent  string   `toml:"user_agent" json:"user_agent" yaml:"user_agent"`
	TooltipMax int      `toml:"tooltip_max" json:"tooltip_max" yaml:"tooltip_max"`
	LineWidth  int      `toml:"line_width" json:"line_width" yaml:"line_width"` // 0 = from terminal
	Color      string   `toml:"color" json:"color" yaml:"color"`                // auto, always, never
	TraceLevel string   `toml:"trace_level" json:"trace_level" yaml:"trace_level"`
	HTMLOut    string   `toml:"html_out" json:"html_out" yaml:"html_out"` // write an HTML page instead of console output
}

// Color settings
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Endpoint:   client.DefaultEndpoint,
		Timeout:    Duration{client.DefaultTimeout},
		UserAgent:  "gecview",
		TooltipMax: 400,
		Color:      ColorAuto,
		TraceLevel: "error",
	}
}

// ApplyEnvOverrides overrides settings by environment variables.
// Malformed values are ignored.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("GECVIEW_ENDPOINT"); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv("GECVIEW_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = Duration{d}
		}
	}
	if v := os.Getenv("GECVIEW_TRACE"); v != "" {
		c.TraceLevel = v
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	var errs []error
	if u, err := url.Parse(c.Endpoint); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("endpoint must be an http(s) URL, is %q", c.Endpoint))
	}
	if c.Timeout.Duration <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, is %v", c.Timeout))
	}
	if c.TooltipMax < 4 {
		errs = append(errs, fmt.Errorf("tooltip_max must be at least 4, is %d", c.TooltipMax))
	}
	if c.LineWidth < 0 {
		errs = append(errs, fmt.Errorf("line_width must not be negative, is %d", c.LineWidth))
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("color must be one of auto, always, never; is %q", c.Color))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level returns the trace level.
func (c *Config) Level() (tracing.TraceLevel, error) {
	switch strings.ToLower(c.TraceLevel) {
	case "debug":
		return tracing.LevelDebug, nil
	case "info":
		return tracing.LevelInfo, nil
	case "error", "":
		return tracing.LevelError, nil
	}
	return tracing.LevelError, fmt.Errorf("trace_level must be one of debug, info, error; is %q", c.TraceLevel)
}

// Duration is a time.Duration which reads and writes as a string like "30s".
type Duration struct {
	time.Duration
}

// UnmarshalText is part of interface encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText is part of interface encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}
