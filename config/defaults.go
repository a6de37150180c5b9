package config

import (
	"fmt"

	"github.com/tzbucket/tzbucket/core/model"
	"github.com/tzbucket/tzbucket/core/parse"
)

// DefaultsConfig holds the fallback values for per-request options the
// CLI flags and API query parameters can override.
type DefaultsConfig struct {
	// TZ is the IANA timezone applied when none is given.
	TZ string `json:"tz"`
	// Interval is the bucket granularity: "day", "week" or "month".
	Interval string `json:"interval"`
	// WeekStart opens week buckets on "monday" or "sunday".
	WeekStart string `json:"week_start"`
	// Format is the input timestamp format: "epoch_ms", "epoch_s",
	// "rfc3339" or "auto".
	Format string `json:"format"`
	// OutputFormat is "json" or "text"; empty keeps each command's
	// own default.
	OutputFormat string `json:"output_format"`
	// Workers bounds the line-processing pool; 0 means one per CPU.
	Workers int `json:"workers"`
}

// SetDefaults applies sane defaults.
func (c *DefaultsConfig) SetDefaults() {
	if c.TZ == "" {
		c.TZ = "UTC"
	}
	if c.Interval == "" {
		c.Interval = "day"
	}
	if c.WeekStart == "" {
		c.WeekStart = "monday"
	}
	if c.Format == "" {
		c.Format = "epoch_ms"
	}
}

// Validate checks that every default parses into its core type.
func (c DefaultsConfig) Validate() error {
	if _, err := model.ParseInterval(c.Interval); err != nil {
		return err
	}
	if _, err := model.ParseWeekStart(c.WeekStart); err != nil {
		return err
	}
	if _, err := parse.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.OutputFormat != "" && c.OutputFormat != "json" && c.OutputFormat != "text" {
		return fmt.Errorf("invalid output_format %q: expected json, text", c.OutputFormat)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}
	return nil
}
