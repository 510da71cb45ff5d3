package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// OptionsFile is the per-directory options file name.
const OptionsFile = ".jiralog.yaml"

// Options are the tunable run settings. All fields are optional, zero
// values fall back to the defaults.
type Options struct {
	CSV      string `yaml:"csv"`
	DelayMS  int    `yaml:"delay_ms"`
	DayStart string `yaml:"day_start"`
}

// DefaultOptions returns the settings used when no options file exists.
func DefaultOptions() Options {
	return Options{
		CSV:      "timesheet_data.csv",
		DelayMS:  500,
		DayStart: "09:00",
	}
}

// LoadOptions reads path as a YAML options file layered over the defaults.
// A missing file simply returns the defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	b, err := os.ReadFile(path) //nolint:gosec // G304: options path is constructed by application
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, fmt.Errorf("file read error: %w", err)
	}
	if err := yaml.Unmarshal(b, &opts); err != nil {
		return opts, fmt.Errorf("error unmarshal yaml: %w", err)
	}

	if opts.CSV == "" {
		opts.CSV = DefaultOptions().CSV
	}
	if opts.DelayMS < 0 {
		return opts, fmt.Errorf("delay_ms must not be negative: %d", opts.DelayMS)
	}
	if _, err := opts.DayStartOffset(); err != nil {
		return opts, err
	}
	return opts, nil
}

// Delay is the pause inserted after each submission.
func (o Options) Delay() time.Duration {
	return time.Duration(o.DelayMS) * time.Millisecond
}

// DayStartOffset converts the HH:MM day start into an offset from midnight,
// the clock time worklogs are stamped with.
func (o Options) DayStartOffset() (time.Duration, error) {
	clock, err := time.Parse("15:04", o.DayStart)
	if err != nil {
		return 0, fmt.Errorf("invalid day_start %q (expected HH:MM): %w", o.DayStart, err)
	}
	return time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute, nil
}
