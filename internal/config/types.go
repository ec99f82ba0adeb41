// Package config loads and watches the optional dayplan configuration file.
//
// The file is optional: with no -config flag, or a missing file, every
// setting falls back to its default. Both YAML and JSON are accepted.
package config

type Config struct {
	Logging LoggingConfig `json:"logging"`
	Updates UpdatesConfig `json:"updates"`
}

type LoggingConfig struct {
	// Level is trace|debug|info|warn|error (default info).
	Level string `json:"level,omitempty"`

	// Console enables the stderr console sink. Pointer so an omitted
	// field (default true) is distinguishable from an explicit false.
	Console *bool `json:"console,omitempty"`

	File FileConfig `json:"file,omitempty"`
}

type FileConfig struct {
	Enabled bool   `json:"enabled,omitempty"`
	Path    string `json:"path,omitempty"`
}

// UpdatesConfig controls the background updater cadence.
type UpdatesConfig struct {
	// Interval is a Go duration string (default "60m").
	Interval string `json:"interval,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{}
}

// ConsoleEnabled resolves the Console pointer against its default.
func (c LoggingConfig) ConsoleEnabled() bool {
	if c.Console == nil {
		return true
	}
	return *c.Console
}
