package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL     = "http://localhost:8080"
	DefaultTimeout     = 30 * time.Second
	DefaultPageSize    = 20
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "json"
	DefaultGridColumns = 3
)

// Config is the full imagesearch configuration document.
type Config struct {
	API APIConfig `yaml:"api" toml:"api"`
	Log LogConfig `yaml:"log" toml:"log"`
	UI  UIConfig  `yaml:"ui" toml:"ui"`
}

// APIConfig describes how to reach the search backend.
type APIConfig struct {
	BaseURL  string   `yaml:"base_url" toml:"base_url" validate:"required,base_url"`
	Timeout  Duration `yaml:"timeout" toml:"timeout" validate:"min=0"`
	PageSize int      `yaml:"page_size" toml:"page_size" validate:"min=1,max=100"`
	// RateLimit caps outgoing requests per second; zero disables the limit.
	RateLimit float64 `yaml:"rate_limit" toml:"rate_limit" validate:"min=0"`
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level" validate:"oneof=debug info warn error"`
	File   string `yaml:"file" toml:"file"`
	Format string `yaml:"format" toml:"format" validate:"oneof=json console"`
}

// UIConfig tunes the interactive browser.
type UIConfig struct {
	GridColumns int  `yaml:"grid_columns" toml:"grid_columns" validate:"min=1,max=6"`
	ASCII       bool `yaml:"ascii" toml:"ascii"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL:  DefaultBaseURL,
			Timeout:  Duration(DefaultTimeout),
			PageSize: DefaultPageSize,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		UI: UIConfig{
			GridColumns: DefaultGridColumns,
		},
	}
}

// Duration accepts Go duration strings such as "30s" in both YAML and TOML files.
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// UnmarshalText is used by the TOML decoder.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText keeps the string form when writing TOML.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalYAML decodes a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(raw))
}

// MarshalYAML keeps the string form when writing YAML.
func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}
