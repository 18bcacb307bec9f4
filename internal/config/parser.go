package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	searcherrors "github.com/alexisbeaulieu97/imagesearch/pkg/errors"
)

const (
	EnvBaseURL  = "IMAGESEARCH_API_BASE_URL"
	EnvLogLevel = "IMAGESEARCH_LOG_LEVEL"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Overrides carries values from command-line flags. Empty fields are ignored.
type Overrides struct {
	BaseURL  string
	LogLevel string
}

// LoadOptions controls where Load looks for configuration.
type LoadOptions struct {
	// Path is an explicit config file; it must exist when set.
	Path string
	// DefaultPath is read only when it exists and Path is empty.
	DefaultPath string
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
	Overrides Overrides
}

// Load resolves the configuration from defaults, an optional file, the
// environment and flag overrides, in that order, then validates it.
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	path := opts.Path
	if path == "" && opts.DefaultPath != "" {
		if _, err := os.Stat(opts.DefaultPath); err == nil {
			path = opts.DefaultPath
		}
	}

	if path != "" {
		if err := parseFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	applyEnv(&cfg, lookup)
	applyOverrides(&cfg, opts.Overrides)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func parseFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return searcherrors.NewParseError(path, 0, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return searcherrors.NewParseError(path, tomlLine(err), err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return searcherrors.NewParseError(path, extractLine(err), err)
		}
	default:
		return searcherrors.NewParseError(path, 0, fmt.Errorf("unsupported config format %q", filepath.Ext(path)))
	}

	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if value, ok := lookup(EnvBaseURL); ok && strings.TrimSpace(value) != "" {
		cfg.API.BaseURL = strings.TrimSpace(value)
	}
	if value, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(value) != "" {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(value))
	}
}

func applyOverrides(cfg *Config, overrides Overrides) {
	if overrides.BaseURL != "" {
		cfg.API.BaseURL = overrides.BaseURL
	}
	if overrides.LogLevel != "" {
		cfg.Log.Level = strings.ToLower(overrides.LogLevel)
	}
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

func tomlLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}
	return 0
}
