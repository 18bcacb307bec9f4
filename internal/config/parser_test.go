package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	searcherrors "github.com/alexisbeaulieu97/imagesearch/pkg/errors"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func noEnv(string) (string, bool) { return "", false }

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(LoadOptions{LookupEnv: noEnv})
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout.Std())
	assert.Equal(t, 20, cfg.API.PageSize)
}

func TestLoad_ConfigFile(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		file     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "yaml",
			file: "config.yaml",
			contents: `api:
  base_url: "https://images.example.com"
  timeout: 5s
  page_size: 50
log:
  level: debug
ui:
  grid_columns: 4
  ascii: true
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "https://images.example.com", cfg.API.BaseURL)
				assert.Equal(t, 5*time.Second, cfg.API.Timeout.Std())
				assert.Equal(t, 50, cfg.API.PageSize)
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, DefaultLogFormat, cfg.Log.Format, "unset keys keep their defaults")
				assert.Equal(t, 4, cfg.UI.GridColumns)
				assert.True(t, cfg.UI.ASCII)
			},
		},
		{
			name: "toml",
			file: "config.toml",
			contents: `[api]
base_url = "http://10.0.0.5:9000"
timeout = "2s"
rate_limit = 4.5

[log]
format = "console"
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "http://10.0.0.5:9000", cfg.API.BaseURL)
				assert.Equal(t, 2*time.Second, cfg.API.Timeout.Std())
				assert.InDelta(t, 4.5, cfg.API.RateLimit, 0.0001)
				assert.Equal(t, "console", cfg.Log.Format)
				assert.Equal(t, DefaultPageSize, cfg.API.PageSize)
			},
		},
		{
			name: "yaml type error carries line",
			file: "config.yaml",
			contents: `api:
  page_size: [1, 2]
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *searcherrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name:     "toml syntax error",
			file:     "config.toml",
			contents: "[api\nbase_url = 1\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *searcherrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Greater(t, parseErr.Line, 0)
			},
		},
		{
			name:     "bad duration",
			file:     "config.yaml",
			contents: "api:\n  timeout: soon\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *searcherrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Contains(t, err.Error(), "invalid duration")
			},
		},
		{
			name:     "unsupported extension",
			file:     "config.ini",
			contents: "x=1",
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *searcherrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Contains(t, err.Error(), "unsupported config format")
			},
		},
		{
			name:     "validation failure",
			file:     "config.yaml",
			contents: "api:\n  page_size: 500\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *searcherrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "api.page_size", validationErr.Field)
				assert.Contains(t, validationErr.Message, "max=100")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeFile(t, tc.file, tc.contents)
			cfg, err := Load(LoadOptions{Path: path, LookupEnv: noEnv})
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(LoadOptions{Path: filepath.Join(t.TempDir(), "missing.yaml"), LookupEnv: noEnv})
	var parseErr *searcherrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoad_MissingDefaultFileIsIgnored(t *testing.T) {
	cfg, err := Load(LoadOptions{DefaultPath: filepath.Join(t.TempDir(), "config.yaml"), LookupEnv: noEnv})
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeFile(t, "config.yaml", "api:\n  base_url: http://file:1\nlog:\n  level: warn\n")
	env := map[string]string{
		EnvBaseURL:  "http://env:2",
		EnvLogLevel: "ERROR",
	}
	lookup := func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}

	cfg, err := Load(LoadOptions{DefaultPath: path, LookupEnv: lookup})
	require.NoError(t, err)
	assert.Equal(t, "http://env:2", cfg.API.BaseURL, "environment beats the file")
	assert.Equal(t, "error", cfg.Log.Level)

	cfg, err = Load(LoadOptions{
		DefaultPath: path,
		LookupEnv:   lookup,
		Overrides:   Overrides{BaseURL: "http://flag:3", LogLevel: "debug"},
	})
	require.NoError(t, err)
	assert.Equal(t, "http://flag:3", cfg.API.BaseURL, "flags beat the environment")
	assert.Equal(t, "debug", cfg.Log.Level)

	cfg, err = Load(LoadOptions{DefaultPath: path, LookupEnv: noEnv})
	require.NoError(t, err)
	assert.Equal(t, "http://file:1", cfg.API.BaseURL)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_InvalidOverride(t *testing.T) {
	_, err := Load(LoadOptions{LookupEnv: noEnv, Overrides: Overrides{BaseURL: "ftp://example.com"}})
	var validationErr *searcherrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "api.base_url", validationErr.Field)

	_, err = Load(LoadOptions{LookupEnv: noEnv, Overrides: Overrides{LogLevel: "verbose"}})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "log.level", validationErr.Field)
}

func TestExtractLine(t *testing.T) {
	assert.Equal(t, 0, extractLine(nil))
	assert.Equal(t, 0, extractLine(os.ErrNotExist))
}
