package main

import (
	"io"

	"github.com/alexisbeaulieu97/imagesearch/internal/config"
	"github.com/alexisbeaulieu97/imagesearch/internal/logger"
	"github.com/alexisbeaulieu97/imagesearch/internal/search"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config *config.Config
	Logger *logger.Logger
	Client *search.Client

	closer io.Closer
}

// logTarget selects where the application logger writes.
type logTarget struct {
	// file routes logs to Log.File (or the default log path) instead of writer.
	file   bool
	writer io.Writer
}

func newAppContext(flags *rootFlags, target logTarget) (*AppContext, error) {
	defaultPath, err := defaultConfigPath()
	if err != nil {
		return nil, newCommandError("load configuration", "home directory", err, "Set HOME or pass --config")
	}

	cfg, err := config.Load(config.LoadOptions{
		Path:        flags.configPath,
		DefaultPath: defaultPath,
		Overrides: config.Overrides{
			BaseURL:  flags.apiURL,
			LogLevel: flags.logLevel,
		},
	})
	if err != nil {
		return nil, newCommandError("load configuration", configSource(flags.configPath, defaultPath), err, "Fix the reported field or remove the config file to use defaults")
	}

	app := &AppContext{Config: cfg}

	logOpts := logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.Format == "console",
		Component:     "imagesearch",
	}
	if target.file {
		path := cfg.Log.File
		if path == "" {
			if path, err = defaultLogPath(); err != nil {
				return nil, newCommandError("open log file", "home directory", err, "Set log.file in the config")
			}
		}
		log, closer, err := logger.NewFile(path, logOpts)
		if err != nil {
			return nil, newCommandError("open log file", path, err, "Check that the directory is writable or set log.file")
		}
		app.Logger = log
		app.closer = closer
	} else {
		logOpts.Writer = target.writer
		log, err := logger.New(logOpts)
		if err != nil {
			return nil, newCommandError("create logger", cfg.Log.Level, err, "Use one of debug, info, warn, error")
		}
		app.Logger = log
	}

	client, err := search.NewClient(search.Options{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout.Std(),
		PageSize:  cfg.API.PageSize,
		RateLimit: cfg.API.RateLimit,
		Logger:    app.Logger.WithFields(logger.Fields{"backend": cfg.API.BaseURL}),
	})
	if err != nil {
		app.Close()
		return nil, newCommandError("create search client", cfg.API.BaseURL, err, "Pass a valid http(s) URL with --api-url")
	}
	app.Client = client

	app.Logger.Debug("configuration loaded", logger.Fields{
		"base_url":  cfg.API.BaseURL,
		"page_size": cfg.API.PageSize,
		"timeout":   cfg.API.Timeout.String(),
	})

	return app, nil
}

// Close releases the log file, if any.
func (a *AppContext) Close() {
	if a.closer != nil {
		_ = a.closer.Close()
		a.closer = nil
	}
}

func configSource(explicit, fallback string) string {
	if explicit != "" {
		return explicit
	}
	return fallback
}
