package app

import (
	"context"
	"log/slog"

	"startpage/internal/domain"
	"startpage/internal/logging"
)

// App contains all application dependencies.
type App struct {
	// Settings persistence (always needed)
	SettingsRepo     domain.SettingsRepository
	SettingsProvider domain.SettingsProvider

	// Core services
	Installer domain.AutoconfigInstaller
	Patcher   domain.ConfigPatcher

	// Factory for creating the icon mirror on demand (it needs per-run
	// HTTP options)
	IconServiceFactory *IconServiceFactory

	// File operations (needed by multiple commands)
	FileSystem domain.FileSystemAdapter

	// I/O dependencies
	Prompter domain.ConfirmPrompter

	// Logging
	Logger *slog.Logger

	// Configuration
	Config *Config
}

// Config holds application configuration.
type Config struct {
	LogLevel logging.LogLevel
	Verbose  bool
}

// Option is a functional option for configuring the App.
type Option func(*Config)

// WithLogLevel sets the logging level.
func WithLogLevel(level logging.LogLevel) Option {
	return func(cfg *Config) {
		cfg.LogLevel = level
	}
}

// WithVerbose enables verbose logging.
func WithVerbose(verbose bool) Option {
	return func(cfg *Config) {
		cfg.Verbose = verbose
		if verbose {
			cfg.LogLevel = logging.LevelDebug
		}
	}
}

// NewApp creates a new App with the given options.
func NewApp(ctx context.Context, opts ...Option) (*App, error) {
	cfg := &Config{
		LogLevel: logging.LevelInfo,
		Verbose:  false,
	}

	// Apply options.
	for _, opt := range opts {
		opt(cfg)
	}

	return NewAppWithConfig(ctx, cfg)
}
