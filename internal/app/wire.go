package app

import (
	"context"
	"os"

	"startpage/internal/adapters/filesystem"
	"startpage/internal/adapters/terminal"
	"startpage/internal/logging"
	"startpage/internal/services/installer"
	"startpage/internal/services/patcher"
	"startpage/internal/services/settings"
)

// NewAppWithConfig creates a new App with the given configuration, wiring all dependencies.
func NewAppWithConfig(ctx context.Context, cfg *Config) (*App, error) {
	// Create logger.
	logger := logging.NewLogger(logging.Config{
		Level:  cfg.LogLevel,
		Format: "text",
		Output: os.Stderr,
	}).Logger

	// Create filesystem adapter.
	fs := filesystem.New()

	// Create icon service factory for on-demand service creation.
	iconServiceFactory := NewIconServiceFactory(logger, fs)

	// Create confirmation prompter.
	prompter := terminal.NewAdapter(os.Stdin, os.Stderr)

	// Create settings services.
	settingsProvider := settings.NewProvider(fs)
	settingsPath, err := settingsProvider.GetSettingsPath()
	if err != nil {
		return nil, err
	}
	settingsRepo, err := settings.NewRepository(fs, settingsPath, logger)
	if err != nil {
		return nil, err
	}

	logger.DebugContext(ctx, "Initializing startpage",
		"logLevel", string(cfg.LogLevel),
		"verbose", cfg.Verbose,
		"settingsPath", settingsPath)

	return &App{
		SettingsRepo:       settingsRepo,
		SettingsProvider:   settingsProvider,
		Installer:          installer.NewService(fs, logger),
		Patcher:            patcher.NewService(fs, logger),
		IconServiceFactory: iconServiceFactory,
		FileSystem:         fs,
		Prompter:           prompter,
		Logger:             logger,
		Config:             cfg,
	}, nil
}
