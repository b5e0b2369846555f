package commands

import (
	"context"
	"fmt"
	"log/slog"

	"startpage/internal/domain"
)

// InstallCommand writes the autoconfig pointer file.
type InstallCommand struct {
	installer    domain.AutoconfigInstaller
	settingsRepo domain.SettingsRepository
	logger       *slog.Logger
}

// NewInstallCommand creates a new install command.
func NewInstallCommand(
	installer domain.AutoconfigInstaller,
	settingsRepo domain.SettingsRepository,
	logger *slog.Logger,
) *InstallCommand {
	return &InstallCommand{
		installer:    installer,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// InstallRequest contains the parameters for the install command.
type InstallRequest struct {
	PrefsDir       string
	ConfigFilename string
}

// Execute runs the install command.
func (c *InstallCommand) Execute(ctx context.Context, req InstallRequest) (domain.InstallResult, error) {
	c.logger.InfoContext(ctx, "Installing autoconfig pointer",
		"dir", req.PrefsDir,
		"configFilename", req.ConfigFilename)

	result, err := c.installer.Install(ctx, req.PrefsDir, req.ConfigFilename)
	if err != nil {
		return result, fmt.Errorf("failed to install autoconfig pointer: %w", err)
	}

	settings, getErr := c.settingsRepo.GetSettings(ctx)
	if getErr == nil {
		settings.PrefsDir = req.PrefsDir
		settings.ConfigFilename = req.ConfigFilename
		if saveErr := c.settingsRepo.UpdateSettings(ctx, settings); saveErr != nil {
			c.logger.WarnContext(ctx, "Failed to record install settings", "error", saveErr)
		}
	}

	c.logger.InfoContext(ctx, "Successfully installed autoconfig pointer", "path", result.Path)
	return result, nil
}
