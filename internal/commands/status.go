package commands

import (
	"context"
	"fmt"
	"log/slog"

	"startpage/internal/domain"
)

// StatusCommand reports the installed and patched state without modifying anything.
type StatusCommand struct {
	installer domain.AutoconfigInstaller
	patcher   domain.ConfigPatcher
	logger    *slog.Logger
}

// NewStatusCommand creates a new status command.
func NewStatusCommand(
	installer domain.AutoconfigInstaller,
	patcher domain.ConfigPatcher,
	logger *slog.Logger,
) *StatusCommand {
	return &StatusCommand{
		installer: installer,
		patcher:   patcher,
		logger:    logger,
	}
}

// StatusRequest contains the parameters for the status command.
type StatusRequest struct {
	PrefsDir       string
	ConfigFilename string
	ConfigPath     string
}

// StatusReport combines the pointer file and config file states.
type StatusReport struct {
	Install domain.InstallStatus
	Patch   domain.PatchStatus
}

// Execute runs the status command.
func (c *StatusCommand) Execute(ctx context.Context, req StatusRequest) (StatusReport, error) {
	report := StatusReport{}

	installStatus, err := c.installer.Verify(ctx, req.PrefsDir, req.ConfigFilename)
	if err != nil {
		return report, fmt.Errorf("failed to verify autoconfig pointer: %w", err)
	}
	report.Install = installStatus

	patchStatus, err := c.patcher.Inspect(ctx, req.ConfigPath)
	if err != nil {
		return report, fmt.Errorf("failed to inspect config file: %w", err)
	}
	report.Patch = patchStatus

	c.logger.DebugContext(ctx, "Status collected",
		"pointerExists", installStatus.Exists,
		"configExists", patchStatus.Exists,
		"patched", patchStatus.Patched)
	return report, nil
}
