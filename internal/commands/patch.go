package commands

import (
	"context"
	"fmt"
	"log/slog"

	"startpage/internal/domain"
)

// PatchCommand injects the startpage override into the browser config file.
type PatchCommand struct {
	patcher      domain.ConfigPatcher
	settingsRepo domain.SettingsRepository
	logger       *slog.Logger
}

// NewPatchCommand creates a new patch command.
func NewPatchCommand(
	patcher domain.ConfigPatcher,
	settingsRepo domain.SettingsRepository,
	logger *slog.Logger,
) *PatchCommand {
	return &PatchCommand{
		patcher:      patcher,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// PatchRequest contains the parameters for the patch command.
type PatchRequest struct {
	ConfigPath string
	URL        string
}

// Execute runs the patch command.
func (c *PatchCommand) Execute(ctx context.Context, req PatchRequest) (domain.PatchResult, error) {
	c.logger.InfoContext(ctx, "Patching browser config",
		"path", req.ConfigPath,
		"url", req.URL)

	result, err := c.patcher.Patch(ctx, req.ConfigPath, req.URL)
	if err != nil {
		return result, fmt.Errorf("failed to patch config file: %w", err)
	}

	if saveErr := c.settingsRepo.SetLastAppliedURL(ctx, req.URL); saveErr != nil {
		c.logger.WarnContext(ctx, "Failed to record applied URL", "error", saveErr)
	}

	c.logger.InfoContext(ctx, "Patch completed",
		"path", result.Path,
		"outcome", string(result.Outcome))
	return result, nil
}
