package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"startpage/internal/domain"
)

// ErrRevertDeclined is returned when the operator declines the confirmation.
var ErrRevertDeclined = errors.New("revert declined by operator")

// RevertCommand removes the startpage override from the browser config file.
type RevertCommand struct {
	patcher  domain.ConfigPatcher
	prompter domain.ConfirmPrompter
	logger   *slog.Logger
}

// NewRevertCommand creates a new revert command.
func NewRevertCommand(
	patcher domain.ConfigPatcher,
	prompter domain.ConfirmPrompter,
	logger *slog.Logger,
) *RevertCommand {
	return &RevertCommand{
		patcher:  patcher,
		prompter: prompter,
		logger:   logger,
	}
}

// RevertRequest contains the parameters for the revert command.
type RevertRequest struct {
	ConfigPath string
	AssumeYes  bool
}

// Execute runs the revert command.
func (c *RevertCommand) Execute(ctx context.Context, req RevertRequest) (domain.RevertResult, error) {
	if !req.AssumeYes {
		prompt := fmt.Sprintf("Remove the startpage override from '%s'?", req.ConfigPath)
		confirmed, err := c.prompter.Confirm(ctx, prompt)
		if err != nil {
			return domain.RevertResult{Path: req.ConfigPath},
				fmt.Errorf("confirmation failed (use --yes to skip): %w", err)
		}
		if !confirmed {
			return domain.RevertResult{Path: req.ConfigPath}, ErrRevertDeclined
		}
	}

	result, err := c.patcher.Revert(ctx, req.ConfigPath)
	if err != nil {
		return result, fmt.Errorf("failed to revert config file: %w", err)
	}

	c.logger.InfoContext(ctx, "Revert completed",
		"path", result.Path,
		"removed", result.Removed)
	return result, nil
}
