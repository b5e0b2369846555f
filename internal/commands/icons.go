package commands

import (
	"context"
	"fmt"
	"log/slog"

	"startpage/internal/domain"
	"startpage/internal/services/filter"
)

// IconsCommand mirrors bookmark icons into a local directory.
type IconsCommand struct {
	mirror domain.IconMirror
	logger *slog.Logger
}

// NewIconsCommand creates a new icons command.
func NewIconsCommand(mirror domain.IconMirror, logger *slog.Logger) *IconsCommand {
	return &IconsCommand{
		mirror: mirror,
		logger: logger,
	}
}

// IconsRequest contains the parameters for the icons command.
type IconsRequest struct {
	BookmarksPath   string
	OutputDir       string
	ExcludePatterns []string
}

// Execute runs the icons command.
func (c *IconsCommand) Execute(ctx context.Context, req IconsRequest) (domain.MirrorResult, error) {
	var bookmarkFilter domain.BookmarkFilter = filter.NewNoOpFilter()
	if len(req.ExcludePatterns) > 0 {
		excludeFilter, err := filter.NewExcludeFilter(req.ExcludePatterns, c.logger)
		if err != nil {
			return domain.MirrorResult{}, fmt.Errorf("invalid exclude patterns: %w", err)
		}
		bookmarkFilter = excludeFilter
	}

	c.logger.InfoContext(ctx, "Mirroring bookmark icons",
		"bookmarks", req.BookmarksPath,
		"outputDir", req.OutputDir,
		"excludePatterns", len(req.ExcludePatterns))

	result, err := c.mirror.Mirror(ctx, req.BookmarksPath, req.OutputDir, bookmarkFilter)
	if err != nil {
		return result, fmt.Errorf("failed to mirror icons: %w", err)
	}

	return result, nil
}
