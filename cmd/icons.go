package cmd

import (
	"context"
	"errors"
	"fmt"

	"startpage/internal/commands"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "Mirror bookmark icons into a local directory",
	Long: `Download the remote icons referenced by a bookmarks JSON file (an array
of objects with title, url, and icon fields) into a local directory, and
rewrite the icon fields to the local paths so a file:// start page works
offline.

The original file is copied to a .bak sibling before being rewritten. A
bookmark whose download fails keeps its remote URL.`,
	RunE: runIcons,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(iconsCmd)

	iconsCmd.Flags().
		StringP("bookmarks", "b", "", "Path to the bookmarks JSON file (required)")
	iconsCmd.Flags().
		StringP("outdir", "o", "", "Directory for downloaded icons (default: ~/.config/startpage/icons)")
	iconsCmd.Flags().
		StringSlice("exclude", []string{}, "Exclude bookmarks whose title matches regex pattern (can be specified multiple times)")
	iconsCmd.Flags().
		Int("workers", 0, "Number of concurrent downloads (default: 8)")
	iconsCmd.Flags().
		Duration("timeout", 0, "Per-request download timeout (default: 8s)")
	iconsCmd.Flags().
		Bool("insecure", false, "Skip TLS certificate verification for icon hosts")

	_ = iconsCmd.MarkFlagRequired("bookmarks")
}

func runIcons(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	bookmarks, _ := cmd.Flags().GetString("bookmarks")
	outdir, _ := cmd.Flags().GetString("outdir")
	excludePatterns, _ := cmd.Flags().GetStringSlice("exclude")
	workers, _ := cmd.Flags().GetInt("workers")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	insecure, _ := cmd.Flags().GetBool("insecure")

	if outdir == "" {
		var err error
		outdir, err = app.SettingsProvider.GetIconsDir()
		if err != nil {
			return fmt.Errorf("failed to resolve icons directory: %w", err)
		}
	}

	mirror := app.IconServiceFactory.Create(timeout, insecure, workers)

	iconsCommand := commands.NewIconsCommand(mirror, app.Logger)
	result, err := iconsCommand.Execute(context.Background(), commands.IconsRequest{
		BookmarksPath:   bookmarks,
		OutputDir:       outdir,
		ExcludePatterns: excludePatterns,
	})
	if err != nil {
		return fmt.Errorf("icon mirroring failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Mirrored %d of %d icons (%d skipped, %d failed)\n",
		result.Downloaded, result.Total, result.Skipped, result.Failed)
	if result.Failures != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Failed downloads kept their remote URLs: %v\n", result.Failures)
	}
	if result.BackupPath != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Original bookmarks backed up to %s\n", result.BackupPath)
	}
	return nil
}
