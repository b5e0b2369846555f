package cmd

import (
	"context"
	"errors"
	"fmt"

	"startpage/internal/commands"
	"startpage/internal/domain"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var patchCmd = &cobra.Command{
	Use:   "patch",
	Short: "Inject the startpage override into the browser config file",
	Long: `Ensure the startpage preference-lock block appears exactly once at the
top of the browser's main config file, with the given URL substituted in.

Re-running with the same URL is a no-op; a different URL replaces the
existing block. The rest of the file is never touched, and every rewrite is
atomic.`,
	RunE: runPatch,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(patchCmd)

	patchCmd.Flags().
		StringP("url", "u", "", "Start page URL: file://, http://, or https:// (required)")
	patchCmd.Flags().
		StringP("file", "f", "", "Path to the browser's main config file (default from settings)")

	_ = patchCmd.MarkFlagRequired("url")
}

func runPatch(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	url, _ := cmd.Flags().GetString("url")
	file, _ := cmd.Flags().GetString("file")

	ctx := context.Background()
	_, _, configPath, err := resolveTargets(ctx, app, "", "", file)
	if err != nil {
		return err
	}

	patchCommand := commands.NewPatchCommand(
		app.Patcher,
		app.SettingsRepo,
		app.Logger,
	)
	result, err := patchCommand.Execute(ctx, commands.PatchRequest{
		ConfigPath: configPath,
		URL:        url,
	})
	if err != nil {
		return fmt.Errorf("patch failed: %w", err)
	}

	switch result.Outcome {
	case domain.PatchApplied:
		fmt.Fprintf(cmd.OutOrStdout(), "Injected startpage override into %s\n", result.Path)
	case domain.PatchUpdated:
		fmt.Fprintf(cmd.OutOrStdout(), "Updated startpage override in %s\n", result.Path)
	case domain.PatchUnchanged:
		fmt.Fprintf(cmd.OutOrStdout(), "Startpage override already up to date in %s\n", result.Path)
	}
	if !result.PermissionOK {
		warnPermissionMismatch(cmd, result.Path)
	}
	return nil
}
