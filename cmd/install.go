package cmd

import (
	"context"
	"errors"
	"fmt"

	"startpage/internal/commands"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the autoconfig pointer file",
	Long: `Write the autoconfig pointer file (autoconfig.js) into the browser's
defaults/pref directory and set its permissions to 0644.

Any existing pointer file is overwritten without prompting: the file has
exactly one valid content for a given config filename.`,
	RunE: runInstall,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(installCmd)

	installCmd.Flags().
		StringP("dir", "d", "", "Browser defaults/pref directory (default from settings)")
	installCmd.Flags().
		StringP("filename", "f", "", "Name of the browser's main config file (default: firefox.cfg)")
}

func runInstall(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	dir, _ := cmd.Flags().GetString("dir")
	filename, _ := cmd.Flags().GetString("filename")

	ctx := context.Background()
	prefsDir, configFilename, _, err := resolveTargets(ctx, app, dir, filename, "")
	if err != nil {
		return err
	}

	installCommand := commands.NewInstallCommand(
		app.Installer,
		app.SettingsRepo,
		app.Logger,
	)
	result, err := installCommand.Execute(ctx, commands.InstallRequest{
		PrefsDir:       prefsDir,
		ConfigFilename: configFilename,
	})
	if err != nil {
		return fmt.Errorf("install failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Installed autoconfig pointer: %s\n", result.Path)
	if !result.PermissionOK {
		warnPermissionMismatch(cmd, result.Path)
	}
	return nil
}
