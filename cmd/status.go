package cmd

import (
	"context"
	"errors"

	"startpage/internal/commands"
	"startpage/internal/ui"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report the installed and patched state",
	Long: `Report the state of the autoconfig pointer file and the browser config
file without modifying anything: presence, expected content, permission bits,
and the URL currently pinned by the override block.`,
	RunE: runStatus,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().
		StringP("dir", "d", "", "Browser defaults/pref directory (default from settings)")
	statusCmd.Flags().
		String("filename", "", "Name of the browser's main config file (default: firefox.cfg)")
	statusCmd.Flags().
		StringP("file", "f", "", "Path to the browser's main config file (default from settings)")
}

func runStatus(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	dir, _ := cmd.Flags().GetString("dir")
	filename, _ := cmd.Flags().GetString("filename")
	file, _ := cmd.Flags().GetString("file")

	ctx := context.Background()
	prefsDir, configFilename, configPath, err := resolveTargets(ctx, app, dir, filename, file)
	if err != nil {
		return err
	}

	statusCommand := commands.NewStatusCommand(
		app.Installer,
		app.Patcher,
		app.Logger,
	)
	report, err := statusCommand.Execute(ctx, commands.StatusRequest{
		PrefsDir:       prefsDir,
		ConfigFilename: configFilename,
		ConfigPath:     configPath,
	})
	if err != nil {
		return err
	}

	renderStatus(ui.NewWithWriter(cmd.OutOrStdout()), report)
	return nil
}

func renderStatus(out *ui.UI, report commands.StatusReport) {
	out.Section("Autoconfig pointer")
	switch {
	case !report.Install.Exists:
		out.Error("%s: not installed", report.Install.Path)
	case !report.Install.ContentOK:
		out.Warning("%s: present but content differs (run 'startpage install')", report.Install.Path)
	default:
		out.Success("%s: installed", report.Install.Path)
	}
	if report.Install.Exists && !report.Install.PermissionOK {
		out.Warning("%s: permissions are not 0644", report.Install.Path)
	}

	out.Section("Browser config")
	switch {
	case !report.Patch.Exists:
		out.Error("%s: missing (is the browser installed?)", report.Patch.Path)
	case !report.Patch.Patched:
		out.Info("%s: not patched", report.Patch.Path)
	case report.Patch.URL != "":
		out.Success("%s: patched, start page is %s", report.Patch.Path, report.Patch.URL)
	default:
		out.Success("%s: patched", report.Patch.Path)
	}
	if report.Patch.Exists && !report.Patch.PermissionOK {
		out.Warning("%s: permissions are not 0644", report.Patch.Path)
	}
}
