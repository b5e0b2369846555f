package cmd

import (
	"context"
	"errors"
	"fmt"

	"startpage/internal/commands"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var revertCmd = &cobra.Command{
	Use:   "revert",
	Short: "Remove the startpage override from the browser config file",
	Long: `Remove the startpage preference-lock block from the browser's main
config file, restoring the surrounding content untouched. A file without the
block is left as is.`,
	RunE: runRevert,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(revertCmd)

	revertCmd.Flags().
		StringP("file", "f", "", "Path to the browser's main config file (default from settings)")
	revertCmd.Flags().
		BoolP("yes", "y", false, "Skip the confirmation prompt")
}

func runRevert(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	file, _ := cmd.Flags().GetString("file")
	assumeYes, _ := cmd.Flags().GetBool("yes")

	ctx := context.Background()
	_, _, configPath, err := resolveTargets(ctx, app, "", "", file)
	if err != nil {
		return err
	}

	revertCommand := commands.NewRevertCommand(
		app.Patcher,
		app.Prompter,
		app.Logger,
	)
	result, err := revertCommand.Execute(ctx, commands.RevertRequest{
		ConfigPath: configPath,
		AssumeYes:  assumeYes,
	})
	if err != nil {
		if errors.Is(err, commands.ErrRevertDeclined) {
			fmt.Fprintln(cmd.OutOrStdout(), "Revert cancelled")
			return nil
		}
		return fmt.Errorf("revert failed: %w", err)
	}

	if result.Removed {
		fmt.Fprintf(cmd.OutOrStdout(), "Removed startpage override from %s\n", result.Path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "No startpage override found in %s\n", result.Path)
	}
	return nil
}
