package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"startpage/internal/app"
	"startpage/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

//nolint:gochecknoglobals // Cobra CLI pattern for persistent flag variables
var (
	cfgFile  string
	verbose  bool
	logLevel string

	application *app.App
)

// VersionInfo holds build information.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

//nolint:gochecknoglobals // Package-level version info for CLI commands
var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
	BuiltBy: "unknown",
}

// SetVersionInfo updates the build information.
func SetVersionInfo(v, c, d, b string) {
	versionInfo.Version = v
	versionInfo.Commit = c
	versionInfo.Date = d
	versionInfo.BuiltBy = b
}

// GetVersionInfo returns the current version information.
func GetVersionInfo() VersionInfo {
	return versionInfo
}

// GetApp returns the initialized application instance.
func GetApp() *app.App {
	return application
}

//nolint:gochecknoglobals // Cobra CLI pattern for root command
var rootCmd = &cobra.Command{
	Use:   "startpage",
	Short: "A CLI tool for pinning a browser's start page via autoconfig",
	Long: `Startpage pins a browser's start and new-tab page by installing an
autoconfig pointer file and injecting a preference-lock block into the
browser's main config file. Both operations are idempotent and atomic.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra CLI pattern for flag initialization
func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/startpage/config.yaml)")
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, or error")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home + "/.config/startpage")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("STARTPAGE")
	viper.AutomaticEnv()

	// Read config file silently (ignore error if config file doesn't exist)
	_ = viper.ReadInConfig()

	// Initialize the application with dependency injection
	opts := []app.Option{app.WithLogLevel(logging.LogLevel(logLevel))}
	if verbose {
		opts = append(opts, app.WithVerbose(true))
	}

	var err error
	application, err = app.NewApp(context.Background(), opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}
}

// resolveTargets fills empty path fields from persisted settings, then from
// platform defaults, so flags stay optional on a configured system.
func resolveTargets(ctx context.Context, a *app.App, prefsDir, configFilename, configPath string) (string, string, string, error) {
	settings, err := a.SettingsRepo.GetSettings(ctx)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to load settings: %w", err)
	}

	if prefsDir == "" {
		prefsDir = settings.PrefsDir
	}
	if prefsDir == "" {
		prefsDir = a.SettingsProvider.DefaultPrefsDir()
	}

	if configFilename == "" {
		configFilename = settings.ConfigFilename
	}
	if configFilename == "" {
		configFilename = a.SettingsProvider.DefaultConfigFilename()
	}

	if configPath == "" {
		installDir := settings.InstallDir
		if installDir == "" {
			installDir = a.SettingsProvider.DefaultInstallDir()
		}
		configPath = filepath.Join(installDir, configFilename)
	}

	return prefsDir, configFilename, configPath, nil
}

// warnPermissionMismatch reminds the operator when a permission check did not
// read back 0644.
func warnPermissionMismatch(cmd *cobra.Command, path string) {
	fmt.Fprintf(cmd.ErrOrStderr(),
		"Warning: permissions on %s are not 0644; you may need elevated privileges to correct them\n", path)
}
