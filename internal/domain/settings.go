package domain

import "context"

// Settings holds the operator-facing configuration persisted between runs.
type Settings struct {
	InstallDir     string `yaml:"installDir"`
	PrefsDir       string `yaml:"prefsDir"`
	ConfigFilename string `yaml:"configFilename"`
	LastAppliedURL string `yaml:"lastAppliedURL"`
}

// SettingsRepository manages the persisted startpage settings.
type SettingsRepository interface {
	GetSettings(ctx context.Context) (Settings, error)
	UpdateSettings(ctx context.Context, settings Settings) error
	SetLastAppliedURL(ctx context.Context, url string) error
	SaveSettings(ctx context.Context) error
	LoadSettings(ctx context.Context) error
}

// SettingsProvider provides configuration paths and platform defaults.
type SettingsProvider interface {
	GetSettingsPath() (string, error)
	GetIconsDir() (string, error)
	DefaultInstallDir() string
	DefaultPrefsDir() string
	DefaultConfigFilename() string
}
