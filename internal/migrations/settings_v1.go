// Package migrations handles settings migrations between versions.
package migrations

import (
	"gopkg.in/yaml.v3"

	"startpage/internal/domain"
)

// V1Settings represents the old v1.x flat settings structure.
type V1Settings struct {
	Version        string `yaml:"version"`
	InstallDir     string `yaml:"install_dir"`
	PrefsDir       string `yaml:"prefs_dir"`
	ConfigFilename string `yaml:"config_filename"`
	URL            string `yaml:"url"`
}

// migrateFromV1 converts v1 settings to the current format.
func migrateFromV1(data []byte) (domain.Settings, error) {
	var v1 V1Settings
	if err := yaml.Unmarshal(data, &v1); err != nil {
		return domain.Settings{}, err
	}

	return domain.Settings{
		InstallDir:     v1.InstallDir,
		PrefsDir:       v1.PrefsDir,
		ConfigFilename: v1.ConfigFilename,
		LastAppliedURL: v1.URL,
	}, nil
}
