package settings

import (
	"fmt"
	"path/filepath"

	"startpage/internal/domain"
)

// Provider provides configuration paths and platform defaults.
type Provider struct {
	fs domain.FileSystemAdapter
}

// NewProvider creates a new settings provider.
func NewProvider(fs domain.FileSystemAdapter) *Provider {
	return &Provider{
		fs: fs,
	}
}

// GetSettingsPath returns the path to the startpage settings file.
func (p *Provider) GetSettingsPath() (string, error) {
	homeDir, err := p.fs.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "startpage", "config.yaml"), nil
}

// GetIconsDir returns the default directory for mirrored bookmark icons.
func (p *Provider) GetIconsDir() (string, error) {
	homeDir, err := p.fs.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "startpage", "icons"), nil
}

// DefaultInstallDir returns the default browser installation directory.
func (p *Provider) DefaultInstallDir() string {
	return "/usr/lib/firefox"
}

// DefaultPrefsDir returns the default directory for the autoconfig pointer file.
func (p *Provider) DefaultPrefsDir() string {
	return "/usr/lib/firefox/defaults/pref"
}

// DefaultConfigFilename returns the default name of the browser's main config file.
func (p *Provider) DefaultConfigFilename() string {
	return "firefox.cfg"
}
