package settings_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startpage/internal/mocks"
	"startpage/internal/services/settings"
)

func TestProvider_GetSettingsPath(t *testing.T) {
	fs := mocks.NewMockFileSystemAdapter(t)
	fs.On("UserHomeDir").Return("/home/user", nil)
	provider := settings.NewProvider(fs)

	path, err := provider.GetSettingsPath()

	require.NoError(t, err)
	assert.Equal(t, "/home/user/.config/startpage/config.yaml", path)
}

func TestProvider_GetIconsDir(t *testing.T) {
	fs := mocks.NewMockFileSystemAdapter(t)
	fs.On("UserHomeDir").Return("/home/user", nil)
	provider := settings.NewProvider(fs)

	dir, err := provider.GetIconsDir()

	require.NoError(t, err)
	assert.Equal(t, "/home/user/.config/startpage/icons", dir)
}

func TestProvider_HomeDirError(t *testing.T) {
	fs := mocks.NewMockFileSystemAdapter(t)
	fs.On("UserHomeDir").Return("", errors.New("$HOME is not defined"))
	provider := settings.NewProvider(fs)

	_, err := provider.GetSettingsPath()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get home directory")
}

func TestProvider_Defaults(t *testing.T) {
	provider := settings.NewProvider(mocks.NewMockFileSystemAdapter(t))

	assert.Equal(t, "/usr/lib/firefox", provider.DefaultInstallDir())
	assert.Equal(t, "/usr/lib/firefox/defaults/pref", provider.DefaultPrefsDir())
	assert.Equal(t, "firefox.cfg", provider.DefaultConfigFilename())
}
