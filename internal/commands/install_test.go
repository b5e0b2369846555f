package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"startpage/internal/commands"
	"startpage/internal/domain"
	"startpage/internal/mocks"
	"startpage/internal/testutil"
)

func TestInstallCommand_Execute(t *testing.T) {
	// Arrange
	installer := mocks.NewMockAutoconfigInstaller(t)
	settingsRepo := mocks.NewMockSettingsRepository(t)
	cmd := commands.NewInstallCommand(installer, settingsRepo, testutil.Logger())

	installer.On("Install", mock.Anything, "/usr/lib/firefox/defaults/pref", "firefox.cfg").
		Return(domain.InstallResult{
			Path:         "/usr/lib/firefox/defaults/pref/autoconfig.js",
			PermissionOK: true,
		}, nil)
	settingsRepo.On("GetSettings", mock.Anything).Return(domain.Settings{}, nil)
	settingsRepo.On("UpdateSettings", mock.Anything, domain.Settings{
		PrefsDir:       "/usr/lib/firefox/defaults/pref",
		ConfigFilename: "firefox.cfg",
	}).Return(nil)

	// Act
	result, err := cmd.Execute(context.Background(), commands.InstallRequest{
		PrefsDir:       "/usr/lib/firefox/defaults/pref",
		ConfigFilename: "firefox.cfg",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/usr/lib/firefox/defaults/pref/autoconfig.js", result.Path)
	assert.True(t, result.PermissionOK)
}

func TestInstallCommand_Execute_InstallerError(t *testing.T) {
	// Arrange
	installer := mocks.NewMockAutoconfigInstaller(t)
	settingsRepo := mocks.NewMockSettingsRepository(t)
	cmd := commands.NewInstallCommand(installer, settingsRepo, testutil.Logger())

	installer.On("Install", mock.Anything, "/missing", "firefox.cfg").
		Return(domain.InstallResult{}, errors.New("path not found"))

	// Act
	_, err := cmd.Execute(context.Background(), commands.InstallRequest{
		PrefsDir:       "/missing",
		ConfigFilename: "firefox.cfg",
	})

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to install autoconfig pointer")
	settingsRepo.AssertNotCalled(t, "UpdateSettings", mock.Anything, mock.Anything)
}

func TestInstallCommand_Execute_SettingsSaveFailureIsNotFatal(t *testing.T) {
	// Arrange
	installer := mocks.NewMockAutoconfigInstaller(t)
	settingsRepo := mocks.NewMockSettingsRepository(t)
	cmd := commands.NewInstallCommand(installer, settingsRepo, testutil.Logger())

	installer.On("Install", mock.Anything, "/usr/lib/firefox/defaults/pref", "firefox.cfg").
		Return(domain.InstallResult{Path: "/usr/lib/firefox/defaults/pref/autoconfig.js"}, nil)
	settingsRepo.On("GetSettings", mock.Anything).Return(domain.Settings{}, nil)
	settingsRepo.On("UpdateSettings", mock.Anything, mock.Anything).
		Return(errors.New("read-only settings dir"))

	// Act
	result, err := cmd.Execute(context.Background(), commands.InstallRequest{
		PrefsDir:       "/usr/lib/firefox/defaults/pref",
		ConfigFilename: "firefox.cfg",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/usr/lib/firefox/defaults/pref/autoconfig.js", result.Path)
}
