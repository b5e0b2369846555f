package migrations

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"startpage/internal/domain"
)

// SettingsMigrator handles settings migrations between versions.
type SettingsMigrator interface {
	Migrate(ctx context.Context, data []byte, currentVersion string) (domain.Settings, bool, error)
	FixPermissionsPostMigration(ctx context.Context, settingsPath string, fs domain.FileSystemAdapter) error
}

// Migrator implements settings migration logic.
type Migrator struct {
	logger *slog.Logger
}

// NewMigrator creates a new settings migrator.
func NewMigrator(logger *slog.Logger) *Migrator {
	return &Migrator{
		logger: logger,
	}
}

// Migrate attempts to migrate settings data to the current version.
// Returns: settings, wasMigrated, error.
func (m *Migrator) Migrate(
	ctx context.Context,
	data []byte,
	currentVersion string,
) (domain.Settings, bool, error) {
	version, err := m.detectVersion(data)
	if err != nil {
		return domain.Settings{}, false, fmt.Errorf("failed to detect settings version: %w", err)
	}

	m.logger.DebugContext(ctx, "Detected settings version", "version", version, "current", currentVersion)

	if version == currentVersion {
		return domain.Settings{}, false, nil
	}

	switch version {
	case "", "1.0":
		return m.migrateFromV1(ctx, data)
	default:
		return domain.Settings{}, false, fmt.Errorf("unsupported settings version: %s", version)
	}
}

// detectVersion attempts to detect the settings file version.
func (m *Migrator) detectVersion(data []byte) (string, error) {
	var versionCheck struct {
		Version string `yaml:"version"`
	}

	if err := yaml.Unmarshal(data, &versionCheck); err != nil {
		return "", err
	}

	// Empty version indicates v1.0 or earlier.
	if versionCheck.Version == "" {
		return "1.0", nil
	}

	return versionCheck.Version, nil
}

// migrateFromV1 handles migration from v1.x to the current version.
func (m *Migrator) migrateFromV1(ctx context.Context, data []byte) (domain.Settings, bool, error) {
	settings, err := migrateFromV1(data)
	if err != nil {
		return domain.Settings{}, false, fmt.Errorf("failed to migrate from v1: %w", err)
	}

	m.logger.InfoContext(ctx, "Successfully migrated settings from v1.x")
	return settings, true, nil
}

// FixPermissionsPostMigration fixes file and directory permissions after
// migration from v1.x, which did not enforce owner-only settings access.
func (m *Migrator) FixPermissionsPostMigration(
	ctx context.Context,
	settingsPath string,
	fs domain.FileSystemAdapter,
) error {
	const (
		dirPermissions  = 0o700 // Owner-only access for security
		filePermissions = 0o600 // Read/write owner only
	)

	if err := fs.Chmod(settingsPath, filePermissions); err != nil {
		m.logger.WarnContext(ctx, "Failed to fix settings file permissions",
			"path", settingsPath, "error", err)
		return fmt.Errorf("failed to fix settings file permissions: %w", err)
	}

	settingsDir := filepath.Dir(settingsPath)
	if err := fs.Chmod(settingsDir, dirPermissions); err != nil {
		m.logger.WarnContext(ctx, "Failed to fix settings directory permissions",
			"path", settingsDir, "error", err)
		return fmt.Errorf("failed to fix settings directory permissions: %w", err)
	}

	m.logger.InfoContext(ctx, "Fixed file and directory permissions post-migration",
		"settings_file", settingsPath, "settings_dir", settingsDir)
	return nil
}
