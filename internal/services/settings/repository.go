package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"startpage/internal/domain"
	"startpage/internal/migrations"
)

const (
	dirPermissions  = 0o700 // Owner-only access for security
	filePermissions = 0o600 // Read/write owner only
	settingsVersion = "2.0" // Current settings file version
)

// Repository handles settings persistence.
type Repository struct {
	fs           domain.FileSystemAdapter
	settingsPath string
	config       *Config
	migrator     migrations.SettingsMigrator
	logger       *slog.Logger
}

// Config represents the startpage settings file structure.
type Config struct {
	Version  string          `yaml:"version"`
	Settings domain.Settings `yaml:"settings"`
}

// NewRepository creates a new settings repository.
func NewRepository(
	fs domain.FileSystemAdapter,
	settingsPath string,
	logger *slog.Logger,
) (*Repository, error) {
	repo := &Repository{
		fs:           fs,
		settingsPath: settingsPath,
		config:       &Config{Version: settingsVersion},
		migrator:     migrations.NewMigrator(logger),
		logger:       logger,
	}

	settingsDir := filepath.Dir(settingsPath)
	if err := fs.MkdirAll(settingsDir, dirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := repo.LoadSettings(context.Background()); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("Failed to load existing settings, starting with defaults", "error", err)
		}
	}

	return repo, nil
}

// GetSettings returns the current settings.
func (r *Repository) GetSettings(ctx context.Context) (domain.Settings, error) {
	r.logger.DebugContext(ctx, "Getting settings", "path", r.settingsPath)
	return r.config.Settings, nil
}

// UpdateSettings replaces the stored settings and persists them.
func (r *Repository) UpdateSettings(ctx context.Context, settings domain.Settings) error {
	old := r.config.Settings
	r.config.Settings = settings

	if err := r.SaveSettings(ctx); err != nil {
		r.config.Settings = old // Rollback
		return fmt.Errorf("failed to save settings after update: %w", err)
	}

	r.logger.InfoContext(ctx, "Updated settings", "path", r.settingsPath)
	return nil
}

// SetLastAppliedURL records the URL most recently applied by the patcher.
func (r *Repository) SetLastAppliedURL(ctx context.Context, url string) error {
	old := r.config.Settings.LastAppliedURL
	r.config.Settings.LastAppliedURL = url

	if err := r.SaveSettings(ctx); err != nil {
		r.config.Settings.LastAppliedURL = old // Rollback
		return fmt.Errorf("failed to save settings after recording URL: %w", err)
	}

	r.logger.DebugContext(ctx, "Recorded last applied URL", "url", url)
	return nil
}

// SaveSettings saves the current settings to disk.
func (r *Repository) SaveSettings(ctx context.Context) error {
	data, err := yaml.Marshal(r.config)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if writeErr := r.fs.WriteFile(r.settingsPath, data, filePermissions); writeErr != nil {
		return fmt.Errorf("failed to write settings file: %w", writeErr)
	}

	r.logger.DebugContext(ctx, "Settings saved", "path", r.settingsPath)
	return nil
}

// LoadSettings loads the settings from disk.
func (r *Repository) LoadSettings(ctx context.Context) error {
	data, err := r.fs.ReadFile(r.settingsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.logger.DebugContext(ctx, "Settings file does not exist", "path", r.settingsPath)
			return os.ErrNotExist
		}
		return fmt.Errorf("failed to read settings file: %w", err)
	}

	// Try migration first
	migrated, wasMigrated, migrationErr := r.migrator.Migrate(ctx, data, settingsVersion)
	if migrationErr != nil {
		r.logger.WarnContext(ctx, "Migration failed, attempting direct load", "error", migrationErr)
	} else if wasMigrated {
		r.config = &Config{Version: settingsVersion, Settings: migrated}

		if permErr := r.migrator.FixPermissionsPostMigration(ctx, r.settingsPath, r.fs); permErr != nil {
			r.logger.WarnContext(ctx, "Failed to fix permissions during migration", "error", permErr)
		}

		if saveErr := r.SaveSettings(ctx); saveErr != nil {
			r.logger.WarnContext(ctx, "Failed to save migrated settings", "error", saveErr)
		}
		r.logger.InfoContext(ctx, "Settings migrated and loaded",
			"path", r.settingsPath,
			"version", settingsVersion)
		return nil
	}

	// Load as current version (no migration needed or migration failed)
	var config Config
	if unmarshalErr := yaml.Unmarshal(data, &config); unmarshalErr != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", unmarshalErr)
	}

	r.config = &config
	r.logger.InfoContext(ctx, "Settings loaded",
		"path", r.settingsPath,
		"version", config.Version)
	return nil
}
