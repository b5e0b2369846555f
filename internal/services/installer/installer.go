// Package installer writes the autoconfig pointer file that directs the
// browser at its scriptable config file.
package installer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"startpage/internal/domain"
	"startpage/internal/errors"
)

const (
	// AutoconfigFilename is the fixed name of the pointer file inside the
	// browser's defaults/pref directory.
	AutoconfigFilename = "autoconfig.js"

	// filePermissions is the expected mode of the pointer file: owner
	// read/write, group/other read-only.
	filePermissions = os.FileMode(0o644)
)

// Service writes and verifies the autoconfig pointer file.
type Service struct {
	fs     domain.FileSystemAdapter
	logger *slog.Logger
}

// NewService creates a new installer service.
func NewService(fs domain.FileSystemAdapter, logger *slog.Logger) *Service {
	return &Service{
		fs:     fs,
		logger: logger,
	}
}

// RenderAutoconfig returns the exact pointer file content for the given
// config filename. The declarations name the config file, disable content
// obscuring, and keep the config sandbox enabled.
func RenderAutoconfig(configFilename string) string {
	return fmt.Sprintf(`pref("general.config.filename", %q);
pref("general.config.obscure_value", 0);
pref("general.config.sandbox_enabled", true);
`, configFilename)
}

// Install writes the pointer file into dir, overwriting any existing file
// without prompting, and enforces mode 0644. The overwrite is intentional:
// the pointer file has exactly one valid content for a given config filename.
func (s *Service) Install(ctx context.Context, dir, configFilename string) (domain.InstallResult, error) {
	result := domain.InstallResult{}

	info, err := s.fs.Stat(dir)
	if err != nil {
		return result, errors.NewInstallError(dir, "", errors.ClassifyFS(err))
	}
	if !info.IsDir() {
		return result, errors.NewInstallError(dir, "",
			fmt.Errorf("%w: '%s' is not a directory", errors.ErrPathNotFound, dir))
	}

	path := filepath.Join(dir, AutoconfigFilename)
	result.Path = path
	payload := []byte(RenderAutoconfig(configFilename))

	s.logger.InfoContext(ctx, "Writing autoconfig pointer file",
		"path", path,
		"configFilename", configFilename)

	if writeErr := s.fs.WriteFile(path, payload, filePermissions); writeErr != nil {
		return result, errors.NewInstallError(dir, path, errors.ClassifyFS(writeErr))
	}

	// WriteFile applies the mode only on creation; enforce it on overwrite too.
	if chmodErr := s.fs.Chmod(path, filePermissions); chmodErr != nil {
		return result, errors.NewInstallError(dir, path, errors.ClassifyFS(chmodErr))
	}

	result.PermissionOK = s.verifyPermissions(ctx, path)
	return result, nil
}

// Verify reports the pointer file's state without modifying anything.
func (s *Service) Verify(ctx context.Context, dir, configFilename string) (domain.InstallStatus, error) {
	path := filepath.Join(dir, AutoconfigFilename)
	status := domain.InstallStatus{Path: path}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return status, nil
		}
		return status, errors.NewInstallError(dir, path, errors.ClassifyFS(err))
	}

	status.Exists = true
	status.ContentOK = bytes.Equal(data, []byte(RenderAutoconfig(configFilename)))
	status.PermissionOK = s.verifyPermissions(ctx, path)
	return status, nil
}

// verifyPermissions checks that the file mode reads back as 0644. A mismatch
// is logged as a warning; the operator may need elevated privileges to fix it.
func (s *Service) verifyPermissions(ctx context.Context, path string) bool {
	info, err := s.fs.Stat(path)
	if err != nil {
		s.logger.WarnContext(ctx, "Unable to verify permissions", "path", path, "error", err)
		return false
	}
	if info.Mode().Perm() != filePermissions {
		mismatch := errors.NewPermissionMismatchError(path, filePermissions, info.Mode().Perm())
		s.logger.WarnContext(ctx, "Permission check failed", "path", path, "error", mismatch)
		return false
	}
	return true
}
