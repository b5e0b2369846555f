// Package patcher manages the startpage override block inside the browser's
// main config file. The file's preference-scripting syntax is treated as an
// opaque string; the patcher only knows its own marker-delimited block.
package patcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"startpage/internal/domain"
	"startpage/internal/errors"
	"startpage/internal/utils"
)

const (
	// beginMarker and endMarker delimit the override block. Everything
	// between them (inclusive) belongs to startpage and is replaced
	// wholesale on re-patch; everything outside is never touched.
	beginMarker = "// ---- startpage begin ----"
	endMarker   = "// ---- startpage end ----"

	// injectedPrefix precedes the block when it is first inserted: one
	// blank line, then a null statement terminating whatever the browser
	// evaluates before the block.
	injectedPrefix = "\nnull;\n"

	// filePermissions is the expected mode of the config file.
	filePermissions = os.FileMode(0o644)

	// tempSuffix names the temporary file used for the atomic replace.
	tempSuffix = ".startpage.tmp"
)

var homepagePattern = regexp.MustCompile(`lockPref\("browser\.startup\.homepage",\s*"([^"]*)"\);`)

// Service patches the browser config file.
type Service struct {
	fs     domain.FileSystemAdapter
	logger *slog.Logger
}

// NewService creates a new patcher service.
func NewService(fs domain.FileSystemAdapter, logger *slog.Logger) *Service {
	return &Service{
		fs:     fs,
		logger: logger,
	}
}

// RenderBlock returns the marker-delimited override block for url, without a
// trailing newline.
func RenderBlock(url string) string {
	var b strings.Builder
	b.WriteString(beginMarker)
	b.WriteString("\n")
	fmt.Fprintf(&b, "lockPref(\"browser.startup.homepage\", %q);\n", url)
	b.WriteString("lockPref(\"browser.startup.page\", 1);\n")
	b.WriteString("lockPref(\"browser.newtabpage.enabled\", false);\n")
	fmt.Fprintf(&b, "pref(\"browser.newtabpage.url\", %q);\n", url)
	b.WriteString(endMarker)
	return b.String()
}

// Patch ensures the override block for url appears exactly once at the top of
// the file. An absent block is injected; a present block with a different URL
// is replaced in place; an identical block is left untouched. All rewrites go
// through an atomic temp-file-and-rename so an interrupted run never leaves a
// half-written config file.
func (s *Service) Patch(ctx context.Context, configPath, url string) (domain.PatchResult, error) {
	result := domain.PatchResult{Path: configPath, URL: url}

	if err := utils.ValidateTargetURL(url); err != nil {
		return result, err
	}

	content, err := s.readConfig(configPath)
	if err != nil {
		return result, err
	}

	block := RenderBlock(url)

	begin := strings.Index(content, beginMarker)
	if begin < 0 {
		newContent := injectedPrefix + block + "\n" + content
		if replaceErr := s.replaceFile(ctx, configPath, []byte(newContent)); replaceErr != nil {
			return result, replaceErr
		}
		result.Outcome = domain.PatchApplied
		s.logger.InfoContext(ctx, "Injected startpage override", "path", configPath, "url", url)
	} else {
		end, regionErr := s.regionEnd(configPath, content, begin)
		if regionErr != nil {
			return result, regionErr
		}

		if content[begin:end] == block {
			result.Outcome = domain.PatchUnchanged
			s.logger.DebugContext(ctx, "Startpage override already present", "path", configPath, "url", url)
		} else {
			newContent := content[:begin] + block + content[end:]
			if replaceErr := s.replaceFile(ctx, configPath, []byte(newContent)); replaceErr != nil {
				return result, replaceErr
			}
			result.Outcome = domain.PatchUpdated
			s.logger.InfoContext(ctx, "Replaced startpage override", "path", configPath, "url", url)
		}
	}

	result.PermissionOK = s.ensurePermissions(ctx, configPath)
	return result, nil
}

// Revert removes the override block if present. A file without the block is
// left untouched and reported as not removed.
func (s *Service) Revert(ctx context.Context, configPath string) (domain.RevertResult, error) {
	result := domain.RevertResult{Path: configPath}

	content, err := s.readConfig(configPath)
	if err != nil {
		return result, err
	}

	begin := strings.Index(content, beginMarker)
	if begin < 0 {
		s.logger.DebugContext(ctx, "No startpage override to revert", "path", configPath)
		return result, nil
	}

	end, regionErr := s.regionEnd(configPath, content, begin)
	if regionErr != nil {
		return result, regionErr
	}

	// Take the newline that followed the end marker, and the injected
	// prefix when the block still sits where Patch put it.
	if end < len(content) && content[end] == '\n' {
		end++
	}
	start := begin
	if content[:begin] == injectedPrefix {
		start = 0
	}

	newContent := content[:start] + content[end:]
	if replaceErr := s.replaceFile(ctx, configPath, []byte(newContent)); replaceErr != nil {
		return result, replaceErr
	}

	result.Removed = true
	s.logger.InfoContext(ctx, "Removed startpage override", "path", configPath)
	return result, nil
}

// Inspect reports the patch state of the config file without modifying it.
func (s *Service) Inspect(ctx context.Context, configPath string) (domain.PatchStatus, error) {
	status := domain.PatchStatus{Path: configPath}

	data, err := s.fs.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return status, nil
		}
		return status, errors.NewPatchError(configPath, "inspect", errors.ClassifyFS(err))
	}
	content := string(data)
	status.Exists = true

	begin := strings.Index(content, beginMarker)
	if begin >= 0 {
		end, regionErr := s.regionEnd(configPath, content, begin)
		if regionErr != nil {
			return status, regionErr
		}
		status.Patched = true
		if m := homepagePattern.FindStringSubmatch(content[begin:end]); m != nil {
			status.URL = m[1]
		}
	}

	if info, statErr := s.fs.Stat(configPath); statErr == nil {
		status.PermissionOK = info.Mode().Perm() == filePermissions
	}
	return status, nil
}

// readConfig reads the config file, mapping a missing file to ErrFileMissing:
// the main config file is expected to pre-exist as part of the browser
// installation, so its absence is an operator error, not a cue to create it.
func (s *Service) readConfig(configPath string) (string, error) {
	data, err := s.fs.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewPatchError(configPath, "read",
				fmt.Errorf("%w: config file does not exist", errors.ErrFileMissing))
		}
		return "", errors.NewPatchError(configPath, "read", errors.ClassifyFS(err))
	}
	return string(data), nil
}

// regionEnd locates the end of the marker-delimited region starting at begin.
// A begin marker without a matching end marker means someone edited inside
// the region; refuse to guess at its extent.
func (s *Service) regionEnd(configPath, content string, begin int) (int, error) {
	rel := strings.Index(content[begin:], endMarker)
	if rel < 0 {
		return 0, errors.NewPatchError(configPath, "inspect",
			fmt.Errorf("%w: override block is missing its end marker", errors.ErrInvalidInput))
	}
	return begin + rel + len(endMarker), nil
}

// replaceFile writes data to a temporary file next to path and renames it
// into place. On any failure the original file is left untouched and the
// temporary file is removed.
func (s *Service) replaceFile(ctx context.Context, path string, data []byte) error {
	tempPath := path + tempSuffix

	if err := s.fs.WriteFile(tempPath, data, filePermissions); err != nil {
		_ = s.fs.Remove(tempPath)
		return errors.NewPatchError(path, "write",
			fmt.Errorf("%w: %w", errors.ErrWriteIncomplete, errors.ClassifyFS(err)))
	}

	if err := s.fs.Rename(tempPath, path); err != nil {
		_ = s.fs.Remove(tempPath)
		return errors.NewPatchError(path, "replace",
			fmt.Errorf("%w: %w", errors.ErrWriteIncomplete, err))
	}

	s.logger.DebugContext(ctx, "Replaced config file atomically", "path", path, "bytes", len(data))
	return nil
}

// ensurePermissions sets the config file mode to 0644 and verifies it reads
// back. A mismatch is logged as a warning; the operation still succeeds.
func (s *Service) ensurePermissions(ctx context.Context, path string) bool {
	if err := s.fs.Chmod(path, filePermissions); err != nil {
		s.logger.WarnContext(ctx, "Unable to set permissions", "path", path, "error", err)
		return false
	}
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
