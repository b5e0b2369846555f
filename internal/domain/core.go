package domain

import "context"

// AutoconfigInstaller writes and verifies the autoconfig pointer file that
// tells the browser which scriptable config file to load.
type AutoconfigInstaller interface {
	// Install writes the pointer file into dir, overwriting any existing
	// file, and enforces its permission bits.
	Install(ctx context.Context, dir, configFilename string) (InstallResult, error)

	// Verify reports the current state of the pointer file without
	// modifying anything.
	Verify(ctx context.Context, dir, configFilename string) (InstallStatus, error)
}

// ConfigPatcher manages the startpage override block inside the browser's
// main config file.
type ConfigPatcher interface {
	// Patch ensures the override block for url appears exactly once at the
	// top of the file. Repeated calls with the same url are no-ops;
	// a different url replaces the existing block in place.
	Patch(ctx context.Context, configPath, url string) (PatchResult, error)

	// Revert removes the override block if present.
	Revert(ctx context.Context, configPath string) (RevertResult, error)

	// Inspect reports the current patch state without modifying anything.
	Inspect(ctx context.Context, configPath string) (PatchStatus, error)
}

// IconMirror downloads the remote icons referenced by a bookmarks file into
// a local directory and rewrites the file to point at the local copies.
type IconMirror interface {
	Mirror(ctx context.Context, bookmarksPath, outputDir string, filter BookmarkFilter) (MirrorResult, error)
}

// BookmarkFilter decides which bookmarks are skipped during icon mirroring.
type BookmarkFilter interface {
	ShouldExclude(title string) bool
}

// ConfirmPrompter asks the operator for a yes/no confirmation.
type ConfirmPrompter interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
	IsInteractive() bool
}

// PatchOutcome describes what a Patch call did to the config file.
type PatchOutcome string

const (
	// PatchApplied means the block was not present and has been injected.
	PatchApplied PatchOutcome = "applied"
	// PatchUpdated means an existing block was replaced (URL changed).
	PatchUpdated PatchOutcome = "updated"
	// PatchUnchanged means the block was already present with the same URL.
	PatchUnchanged PatchOutcome = "unchanged"
)

// InstallResult describes a completed Install operation.
type InstallResult struct {
	Path string
	// PermissionOK is false when the post-write permission check did not
	// read back the expected mode. This is a warning, not a failure.
	PermissionOK bool
}

// InstallStatus describes the observed state of the pointer file.
type InstallStatus struct {
	Path         string
	Exists       bool
	ContentOK    bool
	PermissionOK bool
}

// PatchResult describes a completed Patch operation.
type PatchResult struct {
	Path         string
	URL          string
	Outcome      PatchOutcome
	PermissionOK bool
}

// RevertResult describes a completed Revert operation.
type RevertResult struct {
	Path    string
	Removed bool
}

// PatchStatus describes the observed patch state of the config file.
type PatchStatus struct {
	Path         string
	Exists       bool
	Patched      bool
	URL          string
	PermissionOK bool
}
