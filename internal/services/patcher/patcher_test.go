package patcher_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startpage/internal/adapters/filesystem"
	"startpage/internal/domain"
	"startpage/internal/errors"
	"startpage/internal/services/patcher"
	"startpage/internal/testutil"
)

const originalContent = "user_pref(\"foo\", 1);\n"

// writeConfig creates a config file with known content in a temp dir.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "firefox.cfg")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newService() *patcher.Service {
	return patcher.NewService(filesystem.New(), testutil.Logger())
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestPatch_InjectsBlockAtTop(t *testing.T) {
	path := writeConfig(t, originalContent)
	svc := newService()

	result, err := svc.Patch(context.Background(), path, "file:///tmp/page.html")

	require.NoError(t, err)
	assert.Equal(t, domain.PatchApplied, result.Outcome)
	assert.True(t, result.PermissionOK)

	content := readFile(t, path)
	expected := "\nnull;\n" + patcher.RenderBlock("file:///tmp/page.html") + "\n" + originalContent
	assert.Equal(t, expected, content)

	// Blank line, then null;, then the block, then the original line intact.
	lines := strings.Split(content, "\n")
	assert.Equal(t, "", lines[0])
	assert.Equal(t, "null;", lines[1])
	assert.True(t, strings.HasSuffix(content, originalContent))
}

func TestPatch_IsIdempotent(t *testing.T) {
	path := writeConfig(t, originalContent)
	svc := newService()
	ctx := context.Background()

	_, err := svc.Patch(ctx, path, "https://start.example.com")
	require.NoError(t, err)
	afterFirst := readFile(t, path)

	result, err := svc.Patch(ctx, path, "https://start.example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.PatchUnchanged, result.Outcome)
	assert.Equal(t, afterFirst, readFile(t, path))
}

func TestPatch_BlockAppearsExactlyOnce(t *testing.T) {
	path := writeConfig(t, originalContent)
	svc := newService()
	ctx := context.Background()

	for range 3 {
		_, err := svc.Patch(ctx, path, "https://start.example.com")
		require.NoError(t, err)
	}

	content := readFile(t, path)
	assert.Equal(t, 1, strings.Count(content, "startpage begin"))
	assert.Equal(t, 1, strings.Count(content, "startpage end"))
}

func TestPatch_NewURLReplacesBlock(t *testing.T) {
	path := writeConfig(t, originalContent)
	svc := newService()
	ctx := context.Background()

	_, err := svc.Patch(ctx, path, "https://old.example.com")
	require.NoError(t, err)

	result, err := svc.Patch(ctx, path, "https://new.example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.PatchUpdated, result.Outcome)

	content := readFile(t, path)
	assert.Equal(t, 1, strings.Count(content, "startpage begin"))
	assert.NotContains(t, content, "old.example.com")
	assert.Contains(t, content, "new.example.com")
	assert.True(t, strings.HasSuffix(content, originalContent))
}

func TestPatch_MissingFile(t *testing.T) {
	svc := newService()

	_, err := svc.Patch(context.Background(), filepath.Join(t.TempDir(), "firefox.cfg"), "https://start.example.com")

	require.Error(t, err)
	assert.True(t, errors.IsFileMissing(err))
}

func TestPatch_InvalidURL(t *testing.T) {
	path := writeConfig(t, originalContent)
	svc := newService()
	ctx := context.Background()

	cases := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"bad scheme", "ftp://example.com"},
		{"whitespace", "https://example.com/a page"},
		{"quote", `https://example.com/"page`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Patch(ctx, path, tc.url)
			require.Error(t, err)
			assert.True(t, errors.IsValidation(err))
		})
	}

	// Nothing was written.
	assert.Equal(t, originalContent, readFile(t, path))
}

func TestPatch_MissingEndMarker(t *testing.T) {
	content := "\nnull;\n// ---- startpage begin ----\nlockPref(\"browser.startup.homepage\", \"https://a\");\n" + originalContent
	path := writeConfig(t, content)
	svc := newService()

	_, err := svc.Patch(context.Background(), path, "https://start.example.com")

	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Equal(t, content, readFile(t, path))
}

func TestPatch_SetsPermissions(t *testing.T) {
	path := writeConfig(t, originalContent)
	require.NoError(t, os.Chmod(path, 0o600))
	svc := newService()

	result, err := svc.Patch(context.Background(), path, "https://start.example.com")

	require.NoError(t, err)
	assert.True(t, result.PermissionOK)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestRevert_RestoresOriginalContent(t *testing.T) {
	path := writeConfig(t, originalContent)
	svc := newService()
	ctx := context.Background()

	_, err := svc.Patch(ctx, path, "https://start.example.com")
	require.NoError(t, err)

	result, err := svc.Revert(ctx, path)
	require.NoError(t, err)
	assert.True(t, result.Removed)
	assert.Equal(t, originalContent, readFile(t, path))
}

func TestRevert_NoBlockIsNoOp(t *testing.T) {
	path := writeConfig(t, originalContent)
	svc := newService()

	result, err := svc.Revert(context.Background(), path)

	require.NoError(t, err)
	assert.False(t, result.Removed)
	assert.Equal(t, originalContent, readFile(t, path))
}

func TestRevert_MissingFile(t *testing.T) {
	svc := newService()

	_, err := svc.Revert(context.Background(), filepath.Join(t.TempDir(), "firefox.cfg"))

	require.Error(t, err)
	assert.True(t, errors.IsFileMissing(err))
}

func TestInspect_ReportsPatchState(t *testing.T) {
	path := writeConfig(t, originalContent)
	svc := newService()
	ctx := context.Background()

	status, err := svc.Inspect(ctx, path)
	require.NoError(t, err)
	assert.True(t, status.Exists)
	assert.False(t, status.Patched)

	_, err = svc.Patch(ctx, path, "https://start.example.com")
	require.NoError(t, err)

	status, err = svc.Inspect(ctx, path)
	require.NoError(t, err)
	assert.True(t, status.Patched)
	assert.Equal(t, "https://start.example.com", status.URL)
	assert.True(t, status.PermissionOK)
}

func TestInspect_MissingFile(t *testing.T) {
	svc := newService()

	status, err := svc.Inspect(context.Background(), filepath.Join(t.TempDir(), "firefox.cfg"))

	require.NoError(t, err)
	assert.False(t, status.Exists)
	assert.False(t, status.Patched)
}

// faultyFS wraps the real adapter and injects failures into the atomic
// replace path.
type faultyFS struct {
	*filesystem.Adapter
	failWrite  bool
	failRename bool
}

func (f *faultyFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	if f.failWrite && strings.HasSuffix(path, ".tmp") {
		return os.ErrPermission
	}
	return f.Adapter.WriteFile(path, data, perm)
}

func (f *faultyFS) Rename(oldPath, newPath string) error {
	if f.failRename {
		return os.ErrPermission
	}
	return f.Adapter.Rename(oldPath, newPath)
}

func TestPatch_WriteFailureLeavesOriginalUntouched(t *testing.T) {
	path := writeConfig(t, originalContent)
	fs := &faultyFS{Adapter: filesystem.New(), failWrite: true}
	svc := patcher.NewService(fs, testutil.Logger())

	_, err := svc.Patch(context.Background(), path, "https://start.example.com")

	require.Error(t, err)
	assert.True(t, errors.IsWriteIncomplete(err))
	assert.Equal(t, originalContent, readFile(t, path))
}

func TestPatch_RenameFailureLeavesOriginalUntouched(t *testing.T) {
	path := writeConfig(t, originalContent)
	fs := &faultyFS{Adapter: filesystem.New(), failRename: true}
	svc := patcher.NewService(fs, testutil.Logger())

	_, err := svc.Patch(context.Background(), path, "https://start.example.com")

	require.Error(t, err)
	assert.True(t, errors.IsWriteIncomplete(err))
	assert.Equal(t, originalContent, readFile(t, path))

	// The temporary file must not be left behind.
	_, statErr := os.Stat(path + ".startpage.tmp")
	assert.True(t, os.IsNotExist(statErr))
}
