// Package icons mirrors the remote icons referenced by a start page's
// bookmarks file into a local directory, so a file:// start page keeps its
// icons when offline.
package icons

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"startpage/internal/domain"
	"startpage/internal/errors"
	"startpage/internal/utils"
)

const (
	// defaultWorkers is the number of concurrent download workers.
	defaultWorkers = 8

	dirPermissions  = os.FileMode(0o755)
	filePermissions = os.FileMode(0o644)

	backupSuffix = ".bak"
)

// contentTypeExt maps image content types to file extensions.
var contentTypeExt = map[string]string{
	"image/png":                ".png",
	"image/x-icon":             ".ico",
	"image/vnd.microsoft.icon": ".ico",
	"image/jpeg":               ".jpg",
	"image/jpg":                ".jpg",
	"image/svg+xml":            ".svg",
	"image/webp":               ".webp",
	"image/gif":                ".gif",
}

// Service downloads bookmark icons and rewrites the bookmarks file.
type Service struct {
	fs      domain.FileSystemAdapter
	http    domain.HTTPGetter
	workers int
	logger  *slog.Logger
}

// NewService creates a new icon mirroring service. workers <= 0 selects the
// default pool size.
func NewService(fs domain.FileSystemAdapter, httpGetter domain.HTTPGetter, workers int, logger *slog.Logger) *Service {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Service{
		fs:      fs,
		http:    httpGetter,
		workers: workers,
		logger:  logger,
	}
}

// downloadTask is one bookmark icon to fetch.
type downloadTask struct {
	Index    int
	Bookmark domain.Bookmark
}

// downloadResult is the outcome of one fetch.
type downloadResult struct {
	Index     int
	LocalPath string
	Err       error
}

// Mirror downloads every remote icon in the bookmarks file into outputDir and
// rewrites the icon fields to the local paths. A bookmark whose download
// fails keeps its original URL; per-bookmark failures never abort the run.
// The original file is copied to a .bak sibling before being rewritten.
func (s *Service) Mirror(
	ctx context.Context,
	bookmarksPath, outputDir string,
	filter domain.BookmarkFilter,
) (domain.MirrorResult, error) {
	result := domain.MirrorResult{}

	raw, err := s.fs.ReadFile(bookmarksPath)
	if err != nil {
		return result, fmt.Errorf("failed to read bookmarks file '%s': %w", bookmarksPath, errors.ClassifyFS(err))
	}

	var bookmarks []domain.Bookmark
	if err := json.Unmarshal(raw, &bookmarks); err != nil {
		return result, fmt.Errorf("failed to parse bookmarks file '%s': %w", bookmarksPath, err)
	}
	result.Total = len(bookmarks)

	if err := s.fs.MkdirAll(outputDir, dirPermissions); err != nil {
		return result, fmt.Errorf("failed to create icon directory: %w", errors.ClassifyFS(err))
	}

	tasks := s.collectTasks(ctx, bookmarks, filter)
	result.Skipped = len(bookmarks) - len(tasks)

	if len(tasks) > 0 {
		var downloadErrs []error
		results := s.downloadAll(ctx, tasks, outputDir)
		for _, r := range results {
			if r.Err != nil {
				// Keep the remote URL so the entry still renders online.
				s.logger.WarnContext(ctx, "Icon download failed",
					"title", bookmarks[r.Index].Title,
					"icon", bookmarks[r.Index].Icon,
					"error", r.Err)
				downloadErrs = append(downloadErrs,
					fmt.Errorf("'%s': %w", bookmarks[r.Index].Title, r.Err))
				result.Failed++
				continue
			}
			bookmarks[r.Index].Icon = r.LocalPath
			result.Downloaded++
		}
		result.Failures = errors.Join(downloadErrs...)
	}

	backupPath := bookmarksPath + backupSuffix
	if err := s.fs.WriteFile(backupPath, raw, filePermissions); err != nil {
		return result, fmt.Errorf("failed to back up bookmarks file: %w", errors.ClassifyFS(err))
	}
	result.BackupPath = backupPath

	rewritten, err := marshalBookmarks(bookmarks)
	if err != nil {
		return result, fmt.Errorf("failed to encode bookmarks: %w", err)
	}
	if err := s.fs.WriteFile(bookmarksPath, rewritten, filePermissions); err != nil {
		return result, fmt.Errorf("failed to rewrite bookmarks file: %w", errors.ClassifyFS(err))
	}

	s.logger.InfoContext(ctx, "Icon mirroring completed",
		"total", result.Total,
		"downloaded", result.Downloaded,
		"skipped", result.Skipped,
		"failed", result.Failed)
	return result, nil
}

// collectTasks selects the bookmarks whose icons need downloading: remote
// http(s) icons not matched by the exclude filter.
func (s *Service) collectTasks(ctx context.Context, bookmarks []domain.Bookmark, filter domain.BookmarkFilter) []downloadTask {
	tasks := make([]downloadTask, 0, len(bookmarks))
	for i, bookmark := range bookmarks {
		if !strings.HasPrefix(bookmark.Icon, "http://") && !strings.HasPrefix(bookmark.Icon, "https://") {
			continue
		}
		if filter.ShouldExclude(bookmark.Title) {
			s.logger.DebugContext(ctx, "Excluding bookmark", "title", bookmark.Title)
			continue
		}
		tasks = append(tasks, downloadTask{Index: i, Bookmark: bookmark})
	}
	return tasks
}

// downloadAll fetches icons on a fixed worker pool.
func (s *Service) downloadAll(ctx context.Context, tasks []downloadTask, outputDir string) []downloadResult {
	taskChan := make(chan downloadTask, len(tasks))
	resultChan := make(chan downloadResult, len(tasks))

	var wg sync.WaitGroup
	for i := range s.workers {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for task := range taskChan {
				localPath, err := s.downloadIcon(ctx, task.Bookmark, outputDir)
				resultChan <- downloadResult{Index: task.Index, LocalPath: localPath, Err: err}
				if err == nil {
					s.logger.DebugContext(ctx, "Downloaded icon",
						"worker", workerID,
						"title", task.Bookmark.Title,
						"path", localPath)
				}
			}
		}(i)
	}

	for _, task := range tasks {
		taskChan <- task
	}
	close(taskChan)

	wg.Wait()
	close(resultChan)

	results := make([]downloadResult, 0, len(tasks))
	for r := range resultChan {
		results = append(results, r)
	}
	return results
}

// downloadIcon fetches one icon and writes it under outputDir. The filename
// comes from the bookmark title, keeping unicode names when the filesystem
// accepts them and falling back to an ASCII-only name when it does not.
func (s *Service) downloadIcon(ctx context.Context, bookmark domain.Bookmark, outputDir string) (string, error) {
	resp, err := s.http.Get(ctx, bookmark.Icon)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return "", fmt.Errorf("unexpected status %d for '%s'", resp.StatusCode, bookmark.Icon)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read icon body: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("empty icon body for '%s'", bookmark.Icon)
	}

	ext := extensionFor(resp.Header.Get("Content-Type"), bookmark.Icon)
	name := utils.SanitizeIconFilename(bookmark.Title) + ext
	localPath := filepath.Join(outputDir, name)

	if writeErr := s.fs.WriteFile(localPath, data, filePermissions); writeErr != nil {
		// The filesystem may reject the unicode name; retry with ASCII.
		fallback := utils.ASCIIFallbackFilename(bookmark.Title) + ext
		fallbackPath := filepath.Join(outputDir, fallback)
		if fallbackErr := s.fs.WriteFile(fallbackPath, data, filePermissions); fallbackErr != nil {
			return "", fmt.Errorf("failed to write icon file: %w", writeErr)
		}
		localPath = fallbackPath
	}

	return localPath, nil
}

// extensionFor picks a file extension from the Content-Type header, falling
// back to the URL path's extension and finally a generic .img.
func extensionFor(contentType, iconURL string) string {
	mediaType := strings.TrimSpace(strings.Split(contentType, ";")[0])
	if ext, ok := contentTypeExt[strings.ToLower(mediaType)]; ok {
		return ext
	}
	if parsed, err := url.Parse(iconURL); err == nil {
		if ext := path.Ext(parsed.Path); ext != "" {
			return ext
		}
	}
	return ".img"
}

// marshalBookmarks renders the bookmarks without HTML escaping so unicode
// titles survive the rewrite.
func marshalBookmarks(bookmarks []domain.Bookmark) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(bookmarks); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
