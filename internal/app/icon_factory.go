package app

import (
	"log/slog"
	"time"

	"startpage/internal/adapters/http"
	"startpage/internal/domain"
	"startpage/internal/services/icons"
)

const (
	// defaultDownloadTimeout is the default per-request timeout for icon downloads.
	defaultDownloadTimeout = 8 * time.Second
)

// IconServiceFactory creates icon mirror services with per-run HTTP options.
type IconServiceFactory struct {
	logger     *slog.Logger
	fileSystem domain.FileSystemAdapter
}

// NewIconServiceFactory creates a new icon service factory.
func NewIconServiceFactory(logger *slog.Logger, fileSystem domain.FileSystemAdapter) *IconServiceFactory {
	return &IconServiceFactory{
		logger:     logger,
		fileSystem: fileSystem,
	}
}

// Create builds an icon mirror with the given download options. A zero
// timeout selects the default, workers <= 0 selects the default pool size.
func (f *IconServiceFactory) Create(timeout time.Duration, insecureSkipTLS bool, workers int) domain.IconMirror {
	if timeout <= 0 {
		timeout = defaultDownloadTimeout
	}
	httpAdapter := http.NewAdapter(timeout, insecureSkipTLS, f.logger)
	return icons.NewService(f.fileSystem, httpAdapter, workers, f.logger)
}
