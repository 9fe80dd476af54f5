package tool

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"streamresolve/internal/filesystem"
)

// ErrDownloadFailed reports a network or filesystem failure while
// installing the tool.
var ErrDownloadFailed = errors.New("tool download failed")

// ProgressFunc receives download progress in [0,1]. It is invoked at least
// at start and completion.
type ProgressFunc func(fraction float64)

// httpClient is swappable for tests.
var httpClient = http.DefaultClient

// Install downloads the platform release binary into targetDir (or the
// platform default when empty), marks it executable, and returns the
// installed path.
func Install(ctx context.Context, targetDir string, progress ProgressFunc) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if targetDir == "" {
		targetDir = DefaultInstallDir()
	}

	fs := filesystem.API()
	if err := fs.MkdirAll(targetDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: prepare install dir: %v", ErrDownloadFailed, err)
	}

	name := BinaryName()
	downloadURL := releaseBaseURL + name
	target := filepath.Join(targetDir, name)

	if progress != nil {
		progress(0)
	}

	if err := downloadBinary(ctx, downloadURL, target); err != nil {
		return "", err
	}

	if err := fs.Chmod(target, 0o755); err != nil {
		return "", fmt.Errorf("%w: mark executable: %v", ErrDownloadFailed, err)
	}

	if !filesystem.FileExists(target) {
		return "", fmt.Errorf("%w: %s did not materialize", ErrDownloadFailed, target)
	}

	if progress != nil {
		progress(1)
	}
	return target, nil
}

func downloadBinary(ctx context.Context, downloadURL, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrDownloadFailed, err)
	}
	req.Header.Set("User-Agent", "streamresolve/1.0")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: fetch %s: %v", ErrDownloadFailed, downloadURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: fetch %s: unexpected status %s", ErrDownloadFailed, downloadURL, resp.Status)
	}

	fs := filesystem.API()
	tmp, err := fs.TempFile(filepath.Dir(dest), "download-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrDownloadFailed, err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = fs.Remove(tmpPath) }()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write temp file: %v", ErrDownloadFailed, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close temp file: %v", ErrDownloadFailed, err)
	}

	if err := fs.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("%w: finalize download: %v", ErrDownloadFailed, err)
	}
	return nil
}
