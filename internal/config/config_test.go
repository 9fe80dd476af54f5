package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.AutoDownloadEnabled() {
		t.Fatal("auto-download should default on")
	}
	if cfg.Tool.TimeoutMs != 30000 {
		t.Fatalf("unexpected timeout %d", cfg.Tool.TimeoutMs)
	}
	if cfg.Resolve.Quality != "auto" {
		t.Fatalf("unexpected quality %q", cfg.Resolve.Quality)
	}
}

func TestLoadAppliesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streamresolve.yaml")
	data := []byte("tool:\n  install_dir: /opt/tools\n  auto_download: false\n  timeout_ms: 5000\nresolve:\n  quality: 720p\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AutoDownloadEnabled() {
		t.Fatal("auto-download should be off")
	}
	if cfg.Tool.InstallDir != "/opt/tools" {
		t.Fatalf("unexpected install dir %q", cfg.Tool.InstallDir)
	}
	if cfg.Tool.TimeoutMs != 5000 {
		t.Fatalf("unexpected timeout %d", cfg.Tool.TimeoutMs)
	}
	if cfg.Resolve.Quality != "720p" {
		t.Fatalf("unexpected quality %q", cfg.Resolve.Quality)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("tool: ["), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidateNegativeTimeout(t *testing.T) {
	cfg := Default()
	cfg.Tool.TimeoutMs = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestValidateMissingToolPath(t *testing.T) {
	cfg := Default()
	cfg.Tool.Path = filepath.Join(t.TempDir(), "missing", "yt-dlp")
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for missing tool path")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Resolve.Quality = "1080p"
	buf, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	path := filepath.Join(t.TempDir(), "streamresolve.yaml")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Resolve.Quality != "1080p" {
		t.Fatalf("unexpected quality %q", loaded.Resolve.Quality)
	}
}
