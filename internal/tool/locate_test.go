package tool

import (
	"path/filepath"
	"testing"

	"streamresolve/internal/filesystem"
)

func useMemFs(t *testing.T) {
	t.Helper()
	filesystem.SetMemMapFs()
	t.Cleanup(filesystem.SetOsFs)
}

func touch(t *testing.T, path string) {
	t.Helper()
	fs := filesystem.API()
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := fs.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLocateExplicitPathWins(t *testing.T) {
	useMemFs(t)
	t.Setenv("PATH", "")

	explicit := filepath.Join("/custom", BinaryName())
	touch(t, explicit)
	touch(t, filepath.Join("/usr/local/bin", BinaryName()))

	got, ok := Locate(LocateConfig{ToolPath: explicit}).Get()
	if !ok {
		t.Fatal("expected a match")
	}
	if got != explicit {
		t.Fatalf("expected explicit path %q, got %q", explicit, got)
	}
}

func TestLocateIgnoresMissingExplicitPath(t *testing.T) {
	useMemFs(t)
	t.Setenv("PATH", "")

	fallback := filepath.Join("/usr/local/bin", BinaryName())
	touch(t, fallback)

	got, ok := Locate(LocateConfig{ToolPath: "/gone/yt-dlp"}).Get()
	if !ok {
		t.Fatal("expected fallback match")
	}
	if got != fallback {
		t.Fatalf("expected %q, got %q", fallback, got)
	}
}

func TestLocateConfiguredInstallDir(t *testing.T) {
	useMemFs(t)
	t.Setenv("PATH", "")

	installed := filepath.Join("/opt/custom-install", BinaryName())
	touch(t, installed)

	got, ok := Locate(LocateConfig{InstallDir: "/opt/custom-install"}).Get()
	if !ok {
		t.Fatal("expected install dir match")
	}
	if got != installed {
		t.Fatalf("expected %q, got %q", installed, got)
	}
}

func TestLocateScansPath(t *testing.T) {
	useMemFs(t)
	t.Setenv("PATH", "/nowhere"+string(filepath.ListSeparator)+"/somewhere/bin")

	onPath := filepath.Join("/somewhere/bin", BinaryName())
	touch(t, onPath)

	got, ok := Locate(LocateConfig{}).Get()
	if !ok {
		t.Fatal("expected PATH match")
	}
	if got != onPath {
		t.Fatalf("expected %q, got %q", onPath, got)
	}
}

func TestLocateNothingFound(t *testing.T) {
	useMemFs(t)
	t.Setenv("PATH", "")

	if opt := Locate(LocateConfig{}); opt.IsPresent() {
		path, _ := opt.Get()
		t.Fatalf("expected no match, got %q", path)
	}
}

func TestLocateSkipsDirectories(t *testing.T) {
	useMemFs(t)
	t.Setenv("PATH", "")

	// A directory named like the binary must not satisfy the search.
	dir := filepath.Join("/usr/local/bin", BinaryName())
	if err := filesystem.API().MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if opt := Locate(LocateConfig{}); opt.IsPresent() {
		path, _ := opt.Get()
		t.Fatalf("expected no match, got %q", path)
	}
}
