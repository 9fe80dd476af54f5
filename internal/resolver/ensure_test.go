package resolver

import (
	"context"
	"strings"
	"testing"

	"streamresolve/internal/tool"
)

func TestEnsureAvailableInstallsOnce(t *testing.T) {
	withoutTool(t)
	attempts := stubInstall(t, func(_ context.Context, dir string, _ tool.ProgressFunc) (string, error) {
		return "/installed/yt-dlp", nil
	})

	state := NewState()
	y := New(state, &fakeRunner{}, nil)

	path, err := y.EnsureAvailable(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/installed/yt-dlp" {
		t.Fatalf("unexpected path %q", path)
	}
	if state.ToolPath() != "/installed/yt-dlp" {
		t.Fatal("successful install must cache the tool path")
	}
	if *attempts != 1 {
		t.Fatalf("expected one install attempt, got %d", *attempts)
	}
}

func TestEnsureAvailablePassesInstallDir(t *testing.T) {
	withoutTool(t)
	var gotDir string
	stubInstall(t, func(_ context.Context, dir string, _ tool.ProgressFunc) (string, error) {
		gotDir = dir
		return "/custom/yt-dlp", nil
	})

	state := NewState()
	state.Configure(Config{InstallDir: "/custom", AutoDownload: true})
	y := New(state, &fakeRunner{}, nil)

	if _, err := y.EnsureAvailable(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotDir != "/custom" {
		t.Fatalf("expected configured install dir, got %q", gotDir)
	}
}

func TestProbeToolUnavailable(t *testing.T) {
	withoutTool(t)
	stubInstall(t, func(context.Context, string, tool.ProgressFunc) (string, error) {
		t.Fatal("install must not run")
		return "", nil
	})

	state := NewState()
	state.Configure(Config{AutoDownload: false})
	fr := &fakeRunner{}
	y := New(state, fr, nil)

	probe := y.Probe(context.Background(), "https://www.youtube.com/watch?v=abc")
	if probe.Success {
		t.Fatal("expected failure")
	}
	if !strings.Contains(probe.Error, "not available") {
		t.Fatalf("error should mention unavailability, got %q", probe.Error)
	}
	if len(fr.calls) != 0 {
		t.Fatalf("no subprocess may be spawned, got %d calls", len(fr.calls))
	}
}
