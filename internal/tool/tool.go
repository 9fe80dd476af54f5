// Package tool locates and installs the yt-dlp binary the resolver shells
// out to.
package tool

import (
	"os"
	"path/filepath"
	"runtime"
)

// Name is the managed tool's canonical name.
const Name = "yt-dlp"

// releaseBaseURL is the fixed distribution base the installer downloads
// from. Var so tests can point it at a local server.
var releaseBaseURL = "https://github.com/yt-dlp/yt-dlp/releases/latest/download/"

// BinaryName returns the platform-specific release binary filename.
func BinaryName() string {
	switch runtime.GOOS {
	case "windows":
		return "yt-dlp.exe"
	case "darwin":
		return "yt-dlp_macos"
	default:
		return "yt-dlp"
	}
}

// DefaultInstallDir returns the per-user directory installs go to when no
// override is configured.
func DefaultInstallDir() string {
	if runtime.GOOS == "windows" {
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, "streamresolve")
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "streamresolve")
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(home, "AppData", "Local", "streamresolve")
	}
	return filepath.Join(home, ".local", "bin")
}

// wellKnownDirs lists static system install locations checked after the
// configured and default directories.
func wellKnownDirs() []string {
	if runtime.GOOS == "windows" {
		return []string{
			`C:\Program Files\yt-dlp`,
			`C:\yt-dlp`,
			`C:\ProgramData\streamresolve`,
		}
	}
	return []string{
		"/usr/local/bin",
		"/usr/bin",
		"/opt/homebrew/bin",
	}
}
