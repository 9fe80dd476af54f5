package tool

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"streamresolve/internal/filesystem"
)

// LocateConfig narrows the search to caller-provided locations before the
// platform defaults are tried.
type LocateConfig struct {
	// ToolPath is an explicit binary path. Checked first when set.
	ToolPath string
	// InstallDir is the configured install directory. Checked before the
	// platform default.
	InstallDir string
}

// Locate finds an installed copy of the tool. Search order, first match
// wins: explicit path, configured install dir, default install dir,
// well-known system locations, then every directory on PATH. Returns None
// when no candidate exists as a regular file.
func Locate(cfg LocateConfig) mo.Option[string] {
	if cfg.ToolPath != "" && filesystem.FileExists(cfg.ToolPath) {
		return mo.Some(cfg.ToolPath)
	}

	name := BinaryName()

	dirs := []string{}
	if cfg.InstallDir != "" {
		dirs = append(dirs, cfg.InstallDir)
	}
	dirs = append(dirs, DefaultInstallDir())
	dirs = append(dirs, wellKnownDirs()...)
	dirs = append(dirs, pathDirs()...)

	for _, dir := range lo.Uniq(dirs) {
		candidate := filepath.Join(dir, name)
		if filesystem.FileExists(candidate) {
			return mo.Some(candidate)
		}
	}

	return mo.None[string]()
}

func pathDirs() []string {
	raw := os.Getenv("PATH")
	if raw == "" {
		return nil
	}
	return lo.Filter(filepath.SplitList(raw), func(dir string, _ int) bool {
		return dir != ""
	})
}
