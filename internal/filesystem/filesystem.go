// Package filesystem provides a swappable afero backend for all
// filesystem access in the tool locator and installer, so tests can run
// against an in-memory filesystem.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the native operating-system backend.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a volatile in-memory backend for tests.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := backend.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
