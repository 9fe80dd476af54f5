package resolver

import "time"

// DefaultTimeout is the per-invocation budget applied when no timeout is
// configured. Each of the up to three invocations of a resolve call gets
// its own full budget; there is no shared deadline.
const DefaultTimeout = 30 * time.Second

// Config is the configuration surface consumed from the embedding system.
// Zero values leave the corresponding State field unchanged, except
// AutoDownload which is always applied.
type Config struct {
	ToolPath     string
	InstallDir   string
	AutoDownload bool
	TimeoutMs    int
}

// State holds the process-wide resolver configuration plus the cached tool
// path and the sticky download-attempt marker.
//
// State is single-writer-expected: concurrent resolves may read an
// already-resolved tool path safely, but reconfiguration must be serialized
// by the caller. No internal lock is taken.
type State struct {
	toolPath          string
	installDir        string
	autoDownload      bool
	timeout           time.Duration
	downloadAttempted bool
}

// NewState returns a State with auto-download enabled and the default
// per-invocation timeout.
func NewState() *State {
	return &State{
		autoDownload: true,
		timeout:      DefaultTimeout,
	}
}

// Configure applies the embedder-provided configuration.
func (s *State) Configure(cfg Config) {
	if cfg.ToolPath != "" {
		s.toolPath = cfg.ToolPath
	}
	if cfg.InstallDir != "" {
		s.installDir = cfg.InstallDir
	}
	s.autoDownload = cfg.AutoDownload
	if cfg.TimeoutMs > 0 {
		s.timeout = time.Duration(cfg.TimeoutMs) * time.Millisecond
	}
}

// SetToolPath overrides the cached binary path.
func (s *State) SetToolPath(path string) {
	s.toolPath = path
}

// ToolPath returns the currently cached binary path, which may be empty.
func (s *State) ToolPath() string {
	return s.toolPath
}

// Timeout returns the per-invocation budget.
func (s *State) Timeout() time.Duration {
	return s.timeout
}

// DownloadAttempted reports whether an auto-download has already been
// tried this State lifetime. Once set it never clears, so auto-download is
// never retried automatically.
func (s *State) DownloadAttempted() bool {
	return s.downloadAttempted
}
