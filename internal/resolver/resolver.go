// Package resolver turns media page URLs into playable direct stream URLs
// by orchestrating the yt-dlp binary: availability gating, live
// classification, format negotiation, URL extraction, and metadata
// enrichment.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"streamresolve/internal/filesystem"
	"streamresolve/internal/format"
	"streamresolve/internal/runner"
	"streamresolve/internal/tool"
)

var (
	// ErrInvalidParam reports a null or empty URL.
	ErrInvalidParam = errors.New("invalid parameter")

	// ErrToolNotFound reports that no usable binary exists and
	// auto-download was disabled, already attempted, or failed.
	ErrToolNotFound = errors.New("yt-dlp is not available")

	// ErrResolutionFailed reports that the tool ran but produced no
	// usable URL.
	ErrResolutionFailed = errors.New("resolution failed")

	// ErrNotImplemented marks declared-but-unimplemented contract
	// surface (async resolution).
	ErrNotImplemented = errors.New("not implemented")
)

// Logger is the minimal logging surface the resolver needs.
type Logger interface {
	Printf(format string, v ...any)
}

type noopLogger struct{}

func (noopLogger) Printf(string, ...any) {}

// Swappable for tests.
var (
	locateTool  = tool.Locate
	installTool = tool.Install
)

// Resolver is the capability surface exposed to the embedding system.
type Resolver interface {
	CanResolve(url string) bool
	Resolve(ctx context.Context, url string, opts Options) ResolvedStream
	ResolveAsync(ctx context.Context, url string, opts Options) error
	Cancel()
	Probe(ctx context.Context, url string) ProbeResult
	EnsureAvailable(ctx context.Context, progress tool.ProgressFunc) (string, error)
	UpdateTool(ctx context.Context, progress tool.ProgressFunc) error
	ToolVersion(ctx context.Context) (string, error)
	SetToolPath(path string)
	Info() Info
}

// YtDLP resolves URLs by shelling out to the yt-dlp binary.
type YtDLP struct {
	state  *State
	runner runner.Runner
	log    Logger
}

// New builds a resolver around the provided state. A nil state, runner, or
// logger falls back to sensible defaults.
func New(state *State, r runner.Runner, log Logger) *YtDLP {
	if state == nil {
		state = NewState()
	}
	if r == nil {
		r = runner.CmdRunner{}
	}
	if log == nil {
		log = noopLogger{}
	}
	return &YtDLP{state: state, runner: r, log: log}
}

// Info reports the resolver's name, capability flags, and host list.
func (y *YtDLP) Info() Info {
	return Info{
		Name:         tool.Name,
		Capabilities: CapVOD | CapLive | CapQuality | CapHeaders | CapSelfDownload | CapSelfUpdate,
		Hosts:        KnownHosts(),
	}
}

// CanResolve reports whether url's host matches the supported-host list.
func (y *YtDLP) CanResolve(url string) bool {
	if url == "" {
		return false
	}
	return matchesKnownHost(extractHost(url))
}

// SetToolPath overrides the binary path for subsequent invocations.
func (y *YtDLP) SetToolPath(path string) {
	y.state.SetToolPath(path)
}

// EnsureAvailable guarantees a usable binary, attempting a single
// auto-download per State lifetime when permitted. Returns the binary path.
func (y *YtDLP) EnsureAvailable(ctx context.Context, progress tool.ProgressFunc) (string, error) {
	if path, ok := y.locate(); ok {
		return path, nil
	}

	if !y.state.autoDownload || y.state.downloadAttempted {
		return "", ErrToolNotFound
	}

	// Sticky regardless of outcome: a failed download is not retried.
	y.state.downloadAttempted = true

	path, err := installTool(ctx, y.state.installDir, progress)
	if err != nil {
		y.log.Printf("auto-download failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrToolNotFound, err)
	}
	y.state.toolPath = path
	y.log.Printf("installed yt-dlp at %s", path)
	return path, nil
}

func (y *YtDLP) locate() (string, bool) {
	if y.state.toolPath != "" && filesystem.FileExists(y.state.toolPath) {
		return y.state.toolPath, true
	}
	if path, ok := locateTool(tool.LocateConfig{InstallDir: y.state.installDir}).Get(); ok {
		y.state.toolPath = path
		return path, true
	}
	return "", false
}

// Resolve runs the full resolution protocol for url. It always returns a
// terminal ResolvedStream; failures are reported in the value, never
// panicked or aborted.
func (y *YtDLP) Resolve(ctx context.Context, url string, opts Options) ResolvedStream {
	stream := ResolvedStream{URL: url, Quality: opts.Quality}

	if strings.TrimSpace(url) == "" {
		stream.Error = ErrInvalidParam.Error()
		return stream
	}

	// Availability gate comes before any external invocation.
	binary, err := y.EnsureAvailable(ctx, nil)
	if err != nil {
		stream.Error = err.Error()
		return stream
	}

	stream.IsLive = y.checkLive(ctx, binary, url)

	chain := format.Chain(parseQuality(opts.Quality), stream.IsLive)
	selector := format.Join(chain)

	directURL, err := y.extractURL(ctx, binary, url, selector)
	if err != nil {
		stream.Error = err.Error()
		return stream
	}

	stream.DirectURL = directURL
	stream.IsHLS = strings.Contains(directURL, "m3u8")

	// Metadata failures degrade the result, never fail it: a usable
	// direct URL was already obtained.
	y.enrichMetadata(ctx, binary, url, &stream)

	stream.Success = true
	return stream
}

// ResolveAsync is declared by the contract but intentionally unimplemented;
// callers must not depend on it.
func (y *YtDLP) ResolveAsync(context.Context, string, Options) error {
	return ErrNotImplemented
}

// Cancel is a declared hook that performs no action: no invocation is
// cancellable once started.
func (y *YtDLP) Cancel() {}

// checkLive queries the is_live property. Best-effort: any failure or
// empty output classifies the stream as not live.
func (y *YtDLP) checkLive(ctx context.Context, binary, url string) bool {
	args := []string{"--no-warnings", "--no-check-certificate", "--print", "is_live", url}
	res, err := y.runner.Run(ctx, binary, args, y.state.timeout)
	if err != nil || res.ExitCode != 0 {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(string(res.Stdout)), "true")
}

func (y *YtDLP) extractURL(ctx context.Context, binary, url, selector string) (string, error) {
	args := []string{"--no-warnings", "--no-check-certificate", "-f", selector, "--get-url", url}
	res, err := y.runner.Run(ctx, binary, args, y.state.timeout)
	if err != nil {
		return "", err
	}

	direct := strings.TrimSpace(string(res.Stdout))
	if res.ExitCode != 0 || direct == "" {
		if msg := strings.TrimSpace(string(res.Stderr)); msg != "" {
			return "", fmt.Errorf("%w: %s", ErrResolutionFailed, msg)
		}
		return "", fmt.Errorf("%w: no stream URL for %s", ErrResolutionFailed, url)
	}
	return direct, nil
}

func (y *YtDLP) enrichMetadata(ctx context.Context, binary, url string, stream *ResolvedStream) {
	args := []string{
		"--no-warnings", "--no-check-certificate",
		"--print", "title", "--print", "width", "--print", "height",
		url,
	}
	res, err := y.runner.Run(ctx, binary, args, y.state.timeout)
	if err != nil || res.ExitCode != 0 {
		y.log.Printf("metadata query failed for %s", url)
		return
	}

	lines := splitLines(string(res.Stdout))
	if len(lines) > 0 {
		stream.Title = lines[0]
	}
	if len(lines) > 1 {
		stream.Width, _ = strconv.Atoi(lines[1])
	}
	if len(lines) > 2 {
		stream.Height, _ = strconv.Atoi(lines[2])
	}
}

// Probe queries title, live flag, and duration in a single invocation
// without ever extracting a playable URL.
func (y *YtDLP) Probe(ctx context.Context, url string) ProbeResult {
	probe := ProbeResult{URL: url}

	if strings.TrimSpace(url) == "" {
		probe.Error = ErrInvalidParam.Error()
		return probe
	}

	binary, err := y.EnsureAvailable(ctx, nil)
	if err != nil {
		probe.Error = err.Error()
		return probe
	}

	args := []string{
		"--no-warnings", "--no-check-certificate",
		"--print", "title", "--print", "is_live", "--print", "duration",
		url,
	}
	res, err := y.runner.Run(ctx, binary, args, y.state.timeout)
	if err != nil {
		probe.Error = err.Error()
		return probe
	}
	if res.ExitCode != 0 {
		if msg := strings.TrimSpace(string(res.Stderr)); msg != "" {
			probe.Error = msg
		} else {
			probe.Error = fmt.Sprintf("probe failed for %s", url)
		}
		return probe
	}

	lines := splitLines(string(res.Stdout))
	if len(lines) > 0 {
		probe.Title = lines[0]
	}
	if len(lines) > 1 {
		probe.IsLive = strings.EqualFold(lines[1], "true")
	}
	if len(lines) > 2 {
		probe.DurationSec, _ = strconv.ParseFloat(lines[2], 64)
	}

	probe.Success = true
	return probe
}

// ToolVersion runs the binary's version query and returns the first output
// line. It never triggers an auto-download.
func (y *YtDLP) ToolVersion(ctx context.Context) (string, error) {
	binary, ok := y.locate()
	if !ok {
		return "", ErrToolNotFound
	}

	res, err := y.runner.Run(ctx, binary, []string{"--version"}, y.state.timeout)
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return "", fmt.Errorf("version query exited with code %d", res.ExitCode)
	}
	return firstLine(strings.TrimSpace(string(res.Stdout))), nil
}

// UpdateTool asks the binary to self-update.
func (y *YtDLP) UpdateTool(ctx context.Context, progress tool.ProgressFunc) error {
	binary, ok := y.locate()
	if !ok {
		return ErrToolNotFound
	}

	if progress != nil {
		progress(0)
	}
	res, err := y.runner.Run(ctx, binary, []string{"-U"}, y.state.timeout)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		if msg := strings.TrimSpace(string(res.Stderr)); msg != "" {
			return fmt.Errorf("self-update failed: %s", msg)
		}
		return fmt.Errorf("self-update exited with code %d", res.ExitCode)
	}
	if progress != nil {
		progress(1)
	}
	return nil
}

// parseQuality maps a quality string to a target height. Numeric values
// pass through directly; named tiers use the fixed mapping; anything else
// means unconstrained.
func parseQuality(q string) int {
	q = strings.TrimSpace(strings.ToLower(q))
	if q == "" {
		return 0
	}
	if h, err := strconv.Atoi(q); err == nil && h > 0 {
		return h
	}
	return format.Height(format.Quality(q))
}

func splitLines(s string) []string {
	raw := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

var _ Resolver = (*YtDLP)(nil)
