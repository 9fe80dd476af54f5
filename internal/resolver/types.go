package resolver

// Capability flags advertised to the embedding system.
type Capability uint32

const (
	CapVOD Capability = 1 << iota
	CapLive
	CapQuality
	CapHeaders
	CapSelfDownload
	CapSelfUpdate
)

// Info describes the resolver to the embedding system.
type Info struct {
	Name         string     `json:"name"`
	Capabilities Capability `json:"capabilities"`
	Hosts        []string   `json:"hosts"`
}

// Options carries per-call resolution parameters. Quality accepts either a
// named tier ("720p", "4k", "auto") or a bare numeric height ("720").
type Options struct {
	Quality string
}

// ResolvedStream is the terminal result of a resolve call. DirectURL is
// non-empty if and only if Success is true; Error is set if and only if
// Success is false. IsHLS is derived from the DirectURL content.
type ResolvedStream struct {
	URL       string `json:"url"`
	DirectURL string `json:"direct_url,omitempty"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	IsLive    bool   `json:"is_live"`
	IsHLS     bool   `json:"is_hls"`
	Title     string `json:"title,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	Quality   string `json:"quality,omitempty"`
}

// ProbeResult is the lightweight metadata-only variant: no playable URL is
// ever extracted.
type ProbeResult struct {
	URL         string  `json:"url"`
	Success     bool    `json:"success"`
	Error       string  `json:"error,omitempty"`
	Title       string  `json:"title,omitempty"`
	IsLive      bool    `json:"is_live"`
	DurationSec float64 `json:"duration_s,omitempty"`
}
