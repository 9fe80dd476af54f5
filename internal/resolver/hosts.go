package resolver

import "strings"

// knownHosts lists the sites the tool is known to handle. Matching is
// deliberately permissive (bidirectional substring containment), so an
// entry that happens to be a substring of an unrelated host will
// false-positive. Kept as-is for behavioral parity.
var knownHosts = []string{
	"youtube.com", "youtu.be", "www.youtube.com", "m.youtube.com",
	"twitch.tv", "www.twitch.tv", "clips.twitch.tv",
	"vimeo.com", "www.vimeo.com", "player.vimeo.com",
	"dailymotion.com", "www.dailymotion.com",
	"facebook.com", "www.facebook.com", "fb.watch", "m.facebook.com",
	"twitter.com", "x.com", "mobile.twitter.com",
	"instagram.com", "www.instagram.com",
	"tiktok.com", "www.tiktok.com", "vm.tiktok.com",
	"reddit.com", "www.reddit.com", "v.redd.it",
	"streamable.com",
	"soundcloud.com", "www.soundcloud.com",
	"bandcamp.com",
	"bilibili.com", "www.bilibili.com",
	"nicovideo.jp", "www.nicovideo.jp",
	"rumble.com", "www.rumble.com",
	"odysee.com", "www.odysee.com",
	"kick.com", "www.kick.com",
}

// KnownHosts returns a copy of the supported-host list.
func KnownHosts() []string {
	out := make([]string, len(knownHosts))
	copy(out, knownHosts)
	return out
}

// extractHost pulls the lower-cased host component out of a URL: scheme
// and user-info are stripped, and the host ends at the first port, path,
// query, or fragment delimiter.
func extractHost(rawURL string) string {
	s := rawURL
	if idx := strings.Index(s, "://"); idx >= 0 {
		s = s[idx+3:]
	}
	if idx := strings.IndexByte(s, '@'); idx >= 0 {
		s = s[idx+1:]
	}
	if idx := strings.IndexAny(s, ":/?#"); idx >= 0 {
		s = s[:idx]
	}
	return strings.ToLower(s)
}

func matchesKnownHost(host string) bool {
	if host == "" {
		return false
	}
	for _, known := range knownHosts {
		if strings.Contains(host, known) || strings.Contains(known, host) {
			return true
		}
	}
	return false
}
