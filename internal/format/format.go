// Package format builds yt-dlp format-selector fallback chains from a
// target height and a live/VOD classification.
package format

import (
	"fmt"
	"strings"
)

// Quality names the preset tiers accepted on the command line and in the
// config file. Numeric values pass through as explicit heights.
type Quality string

const (
	QualityAuto  Quality = "auto"
	Quality360p  Quality = "360p"
	Quality480p  Quality = "480p"
	Quality720p  Quality = "720p"
	Quality1080p Quality = "1080p"
	Quality1440p Quality = "1440p"
	Quality4K    Quality = "4k"
)

var tierHeights = map[Quality]int{
	QualityAuto:  0,
	Quality360p:  360,
	Quality480p:  480,
	Quality720p:  720,
	Quality1080p: 1080,
	Quality1440p: 1440,
	Quality4K:    2160,
}

// Height maps a quality tier to its pixel height. Unknown tiers mean no
// constraint.
func Height(q Quality) int {
	return tierHeights[Quality(strings.ToLower(string(q)))]
}

// Chain returns the ordered fallback chain of selector expressions for the
// requested height and delivery kind. Height 0 means unconstrained. The
// function is pure; callers join the chain with Join before handing it to
// the tool.
func Chain(height int, live bool) []string {
	if live {
		if height > 0 {
			return []string{
				fmt.Sprintf("best[height<=%d][protocol!=m3u8]", height),
				fmt.Sprintf("best[height<=%d][protocol!=m3u8_native]", height),
				fmt.Sprintf("best[height<=%d]", height),
			}
		}
		return []string{
			"best[protocol!=m3u8]",
			"best[protocol!=m3u8_native]",
			"best",
		}
	}

	if height > 0 {
		return []string{
			fmt.Sprintf("bestvideo[height<=%d][ext=mp4][protocol!=m3u8]+bestaudio[ext=m4a]", height),
			fmt.Sprintf("best[height<=%d][ext=mp4][protocol!=m3u8]", height),
			fmt.Sprintf("best[height<=%d][ext=mp4]", height),
			"best[ext=mp4]",
			"best",
		}
	}
	return []string{
		"bestvideo[ext=mp4][protocol!=m3u8]+bestaudio[ext=m4a]",
		"best[ext=mp4][protocol!=m3u8]",
		"best[ext=mp4]",
		"best",
	}
}

// Join renders a chain in yt-dlp's slash-separated selector syntax.
func Join(chain []string) string {
	return strings.Join(chain, "/")
}
