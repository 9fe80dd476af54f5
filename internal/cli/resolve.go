package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"streamresolve/internal/resolver"
)

var resolveQuality string

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <url>",
		Short: "Resolve a media page URL to a playable stream URL",
		Args:  cobra.ExactArgs(1),
		RunE:  runResolve,
	}

	cmd.Flags().StringVar(&resolveQuality, "quality", "", "Quality tier (360p..4k) or numeric height; default from config")

	return cmd
}

func runResolve(cmd *cobra.Command, args []string) error {
	url := args[0]

	r, cfg, cleanup, err := newResolver()
	if err != nil {
		return err
	}
	defer cleanup()

	if !r.CanResolve(url) {
		return fmt.Errorf("no known host matches %q", url)
	}

	quality := resolveQuality
	if quality == "" {
		quality = cfg.Resolve.Quality
	}

	stream := r.Resolve(cmd.Context(), url, resolver.Options{Quality: quality})

	if outputJSON {
		data, err := json.MarshalIndent(stream, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
	} else {
		printStream(cmd, stream)
	}

	if !stream.Success {
		return fmt.Errorf("resolve failed: %s", stream.Error)
	}
	return nil
}

func printStream(cmd *cobra.Command, stream resolver.ResolvedStream) {
	cmd.Printf("%s %s\n", labelStyle.Render("URL:"), stream.URL)
	cmd.Printf("%s %s\n", labelStyle.Render("Success:"), yesNo(stream.Success))
	if stream.Success {
		cmd.Printf("%s %s\n", labelStyle.Render("Stream:"), stream.DirectURL)
		if stream.Title != "" {
			cmd.Printf("%s %s\n", labelStyle.Render("Title:"), stream.Title)
		}
		if stream.Width > 0 || stream.Height > 0 {
			cmd.Printf("%s %dx%d\n", labelStyle.Render("Resolution:"), stream.Width, stream.Height)
		}
		if stream.IsLive {
			cmd.Printf("%s %s\n", labelStyle.Render("Live:"), liveStyle.Render("yes"))
		}
		cmd.Printf("%s %s\n", labelStyle.Render("HLS:"), yesNo(stream.IsHLS))
	} else {
		cmd.Printf("%s %s\n", labelStyle.Render("Error:"), errStyle.Render(stream.Error))
	}
}
