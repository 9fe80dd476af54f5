package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"streamresolve/internal/resolver"
)

func newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe <url>",
		Short: "Query title, live flag, and duration without extracting a stream URL",
		Args:  cobra.ExactArgs(1),
		RunE:  runProbe,
	}
}

func runProbe(cmd *cobra.Command, args []string) error {
	r, _, cleanup, err := newResolver()
	if err != nil {
		return err
	}
	defer cleanup()

	probe := r.Probe(cmd.Context(), args[0])

	if outputJSON {
		data, err := json.MarshalIndent(probe, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
	} else {
		printProbe(cmd, probe)
	}

	if !probe.Success {
		return fmt.Errorf("probe failed: %s", probe.Error)
	}
	return nil
}

func printProbe(cmd *cobra.Command, probe resolver.ProbeResult) {
	cmd.Printf("%s %s\n", labelStyle.Render("URL:"), probe.URL)
	if !probe.Success {
		cmd.Printf("%s %s\n", labelStyle.Render("Error:"), errStyle.Render(probe.Error))
		return
	}
	if probe.Title != "" {
		cmd.Printf("%s %s\n", labelStyle.Render("Title:"), probe.Title)
	}
	cmd.Printf("%s %s\n", labelStyle.Render("Live:"), yesNo(probe.IsLive))
	if probe.DurationSec > 0 {
		d := time.Duration(probe.DurationSec * float64(time.Second))
		cmd.Printf("%s %s\n", labelStyle.Render("Duration:"), d.Round(time.Second))
	}
}
