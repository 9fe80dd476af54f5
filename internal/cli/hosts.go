package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"streamresolve/internal/resolver"
)

func newHostsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hosts",
		Short: "List supported hosts",
		RunE:  runHosts,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check <url>",
		Short: "Check whether a URL's host is supported",
		Args:  cobra.ExactArgs(1),
		RunE:  runHostsCheck,
	})

	return cmd
}

func runHosts(cmd *cobra.Command, _ []string) error {
	hosts := resolver.KnownHosts()

	if outputJSON {
		data, err := json.MarshalIndent(hosts, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	for _, host := range hosts {
		cmd.Println(host)
	}
	return nil
}

func runHostsCheck(cmd *cobra.Command, args []string) error {
	r := resolver.New(resolver.NewState(), nil, nil)
	supported := r.CanResolve(args[0])

	if outputJSON {
		data, err := json.MarshalIndent(map[string]bool{"supported": supported}, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
	} else {
		cmd.Printf("%s %s\n", labelStyle.Render("Supported:"), yesNo(supported))
	}

	if !supported {
		return fmt.Errorf("no known host matches %q", args[0])
	}
	return nil
}
